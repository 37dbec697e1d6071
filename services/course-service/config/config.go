package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	RedisAddr  string `mapstructure:"REDIS_ADDR"` // пустой адрес отключает кеш каталога
	GRPCPort   string `mapstructure:"GRPC_PORT"`
	LogMode    string `mapstructure:"LOG_MODE"`
	SeedDemo   bool   `mapstructure:"SEED_DEMO"`
	SeedOwner  string `mapstructure:"SEED_OWNER_ID"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("GRPC_PORT", ":50052")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("LOG_MODE", "dev")

	viper.AutomaticEnv()

	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("GRPC_PORT")
	viper.BindEnv("LOG_MODE")
	viper.BindEnv("SEED_DEMO")
	viper.BindEnv("SEED_OWNER_ID")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
