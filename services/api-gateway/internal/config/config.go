package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	AuthSvcUrl     string `mapstructure:"AUTH_SVC_URL"`
	CourseSvcUrl   string `mapstructure:"COURSE_SVC_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	LogMode        string `mapstructure:"LOG_MODE"`
	CookieDomain   string `mapstructure:"COOKIE_DOMAIN"`
	CookieSecure   bool   `mapstructure:"COOKIE_SECURE"`

	S3Endpoint  string `mapstructure:"S3_ENDPOINT"` // пусто - AWS по умолчанию
	S3Region    string `mapstructure:"S3_REGION"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3PublicURL string `mapstructure:"S3_PUBLIC_URL"`
}

func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", ":8080")
	viper.SetDefault("AUTH_SVC_URL", "localhost:50051")
	viper.SetDefault("COURSE_SVC_URL", "localhost:50052")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_MODE", "dev")
	viper.SetDefault("COOKIE_DOMAIN", "localhost")
	viper.SetDefault("S3_REGION", "us-east-1")

	viper.AutomaticEnv()

	// Явно биндим
	for _, key := range []string{
		"PORT", "AUTH_SVC_URL", "COURSE_SVC_URL", "ALLOWED_ORIGINS", "REDIS_ADDR", "LOG_MODE",
		"COOKIE_DOMAIN", "COOKIE_SECURE",
		"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_URL",
	} {
		viper.BindEnv(key)
	}

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
