package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	APIURL   string `mapstructure:"API_URL"`
	Token    string `mapstructure:"TOKEN"`
	DraftDir string `mapstructure:"DRAFT_DIR"`
	LogMode  string `mapstructure:"LOG_MODE"`
}

// DefaultDir - ~/.studio, там лежат app.env, токен и черновики.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studio"
	}
	return filepath.Join(home, ".studio")
}

// New готовит viper с префиксом окружения STUDIO_; флаги привязываются поверх.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("STUDIO")

	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("DRAFT_DIR", filepath.Join(DefaultDir(), "drafts"))
	v.SetDefault("LOG_MODE", "off")

	v.AutomaticEnv()
	for _, key := range []string{"API_URL", "TOKEN", "DRAFT_DIR", "LOG_MODE"} {
		v.BindEnv(key)
	}
	return v
}

func Load(v *viper.Viper, dir string) (config Config, err error) {
	v.AddConfigPath(dir)
	v.SetConfigName("app")
	v.SetConfigType("env")

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
