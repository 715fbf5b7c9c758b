package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort             int    `mapstructure:"APP_PORT"`
	StorageBackend      string `mapstructure:"STORAGE_BACKEND"`
	DatabasePath        string `mapstructure:"DATABASE_PATH"`
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	OllamaURL           string `mapstructure:"OLLAMA_URL"`
	OllamaModel         string `mapstructure:"OLLAMA_MODEL"`
	ReplyTimeoutSeconds int    `mapstructure:"REPLY_TIMEOUT_SECONDS"`
	JWTSecret           string `mapstructure:"JWT_SECRET"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
}

// ReplyTimeout is the bound on a single reply-generation call.
func (c *Config) ReplyTimeout() time.Duration {
	return time.Duration(c.ReplyTimeoutSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("STORAGE_BACKEND", "sqlite")
	viper.SetDefault("DATABASE_PATH", "/data/promptpilot.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("OLLAMA_URL", "http://ollama:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3")
	viper.SetDefault("REPLY_TIMEOUT_SECONDS", 30)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
