package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// ErrorLogPath is the append-only file that receives one line per 5xx error.
	ErrorLogPath string `env:"ERROR_LOG_PATH, default=logs/error.log"`

	MySQL MySQLConfig
	Redis RedisConfig
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=fittrack:fittrack@tcp(localhost:3306)/fittrack?parseTime=true"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
