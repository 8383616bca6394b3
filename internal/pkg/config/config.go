package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is the lifetime of issued session tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Reconciler ReconcilerConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sessionbook"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ReconcilerConfig tunes the background sweep that marks past confirmed
// bookings completed.
type ReconcilerConfig struct {
	Workers  int           `env:"RECONCILER_WORKERS,  default=4"`
	Interval time.Duration `env:"RECONCILER_INTERVAL, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
