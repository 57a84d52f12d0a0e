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

	// TokenTTL is the access-token lifetime. The legacy deployment used 60s,
	// which expired sessions almost immediately; pair the longer default with
	// the /api/refresh flow instead.
	TokenTTL        time.Duration `env:"TOKEN_TTL,         default=15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Directory DirectoryConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=taskboard"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type DirectoryConfig struct {
	BaseURL string `env:"DIRECTORY_URL,     default=http://localhost:9099"`
	APIKey  string `env:"DIRECTORY_API_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
// The process fails fast when the signing secret is absent.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.JWTSecret == "" {
		panic("config: JWT_SECRET is required")
	}
	return &cfg
}
