package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Storage backend names for Config.StorageBackend.
const (
	StorageRedis    = "redis"
	StorageDatabase = "database"
	StorageMemory   = "memory"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	RedisURL            string
	DatabaseURL         string
	StorageBackend      string // redis | database | memory
	FrontendURLEndsWith string
	DevPassword         string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	cfg := &Config{
		Env:                 env,
		Port:                port,
		RedisURL:            viper.GetString("REDIS_URL"),
		DatabaseURL:         viper.GetString("DATABASE_URL"),
		StorageBackend:      strings.ToLower(viper.GetString("STORAGE_BACKEND")),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
	}

	// No explicit backend: infer from whichever URL is configured, redis
	// winning when both are.
	if cfg.StorageBackend == "" {
		switch {
		case cfg.RedisURL != "":
			cfg.StorageBackend = StorageRedis
		case cfg.DatabaseURL != "":
			cfg.StorageBackend = StorageDatabase
		default:
			cfg.StorageBackend = StorageMemory
		}
	}
	return cfg, nil
}
