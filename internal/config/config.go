package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	BackendURL    string
	ServerPort    string
	SessionSecret string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Env           string
}

func Load() *Config {
	return &Config{
		BackendURL:    getEnv("BACKEND_URL", "https://barbing-salon-api.onrender.com"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		Env:           getEnv("APP_ENV", "development"),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
