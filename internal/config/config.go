package config

import (
	"os"
)

type Config struct {
	ServerPort         string
	CatalogURL         string
	DatabasePath       string
	CORSAllowedOrigins string
}

var cfg *Config

func Load() *Config {
	cfg = &Config{
		ServerPort:         getEnv("SERVER_PORT", "16824"),
		CatalogURL:         getEnv("CATALOG_URL", "https://openrouter.ai/api/frontend/models"),
		DatabasePath:       getEnv("DATABASE_PATH", "./data/data.db"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
	return cfg
}

func Get() *Config {
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
