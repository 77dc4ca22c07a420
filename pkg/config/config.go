package config

import (
	"os"
	"time"
)

type Config struct {
	Port             string
	Env              string
	MongoURI         string
	PostgresConnStr  string
	JWTSecret        string
	CloudinaryURL    string
	DirectoryTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		MongoURI:         getEnv("MONGO_URI", ""),
		PostgresConnStr:  getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		CloudinaryURL:    getEnv("CLOUDINARY_URL", ""),
		DirectoryTimeout: getDurationEnv("DIRECTORY_TIMEOUT", 3*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
