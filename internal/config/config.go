package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StoreBackend  string
	RedisURL      string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
	GameTTLHours  int
	ScoringRule   string
	GatewayURL    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("[Config] Loaded .env")
	}

	cfg := Config{
		Port:          getEnv("PORT", "3001"),
		StoreBackend:  getEnv("STORE_BACKEND", "memory"),
		RedisURL:      os.Getenv("REDIS_URL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "germanbridge"),
		GameTTLHours:  getEnvInt("GAME_TTL_HOURS", 0),
		ScoringRule:   getEnv("SCORING_RULE", "standard"),
		GatewayURL:    getEnv("GATEWAY_URL", "http://localhost:3001"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
