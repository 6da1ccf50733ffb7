package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Observ ObservabilityConfig
	API    APIConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

type APIConfig struct {
	// RateLimit uses the limiter format notation, e.g. "100-M".
	RateLimit string
	SeedData  bool
}

func Load() *Config {
	_ = godotenv.Load()

	tokenTTLMinutes, _ := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "1440"))
	seedData, _ := strconv.ParseBool(getEnv("SEED_DATA", "true"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-only-secret"),
			TokenTTL:  time.Duration(tokenTTLMinutes) * time.Minute,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		API: APIConfig{
			RateLimit: getEnv("RATE_LIMIT", "100-M"),
			SeedData:  seedData,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
