package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// CORS
	CORSOrigins []string

	// Redis
	EnableCache bool
	RedisURL    string

	// Features
	EnableMetrics bool

	// Invitation defaults
	DefaultLanguage  string
	DefaultEventType string

	// SplashTransition is how long the public open-invitation transition
	// lasts before the gate reports opened.
	SplashTransition time.Duration
}

func New() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		EnableCache: getEnvAsBool("ENABLE_CACHE", false),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "pt-BR"),
		DefaultEventType: getEnv("DEFAULT_EVENT_TYPE", "wedding"),

		SplashTransition: getEnvAsDuration("SPLASH_TRANSITION", 1200*time.Millisecond),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		var millis int
		if _, err := fmt.Sscanf(valueStr, "%d", &millis); err == nil {
			return time.Duration(millis) * time.Millisecond
		}
		return defaultValue
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
