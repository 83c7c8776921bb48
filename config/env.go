package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// Authentication
	JWTSecret string

	// Server
	Port     string
	LogLevel string

	// Team generation
	DefaultCompetitionYear int
	MaxEntries             int
	GenerationTimeout      time.Duration

	// Kafka, publishing is disabled when the broker is empty
	KafkaBroker string
	KafkaTopic  string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		JWTSecret: getEnv("JWT_SECRET"),

		Port:     getEnvWithDefault("PORT", "8000"),
		LogLevel: getEnvWithDefault("LOG_LEVEL", ""),

		DefaultCompetitionYear: getEnvAsInt("DEFAULT_COMPETITION_YEAR", time.Now().Year()),
		MaxEntries:             getEnvAsInt("MAX_ENTRIES", 20000),
		GenerationTimeout:      time.Duration(getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 60)) * time.Second,

		KafkaBroker: getEnvWithDefault("KAFKA_BROKER", ""),
		KafkaTopic:  getEnvWithDefault("KAFKA_TOPIC", "team-generation"),
	}
	if config.JWTSecret == "" {
		config.JWTSecret = "dummyjwt"
	}
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
