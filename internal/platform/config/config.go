package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// EntityCacheTTL bounds how long seed/user lookups are served from memory.
	EntityCacheTTL time.Duration
	// StatsCacheTTL bounds how long derived user statistics are served from memory.
	StatsCacheTTL time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "60-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "seed-exchange-app")
	viper.SetDefault("ENTITY_CACHE_TTL", "5m")
	viper.SetDefault("STATS_CACHE_TTL", "10m")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	entityTTLStr := viper.GetString("ENTITY_CACHE_TTL")
	entityTTL, err := time.ParseDuration(entityTTLStr)
	if err != nil {
		entityTTL = 5 * time.Minute
		log.Printf("Warning: Invalid value for ENTITY_CACHE_TTL ('%s'). Defaulting to %s.\n", entityTTLStr, entityTTL)
	}
	cfg.EntityCacheTTL = entityTTL

	statsTTLStr := viper.GetString("STATS_CACHE_TTL")
	statsTTL, err := time.ParseDuration(statsTTLStr)
	if err != nil {
		statsTTL = 10 * time.Minute
		log.Printf("Warning: Invalid value for STATS_CACHE_TTL ('%s'). Defaulting to %s.\n", statsTTLStr, statsTTL)
	}
	cfg.StatsCacheTTL = statsTTL

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
