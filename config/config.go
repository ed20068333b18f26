// Package config provides configuration management for the container quote service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// PricingConfig holds the quoting defaults.
type PricingConfig struct {
	// Containers maps container type to usable capacity in cubic meters.
	Containers       map[string]float64
	DefaultContainer string
	// CatalogCacheTTL bounds how long the active catalog is served from memory.
	CatalogCacheTTL time.Duration
	// ScenarioListLimit caps the number of scenarios returned by a list call.
	ScenarioListLimit int
}

// AuthConfig holds seller authentication configuration.
type AuthConfig struct {
	Enabled bool
	// SellerUsername and SellerPasswordHash (bcrypt) identify the single seller account.
	SellerUsername     string
	SellerPasswordHash string
	JWTSecretKey       string
	JWTIssuer          string
	AccessTokenTTL     time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Pricing: PricingConfig{
			Containers:        parseContainerCapacities(os.Getenv("CONTAINER_CAPACITIES")),
			DefaultContainer:  getEnv("DEFAULT_CONTAINER", "40hc"),
			CatalogCacheTTL:   getEnvDuration("CATALOG_CACHE_TTL", 30*time.Second),
			ScenarioListLimit: getEnvInt("SCENARIO_LIST_LIMIT", 100),
		},
		Auth: AuthConfig{
			Enabled:            getEnvBool("AUTH_ENABLED", true),
			SellerUsername:     getEnv("SELLER_USERNAME", "seller"),
			SellerPasswordHash: getEnv("SELLER_PASSWORD_HASH", ""),
			JWTSecretKey:       getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			JWTIssuer:          getEnv("JWT_ISSUER", "container-quote"),
			AccessTokenTTL:     getEnvDuration("JWT_ACCESS_TOKEN_TTL", 8*time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "container_quote"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseContainerCapacities reads "20ft=28.2,40hc=67.2". Malformed or
// non-positive entries are skipped; nil means use the built-in capacities.
func parseContainerCapacities(s string) map[string]float64 {
	if s == "" {
		return nil
	}
	result := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		capacity, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if name == "" || err != nil || capacity <= 0 {
			continue
		}
		result[name] = capacity
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
