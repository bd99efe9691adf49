// ============================================================================
// backend/internal/shared/config.go
// Shared configuration management and environment variable helpers
// ============================================================================

package shared

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ============================================================================
// Configuration Structs
// ============================================================================

// ServiceConfig holds settings common to every binary
type ServiceConfig struct {
	ServiceName string
	Environment string // development, staging, production
	LogLevel    string // debug, info, warn, error
}

// RecordsConfig holds configuration for the records service
type RecordsConfig struct {
	ServiceConfig
	ServicePort string

	// Store selection: "memory" (default) or "mongo"
	StoreBackend string
	MongoDB      MongoConfig

	// Optional YAML file of students loaded at startup
	SeedFile string

	GRPC GRPCConfig
}

// GRPCConfig holds gRPC-specific configuration
type GRPCConfig struct {
	MaxRecvMsgSize int // Maximum receive message size in bytes
	MaxSendMsgSize int // Maximum send message size in bytes
}

// GatewayConfig holds gateway-specific configuration
type GatewayConfig struct {
	ServiceConfig
	HTTPPort           string
	RecordsServiceAddr string
	RequestTimeout     time.Duration

	Security SecurityConfig
	CORS     CORSConfig
}

// SecurityConfig holds admin credential and session settings
type SecurityConfig struct {
	AdminPassword     string
	AdminPasswordHash string // bcrypt hash; takes precedence over AdminPassword when set
	SessionSecret     string
	SessionTTL        time.Duration
	CookieSecure      bool
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int // in seconds
}

// ============================================================================
// Configuration Loading Functions
// ============================================================================

// LoadEnv loads environment variables from .env file
func LoadEnv(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

func loadServiceConfig(serviceName string) ServiceConfig {
	return ServiceConfig{
		ServiceName: serviceName,
		Environment: GetEnv("ENVIRONMENT", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
	}
}

// LoadRecordsConfig loads records service configuration from environment
func LoadRecordsConfig() (*RecordsConfig, error) {
	config := &RecordsConfig{
		ServiceConfig: loadServiceConfig("records-service"),
		ServicePort:   GetEnv("SERVICE_PORT", DefaultRecordsServicePort),
		StoreBackend:  strings.ToLower(GetEnv("STORE_BACKEND", StoreMemory)),
		SeedFile:      GetEnv("SEED_FILE", ""),
	}

	config.MongoDB = MongoConfig{
		URI:            GetEnv("MONGO_URI", ""),
		Database:       GetEnv("MONGO_DB_NAME", "sirms"),
		ConnectTimeout: GetDurationEnv("MONGO_CONNECT_TIMEOUT", 20*time.Second),
		MaxPoolSize:    uint64(GetIntEnv("MONGO_MAX_POOL_SIZE", 20)),
		MinPoolSize:    uint64(GetIntEnv("MONGO_MIN_POOL_SIZE", 1)),
		MaxIdleTime:    GetDurationEnv("MONGO_MAX_IDLE_TIME", 30*time.Second),
	}

	config.GRPC = GRPCConfig{
		MaxRecvMsgSize: GetIntEnv("GRPC_MAX_RECV_MSG_SIZE", 4*1024*1024), // 4MB
		MaxSendMsgSize: GetIntEnv("GRPC_MAX_SEND_MSG_SIZE", 4*1024*1024), // 4MB
	}

	if err := ValidateRecordsConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadGatewayConfig loads gateway-specific configuration
func LoadGatewayConfig() (*GatewayConfig, error) {
	config := &GatewayConfig{
		ServiceConfig:      loadServiceConfig("gateway"),
		HTTPPort:           GetEnv("HTTP_PORT", DefaultGatewayHTTPPort),
		RecordsServiceAddr: GetEnv("RECORDS_SERVICE_ADDR", "localhost:"+DefaultRecordsServicePort),
		RequestTimeout:     GetDurationEnv("REQUEST_TIMEOUT", 5*time.Second),
	}

	config.Security = SecurityConfig{
		AdminPassword:     GetEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     GetEnv("SESSION_SECRET", ""),
		SessionTTL:        GetDurationEnv("SESSION_TTL", 24*time.Hour),
		CookieSecure:      GetBoolEnv("COOKIE_SECURE", false),
	}

	config.CORS = CORSConfig{
		AllowedOrigins:   GetStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		AllowedMethods:   GetStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"}),
		AllowedHeaders:   GetStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"Accept", "Authorization", "Content-Type"}),
		AllowCredentials: GetBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           GetIntEnv("CORS_MAX_AGE", 300),
	}

	if config.Security.SessionSecret == "" {
		if IsProduction(&config.ServiceConfig) {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is required in production")
		}
		zap.L().Warn("SESSION_SECRET not set, using development secret")
		config.Security.SessionSecret = devSessionSecret
	}

	if err := ValidateGatewayConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

const devSessionSecret = "sirms-development-session-secret"

// ============================================================================
// Environment Variable Helper Functions
// ============================================================================

// GetEnv retrieves an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv retrieves an integer environment variable or returns a default value
func GetIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		zap.L().Warn("invalid integer env value, using default",
			zap.String("key", key), zap.String("value", valueStr), zap.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetBoolEnv retrieves a boolean environment variable or returns a default value
func GetBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		zap.L().Warn("invalid boolean env value, using default",
			zap.String("key", key), zap.String("value", valueStr), zap.Bool("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetDurationEnv retrieves a duration environment variable or returns a default value
// Supports format like "30s", "5m", "1h"
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		zap.L().Warn("invalid duration env value, using default",
			zap.String("key", key), zap.String("value", valueStr), zap.Duration("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetStringSliceEnv retrieves a comma-separated string list or returns a default value
func GetStringSliceEnv(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var result []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// ============================================================================
// Configuration Validation
// ============================================================================

// ValidateRecordsConfig validates records service configuration
func ValidateRecordsConfig(config *RecordsConfig) error {
	if config.ServicePort == "" {
		return fmt.Errorf("service port is required")
	}

	switch config.StoreBackend {
	case StoreMemory:
	case StoreMongo:
		if config.MongoDB.URI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_BACKEND=mongo")
		}
		if config.MongoDB.Database == "" {
			return fmt.Errorf("MongoDB database name is required")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", config.StoreBackend)
	}
	return nil
}

// ValidateGatewayConfig validates gateway configuration
func ValidateGatewayConfig(config *GatewayConfig) error {
	if config.HTTPPort == "" {
		return fmt.Errorf("HTTP port is required")
	}
	if config.RecordsServiceAddr == "" {
		return fmt.Errorf("records service address is required")
	}
	if config.Security.AdminPassword == "" && config.Security.AdminPasswordHash == "" {
		return fmt.Errorf("an admin password or password hash is required")
	}
	if config.Security.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	return nil
}

// ============================================================================
// Configuration Display (for debugging)
// ============================================================================

// PrintRecordsConfig logs records configuration (sanitized)
func PrintRecordsConfig(logger *zap.Logger, config *RecordsConfig) {
	logger.Info("records service configuration",
		zap.String("service", config.ServiceName),
		zap.String("port", config.ServicePort),
		zap.String("environment", config.Environment),
		zap.String("log_level", GetLogLevel(&config.ServiceConfig)),
		zap.String("store", config.StoreBackend),
		zap.String("mongo_database", config.MongoDB.Database),
		zap.String("seed_file", config.SeedFile),
		zap.Int("grpc_max_recv", config.GRPC.MaxRecvMsgSize),
		zap.Int("grpc_max_send", config.GRPC.MaxSendMsgSize),
	)
}

// PrintGatewayConfig logs gateway configuration (sanitized)
func PrintGatewayConfig(logger *zap.Logger, config *GatewayConfig) {
	logger.Info("gateway configuration",
		zap.String("service", config.ServiceName),
		zap.String("http_port", config.HTTPPort),
		zap.String("environment", config.Environment),
		zap.String("records_service", config.RecordsServiceAddr),
		zap.Duration("request_timeout", config.RequestTimeout),
		zap.Bool("admin_password_hashed", config.Security.AdminPasswordHash != ""),
		zap.Duration("session_ttl", config.Security.SessionTTL),
		zap.Bool("cookie_secure", config.Security.CookieSecure),
		zap.Strings("cors_origins", config.CORS.AllowedOrigins),
	)
}

// ============================================================================
// Default Port Mapping
// ============================================================================

const (
	DefaultGatewayHTTPPort    = "8080"
	DefaultRecordsServicePort = "50061"
)

// ============================================================================
// Environment-Specific Configuration
// ============================================================================

// IsDevelopment checks if running in development environment
func IsDevelopment(config *ServiceConfig) bool {
	return config.Environment == "development"
}

// IsProduction checks if running in production environment
func IsProduction(config *ServiceConfig) bool {
	return config.Environment == "production"
}

// GetLogLevel returns the configured log level
func GetLogLevel(config *ServiceConfig) string {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
		return config.LogLevel
	}
	return "info"
}
