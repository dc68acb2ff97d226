package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Booking store selection: "mongo" or "postgres"
	StoreDriver string

	Mongo    MongoConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Invoice rendering
	Invoice InvoiceConfig

	// Invoice image storage
	Storage StorageConfig

	// Logging
	LogLevel string
}

// MongoConfig holds MongoDB configuration
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// KafkaConfig holds the booking event producer configuration
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	BookingTopic string
	RetryMax     int
	Timeout      time.Duration
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	BookingRequests int           `json:"booking_requests"`
	InvoiceRequests int           `json:"invoice_requests"`
	HealthRequests  int           `json:"health_requests"`
	WhitelistedIPs  []string      `json:"whitelisted_ips"`
}

// InvoiceConfig holds invoice rendering configuration
type InvoiceConfig struct {
	TemplatePath  string
	OutputDir     string
	PublicBaseURL string
	ShareBaseURL  string
	ChromePath    string
	// Zero means no deadline on the rendering engine.
	RenderTimeout time.Duration
}

// StorageConfig selects where rendered invoice images are persisted
type StorageConfig struct {
	Driver          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Prefix        string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "mongo")),

		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DATABASE", "tripbook"),
			Collection: getEnv("MONGO_COLLECTION", "bookings"),
		},

		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "tripbook"),
			User:     getEnv("DB_USER", "tripbook"),
			Password: getEnv("DB_PASSWORD", "tripbook"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		Kafka: KafkaConfig{
			Enabled:      getBoolEnv("KAFKA_ENABLED", false),
			Brokers:      getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			BookingTopic: getEnv("KAFKA_BOOKING_TOPIC", "booking-events"),
			RetryMax:     getIntEnv("KAFKA_RETRY_MAX", 3),
			Timeout:      getDurationEnv("KAFKA_TIMEOUT", 10*time.Second),
		},

		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", false),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests: getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			BookingRequests: getIntEnv("RATE_LIMIT_BOOKING_REQUESTS", 30),
			InvoiceRequests: getIntEnv("RATE_LIMIT_INVOICE_REQUESTS", 10),
			HealthRequests:  getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			WhitelistedIPs:  getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		Invoice: InvoiceConfig{
			TemplatePath:  getEnv("INVOICE_TEMPLATE_PATH", ""),
			OutputDir:     getEnv("INVOICE_OUTPUT_DIR", "./public/invoices"),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
			ShareBaseURL:  getEnv("SHARE_BASE_URL", "https://wa.me/"),
			ChromePath:    getEnv("CHROME_PATH", ""),
			RenderTimeout: getDurationEnv("RENDER_TIMEOUT", 0),
		},

		Storage: StorageConfig{
			Driver:          strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			Region:          getEnv("AWS_REGION", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("S3_BUCKET", ""),
			S3Prefix:        getEnv("S3_PREFIX", "invoices"),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// UsesPostgres reports whether bookings are kept in PostgreSQL instead of MongoDB
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == "postgres"
}
