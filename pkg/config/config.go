package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	// Server
	Env         string
	ServerPort  string
	AppURL      string
	CORSOrigins []string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// JWT
	JWTSecret       string
	JWTExpire       time.Duration
	JWTCookieExpire int // days

	// Uploads
	MaxFileUpload     int64
	StorageDriver     string
	UploadRoot        string
	BootcampUploadDir string
	CategoryUploadDir string
	ProductUploadDir  string

	// AWS S3
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3BucketName       string
	S3UseSSL           string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string

	// Geocoder
	GeocoderURL    string
	GeocoderAPIKey string

	// Logging
	LogLevel string
	LogFile  string
}

func Load() (*Config, error) {
	// .env is optional, the environment wins anyway
	_ = godotenv.Load()

	config := &Config{
		Env:         getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		AppURL:      strings.TrimRight(getEnv("APP_URL", ""), "/"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "campshop"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),

		StorageDriver:     getEnv("STORAGE_DRIVER", "local"),
		UploadRoot:        getEnv("UPLOAD_ROOT", "./public/uploads"),
		BootcampUploadDir: getEnv("BOOTCAMP_UPLOAD_DIR", "bootcamps"),
		CategoryUploadDir: getEnv("CATEGORY_UPLOAD_DIR", "categories"),
		ProductUploadDir:  getEnv("PRODUCT_UPLOAD_DIR", "products"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "campshop-uploads"),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromName:     getEnv("FROM_NAME", "Campshop"),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@campshop.io"),

		GeocoderURL:    getEnv("GEOCODER_URL", "https://www.mapquestapi.com/geocoding/v1/address"),
		GeocoderAPIKey: getEnv("GEOCODER_API_KEY", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	var err error
	if config.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if config.RateLimitRequests, err = getEnvInt("RATE_LIMIT_REQUESTS", 100); err != nil {
		return nil, err
	}
	if config.RateLimitWindow, err = getEnvDuration("RATE_LIMIT_WINDOW", 10*time.Minute); err != nil {
		return nil, err
	}
	if config.JWTExpire, err = getEnvDuration("JWT_EXPIRE", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if config.JWTCookieExpire, err = getEnvInt("JWT_COOKIE_EXPIRE", 30); err != nil {
		return nil, err
	}
	if config.MaxFileUpload, err = getEnvInt64("MAX_FILE_UPLOAD", 1000000); err != nil {
		return nil, err
	}
	if config.SMTPPort, err = getEnvInt("SMTP_PORT", 2525); err != nil {
		return nil, err
	}

	switch config.StorageDriver {
	case "local", "s3":
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", config.StorageDriver)
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
