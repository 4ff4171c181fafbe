package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	LLM      LLMConfig
	Scoring  ScoringConfig
	Webhooks WebhookConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Auth     AuthConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port string
	Env  string

	// ProxyHeader names the header carrying the client IP, e.g. X-Forwarded-For.
	// It is only honoured for requests coming from TrustedProxies.
	ProxyHeader    string
	TrustedProxies []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type StorageConfig struct {
	// Driver is either "local" or "s3".
	Driver      string
	UploadPath  string
	Endpoint    string
	AccessKey   string
	SecretKey   string
	Bucket      string
	UseSSL      bool
	PublicURL   string
	MaxFileSize int64
	MaxFiles    int
}

type LLMConfig struct {
	// Provider is either "gateway" (OpenAI-compatible chat completions) or "gemini".
	Provider string
	BaseURL  string
	APIKey   string
	Model    string
}

type ScoringConfig struct {
	// FunctionURL points the orchestrator at a remote scoring function.
	// When empty the scorer runs in-process.
	FunctionURL     string
	FunctionAPIKey  string
	// APIKey guards the exposed /functions/v1 routes. Empty leaves them open.
	APIKey          string
	DownloadTimeout time.Duration
	RequestTimeout  time.Duration
	RateLimit       int
	RateWindow      time.Duration
}

type WebhookConfig struct {
	UploadURL    string
	SelectionURL string
	ScreeningURL string
	Timeout      time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type AuthConfig struct {
	SupabaseURL     string
	SupabaseAnonKey string
	SessionTTL      time.Duration
}

type WorkerConfig struct {
	CleanupInterval  time.Duration
	CleanupBatchSize int
	RetryMaxAttempts int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),

			ProxyHeader:    getEnv("PROXY_HEADER", ""),
			TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES", nil),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "cv_screener"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Storage: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", "local"),
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			Endpoint:    getEnv("S3_ENDPOINT", "localhost:9000"),
			AccessKey:   getEnv("S3_ACCESS_KEY", ""),
			SecretKey:   getEnv("S3_SECRET_KEY", ""),
			Bucket:      getEnv("S3_BUCKET", "cvs"),
			UseSSL:      getEnvAsBool("S3_USE_SSL", false),
			PublicURL:   getEnv("STORAGE_PUBLIC_URL", "http://localhost:3000/files"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			MaxFiles:    getEnvAsInt("MAX_FILES_PER_UPLOAD", 10),
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", "gateway"),
			BaseURL:  getEnv("LLM_BASE_URL", "https://ai.gateway.lovable.dev/v1/"),
			APIKey:   getEnv("LLM_API_KEY", ""),
			Model:    getEnv("LLM_MODEL", "google/gemini-3-flash-preview"),
		},
		Scoring: ScoringConfig{
			FunctionURL:     getEnv("SCORING_FUNCTION_URL", ""),
			FunctionAPIKey:  getEnv("SCORING_FUNCTION_API_KEY", ""),
			APIKey:          getEnv("SCORING_API_KEY", ""),
			DownloadTimeout: getEnvAsDuration("CV_DOWNLOAD_TIMEOUT", "30s"),
			RequestTimeout:  getEnvAsDuration("SCORING_REQUEST_TIMEOUT", "120s"),
			RateLimit:       getEnvAsInt("SCORING_RATE_LIMIT", 20),
			RateWindow:      getEnvAsDuration("SCORING_RATE_WINDOW", "1m"),
		},
		Webhooks: WebhookConfig{
			UploadURL:    getEnv("WEBHOOK_UPLOAD_URL", ""),
			SelectionURL: getEnv("WEBHOOK_SELECTION_URL", ""),
			ScreeningURL: getEnv("WEBHOOK_SCREENING_URL", ""),
			Timeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", "5s"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "cv.events"),
		},
		Auth: AuthConfig{
			SupabaseURL:     getEnv("SUPABASE_URL", ""),
			SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
			SessionTTL:      getEnvAsDuration("SESSION_TTL", "12h"),
		},
		Worker: WorkerConfig{
			CleanupInterval:  getEnvAsDuration("CLEANUP_INTERVAL", "30s"),
			CleanupBatchSize: getEnvAsInt("CLEANUP_BATCH_SIZE", 20),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 5),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
