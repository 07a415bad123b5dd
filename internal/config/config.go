package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Режимы наблюдателя за изменениями обращений
const (
	WatcherModeAuto       = "auto"
	WatcherModeChangeFeed = "changefeed"
	WatcherModePolling    = "polling"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass         string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	ComplaintCacheTTL time.Duration `env:"COMPLAINT_CACHE_TTL" envDefault:"5m"`

	// MinIO (хранилище фотографий)
	MinioEndpoint     string `env:"MINIO_ENDPOINT"`
	MinioAccessKey    string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey    string `env:"MINIO_SECRET_KEY"`
	MinioBucket       string `env:"MINIO_BUCKET" envDefault:"complaint-images"`
	MinioUseSSL       bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioPublicURL    string `env:"MINIO_PUBLIC_URL"`
	MaxImageSizeBytes int64  `env:"MAX_IMAGE_SIZE_BYTES" envDefault:"10485760"`

	// Push Config
	PushURL         string        `env:"PUSH_URL" envDefault:"https://exp.host/--/api/v2/push/send"`
	PushAccessToken string        `env:"PUSH_ACCESS_TOKEN"`
	PushTimeout     time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushMaxRetries  int           `env:"PUSH_MAX_RETRIES" envDefault:"2"`
	PushBaseDelay   time.Duration `env:"PUSH_BASE_DELAY" envDefault:"200ms"`

	// Watcher Config
	WatcherMode         string        `env:"WATCHER_MODE" envDefault:"auto"`
	WatcherPollInterval time.Duration `env:"WATCHER_POLL_INTERVAL" envDefault:"30s"`

	// API Keys for authentication
	APIKeys            []string `env:"API_KEYS"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

// PushEnabled - настроены ли учетные данные push-провайдера
func (c *Config) PushEnabled() bool {
	return c.PushURL != "" && c.PushAccessToken != ""
}

// StorageEnabled - настроено ли хранилище фотографий
func (c *Config) StorageEnabled() bool {
	return c.MinioEndpoint != "" && c.MinioAccessKey != "" && c.MinioSecretKey != ""
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		ComplaintCacheTTL:   getEnvAsDuration("COMPLAINT_CACHE_TTL", 5*time.Minute),
		MinioEndpoint:       os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:      os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:      os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:         getEnv("MINIO_BUCKET", "complaint-images"),
		MinioUseSSL:         getEnvAsBool("MINIO_USE_SSL", false),
		MinioPublicURL:      os.Getenv("MINIO_PUBLIC_URL"),
		MaxImageSizeBytes:   int64(getEnvAsInt("MAX_IMAGE_SIZE_BYTES", 10<<20)),
		PushURL:             getEnv("PUSH_URL", "https://exp.host/--/api/v2/push/send"),
		PushAccessToken:     os.Getenv("PUSH_ACCESS_TOKEN"),
		PushTimeout:         getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushMaxRetries:      getEnvAsInt("PUSH_MAX_RETRIES", 2),
		PushBaseDelay:       getEnvAsDuration("PUSH_BASE_DELAY", 200*time.Millisecond),
		WatcherMode:         strings.ToLower(getEnv("WATCHER_MODE", WatcherModeAuto)),
		WatcherPollInterval: getEnvAsDuration("WATCHER_POLL_INTERVAL", 30*time.Second),
		APIKeys:             getEnvAsList("API_KEYS"),
		CORSAllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	switch cfg.WatcherMode {
	case WatcherModeAuto, WatcherModeChangeFeed, WatcherModePolling:
	default:
		return nil, fmt.Errorf("WATCHER_MODE must be one of auto, changefeed, polling; got %q", cfg.WatcherMode)
	}

	if cfg.WatcherPollInterval <= 0 {
		return nil, fmt.Errorf("WATCHER_POLL_INTERVAL must be positive")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
