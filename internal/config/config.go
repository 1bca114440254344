package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Model        ModelConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// ModelConfig locates the pre-built classification artifacts.
type ModelConfig struct {
	Dir                string
	ClassifierFile     string
	WordVectorizerFile string
	CharVectorizerFile string
	LabelEncoderFile   string
}

// PostgresConfig holds DB connection values. An empty DSN disables the audit log.
type PostgresConfig struct {
	DSN             string
	ApplicationName string
	ConnectTimeout  int
	MaxConns        int32
	MinConns        int32
	RunMigrations   bool
	MigrationsDir   string
	ConnMaxIdleSec  int32
	ConnMaxLifeSec  int32
}

// RedisConfig holds Redis connection values. An empty Addr disables the prediction cache.
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	CacheTTLHours int
	// TimeoutMillis bounds every cache round trip; a slow cache must not slow predictions.
	TimeoutMillis int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines API client authentication. An empty JWTSecret leaves /predict open.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	// Clients maps client id to bcrypt hash of its secret.
	Clients map[string]string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	clients, err := parseClients(os.Getenv("AUTH_CLIENTS"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_CLIENTS: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "ticket-classifier"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "5000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Model: ModelConfig{
			Dir:                getEnv("MODEL_DIR", "models"),
			ClassifierFile:     getEnv("MODEL_CLASSIFIER_FILE", "svm.json"),
			WordVectorizerFile: getEnv("MODEL_WORD_VECTORIZER_FILE", "tfidf_word.json"),
			CharVectorizerFile: getEnv("MODEL_CHAR_VECTORIZER_FILE", "tfidf_char.json"),
			LabelEncoderFile:   getEnv("MODEL_LABEL_ENCODER_FILE", "label_encoder.json"),
		},
		Postgres: PostgresConfig{
			DSN:             os.Getenv("POSTGRES_DSN"),
			ApplicationName: getEnv("POSTGRES_APPLICATION_NAME", "ticket-classifier"),
			ConnectTimeout:  getEnvAsInt("POSTGRES_CONNECT_TIMEOUT_SECONDS", 5),
			MaxConns:        int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:        int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:   getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			MigrationsDir:   getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
			ConnMaxIdleSec:  int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec:  int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			CacheTTLHours: getEnvAsInt("REDIS_CACHE_TTL_HOURS", 24),
			TimeoutMillis: getEnvAsInt("REDIS_TIMEOUT_MS", 250),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             os.Getenv("AUTH_JWT_SECRET"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			Clients:               clients,
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", ""),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Path joins an artifact file name onto the model directory. Absolute names are kept as is.
func (m ModelConfig) Path(name string) string {
	if filepath.IsAbs(name) || m.Dir == "" {
		return name
	}
	return filepath.Join(m.Dir, name)
}

// CacheTTL returns how long cached predictions stay valid.
func (r RedisConfig) CacheTTL() time.Duration {
	if r.CacheTTLHours <= 0 {
		return 0
	}
	return time.Duration(r.CacheTTLHours) * time.Hour
}

// Timeout returns the per-command cache deadline.
func (r RedisConfig) Timeout() time.Duration {
	if r.TimeoutMillis <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(r.TimeoutMillis) * time.Millisecond
}

// Enabled reports whether client authentication is switched on.
func (a AuthConfig) Enabled() bool {
	return strings.TrimSpace(a.JWTSecret) != ""
}

// parseClients reads "id:hash,id2:hash2". Bcrypt hashes contain '$' but never ',' or ':'.
func parseClients(raw string) (map[string]string, error) {
	clients := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return clients, nil
	}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, hash, ok := strings.Cut(entry, ":")
		id = strings.TrimSpace(id)
		hash = strings.TrimSpace(hash)
		if !ok || id == "" || hash == "" {
			return nil, fmt.Errorf("malformed client entry %q", entry)
		}
		clients[id] = hash
	}
	return clients, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
