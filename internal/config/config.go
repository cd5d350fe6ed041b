package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	AdvisorGemini    = "gemini"
	AdvisorHeuristic = "heuristic"
)

// Config holds every runtime setting of the service. It is built once in main
// and passed down explicitly.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	StorageBackend string // "dynamodb", "postgres" or "memory"

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	NegotiationsTable  string
	PaymentsTable      string

	DBHost            string
	DBPort            int
	DBName            string
	DBUsername        string
	DBPassword        string
	DBSecretID        string
	DBSSLModeDisabled bool

	AdvisorBackend  string // "gemini" or "heuristic"
	GeminiAPIKey    string
	GeminiModel     string
	AdvisoryTimeout time.Duration
	RequestTimeout  time.Duration

	JWTSecret          string
	CORSAllowedOrigins []string

	PaymentGatewayMock     bool
	MercadoPagoAccessToken string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getIntEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDurationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads all env vars and builds the config.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "release"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageDynamoDB)),

		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		NegotiationsTable:  getEnv("NEGOTIATIONS_TABLE", "negotiations"),
		PaymentsTable:      getEnv("PAYMENTS_TABLE", "settlement_payments"),

		DBHost:            getEnv("DB_HOST", "localhost"),
		DBName:            getEnv("DB_NAME", "bell24h"),
		DBUsername:        os.Getenv("DB_USERNAME"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBSecretID:        os.Getenv("DB_SECRET_ID"),
		DBSSLModeDisabled: getBoolEnv("DB_SSL_MODE_DISABLE", false),

		AdvisorBackend: strings.ToLower(getEnv("ADVISOR_BACKEND", AdvisorHeuristic)),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		PaymentGatewayMock:     getBoolEnv("PAYMENT_GATEWAY_MOCK", false) || getBoolEnv("MERCADOPAGO_MOCK", false),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}

	var err error
	if cfg.DBPort, err = getIntEnv("DB_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.AdvisoryTimeout, err = getDurationEnv("ADVISORY_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDurationEnv("REQUEST_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageDynamoDB, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.AdvisorBackend {
	case AdvisorHeuristic:
	case AdvisorGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set when ADVISOR_BACKEND=gemini")
		}
	default:
		return fmt.Errorf("unsupported ADVISOR_BACKEND %q", c.AdvisorBackend)
	}

	if c.StorageBackend == StoragePostgres && c.DBSecretID == "" && (c.DBUsername == "" || c.DBPassword == "") {
		return fmt.Errorf("postgres storage needs DB_USERNAME/DB_PASSWORD or DB_SECRET_ID")
	}
	return nil
}
