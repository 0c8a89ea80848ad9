package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	NotesBackendSQL    = "sql"
	NotesBackendDynamo = "dynamodb"
)

// Config is decoded from the environment. cmd/api autoloads .env before Load.
type Config struct {
	Port    int    `env:"PORT,default=8080"`
	GinMode string `env:"GIN_MODE,default=release"`

	DatabaseDriver string `env:"DATABASE_DRIVER,default=postgres"`
	DatabaseURL    string `env:"DATABASE_URL"`

	NotesBackend       string `env:"NOTES_BACKEND,default=sql"`
	AWSRegion          string `env:"AWS_REGION,default=us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID,default=local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY,default=local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	NotesTable         string `env:"NOTES_TABLE,default=cliente_anotacoes"`

	GeminiAPIKey     string  `env:"GEMINI_API_KEY"`
	GeminiModel      string  `env:"GEMINI_MODEL,default=gemini-2.0-flash"`
	AIRateLimitRPS   float64 `env:"AI_RATE_LIMIT_RPS,default=1"`
	AIRateLimitBurst int     `env:"AI_RATE_LIMIT_BURST,default=5"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK,default=false"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,default=12h"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS,default=*"`

	MaintenanceSeedFile string `env:"MAINTENANCE_SEED_FILE,default=configs/manutencao.yaml"`
	LogLevel            string `env:"LOG_LEVEL,default=info"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for driver %s", c.DatabaseDriver)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	switch c.NotesBackend {
	case NotesBackendSQL, NotesBackendDynamo:
	default:
		return fmt.Errorf("unsupported NOTES_BACKEND %q", c.NotesBackend)
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must have at least 16 characters")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
