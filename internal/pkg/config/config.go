package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	IdP       IdPConfig
	Identity  IdentityConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host             string        `envconfig:"DB_HOST" default:"localhost"`
	Port             string        `envconfig:"DB_PORT" default:"5432"`
	User             string        `envconfig:"DB_USER" required:"true"`
	Password         string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode          string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone         string        `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns         int32         `envconfig:"DB_MAX_CONNS" default:"5"`
	ConnectTimeout   time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// At least one of JWTSecret (HS*) or JWKSURL (RS*) must be set.
type IdPConfig struct {
	JWTSecret       string        `envconfig:"IDP_JWT_SECRET"`
	JWKSURL         string        `envconfig:"IDP_JWKS_URL"`
	JWKSRefresh     time.Duration `envconfig:"IDP_JWKS_REFRESH" default:"10m"`
	JWKSHTTPTimeout time.Duration `envconfig:"IDP_JWKS_HTTP_TIMEOUT" default:"5s"`
	JWKSMinRefetch  time.Duration `envconfig:"IDP_JWKS_MIN_REFETCH" default:"30s"`
}

type IdentityConfig struct {
	OwnerEmails []string      `envconfig:"OWNER_EMAILS"`
	CacheTTL    time.Duration `envconfig:"IDENTITY_CACHE_TTL" default:"5m"`
}

// Empty URL disables the identity cache.
type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

// Empty endpoint disables tracing.
type TelemetryConfig struct {
	ServiceName  string `envconfig:"SERVICE_NAME" default:"petshop-api"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c IdentityConfig) IsOwner(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, owner := range c.OwnerEmails {
		if strings.ToLower(strings.TrimSpace(owner)) == email {
			return true
		}
	}
	return false
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments inject variables directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.IdP.JWTSecret == "" && cfg.IdP.JWKSURL == "" {
		return Config{}, fmt.Errorf("either IDP_JWT_SECRET or IDP_JWKS_URL must be set")
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	_ = godotenv.Load()

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:             "localhost",
			Port:             "15433", // Test DB port
			User:             "test",
			Password:         "test",
			DBName:           "test_db",
			SSLMode:          "disable",
			TimeZone:         "UTC",
			MaxConns:         5,
			ConnectTimeout:   5 * time.Second,
			StatementTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		IdP: IdPConfig{
			JWTSecret:       "test-idp-secret-with-enough-length",
			JWKSRefresh:     10 * time.Minute,
			JWKSHTTPTimeout: time.Second,
			JWKSMinRefetch:  time.Second,
		},
		Identity: IdentityConfig{
			OwnerEmails: []string{"owner@petshop.test"},
			CacheTTL:    time.Minute,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "petshop-api-test",
		},
	}
}
