package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: security settings that must never fall back to a default
// - default: values common across all environments (timezone, timeout, etc.)
// - empty: optional integrations (database, AI, staff login); the app runs
//   in a reduced mode when they are left unset
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Store     StoreConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Staff     StaffConfig
	AI        AIConfig
	Scheduler SchedulerConfig
	Report    ReportConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

const (
	StoreBackendAuto     = "auto"
	StoreBackendPostgres = "postgres"
	StoreBackendLocal    = "local"
)

type StoreConfig struct {
	// Backend is one of auto, postgres or local. Auto picks postgres when
	// the database is configured and the local store otherwise.
	Backend   string `envconfig:"STORE_BACKEND" default:"auto"`
	LocalPath string `envconfig:"LOCAL_STORE_PATH" default:"boarding-local.db"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type StaffConfig struct {
	// PasswordHash is a bcrypt hash. Staff login is disabled while it is empty.
	PasswordHash string `envconfig:"STAFF_PASSWORD_HASH"`
}

type AIConfig struct {
	APIKey         string  `envconfig:"GEMINI_API_KEY"`
	FallbackAPIKey string  `envconfig:"API_KEY"`
	Model          string  `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	Temperature    float32 `envconfig:"GEMINI_TEMPERATURE" default:"0.5"`
	TopP           float32 `envconfig:"GEMINI_TOP_P" default:"0.95"`
}

type SchedulerConfig struct {
	HandoverCron string `envconfig:"HANDOVER_CRON" default:"0 6 * * *"`
}

type ReportConfig struct {
	PDFEnabled bool          `envconfig:"REPORT_PDF_ENABLED" default:"false"`
	PDFTimeout time.Duration `envconfig:"REPORT_PDF_TIMEOUT" default:"30s"`
}

// Configured reports whether enough is set to attempt a connection.
func (c *DBConfig) Configured() bool {
	return c.Host != "" && c.DBName != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Key returns GEMINI_API_KEY, falling back to API_KEY.
func (c *AIConfig) Key() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.FallbackAPIKey
}

// ResolveBackend turns auto into a concrete backend.
func (c *Config) ResolveBackend() (string, error) {
	switch c.Store.Backend {
	case StoreBackendPostgres, StoreBackendLocal:
		return c.Store.Backend, nil
	case StoreBackendAuto, "":
		if c.DB.Configured() {
			return StoreBackendPostgres, nil
		}
		return StoreBackendLocal, nil
	default:
		return "", fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.ResolveBackend(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Store: StoreConfig{
			Backend:   StoreBackendPostgres,
			LocalPath: ":memory:",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		AI: AIConfig{
			Model:       "gemini-2.5-flash",
			Temperature: 0.5,
			TopP:        0.95,
		},
		Scheduler: SchedulerConfig{
			HandoverCron: "0 6 * * *",
		},
		Report: ReportConfig{
			PDFTimeout: 30 * time.Second,
		},
	}
}
