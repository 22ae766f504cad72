package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port      string
	SiteTitle string

	DbDriver  string // sqlite|postgres
	DbPath    string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	FallbackPath string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        string

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	CORSOrigins []string
}

// LoadConfig reads .env (if any), then the environment, and applies defaults.
// It never logs so the logger can depend on it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		SiteTitle: def(os.Getenv("SITE_TITLE"), "Lunaby API Docs"),

		DbDriver:  strings.ToLower(def(os.Getenv("DB_DRIVER"), DriverSQLite)),
		DbPath:    def(os.Getenv("DB_PATH"), "data/lunaby.db"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		FallbackPath: def(os.Getenv("FALLBACK_PATH"), "Fallback.json"),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		SessionTTL:        def(os.Getenv("SESSION_TTL"), "24h"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		CORSOrigins: splitCSV(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	return cfg, nil
}

// Validate returns warnings and a fatal error when the selected driver cannot work at all.
func (c *Config) Validate() (warnings []string, err error) {
	switch c.DbDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DbPath) == "" {
			return nil, fmt.Errorf("incomplete DB config (DB_PATH)")
		}
	case DriverPostgres:
		if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
			return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", c.DbDriver)
	}

	if c.AdminUsername == "" || (c.AdminPassword == "" && c.AdminPasswordHash == "") {
		warnings = append(warnings, "admin credentials are not set, admin login is disabled")
	}
	if strings.TrimSpace(c.SessionSecret) == "" {
		warnings = append(warnings, "SESSION_SECRET is empty")
	}
	if _, perr := time.ParseDuration(c.SessionTTL); perr != nil {
		warnings = append(warnings, "SESSION_TTL is invalid, using 24h")
	}

	return warnings, nil
}

// SessionDuration parses SessionTTL, falling back to 24h.
func (c *Config) SessionDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

func (c *Config) IsProd() bool { return c.Env == "prod" }

// GetDSN is the full Postgres DSN (with password).
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe hides the password, for logs.
func (c *Config) GetDSNSafe() string {
	if c.DbDriver == DriverSQLite {
		return "sqlite://" + c.DbPath
	}
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
