package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Invoice InvoiceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// InvoiceConfig holds invoice numbering settings.
type InvoiceConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
}

// Load reads configuration from environment variables with the ORDERAPPU_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ORDERAPPU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "orderappu")
	v.SetDefault("db.password", "orderappu_secret")
	v.SetDefault("db.name", "orderappu_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "orderappu")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Invoice defaults
	v.SetDefault("invoice.number_prefix", "INV")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "ORDERAPPU_SERVER_PORT",
		"server.read_timeout":   "ORDERAPPU_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "ORDERAPPU_SERVER_WRITE_TIMEOUT",
		"server.environment":    "ORDERAPPU_SERVER_ENVIRONMENT",
		"db.host":               "ORDERAPPU_DB_HOST",
		"db.port":               "ORDERAPPU_DB_PORT",
		"db.user":               "ORDERAPPU_DB_USER",
		"db.password":           "ORDERAPPU_DB_PASSWORD",
		"db.name":               "ORDERAPPU_DB_NAME",
		"db.sslmode":            "ORDERAPPU_DB_SSLMODE",
		"db.max_open":           "ORDERAPPU_DB_MAX_OPEN",
		"db.max_idle":           "ORDERAPPU_DB_MAX_IDLE",
		"jwt.secret":            "ORDERAPPU_JWT_SECRET",
		"jwt.access_expiry":     "ORDERAPPU_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":    "ORDERAPPU_JWT_REFRESH_EXPIRY",
		"jwt.issuer":            "ORDERAPPU_JWT_ISSUER",
		"cors.allowed_origins":  "ORDERAPPU_CORS_ALLOWED_ORIGINS",
		"invoice.number_prefix": "ORDERAPPU_INVOICE_NUMBER_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ORDERAPPU_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ORDERAPPU_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Invoice = InvoiceConfig{
		NumberPrefix: v.GetString("invoice.number_prefix"),
	}

	return cfg, nil
}
