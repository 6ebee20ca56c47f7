package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"siparisqr/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTPPort string

	RootDomain  string
	RootAliases []string
	PortalLabel string
	AdminLabels []string

	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	TenantCacheTTL       time.Duration
	TenantLookupTimeout  time.Duration
	SnapshotPollInterval time.Duration
	StaleOrderAfter      time.Duration
	StaleOrderSchedule   string

	OpenAPIValidation bool
	SeedDemo          bool

	LogLevel    string
	LogEncoding string
}

var defaults = map[string]any{
	"HTTP_PORT":              "8080",
	"ROOT_DOMAIN":            "localhost",
	"ROOT_ALIASES":           "",
	"PORTAL_LABEL":           "portal",
	"ADMIN_LABELS":           "admin,yonetim",
	"STORAGE_DRIVER":         StorageDriverPostgres,
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "postgres",
	"DB_PASSWORD":            "",
	"DB_NAME":                "siparisqr",
	"DB_SSLMODE":             "disable",
	"REDIS_ADDR":             "",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"TENANT_CACHE_TTL":       "5m",
	"TENANT_LOOKUP_TIMEOUT":  "2s",
	"SNAPSHOT_POLL_INTERVAL": "3s",
	"STALE_ORDER_AFTER":      "15m",
	"STALE_ORDER_SCHEDULE":   "0 * * * * *",
	"OPENAPI_VALIDATION":     true,
	"SEED_DEMO":              false,
	"LOG_LEVEL":              "info",
	"LOG_ENCODING":           "json",
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		RootDomain:           v.GetString("ROOT_DOMAIN"),
		RootAliases:          splitList(v.GetString("ROOT_ALIASES")),
		PortalLabel:          v.GetString("PORTAL_LABEL"),
		AdminLabels:          splitList(v.GetString("ADMIN_LABELS")),
		StorageDriver:        strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		RedisAddr:            v.GetString("REDIS_ADDR"),
		RedisPassword:        v.GetString("REDIS_PASSWORD"),
		RedisDB:              v.GetInt("REDIS_DB"),
		TenantCacheTTL:       v.GetDuration("TENANT_CACHE_TTL"),
		TenantLookupTimeout:  v.GetDuration("TENANT_LOOKUP_TIMEOUT"),
		SnapshotPollInterval: v.GetDuration("SNAPSHOT_POLL_INTERVAL"),
		StaleOrderAfter:      v.GetDuration("STALE_ORDER_AFTER"),
		StaleOrderSchedule:   v.GetString("STALE_ORDER_SCHEDULE"),
		OpenAPIValidation:    v.GetBool("OPENAPI_VALIDATION"),
		SeedDemo:             v.GetBool("SEED_DEMO"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogEncoding:          v.GetString("LOG_ENCODING"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	if c.HTTPPort == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.RootDomain == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("ROOT_DOMAIN"))
	}
	if c.StorageDriver != StorageDriverPostgres && c.StorageDriver != StorageDriverMemory {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("STORAGE_DRIVER",
			fmt.Errorf("%q is neither %s nor %s", c.StorageDriver, StorageDriverPostgres, StorageDriverMemory)))
	}
	if c.StorageDriver == StorageDriverPostgres && c.DBName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.TenantCacheTTL <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("TENANT_CACHE_TTL", errors.New("must be positive")))
	}
	if c.TenantLookupTimeout < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("TENANT_LOOKUP_TIMEOUT", errors.New("must not be negative")))
	}
	if c.SnapshotPollInterval <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("SNAPSHOT_POLL_INTERVAL", errors.New("must be positive")))
	}
	if c.StaleOrderAfter <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("STALE_ORDER_AFTER", errors.New("must be positive")))
	}
	if _, lvlErr := zapcore.ParseLevel(c.LogLevel); lvlErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", lvlErr))
	}
	if c.LogEncoding != "json" && c.LogEncoding != "console" {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("LOG_ENCODING",
			fmt.Errorf("%q is neither json nor console", c.LogEncoding)))
	}
	return err
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NewLogger builds the zap logger described by LOG_LEVEL and LOG_ENCODING.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = c.LogEncoding
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if c.LogEncoding == "console" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return config.Build()
}

// EchoLogLevel maps LOG_LEVEL onto echo's own logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error", "dpanic", "panic", "fatal":
		return log.ERROR
	default:
		return log.INFO
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
