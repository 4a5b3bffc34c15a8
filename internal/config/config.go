package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	DBDriver  string
	DSN       string
	JWTSecret string
	AppPort   string

	SessionBackend string
	SessionTTL     time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	PasswordScheme string
	LogLevel       zerolog.Level

	Seed          bool
	AdminUsername string
	AdminPassword string

	Portal Portal

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// Load reads .env (if present) and the process environment, then overlays the
// YAML portal file named by PORTAL_CONFIG.
func Load() (Config, error) {
	cfg := Config{
		EnvFileLoaded:  godotenv.Load() == nil,
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DSN:            getEnv("DB_DSN", os.Getenv("MYSQL_DSN")),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AppPort:        getEnv("APP_PORT", "8080"),
		SessionBackend: strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
		SessionTTL:     getEnvDuration("SESSION_TTL", 12*time.Hour),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		PasswordScheme: strings.ToLower(getEnv("PASSWORD_SCHEME", "plain")),
		Seed:           getEnvBool("SEED", false),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		Portal:         DefaultPortal(),
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return cfg, errors.Wrap(err, "LOG_LEVEL")
	}
	cfg.LogLevel = lvl

	if cfg.DSN == "" {
		return cfg, errors.New("DB_DSN (or MYSQL_DSN) not set in environment")
	}
	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return cfg, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	switch cfg.SessionBackend {
	case "memory", "redis":
	default:
		return cfg, errors.Errorf("unsupported SESSION_BACKEND %q", cfg.SessionBackend)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-only"
	}

	if path := os.Getenv("PORTAL_CONFIG"); path != "" {
		p, err := LoadPortal(path)
		if err != nil {
			return cfg, err
		}
		cfg.Portal = p
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
