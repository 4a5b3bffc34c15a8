package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"hts_portal/internal/auth"
	"hts_portal/internal/config"
	"hts_portal/internal/db"
	httpserver "hts_portal/internal/http"
	"hts_portal/internal/logging"
	"hts_portal/internal/seed"
	"hts_portal/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logging.New(os.Stdout, cfg.LogLevel)
	if !cfg.EnvFileLoaded {
		log.Debug().Msg("no .env file, using process environment")
	}

	gdb, err := db.Connect(cfg.DBDriver, cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	passwords, err := auth.NewPasswordScheme(cfg.PasswordScheme)
	if err != nil {
		log.Fatal().Err(err).Msg("password scheme")
	}

	if cfg.Seed {
		err := seed.FirstSetup(gdb, seed.Options{
			Dashboards:    cfg.Portal.Dashboards,
			AdminUsername: cfg.AdminUsername,
			AdminPassword: cfg.AdminPassword,
			Passwords:     passwords,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}

	sessions, err := sessionStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("session store")
	}

	svc := auth.NewService(
		auth.NewVerifier(store.NewUsers(gdb), passwords, log),
		sessions,
		auth.NewTokens(cfg.JWTSecret, cfg.SessionTTL),
	)

	r, err := httpserver.NewRouter(httpserver.Deps{
		DB:        gdb,
		Auth:      svc,
		Passwords: passwords,
		Portal:    cfg.Portal,
		Log:       log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router")
	}

	log.Info().
		Str("port", cfg.AppPort).
		Str("sessions", cfg.SessionBackend).
		Str("passwords", cfg.PasswordScheme).
		Msg("server listening")
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func sessionStore(cfg config.Config) (auth.SessionStore, error) {
	if cfg.SessionBackend != "redis" {
		return auth.NewMemoryStore(cfg.SessionTTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrapf(err, "redis %s", cfg.RedisAddr)
	}
	return auth.NewRedisStore(client, cfg.SessionTTL), nil
}
