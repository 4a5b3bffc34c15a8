package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hts_portal/internal/logging"
	"hts_portal/internal/models"
)

// Connect opens the database for driver ("mysql", "postgres" or "sqlite") and
// pings it once.
func Connect(driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported driver %q", driver)
	}

	// Driver errors are left untranslated so screens can show them verbatim.
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.Gorm(log),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := Ping(context.Background(), gdb); err != nil {
		return nil, err
	}

	log.Info().Str("driver", driver).Msg("database connected")
	return gdb, nil
}

// Ping checks that the underlying connection pool can reach the server.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return errors.Wrap(err, "database handle")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "database ping failed")
	}
	return nil
}

// AutoMigrate creates or updates the portal tables. Companies go first so the
// app_users foreign key can reference them.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.ContentPage{},
		&models.AuditLog{},
	)
}
