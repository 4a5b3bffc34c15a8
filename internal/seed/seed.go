package seed

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hts_portal/internal/auth"
	"hts_portal/internal/config"
	"hts_portal/internal/models"
)

// Options controls what FirstSetup ensures.
type Options struct {
	Dashboards    []config.Dashboard
	AdminUsername string
	AdminPassword string
	Passwords     auth.PasswordScheme
}

// FirstSetup makes sure every company with a dedicated dashboard exists and
// that an administrator account is available. Running it again changes
// nothing; an existing admin keeps its password.
func FirstSetup(db *gorm.DB, opts Options, log zerolog.Logger) error {
	// -------------------------
	// 1) Ensure dashboard companies
	// -------------------------
	for _, d := range opts.Dashboards {
		company := models.Company{Nombre: d.Company}
		if err := db.Where("nombre = ?", company.Nombre).FirstOrCreate(&company).Error; err != nil {
			return errors.Wrapf(err, "seed company %q", d.Company)
		}
	}

	// -------------------------
	// 2) Ensure admin user
	// -------------------------
	if opts.AdminUsername == "" || opts.AdminPassword == "" {
		return errors.New("seed: admin username and password are required")
	}
	stored, err := opts.Passwords.Hash(opts.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "seed: hash admin password")
	}

	admin := models.User{
		Username: opts.AdminUsername,
		Password: stored,
		Role:     models.RoleAdmin,
	}
	res := db.Where("username = ?", admin.Username).FirstOrCreate(&admin)
	if res.Error != nil {
		return errors.Wrap(res.Error, "seed admin user")
	}

	log.Info().
		Str("admin", admin.Username).
		Bool("admin_created", res.RowsAffected > 0).
		Int("companies", len(opts.Dashboards)).
		Msg("seed ok")
	return nil
}
