package seed

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hts_portal/internal/auth"
	"hts_portal/internal/config"
	"hts_portal/internal/db/dbtest"
	"hts_portal/internal/models"
	"hts_portal/internal/store"
)

func TestFirstSetup_Idempotent(t *testing.T) {
	gdb := dbtest.New(t)
	opts := Options{
		Dashboards:    config.DefaultPortal().Dashboards,
		AdminUsername: "admin",
		AdminPassword: "admin123",
		Passwords:     auth.BcryptPasswords{Cost: 4},
	}
	log := zerolog.New(io.Discard)

	require.NoError(t, FirstSetup(gdb, opts, log))
	require.NoError(t, FirstSetup(gdb, opts, log))

	companies, err := store.NewCompanies(gdb).List(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Congelados", companies[0].Nombre)

	users, err := store.NewUsers(gdb).FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.True(t, opts.Passwords.Matches(users[0].Password, "admin123"))
}

func TestFirstSetup_RequiresAdminCredentials(t *testing.T) {
	gdb := dbtest.New(t)
	err := FirstSetup(gdb, Options{Passwords: auth.PlainPasswords{}}, zerolog.New(io.Discard))
	assert.Error(t, err)
}
