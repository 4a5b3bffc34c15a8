package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hts_portal/internal/auth"
	"hts_portal/internal/config"
	"hts_portal/internal/models"
)

func identity(role models.Role, company string) *auth.Identity {
	return &auth.Identity{ID: 1, Username: "u", Role: role, CompanyName: company}
}

func TestDestination(t *testing.T) {
	d := NewDispatcher(config.DefaultPortal().Dashboards)

	tests := []struct {
		name string
		id   *auth.Identity
		want string
	}{
		{"anonymous", nil, "/login"},
		{"admin without company", identity(models.RoleAdmin, ""), "/admin"},
		{"admin of reserved company", identity(models.RoleAdmin, "Congelados"), "/admin"},
		{"user of reserved company", identity(models.RoleUser, "Congelados"), "/dashboard/congelados"},
		{"case differs", identity(models.RoleUser, "congelados"), "/dashboard/generic"},
		{"other company", identity(models.RoleUser, "Acme"), "/dashboard/generic"},
		{"no company", identity(models.RoleUser, ""), "/dashboard/generic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Destination(tt.id)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, d.Destination(tt.id), "idempotent")
		})
	}
}

func TestDestination_ConfiguredDashboards(t *testing.T) {
	d := NewDispatcher([]config.Dashboard{
		{Company: "Acme", Variant: "acme"},
		{Company: "Acme", Variant: "acme-2"},
	})

	assert.Equal(t, "/dashboard/acme", d.Destination(identity(models.RoleUser, "Acme")))
	assert.Equal(t, "/dashboard/generic", d.Destination(identity(models.RoleUser, "Congelados")))

	db, ok := d.Dashboard("acme-2")
	assert.True(t, ok)
	assert.Equal(t, "Acme", db.Company)

	_, ok = d.Dashboard("nope")
	assert.False(t, ok)
}

func TestAuthenticated(t *testing.T) {
	assert.Equal(t, Decision{Redirect: "/login"}, Authenticated(nil))

	id := identity(models.RoleUser, "")
	first := Authenticated(id)
	assert.True(t, first.Allow)
	assert.Equal(t, first, Authenticated(id))
}

func TestAdmin(t *testing.T) {
	assert.Equal(t, Decision{Redirect: "/login"}, Admin(nil))
	assert.Equal(t, Decision{Redirect: "/"}, Admin(identity(models.RoleUser, "Congelados")))
	assert.True(t, Admin(identity(models.RoleAdmin, "")).Allow)
}
