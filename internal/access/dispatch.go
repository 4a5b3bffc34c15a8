package access

import (
	"hts_portal/internal/auth"
	"hts_portal/internal/config"
)

// GenericVariant is the dashboard shown to users whose company has no
// dedicated one.
const GenericVariant = "generic"

// Dispatcher maps an identity to its landing page.
type Dispatcher struct {
	byCompany map[string]config.Dashboard
	byVariant map[string]config.Dashboard
}

// NewDispatcher indexes dashboards by company name and by variant. The first
// entry wins when names repeat.
func NewDispatcher(dashboards []config.Dashboard) *Dispatcher {
	d := &Dispatcher{
		byCompany: make(map[string]config.Dashboard, len(dashboards)),
		byVariant: make(map[string]config.Dashboard, len(dashboards)),
	}
	for _, db := range dashboards {
		if _, ok := d.byCompany[db.Company]; !ok {
			d.byCompany[db.Company] = db
		}
		if _, ok := d.byVariant[db.Variant]; !ok {
			d.byVariant[db.Variant] = db
		}
	}
	return d
}

func DashboardPath(variant string) string { return "/dashboard/" + variant }

// Destination returns where id should land. Administrators always go to the
// admin home; users are routed by exact company name, never by company id.
func (d *Dispatcher) Destination(id *auth.Identity) string {
	switch {
	case id == nil:
		return LoginPath
	case id.IsAdmin():
		return AdminPath
	}
	if db, ok := d.byCompany[id.CompanyName]; ok && id.CompanyName != "" {
		return DashboardPath(db.Variant)
	}
	return DashboardPath(GenericVariant)
}

// Dashboard looks up a company dashboard by its route variant.
func (d *Dispatcher) Dashboard(variant string) (config.Dashboard, bool) {
	db, ok := d.byVariant[variant]
	return db, ok
}
