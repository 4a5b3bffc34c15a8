package access

import "hts_portal/internal/auth"

const (
	LoginPath = "/login"
	HomePath  = "/"
	AdminPath = "/admin"
)

// Decision is the outcome of a guard: either the request may proceed or the
// caller is sent to Redirect.
type Decision struct {
	Allow    bool
	Redirect string
}

var allow = Decision{Allow: true}

func redirect(to string) Decision { return Decision{Redirect: to} }

// Authenticated lets any identified caller through and sends anonymous
// callers to the login page.
func Authenticated(id *auth.Identity) Decision {
	if id == nil {
		return redirect(LoginPath)
	}
	return allow
}

// Admin lets administrators through. Anonymous callers go to the login page;
// everyone else goes back to the home route, which dispatches them.
func Admin(id *auth.Identity) Decision {
	if id == nil {
		return redirect(LoginPath)
	}
	if !id.IsAdmin() {
		return redirect(HomePath)
	}
	return allow
}
