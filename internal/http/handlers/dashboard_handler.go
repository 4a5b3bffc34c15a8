package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hts_portal/internal/access"
	"hts_portal/internal/auth"
)

// Home sends the caller to their landing page.
func Home(disp *access.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, disp.Destination(auth.Current(c)))
	}
}

func AdminHome() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "admin_home.tmpl", gin.H{"title": "Administración"})
	}
}

// Dashboard renders /dashboard/:variant. Unknown variants go back to the
// home route.
func Dashboard(disp *access.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		variant := c.Param("variant")
		if variant == access.GenericVariant {
			render(c, http.StatusOK, "dashboard_generic.tmpl", gin.H{"title": "Inicio"})
			return
		}

		db, ok := disp.Dashboard(variant)
		if !ok {
			c.Redirect(http.StatusFound, access.HomePath)
			return
		}
		render(c, http.StatusOK, "dashboard_company.tmpl", gin.H{
			"title":     db.Title,
			"dashboard": db,
		})
	}
}

// EmbeddedForm renders a page wrapping a third-party form in an iframe.
func EmbeddedForm(title, src string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "embed.tmpl", gin.H{"title": title, "src": src})
	}
}
