package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hts_portal/internal/access"
	"hts_portal/internal/auth"
	"hts_portal/internal/config"
	"hts_portal/internal/content"
	"hts_portal/internal/http/handlers"
	"hts_portal/internal/logging"
	"hts_portal/internal/store"
	"hts_portal/internal/ui"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	DB        *gorm.DB
	Auth      *auth.Service
	Passwords auth.PasswordScheme
	Portal    config.Portal
	Log       zerolog.Logger
}

func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := ui.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Gin(d.Log), auth.Session(d.Auth))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(ui.Static()))

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/healthz", handlers.Health(d.DB))

	var (
		disp      = access.NewDispatcher(d.Portal.Dashboards)
		users     = store.NewUsers(d.DB)
		companies = store.NewCompanies(d.DB)
		pages     = store.NewPages(d.DB)
		auditRepo = store.NewAudit(d.DB)
		articles  = content.NewService(pages)
		auditor   = handlers.NewAuditor(auditRepo)
	)

	r.GET("/login", handlers.LoginPage(disp))
	r.POST("/login", handlers.Login(d.Auth, disp))
	r.GET("/logout", handlers.Logout(d.Auth))
	r.GET("/", handlers.Home(disp))

	// Pages for any signed-in user
	user := r.Group("/", guard(access.Authenticated))
	{
		user.GET("/dashboard/:variant", handlers.Dashboard(disp))
		user.GET("/formulario-caso", handlers.EmbeddedForm("Crea tu Caso", d.Portal.CaseFormURL))
		user.GET("/encuesta", handlers.EmbeddedForm("Encuesta", d.Portal.SurveyURL))
		user.GET("/contents", handlers.Articles(articles))
		user.GET("/contents/:slug", handlers.Article(articles))
	}

	admin := r.Group("/admin", guard(access.Admin))
	{
		admin.GET("", handlers.AdminHome())

		ua := &handlers.UserAdmin{Users: users, Companies: companies, Passwords: d.Passwords, Audit: auditor}
		admin.GET("/users", ua.Page())
		admin.POST("/users", ua.Create())
		admin.POST("/users/:id", ua.Update())
		admin.POST("/users/:id/delete", ua.Delete())

		ca := &handlers.CompanyAdmin{Companies: companies, Audit: auditor}
		admin.GET("/companies", ca.Page())
		admin.POST("/companies", ca.Create())
		admin.POST("/companies/:id", ca.Update())
		admin.POST("/companies/:id/delete", ca.Delete())

		pa := &handlers.ContentAdmin{Pages: pages, Content: articles, Audit: auditor}
		admin.GET("/content", pa.Page())
		admin.POST("/content", pa.Save())
		admin.POST("/content/:id", pa.Save())
		admin.POST("/content/:id/delete", pa.Delete())

		admin.GET("/audit", handlers.AuditPage(auditRepo))
	}

	// Public API routes
	r.POST("/api/v1/auth/login", handlers.APILogin(d.Auth, disp))
	r.POST("/api/v1/auth/logout", handlers.APILogout(d.Auth))

	api := r.Group("/api/v1", requireJSON(access.Authenticated))
	{
		api.GET("/me", handlers.MeHandler(disp))
		api.GET("/contents", handlers.ListArticles(articles))
		api.GET("/contents/:slug", handlers.GetArticle(articles))
		api.GET("/admin/audit", requireJSON(access.Admin), handlers.ListAudit(auditRepo))
	}

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, access.HomePath)
	})

	return r, nil
}

// guard redirects browsers the way the access decision says; the protected
// handler never runs on a redirect.
func guard(decide func(*auth.Identity) access.Decision) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d := decide(auth.Current(c)); !d.Allow {
			c.Redirect(http.StatusFound, d.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireJSON is guard for JSON clients: 401 when anonymous, 403 otherwise.
func requireJSON(decide func(*auth.Identity) access.Decision) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.Current(c)
		if d := decide(id); !d.Allow {
			if id == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
