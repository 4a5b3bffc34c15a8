package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"hts_portal/internal/access"
	"hts_portal/internal/auth"
)

// InvalidCredentialsMessage is the one message shown for any failed login.
const InvalidCredentialsMessage = "Credenciales inválidas"

// LoginPage renders the login form, or sends an already authenticated caller
// to their landing page.
func LoginPage(disp *access.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := auth.Current(c); id != nil {
			c.Redirect(http.StatusFound, disp.Destination(id))
			return
		}
		render(c, http.StatusOK, "login.tmpl", gin.H{"title": "Login"})
	}
}

// Login handles the login form.
func Login(svc *auth.Service, disp *access.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		id, token, err := svc.Login(c.Request.Context(), username, c.PostForm("password"))
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				logger(c).Error().Err(err).Msg("login failed")
			}
			render(c, http.StatusUnauthorized, "login.tmpl", gin.H{
				"title":    "Login",
				"alert":    InvalidCredentialsMessage,
				"username": username,
			})
			return
		}

		auth.SetCookie(c, token)
		seeOther(c, disp.Destination(&id))
	}
}

// Logout destroys the session, clears the cookie and returns to the login page.
func Logout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), auth.TokenFromRequest(c)); err != nil {
			logger(c).Warn().Err(err).Msg("logout")
		}
		auth.ClearCookie(c)
		c.Redirect(http.StatusFound, access.LoginPath)
	}
}

// APILogin authenticates a JSON client and returns the session token, also
// set as a cookie.
func APILogin(svc *auth.Service, disp *access.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, token, err := svc.Login(c.Request.Context(), input.Username, input.Password)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				logger(c).Error().Err(err).Msg("login failed")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": InvalidCredentialsMessage})
			return
		}

		auth.SetCookie(c, token)
		c.JSON(http.StatusOK, gin.H{
			"token":       token,
			"user":        id,
			"destination": disp.Destination(&id),
		})
	}
}

func APILogout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), auth.TokenFromRequest(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		auth.ClearCookie(c)
		c.Status(http.StatusNoContent)
	}
}
