package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// sessionToken returns the bearer token when the Authorization header carries
// one, and the session cookie otherwise. Other schemes, such as Basic from a
// proxy in front of the portal, are ignored.
func sessionToken(c *gin.Context) (token string, fromCookie bool) {
	if t, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		if t = strings.TrimSpace(t); t != "" {
			return t, false
		}
	}
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// TokenFromRequest reads the session token from a Bearer Authorization
// header, falling back to the session cookie.
func TokenFromRequest(c *gin.Context) string {
	token, _ := sessionToken(c)
	return token
}

// Session attaches the caller's identity to the request context when a valid
// session exists. It never rejects a request; guards decide what anonymous
// callers may see.
func Session(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, fromCookie := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		id, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrSessionNotFound):
				// Stale cookie from an expired or restarted session.
				if fromCookie {
					ClearCookie(c)
				}
			default:
				// The session may still be valid once the store is back.
				zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("resolve session")
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(NewContext(c.Request.Context(), id))
		c.Next()
	}
}

// Current returns the identity of the request, or nil when anonymous.
func Current(c *gin.Context) *Identity {
	return FromContext(c.Request.Context())
}

// SetCookie stores token in an HttpOnly session cookie (no Max-Age, so the
// browser drops it when closed).
func SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, 0, "/", "", c.Request.TLS != nil, true)
}

func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}
