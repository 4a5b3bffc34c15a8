package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hts_portal/internal/access"
	"hts_portal/internal/auth"
)

// MeHandler returns the caller's identity and where the portal would send
// them.
func MeHandler(disp *access.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.Current(c)
		c.JSON(http.StatusOK, gin.H{
			"user":        id,
			"destination": disp.Destination(id),
		})
	}
}
