package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"hts_portal/internal/auth"
)

// render executes a view with the caller's identity available as .Me.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Me"] = auth.Current(c)
	c.HTML(status, name, data)
}

func logger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}

// backendMessage is the storage layer's own error text, without the
// repository's wrapping.
func backendMessage(err error) string {
	return errors.Cause(err).Error()
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func queryID(c *gin.Context, key string) int64 {
	id, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}

func renderConfirm(c *gin.Context, message, back string) {
	render(c, http.StatusOK, "confirm.tmpl", gin.H{
		"title":   "Confirmar eliminación",
		"message": message,
		"action":  c.Request.URL.Path,
		"back":    back,
	})
}

func seeOther(c *gin.Context, to string) {
	c.Redirect(http.StatusSeeOther, to)
}
