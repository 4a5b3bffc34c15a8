// Package logging builds the portal's zerolog logger and the adapters that
// route Gin and GORM output through it.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a JSON logger writing to w (stdout when nil) at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(w).
		With().
		Timestamp().
		Str("service", "hts-portal").
		Logger().
		Level(level)
}

// Gin logs one line per request. Server errors log at error level, client
// errors at warn, everything else at info. Handlers reach the logger through
// zerolog.Ctx on the request context.
func Gin(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// Gorm adapts l for GORM's query logger.
func Gorm(l zerolog.Logger) gormlogger.Interface {
	zl := l.With().Str("module", "gorm").Logger()
	return gormlogger.New(
		&zl,
		gormlogger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
