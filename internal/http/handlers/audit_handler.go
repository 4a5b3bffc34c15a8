package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hts_portal/internal/auth"
	"hts_portal/internal/models"
	"hts_portal/internal/store"
)

const maxUserAgent = 255

// Auditor appends admin writes to the audit trail. A failed write is logged
// and never fails the request that triggered it.
type Auditor struct {
	repo *store.Audit
}

func NewAuditor(repo *store.Audit) *Auditor {
	return &Auditor{repo: repo}
}

func (a *Auditor) Record(c *gin.Context, action, resourceType string, resourceID int64, meta gin.H) {
	entry := models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IP:           c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}
	if len(entry.UserAgent) > maxUserAgent {
		entry.UserAgent = entry.UserAgent[:maxUserAgent]
	}
	if id := auth.Current(c); id != nil {
		entry.UserID = id.ID
		entry.InitiatorName = id.Username
	}
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			entry.Metadata = datatypes.JSON(b)
		}
	}

	if err := a.repo.Record(c.Request.Context(), &entry); err != nil {
		logger(c).Warn().Err(err).Str("action", action).Msg("audit write failed")
	}
}

func auditQuery(c *gin.Context) store.AuditQuery {
	q := store.AuditQuery{
		AfterID: queryID(c, "after_id"),
		Search:  strings.TrimSpace(c.Query("q")),
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			q.Limit = parsed
		}
	}
	return q
}

// ListAudit is the JSON view of the trail, newest first, paged by after_id.
func ListAudit(repo *store.Audit) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, next, err := repo.List(c.Request.Context(), auditQuery(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"logs":        logs,
			"next_cursor": next,
		})
	}
}

func AuditPage(repo *store.Audit) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := auditQuery(c)
		data := gin.H{"title": "Auditoría", "q": q.Search}

		logs, next, err := repo.List(c.Request.Context(), q)
		if err != nil {
			logger(c).Error().Err(err).Msg("list audit logs")
		}
		data["logs"] = logs
		data["next"] = next
		render(c, http.StatusOK, "admin_audit.tmpl", data)
	}
}
