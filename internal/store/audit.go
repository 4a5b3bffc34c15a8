package store

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hts_portal/internal/models"
)

const (
	defaultAuditLimit = 20
	maxAuditLimit     = 100
)

// AuditQuery pages through the audit trail newest first. AfterID is the
// cursor returned by the previous page.
type AuditQuery struct {
	Limit   int
	AfterID int64
	Search  string
}

type Audit struct {
	db *gorm.DB
}

func NewAudit(db *gorm.DB) *Audit {
	return &Audit{db: db}
}

func (r *Audit) Record(ctx context.Context, entry *models.AuditLog) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(entry).Error, "record audit")
}

// List returns one page of logs and the cursor for the next page, nil when
// there is none.
func (r *Audit) List(ctx context.Context, q AuditQuery) ([]models.AuditLog, *int64, error) {
	limit := q.Limit
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	query := r.db.WithContext(ctx).Model(&models.AuditLog{}).Order("id DESC")
	if q.AfterID > 0 {
		query = query.Where("id < ?", q.AfterID)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("(initiator_name LIKE ? OR action LIKE ? OR resource_type LIKE ? OR ip LIKE ?)",
			like, like, like, like)
	}

	var logs []models.AuditLog
	if err := query.Limit(limit + 1).Find(&logs).Error; err != nil {
		return nil, nil, errors.Wrap(err, "list audit")
	}

	var next *int64
	if len(logs) > limit {
		logs = logs[:limit]
		cursor := logs[limit-1].ID
		next = &cursor
	}
	return logs, next, nil
}
