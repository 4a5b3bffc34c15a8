package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hts_portal/internal/models"
)

// PageDraft carries the editable fields of a content page.
type PageDraft struct {
	Title   string
	Slug    string
	Content string
}

type Pages struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPages(db *gorm.DB) *Pages {
	return &Pages{db: db, now: time.Now}
}

// List returns every page, most recently updated first.
func (r *Pages) List(ctx context.Context) ([]models.ContentPage, error) {
	var out []models.ContentPage
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list pages")
	}
	return out, nil
}

func (r *Pages) Get(ctx context.Context, id int64) (models.ContentPage, error) {
	var p models.ContentPage
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return p, errors.Wrap(notFound(err), "get page")
	}
	return p, nil
}

func (r *Pages) GetBySlug(ctx context.Context, slug string) (models.ContentPage, error) {
	var p models.ContentPage
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return p, errors.Wrap(notFound(err), "get page by slug")
	}
	return p, nil
}

func (r *Pages) Create(ctx context.Context, d PageDraft) (models.ContentPage, error) {
	now := r.now()
	p := models.ContentPage{
		Title:     &d.Title,
		Slug:      d.Slug,
		Content:   &d.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return p, errors.Wrap(err, "create page")
	}
	return p, nil
}

// Update overwrites title, slug and content and stamps updated_at.
func (r *Pages) Update(ctx context.Context, id int64, d PageDraft) error {
	res := r.db.WithContext(ctx).
		Model(&models.ContentPage{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":      d.Title,
			"slug":       d.Slug,
			"content":    d.Content,
			"updated_at": r.now(),
		})
	return errors.Wrap(checkUpdated(ctx, r.db, res, &models.ContentPage{}, id), "update page")
}

func (r *Pages) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.ContentPage{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete page")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(ErrNotFound, "delete page")
	}
	return nil
}
