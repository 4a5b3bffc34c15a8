package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hts_portal/internal/models"
)

type Companies struct {
	db *gorm.DB
}

func NewCompanies(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

// List returns every company ordered by id.
func (r *Companies) List(ctx context.Context) ([]models.Company, error) {
	var out []models.Company
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list companies")
	}
	return out, nil
}

// ListByName returns every company ordered by name, for pickers.
func (r *Companies) ListByName(ctx context.Context) ([]models.Company, error) {
	var out []models.Company
	if err := r.db.WithContext(ctx).Order("nombre ASC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list companies by name")
	}
	return out, nil
}

func (r *Companies) Get(ctx context.Context, id int64) (models.Company, error) {
	var c models.Company
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return c, errors.Wrap(notFound(err), "get company")
	}
	return c, nil
}

// FindByName returns the first company with exactly this name.
func (r *Companies) FindByName(ctx context.Context, nombre string) (models.Company, error) {
	var c models.Company
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).Order("id ASC").First(&c).Error; err != nil {
		return c, errors.Wrap(notFound(err), "find company")
	}
	return c, nil
}

func (r *Companies) Create(ctx context.Context, nombre string) (models.Company, error) {
	c := models.Company{Nombre: nombre}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return c, errors.Wrap(err, "create company")
	}
	return c, nil
}

func (r *Companies) Update(ctx context.Context, id int64, nombre string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("id = ?", id).
		Update("nombre", nombre)
	return errors.Wrap(checkUpdated(ctx, r.db, res, &models.Company{}, id), "update company")
}

// Delete removes the company. It fails with the storage layer's foreign key
// error while any user still references it.
func (r *Companies) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Company{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete company")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(ErrNotFound, "delete company")
	}
	return nil
}
