package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hts_portal/internal/models"
)

// UserPatch is a partial update of app_users. Password is nil when the field
// must be left untouched; CompanyID is nil to clear the company.
type UserPatch struct {
	Username  string
	Role      models.Role
	CompanyID *int64
	Password  *string
}

func (p UserPatch) columns() map[string]any {
	cols := map[string]any{
		"username": p.Username,
		"role":     p.Role,
	}
	if p.CompanyID != nil {
		cols["empresa_id"] = *p.CompanyID
	} else {
		cols["empresa_id"] = nil
	}
	if p.Password != nil {
		cols["password"] = *p.Password
	}
	return cols
}

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// List returns every user joined with its company, ordered by id.
func (r *Users) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := r.db.WithContext(ctx).
		Joins("Company").
		Order("app_users.id ASC").
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return out, nil
}

func (r *Users) Get(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		Joins("Company").
		Where("app_users.id = ?", id).
		First(&u).Error
	if err != nil {
		return u, errors.Wrap(notFound(err), "get user")
	}
	return u, nil
}

// FindByUsername returns at most two users with this exact username, joined
// with their company, so callers can tell a unique match from an ambiguous one.
func (r *Users) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	var out []models.User
	err := r.db.WithContext(ctx).
		Joins("Company").
		Where("app_users.username = ?", username).
		Order("app_users.id ASC").
		Limit(2).
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return out, nil
}

func (r *Users) Create(ctx context.Context, u *models.User) error {
	return errors.Wrap(r.db.WithContext(ctx).Omit("Company").Create(u).Error, "create user")
}

func (r *Users) Update(ctx context.Context, id int64, patch UserPatch) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(patch.columns())
	return errors.Wrap(checkUpdated(ctx, r.db, res, &models.User{}, id), "update user")
}

func (r *Users) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete user")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(ErrNotFound, "delete user")
	}
	return nil
}
