// Package store is the portal's query layer: one repository per table, each
// a thin select/insert/update/delete wrapper over GORM.
package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup or delete-by-key matches no row.
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// checkUpdated turns an update that touched no row into ErrNotFound. MySQL
// reports zero affected rows when the values are unchanged, so the row's
// existence is checked before giving up.
func checkUpdated(ctx context.Context, db *gorm.DB, res *gorm.DB, model any, id int64) error {
	if res.Error != nil || res.RowsAffected > 0 {
		return res.Error
	}
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
