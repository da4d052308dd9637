package repository

import (
	"errors"
	"fmt"

	"github.com/autoconnect/backend/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors so handlers
// never see driver types. Any other failure is wrapped in ErrPersistence.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, domain.ErrPersistence)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrPersistence):
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}

// WrapError runs a GORM operation and maps its error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(acc).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// RequireAffected turns a write that touched no rows into ErrNotFound.
func RequireAffected(tx *gorm.DB) error {
	if tx.Error != nil {
		return MapGormErrorToDomain(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
