package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/banking/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors so callers above
// the infrastructure layer can match on them with errors.Is.
// The gorm error stays in the chain for logging.
//
// Foreign key violations are only recognised when the connection was opened
// with gorm.Config{TranslateError: true}.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrInvalidReference):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
	}

	return err
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//	    return db.WithContext(ctx).First(&a, "id = ?", id).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
