package repository

import (
	"errors"

	"github.com/seyalworks/tailorshop-api/pkg/apperror"
	"gorm.io/gorm"
)

// translateDuplicate maps a unique-index violation to a Conflict error.
// Generated ids and unique phone numbers can still collide on insert even
// after the service-level checks; the caller sees a 409, not a 500.
func translateDuplicate(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError(message)
	}
	return err
}
