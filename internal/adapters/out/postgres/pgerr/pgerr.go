// Package pgerr maps storage errors onto the errs taxonomy.
// The gorm connection must be opened with TranslateError enabled.
package pgerr

import (
	"errors"

	"siparisqr/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate turns a unique violation into ObjectConflictError and a missing row
// into ObjectNotFoundError. Other errors are returned unchanged.
func Translate(err error, paramName string, value any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectConflictErrorWithCause(paramName, value, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(paramName, value, err)
	}
	return err
}
