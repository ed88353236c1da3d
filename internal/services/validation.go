package services

import (
	"context"
	"errors"
	"strings"

	"contacts_backend/internal/validator"
	"contacts_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// validationFailure turns a validator error into a 400 carrying every failed field.
func validationFailure(err error) error {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.NewValidationError("Validation error: "+vErr.Summary(), vErr.Fields())
	}
	return apperrors.InternalError(err)
}

// firstValidationFailure reports only the first failed field, in declaration order.
func firstValidationFailure(err error) error {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		first := vErr.First()
		return apperrors.NewValidationError("Validation error: "+first.Message, map[string]string{first.Field: first.Message})
	}
	return apperrors.InternalError(err)
}

// missingFieldsFailure lists required fields that were not sent, or falls back
// to the aggregated message when every required field is present.
func missingFieldsFailure(err error) error {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		if missing := vErr.Missing(); len(missing) > 0 {
			return apperrors.NewValidationError(
				"The following mandatory fields are missing: "+strings.Join(missing, ", "),
				map[string]interface{}{"missing": missing},
			)
		}
	}
	return validationFailure(err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ctxOf returns the request context carried by db.
func ctxOf(db *gorm.DB) context.Context {
	if db == nil || db.Statement == nil || db.Statement.Context == nil {
		return context.Background()
	}
	return db.Statement.Context
}
