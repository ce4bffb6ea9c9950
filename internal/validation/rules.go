// Package validation holds the jellydator/validation rules shared by the request DTOs.
package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/serials/internal/errors"
)

// safeNameRegex matches names usable as a single object key segment.
var safeNameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// WrapValidationError turns a validation failure into an ErrInvalidInput so the
// handlers map it to 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// SafeName validates that a string only holds [A-Za-z0-9._-] and is not "." or "..".
// Length is left to validation.Length.
var SafeName = validation.NewStringRuleWithError(
	func(s string) bool {
		return safeNameRegex.MatchString(s) && s != "." && s != ".."
	},
	validation.NewError("validation_safe_name", "must contain only letters, digits, '.', '_' or '-'"),
)
