// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"math"

	validation "github.com/jellydator/validation"

	"github.com/allisson/serials/internal/serials/domain"
	customValidation "github.com/allisson/serials/internal/validation"
)

// countRules bounds a requested count to the uint32 range.
var countRules = []validation.Rule{
	validation.NotNil,
	validation.Min(int64(0)),
	validation.Max(int64(math.MaxUint32)),
}

// GenerateSerialsRequest contains the parameters for one-shot serial generation.
// Count is a pointer so an explicit zero can be told apart from a missing field.
type GenerateSerialsRequest struct {
	Count *int64 `json:"count"`
}

// Validate checks if the generate serials request is valid.
func (r *GenerateSerialsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Count, countRules...),
	)
}

// CreateSerialGroupRequest contains the parameters for creating a serial group.
type CreateSerialGroupRequest struct {
	Name  string `json:"name"`
	Count *int64 `json:"count"`
}

// Validate checks if the create serial group request is valid.
func (r *CreateSerialGroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, domain.MaxGroupNameLength),
			customValidation.SafeName,
		),
		validation.Field(&r.Count, countRules...),
	)
}
