// Package domain holds DTOs and ports for the number entity endpoints
package domain

import (
	"context"

	"entex/internal/core/numeral"
	"entex/internal/services/api/entitykit"
)

// DetectInput is the request shape for number extraction
type DetectInput struct {
	entitykit.BaseInput

	MinNumberDigits int    `json:"min_number_digits,omitempty" validate:"omitempty,min=1,max=18"`
	MaxNumberDigits int    `json:"max_number_digits,omitempty" validate:"omitempty,min=1,max=18"`
	UnitType        string `json:"unit_type,omitempty" validate:"omitempty,oneof=currency people weight"`
}

// Options maps the request knobs to detector options
func (in DetectInput) Options() numeral.Options {
	return numeral.Options{
		MinDigits: in.MinNumberDigits,
		MaxDigits: in.MaxNumberDigits,
		UnitType:  in.UnitType,
	}
}

// ServicePort runs number extraction
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) ([]numeral.Detection, error)
	DetectBulk(ctx context.Context, in DetectInput) ([][]numeral.Detection, error)
}
