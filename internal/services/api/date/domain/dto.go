// Package domain holds DTOs and ports for the date entity endpoints
package domain

import (
	"context"

	"entex/internal/core/temporal/dates"
	"entex/internal/services/api/entitykit"
)

// DetectInput is the request shape for date extraction
type DetectInput struct {
	entitykit.BaseInput

	// PastDateReferenced biases ambiguous relative words toward the past
	// in locales that need it
	PastDateReferenced bool `json:"past_date_referenced,omitempty"`
}

// ServicePort runs date extraction
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) ([]dates.Detection, error)
	DetectBulk(ctx context.Context, in DetectInput) ([][]dates.Detection, error)
}
