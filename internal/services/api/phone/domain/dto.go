// Package domain holds DTOs and ports for the phone entity endpoints
package domain

import (
	"context"

	"entex/internal/core/phone"
	"entex/internal/services/api/entitykit"
)

// DetectInput is the request shape for phone number extraction
type DetectInput struct {
	entitykit.BaseInput
}

// ServicePort runs phone number extraction
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) ([]phone.Detection, error)
	DetectBulk(ctx context.Context, in DetectInput) ([][]phone.Detection, error)
}
