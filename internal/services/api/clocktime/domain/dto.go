// Package domain holds DTOs and ports for the time entity endpoints
package domain

import (
	"context"

	"entex/internal/core/temporal/clocktime"
	"entex/internal/services/api/entitykit"
)

// DetectInput is the request shape for time-of-day extraction
type DetectInput struct {
	entitykit.BaseInput
}

// ServicePort runs time-of-day extraction
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) ([]clocktime.Detection, error)
	DetectBulk(ctx context.Context, in DetectInput) ([][]clocktime.Detection, error)
}
