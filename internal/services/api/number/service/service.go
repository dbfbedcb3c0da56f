// Package service provides the number entity service implementation
package service

import (
	"context"

	"entex/internal/core/numeral"
	perr "entex/internal/platform/errors"
	"entex/internal/services/api/number/domain"
)

// Service implements domain.ServicePort
type Service struct{}

// New constructs the number service
func New() *Service { return &Service{} }

// Detect implements domain.ServicePort
func (s *Service) Detect(_ context.Context, in domain.DetectInput) ([]numeral.Detection, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	d, err := s.detector(in)
	if err != nil {
		return nil, err
	}
	out, err := d.Detect(in.Message.One, in.StructuredValue, in.FallbackValue)
	if err != nil {
		return nil, perr.InvalidArgf("%v", err)
	}
	return out, nil
}

// DetectBulk implements domain.ServicePort
func (s *Service) DetectBulk(_ context.Context, in domain.DetectInput) ([][]numeral.Detection, error) {
	if len(in.Message.Many) == 0 {
		return nil, perr.InvalidArgf("bulk detection requires a non-empty message list")
	}
	d, err := s.detector(in)
	if err != nil {
		return nil, err
	}
	out, err := d.DetectBulk(in.Message.Many)
	if err != nil {
		return nil, perr.InvalidArgf("%v", err)
	}
	return out, nil
}

func (s *Service) detector(in domain.DetectInput) (*numeral.Detector, error) {
	d, err := numeral.New(in.Entity("number_of_units"), in.Options())
	if err != nil {
		return nil, perr.InvalidArgf("%v", err)
	}
	return d, nil
}
