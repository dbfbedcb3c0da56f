// Package service provides the phone entity service implementation
package service

import (
	"context"

	"entex/internal/core/langhint"
	"entex/internal/core/phone"
	perr "entex/internal/platform/errors"
	"entex/internal/services/api/phone/domain"
)

// Service implements domain.ServicePort
type Service struct{}

// New constructs the phone service
func New() *Service { return &Service{} }

// Detect implements domain.ServicePort
func (s *Service) Detect(_ context.Context, in domain.DetectInput) ([]phone.Detection, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	d, err := s.detector(in, in.Message.One)
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
func (s *Service) DetectBulk(_ context.Context, in domain.DetectInput) ([][]phone.Detection, error) {
	if len(in.Message.Many) == 0 {
		return nil, perr.InvalidArgf("bulk detection requires a non-empty message list")
	}
	d, err := s.detector(in, in.Message.Many[0])
	if err != nil {
		return nil, err
	}
	out, err := d.DetectBulk(in.Message.Many)
	if err != nil {
		return nil, perr.InvalidArgf("%v", err)
	}
	return out, nil
}

// detector resolves the record language from the request, falling back to a
// script sniff of the message when no source language was sent
func (s *Service) detector(in domain.DetectInput, sample string) (*phone.Detector, error) {
	lang := in.SourceLanguage
	if lang == "" && sample != "" {
		_, lang = langhint.DetectScriptAndLang(sample)
	}
	d, err := phone.New(in.Entity("phone_number"), lang)
	if err != nil {
		return nil, perr.InvalidArgf("%v", err)
	}
	return d, nil
}
