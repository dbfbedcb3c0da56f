// Package service provides the date entity service implementation
package service

import (
	"context"

	"entex/internal/core/temporal/dates"
	perr "entex/internal/platform/errors"
	"entex/internal/services/api/date/domain"
	lexdom "entex/internal/services/lexicon/domain"
)

// Service implements domain.ServicePort
type Service struct {
	packs lexdom.PackPort
}

// New constructs the date service. packs may be nil to run on the
// embedded lexicon only
func New(packs lexdom.PackPort) *Service {
	return &Service{packs: packs}
}

// Detect implements domain.ServicePort
func (s *Service) Detect(ctx context.Context, in domain.DetectInput) ([]dates.Detection, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	d, err := s.detector(ctx, in)
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
func (s *Service) DetectBulk(ctx context.Context, in domain.DetectInput) ([][]dates.Detection, error) {
	if len(in.Message.Many) == 0 {
		return nil, perr.InvalidArgf("bulk detection requires a non-empty message list")
	}
	d, err := s.detector(ctx, in)
	if err != nil {
		return nil, err
	}
	out, err := d.DetectBulk(in.Message.Many)
	if err != nil {
		return nil, perr.InvalidArgf("%v", err)
	}
	return out, nil
}

// detector builds a request-scoped detector so timezone and bot message
// never leak between requests
func (s *Service) detector(ctx context.Context, in domain.DetectInput) (*dates.Detector, error) {
	opts := dates.Options{
		Timezone:           in.Timezone,
		PastDateReferenced: in.PastDateReferenced,
		BotMessage:         in.BotMessage,
	}
	if s.packs != nil {
		pack, err := s.packs.Pack(ctx, in.SourceLanguage)
		if err != nil {
			return nil, err
		}
		opts.Lexicon = pack
	}
	d, err := dates.New(in.Entity("date"), opts)
	if err != nil {
		return nil, perr.InvalidArgf("%v", err)
	}
	return d, nil
}
