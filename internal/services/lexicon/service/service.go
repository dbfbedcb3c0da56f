// Package service compiles lookup packs for the detectors, overlaying
// per-language variants from Postgres onto the embedded tables
package service

import (
	"context"
	"sync"

	"entex/internal/core/lexicon"
	"entex/internal/modkit/repokit"
	perr "entex/internal/platform/errors"
	"entex/internal/services/lexicon/domain"
	"entex/internal/services/lexicon/repo"
)

// Service implements domain.PackPort. A nil TxRunner serves the embedded
// pack only, which is how the CLI and tests run
type Service struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Storage]

	mu    sync.RWMutex
	packs map[string]*lexicon.Pack
}

// New constructs a lexicon service. tx may be nil when no store is wired
func New(tx repokit.TxRunner) *Service {
	return &Service{
		tx:     tx,
		binder: repo.NewPG(),
		packs:  make(map[string]*lexicon.Pack),
	}
}

// Pack implements domain.PackPort. Compiled packs are cached per language
// until Invalidate drops them
func (s *Service) Pack(ctx context.Context, language string) (*lexicon.Pack, error) {
	if language == "" {
		language = "en"
	}

	s.mu.RLock()
	p, ok := s.packs[language]
	s.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := lexicon.Load()
	if err != nil {
		return nil, err
	}
	if s.tx != nil {
		variants, err := s.binder.Bind(s.tx).ListVariants(ctx, language)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "lexicon: load variants")
		}
		if err := apply(p, variants); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.packs[language] = p
	s.mu.Unlock()
	return p, nil
}

// Invalidate drops the cached pack for a language so the next Pack call
// recompiles it. Empty language drops everything
func (s *Service) Invalidate(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if language == "" {
		s.packs = make(map[string]*lexicon.Pack)
		return
	}
	delete(s.packs, language)
}

func apply(p *lexicon.Pack, variants []domain.Variant) error {
	for _, v := range variants {
		var err error
		switch v.Kind {
		case "month":
			err = p.AddMonthVariant(v.Token, v.Ordinal)
		case "weekday":
			err = p.AddWeekdayVariant(v.Token, v.Ordinal)
		case "term":
			err = p.AddTermVariant(v.Key, v.Token)
		default:
			err = perr.InvalidArgf("lexicon: unknown variant kind %q", v.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
