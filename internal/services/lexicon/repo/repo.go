// Package repo provides the lexicon overlay repository implementation
package repo

import (
	"context"

	"entex/internal/modkit/repokit"
	"entex/internal/services/lexicon/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the lexicon overlay repository
type Storage interface {
	ListVariants(ctx context.Context, language string) ([]domain.Variant, error)
}

// ListVariants implements Storage
func (s *pg) ListVariants(ctx context.Context, language string) ([]domain.Variant, error) {
	const sql = `
		SELECT kind, key, token, ordinal
		FROM lexicon_variants
		WHERE language = $1
		ORDER BY kind, key, token`

	rows, err := s.q.Query(ctx, sql, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Variant
	for rows.Next() {
		var v domain.Variant
		if err := rows.Scan(&v.Kind, &v.Key, &v.Token, &v.Ordinal); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
