// Package domain holds the lexicon service contracts
package domain

import (
	"context"

	"entex/internal/core/lexicon"
)

// Variant is one overlay row for a language's lookup tables.
// Kind selects the table: "month" and "weekday" use Ordinal, "term"
// appends Token under Key
type Variant struct {
	Kind    string
	Key     string
	Token   string
	Ordinal int
}

// PackPort resolves the compiled lookup tables for a language
type PackPort interface {
	Pack(ctx context.Context, language string) (*lexicon.Pack, error)
}
