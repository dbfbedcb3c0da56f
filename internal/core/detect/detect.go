// Package detect carries the pipeline machinery shared by the entity
// detectors: the per-call scan state with its unclaimed and tagged buffers,
// the claim-and-consume driver, and the wire shape of a detection.
//
// A detector package supplies an ordered list of sub-detectors over a
// record type T. The driver runs them in order and claims every matched
// span out of the unclaimed buffer before the next sub-detector runs, so
// earlier entries always win overlapping grammars
package detect

import (
	"strings"
	"time"
)

// Source says which request input produced a detection
type Source string

const (
	// SourceMessage means the free-form message produced the detection
	SourceMessage Source = "message"
	// SourceStructured means an authoritative structured value produced it
	SourceStructured Source = "structured_value"
	// SourceFallback means the caller-supplied fallback produced it
	SourceFallback Source = "fallback_value"
)

// EntityValue nests the record under "value" for wire compatibility
type EntityValue[T any] struct {
	Value T `json:"value"`
}

// Detection is one output element: a record paired with the exact
// substring that produced it
type Detection[T any] struct {
	Source       Source         `json:"detection"`
	OriginalText string         `json:"original_text"`
	EntityValue  EntityValue[T] `json:"entity_value"`
}

// Sub appends records and their originating substrings to the scan. The
// driver claims the new spans before running the next sub-detector
type Sub[T any] func(s *Scan[T])

// Scan is the per-call mutable state. Text is the normalized input,
// Unclaimed shrinks as spans are claimed, Tagged mirrors Unclaimed but
// keeps a placeholder token where text was claimed. Sub-detectors interact
// only through Unclaimed and Emit; order of the sub-detector list is the
// sole precedence mechanism
type Scan[T any] struct {
	Text      string
	Unclaimed string
	Tagged    string
	Now       time.Time

	records []T
	spans   []string
}

// NewScan starts a scan over already-normalized text
func NewScan[T any](text string, now time.Time) *Scan[T] {
	return &Scan[T]{Text: text, Unclaimed: text, Tagged: text, Now: now}
}

// Emit records one detection candidate and its span
func (s *Scan[T]) Emit(rec T, span string) {
	s.records = append(s.records, rec)
	s.spans = append(s.spans, span)
}

// Len returns the number of emitted records
func (s *Scan[T]) Len() int { return len(s.records) }

// Run drives the tiers in order, claiming after every sub-detector. Claimed
// spans are blanked from Unclaimed and replaced with tag in Tagged
func (s *Scan[T]) Run(tag string, tiers ...[]Sub[T]) {
	for _, tier := range tiers {
		for _, sub := range tier {
			mark := len(s.spans)
			sub(s)
			for _, span := range s.spans[mark:] {
				s.Unclaimed = strings.ReplaceAll(s.Unclaimed, span, "")
				s.Tagged = strings.ReplaceAll(s.Tagged, span, tag)
			}
		}
	}
}

// Detections assembles the output list, pairing each record with its
// trimmed originating substring
func (s *Scan[T]) Detections(source Source) []Detection[T] {
	out := make([]Detection[T], 0, len(s.records))
	for i, r := range s.records {
		out = append(out, Detection[T]{
			Source:       source,
			OriginalText: strings.TrimSpace(s.spans[i]),
			EntityValue:  EntityValue[T]{Value: r},
		})
	}
	return out
}
