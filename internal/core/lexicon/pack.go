// Package lexicon loads the locale lookup tables the temporal detectors
// query: month and weekday name variants plus relative-term vocabularies.
// Tables ship embedded in the binary; callers may overlay extra variants
// per language (e.g. rows loaded from the lexicon store)
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed lexicon.json
var embedded []byte

type rawEntry struct {
	Index int      `json:"index"`
	Names []string `json:"names"`
}

type rawPack struct {
	Version   int                 `json:"version"`
	Language  string              `json:"language"`
	WeekStart string              `json:"week_start"`
	Months    []rawEntry          `json:"months"`
	Weekdays  []rawEntry          `json:"weekdays"`
	Terms     map[string][]string `json:"terms"`
}

// Pack is a compiled lookup table set. Lookups are total functions over the
// token domain: a miss is the normal "not a month/weekday name" signal, not
// an error
type Pack struct {
	Version  int
	Language string

	monthIndex   map[string]int // variant -> 1..12
	weekdayIndex map[string]int // variant -> 1..7, week starts Sunday
	terms        map[string][]string
}

// Load compiles the embedded lexicon
func Load() (*Pack, error) {
	return fromJSON(embedded)
}

// MustLoad is Load for wiring paths where the embedded pack is trusted
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

func fromJSON(data []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(data, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported lexicon.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:      rp.Version,
		Language:     rp.Language,
		monthIndex:   make(map[string]int, 64),
		weekdayIndex: make(map[string]int, 32),
		terms:        make(map[string][]string, len(rp.Terms)),
	}
	for _, m := range rp.Months {
		if m.Index < 1 || m.Index > 12 {
			return nil, fmt.Errorf("lexicon: month index %d out of range", m.Index)
		}
		for _, nm := range m.Names {
			if nm = strings.ToLower(strings.TrimSpace(nm)); nm != "" {
				p.monthIndex[nm] = m.Index
			}
		}
	}
	for _, w := range rp.Weekdays {
		if w.Index < 1 || w.Index > 7 {
			return nil, fmt.Errorf("lexicon: weekday index %d out of range", w.Index)
		}
		for _, nm := range w.Names {
			if nm = strings.ToLower(strings.TrimSpace(nm)); nm != "" {
				p.weekdayIndex[nm] = w.Index
			}
		}
	}
	for key, alts := range rp.Terms {
		acc := make([]string, 0, len(alts))
		for _, a := range alts {
			if a = strings.TrimSpace(a); a != "" {
				acc = append(acc, a)
			}
		}
		p.terms[key] = acc
	}
	return p, nil
}

// MonthIndex resolves a token to its canonical month 1..12
func (p *Pack) MonthIndex(token string) (int, bool) {
	i, ok := p.monthIndex[strings.ToLower(strings.TrimSpace(token))]
	return i, ok
}

// WeekdayIndex resolves a token to its canonical weekday 1..7.
// The week starts on Sunday (index 1)
func (p *Pack) WeekdayIndex(token string) (int, bool) {
	i, ok := p.weekdayIndex[strings.ToLower(strings.TrimSpace(token))]
	return i, ok
}

// Terms returns the raw alternates registered under key. Nil for unknown
// or empty vocabularies
func (p *Pack) Terms(key string) []string {
	alts := p.terms[key]
	if len(alts) == 0 {
		return nil
	}
	out := make([]string, len(alts))
	copy(out, alts)
	return out
}

// Alt joins the regex alternates registered under key with "|" for direct
// embedding into a detector grammar. Unknown keys yield a group that can
// never match, so a missing vocabulary disables its detector instead of
// corrupting the pattern
func (p *Pack) Alt(key string) string {
	alts := p.terms[key]
	if len(alts) == 0 {
		return `\x00nothing` // unmatchable inside normalized text
	}
	return strings.Join(alts, "|")
}

// AddMonthVariant overlays one extra month variant (from the lexicon store)
func (p *Pack) AddMonthVariant(name string, index int) error {
	if index < 1 || index > 12 {
		return fmt.Errorf("lexicon: month index %d out of range", index)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("lexicon: empty month variant")
	}
	p.monthIndex[name] = index
	return nil
}

// AddTermVariant overlays one extra alternate under a term vocabulary key
func (p *Pack) AddTermVariant(key, alt string) error {
	key = strings.TrimSpace(key)
	alt = strings.TrimSpace(alt)
	if key == "" || alt == "" {
		return fmt.Errorf("lexicon: empty term variant")
	}
	p.terms[key] = append(p.terms[key], alt)
	return nil
}

// AddWeekdayVariant overlays one extra weekday variant
func (p *Pack) AddWeekdayVariant(name string, index int) error {
	if index < 1 || index > 7 {
		return fmt.Errorf("lexicon: weekday index %d out of range", index)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("lexicon: empty weekday variant")
	}
	p.weekdayIndex[name] = index
	return nil
}
