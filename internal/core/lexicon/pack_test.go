package lexicon

import (
	"regexp"
	"testing"
)

func TestLoad_EmbeddedPack(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Version != 1 {
		t.Fatalf("Version = %d, want 1", p.Version)
	}
	if p.Language != "en" {
		t.Fatalf("Language = %q, want %q", p.Language, "en")
	}
}

func TestMonthIndex(t *testing.T) {
	p := MustLoad()

	tests := []struct {
		token string
		idx   int
		ok    bool
	}{
		{"january", 1, true},
		{"jan", 1, true},
		{"march", 3, true},
		{" March ", 3, true}, // trimmed and folded before lookup
		{"DEC", 12, true},
		{"smarch", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		idx, ok := p.MonthIndex(tc.token)
		if idx != tc.idx || ok != tc.ok {
			t.Fatalf("MonthIndex(%q) = (%d, %v), want (%d, %v)", tc.token, idx, ok, tc.idx, tc.ok)
		}
	}
}

func TestWeekdayIndex_WeekStartsSunday(t *testing.T) {
	p := MustLoad()

	tests := []struct {
		token string
		idx   int
		ok    bool
	}{
		{"sunday", 1, true},
		{"sun", 1, true},
		{"Monday", 2, true},
		{"saturday", 7, true},
		{"someday", 0, false},
	}
	for _, tc := range tests {
		idx, ok := p.WeekdayIndex(tc.token)
		if idx != tc.idx || ok != tc.ok {
			t.Fatalf("WeekdayIndex(%q) = (%d, %v), want (%d, %v)", tc.token, idx, ok, tc.idx, tc.ok)
		}
	}
}

func TestTerms_ReturnsCopy(t *testing.T) {
	p := MustLoad()

	alts := p.Terms("today")
	if len(alts) == 0 {
		t.Fatalf("Terms(today) empty, want at least one alternate")
	}
	alts[0] = "mutated"
	if again := p.Terms("today"); again[0] == "mutated" {
		t.Fatalf("Terms returned shared backing storage")
	}

	if got := p.Terms("no_such_vocabulary"); got != nil {
		t.Fatalf("Terms(unknown) = %v, want nil", got)
	}
}

func TestAlt_KnownKeyBuildsAlternation(t *testing.T) {
	p := MustLoad()

	re, err := regexp.Compile(`\s(` + p.Alt("today") + `)\s`)
	if err != nil {
		t.Fatalf("Alt(today) produced an uncompilable pattern: %v", err)
	}
	if !re.MatchString(" remind me today ok ") {
		t.Fatalf("Alt(today) alternation did not match %q", "today")
	}
}

// A missing vocabulary must disable its grammar, not corrupt it: the
// returned group compiles and can never match normalized text.
func TestAlt_UnknownKeyNeverMatches(t *testing.T) {
	p := MustLoad()

	re, err := regexp.Compile(`(` + p.Alt("no_such_vocabulary") + `)`)
	if err != nil {
		t.Fatalf("Alt(unknown) produced an uncompilable pattern: %v", err)
	}
	for _, msg := range []string{
		" tomorrow at 5 ",
		" 21 march 2024 ",
		" nothing here ",
		" ",
	} {
		if re.MatchString(msg) {
			t.Fatalf("Alt(unknown) matched %q", msg)
		}
	}
}

func TestOverlayVariants(t *testing.T) {
	p := MustLoad()

	if err := p.AddMonthVariant("Maerz", 3); err != nil {
		t.Fatalf("AddMonthVariant: %v", err)
	}
	if idx, ok := p.MonthIndex("maerz"); !ok || idx != 3 {
		t.Fatalf("MonthIndex(maerz) = (%d, %v), want (3, true)", idx, ok)
	}

	if err := p.AddWeekdayVariant("Sonntag", 1); err != nil {
		t.Fatalf("AddWeekdayVariant: %v", err)
	}
	if idx, ok := p.WeekdayIndex("sonntag"); !ok || idx != 1 {
		t.Fatalf("WeekdayIndex(sonntag) = (%d, %v), want (1, true)", idx, ok)
	}

	if err := p.AddTermVariant("today", "rn"); err != nil {
		t.Fatalf("AddTermVariant: %v", err)
	}
	found := false
	for _, a := range p.Terms("today") {
		if a == "rn" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Terms(today) missing overlaid alternate %q", "rn")
	}
}

func TestOverlayVariants_Rejections(t *testing.T) {
	p := MustLoad()

	if err := p.AddMonthVariant("maerz", 13); err == nil {
		t.Fatalf("AddMonthVariant accepted out-of-range index 13")
	}
	if err := p.AddMonthVariant("  ", 3); err == nil {
		t.Fatalf("AddMonthVariant accepted an empty name")
	}
	if err := p.AddWeekdayVariant("sonntag", 0); err == nil {
		t.Fatalf("AddWeekdayVariant accepted out-of-range index 0")
	}
	if err := p.AddWeekdayVariant("", 1); err == nil {
		t.Fatalf("AddWeekdayVariant accepted an empty name")
	}
	if err := p.AddTermVariant("", "rn"); err == nil {
		t.Fatalf("AddTermVariant accepted an empty key")
	}
	if err := p.AddTermVariant("today", " "); err == nil {
		t.Fatalf("AddTermVariant accepted an empty alternate")
	}
}

func TestFromJSON_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"wrong version", `{"version":2,"language":"en"}`},
		{"month index out of range", `{"version":1,"months":[{"index":0,"names":["nul"]}]}`},
		{"weekday index out of range", `{"version":1,"weekdays":[{"index":8,"names":["octday"]}]}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := fromJSON([]byte(tc.data)); err == nil {
				t.Fatalf("fromJSON accepted %s", tc.name)
			}
		})
	}
}
