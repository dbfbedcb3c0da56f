// Package dates extracts calendar dates from free-form text.
//
// The engine is a fixed-order cascade of sub-detectors, each owning one
// textual date convention (numeric formats, month-name formats, relative
// terms, weekday references). Detectors run over a shrinking unclaimed view
// of the normalized input: every match is claimed out of the buffer before
// the next detector runs, so earlier detectors always win overlapping
// grammars. The order is a designed total order; reordering silently
// changes output
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"entex/internal/core/detect"
	"entex/internal/core/lexicon"
	"entex/internal/core/normalize"
)

// Options configures a Detector. The zero value means UTC, embedded
// lexicon, wall clock
type Options struct {
	// Timezone is an IANA identifier; empty means UTC
	Timezone string

	// PastDateReferenced biases ambiguous relative terms toward the past.
	// The English grammars have no such ambiguity; the flag is carried for
	// locales whose relative-day words name both directions
	PastDateReferenced bool

	// BotMessage is the prior outbound utterance, consulted only for
	// two-digit-year century disambiguation
	BotMessage string

	// Lexicon overrides the embedded lookup tables
	Lexicon *lexicon.Pack

	// Clock supplies the reference instant; nil means time.Now
	Clock func() time.Time
}

// Detector is a configured date-extraction pipeline. Construction compiles
// the lexicon-derived grammars once; Detect and DetectBulk are safe for
// concurrent use as every call builds its own scan state
type Detector struct {
	entity string
	tag    string
	loc    *time.Location
	lex    *lexicon.Pack
	g      *grammar
	norm   *normalize.Normalizer
	clock  func() time.Time

	pastRef    bool
	botMessage string

	pastCentury    *regexp.Regexp
	presentCentury *regexp.Regexp
	futureCentury  *regexp.Regexp

	exactTier    []detect.Sub[Record]
	possibleTier []detect.Sub[Record]
}

// New builds a Detector for the given entity name. The name feeds only the
// placeholder tag written into the tagged buffer, never matching logic
func New(entity string, opts Options) (*Detector, error) {
	if entity == "" {
		return nil, fmt.Errorf("dates: empty entity name")
	}

	tz := opts.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("dates: timezone %q: %w", tz, err)
	}

	lex := opts.Lexicon
	if lex == nil {
		if lex, err = lexicon.Load(); err != nil {
			return nil, err
		}
	}
	g, err := newGrammar(lex)
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	d := &Detector{
		entity:     entity,
		tag:        "__" + entity + "__",
		loc:        loc,
		lex:        lex,
		g:          g,
		norm:       normalize.New(),
		clock:      clock,
		pastRef:    opts.PastDateReferenced,
		botMessage: opts.BotMessage,
	}
	for _, c := range []struct {
		dst **regexp.Regexp
		key string
	}{
		{&d.pastCentury, "past_century_context"},
		{&d.presentCentury, "present_century_context"},
		{&d.futureCentury, "future_century_context"},
	} {
		if len(lex.Terms(c.key)) == 0 {
			continue
		}
		re, err := regexp.Compile(`(?:` + lex.Alt(c.key) + `)`)
		if err != nil {
			return nil, fmt.Errorf("dates: compile %q: %w", c.key, err)
		}
		*c.dst = re
	}

	d.exactTier = []detect.Sub[Record]{
		d.dayMonthYearNumeric,
		d.monthDayYearNumeric,
		d.yearMonthDayNumeric,
		d.dayMonthNameYear,
		d.dayOrdinalMonthYear,
		d.yearMonthNameDay,
		d.yearDayMonthName,
		d.monthDayOrdinalYear,
		d.dayMonthName,
		d.monthDayName,
		d.dayAfterTomorrow,
		d.daysAfter,
		d.daysLater,
		d.dayBeforeYesterday,
		d.today,
		d.tomorrow,
		d.yesterday,
		d.nextWeekday,
		d.thisWeekday,
		d.dayOfThisMonth,
		d.dayOfNextMonth,
	}
	d.possibleTier = []detect.Sub[Record]{
		d.bareOrdinalDay,
	}
	return d, nil
}

// Entity returns the entity name given at construction
func (d *Detector) Entity() string { return d.entity }

// SetBotMessage replaces the prior-bot-message hint used for century
// disambiguation. Not safe to call concurrently with Detect
func (d *Detector) SetBotMessage(msg string) { d.botMessage = msg }

type scan = detect.Scan[Record]

// Detect runs the pipeline for one request. A non-empty structured value is
// authoritative and replaces the message as pipeline input; the fallback
// value is scanned only when the primary input yields nothing. At least one
// of the three inputs must be non-empty
func (d *Detector) Detect(message, structured, fallback string) ([]Detection, error) {
	if message == "" && structured == "" && fallback == "" {
		return nil, fmt.Errorf("dates: no input: message, structured and fallback values all empty")
	}
	now := d.clock().In(d.loc)

	input, source := message, detect.SourceMessage
	if structured != "" {
		input, source = structured, detect.SourceStructured
	}

	out := d.detectOne(input, source, now)
	if len(out) == 0 && fallback != "" {
		out = d.detectOne(fallback, detect.SourceFallback, now)
	}
	return out, nil
}

// DetectBulk applies the pipeline independently to each message. The
// reference instant is captured once for the whole batch so relative terms
// resolve consistently across messages
func (d *Detector) DetectBulk(messages []string) ([][]Detection, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("dates: no input: empty message batch")
	}
	now := d.clock().In(d.loc)

	out := make([][]Detection, len(messages))
	for i, msg := range messages {
		out[i] = d.detectOne(msg, detect.SourceMessage, now)
	}
	return out, nil
}

func (d *Detector) detectOne(text string, source detect.Source, now time.Time) []Detection {
	if text == "" {
		return nil
	}
	s := detect.NewScan[Record](d.norm.Normalize(text), now)
	s.Run(d.tag, d.exactTier, d.possibleTier)
	return s.Detections(source)
}

// NormalizeYear expands a two-digit year to four digits. The bot-message
// hint picks the century: a birth/age context resolves to the previous
// century, a present or future context to the current or next one. Without
// a hint (or a match) the current century wins. Four-digit years pass
// through untouched.
//
// This is deliberately a different rule from the roll-forward applied when
// a numeric day/month pattern omits its year entirely; the two stay
// separate
func (d *Detector) NormalizeYear(raw string, now time.Time) string {
	if len(raw) != 2 {
		return raw
	}
	century := now.Year() / 100
	if d.botMessage != "" {
		switch {
		case d.pastCentury != nil && d.pastCentury.MatchString(d.botMessage):
			return strconv.Itoa(century-1) + raw
		case d.presentCentury != nil && d.presentCentury.MatchString(d.botMessage):
			return strconv.Itoa(century) + raw
		case d.futureCentury != nil && d.futureCentury.MatchString(d.botMessage):
			return strconv.Itoa(century+1) + raw
		}
	}
	return strconv.Itoa(century) + raw
}

// atoi is for grammar-guaranteed digit groups
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// trimSpan strips the boundary whitespace a loose separator class can pull
// into a match group. Claiming uses the trimmed form so surrounding text is
// never consumed
func trimSpan(s string) string { return strings.TrimSpace(s) }
