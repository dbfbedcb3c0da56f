// Package numeral extracts cardinal numbers and numeric ranges from free
// text. Numbers are recognized as digit runs bounded by a configurable digit
// count, as English cardinal phrases ("twenty five"), and with an optional
// adjoining unit ("rs 200", "for 3 people"). Ranges cover the "200-300",
// "200 to 300" and "between 200 and 300" shapes.
//
// Detection is claim-and-consume: each recognizer runs against the text left
// unclaimed by the ones before it, so a span is reported exactly once
package numeral

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"entex/internal/core/detect"
	"entex/internal/core/normalize"
)

const (
	defaultMinDigits = 1
	defaultMaxDigits = 6
)

// Record is the resolved value of one detected number
type Record struct {
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// RangeRecord is the resolved value of one detected numeric range
type RangeRecord struct {
	MinValue string `json:"min_value"`
	MaxValue string `json:"max_value"`
	Unit     string `json:"unit,omitempty"`
}

// Detection aliases the generic wire shape for number records
type Detection = detect.Detection[Record]

// RangeDetection aliases the generic wire shape for range records
type RangeDetection = detect.Detection[RangeRecord]

// Options tune number recognition
type Options struct {
	// MinDigits and MaxDigits bound the integer digit count a detected
	// number may have. Zero means the default (1 and 6)
	MinDigits int
	MaxDigits int

	// UnitType restricts unit capture to one unit family ("currency",
	// "people", "weight"). Empty admits every known unit
	UnitType string
}

func (o Options) bounds() (int, int) {
	lo, hi := o.MinDigits, o.MaxDigits
	if lo <= 0 {
		lo = defaultMinDigits
	}
	if hi <= 0 {
		hi = defaultMaxDigits
	}
	return lo, hi
}

var (
	reDigits = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)
	reWords  = regexp.MustCompile(
		`\b((?:` + wordAlternation() + `)(?:[\s-]+(?:and\s+)?(?:` + wordAlternation() + `))*)\b`)
)

// Detector recognizes cardinal numbers in one entity's configuration
type Detector struct {
	entity    string
	tag       string
	minDigits int
	maxDigits int
	norm      *normalize.Normalizer

	unitPrefix *regexp.Regexp
	unitSuffix *regexp.Regexp

	pipeline []detect.Sub[Record]
}

type scan = detect.Scan[Record]

// New builds a number detector for the given entity name
func New(entity string, opts Options) (*Detector, error) {
	if entity == "" {
		return nil, fmt.Errorf("numeral: empty entity name")
	}
	lo, hi := opts.bounds()
	if lo > hi {
		return nil, fmt.Errorf("numeral: min digits %d exceeds max digits %d", lo, hi)
	}
	if opts.UnitType != "" && !knownUnitType(opts.UnitType) {
		return nil, fmt.Errorf("numeral: unknown unit type %q", opts.UnitType)
	}

	d := &Detector{
		entity:    entity,
		tag:       "__" + entity + "__",
		minDigits: lo,
		maxDigits: hi,
		norm:      normalize.New(),
	}
	if alt := unitAlternation(opts.UnitType); alt != "" {
		d.unitPrefix = regexp.MustCompile(`(?:^|\s)((?:` + alt + `)[\s.]*(\d+(?:\.\d+)?))\b`)
		d.unitSuffix = regexp.MustCompile(`\b((\d+(?:\.\d+)?)\s*(` + alt + `))\b`)
	}
	d.pipeline = []detect.Sub[Record]{
		d.unitPrefixNumber,
		d.numberUnitSuffix,
		d.wordNumbers,
		d.digitNumbers,
	}
	return d, nil
}

// Entity returns the entity name this detector reports under
func (d *Detector) Entity() string { return d.entity }

// Detect runs number extraction over one request. structured, when present,
// replaces the message as the scanned text; fallback is scanned only when
// the primary text yields nothing
func (d *Detector) Detect(message, structured, fallback string) ([]Detection, error) {
	if message == "" && structured == "" && fallback == "" {
		return nil, fmt.Errorf("numeral: no input: message, structured and fallback values all empty")
	}
	text, source := message, detect.SourceMessage
	if structured != "" {
		text, source = structured, detect.SourceStructured
	}
	out := d.detectOne(text, source)
	if len(out) == 0 && fallback != "" {
		out = d.detectOne(fallback, detect.SourceFallback)
	}
	return out, nil
}

// DetectBulk runs Detect over a batch of messages
func (d *Detector) DetectBulk(messages []string) ([][]Detection, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("numeral: no input: empty message batch")
	}
	out := make([][]Detection, len(messages))
	for i, msg := range messages {
		out[i] = d.detectOne(msg, detect.SourceMessage)
	}
	return out, nil
}

func (d *Detector) detectOne(text string, source detect.Source) []Detection {
	s := detect.NewScan[Record](d.norm.Normalize(text), time.Time{})
	s.Run(d.tag, d.pipeline)
	return s.Detections(source)
}

func (d *Detector) unitPrefixNumber(s *scan) {
	if d.unitPrefix == nil {
		return
	}
	for _, m := range d.unitPrefix.FindAllStringSubmatch(s.Unclaimed, -1) {
		if !d.inBounds(m[2]) {
			continue
		}
		unit := strings.TrimRight(strings.TrimSpace(strings.TrimSuffix(m[1], m[2])), ". ")
		s.Emit(Record{Value: m[2], Unit: canonicalUnit(unit)}, m[1])
	}
}

func (d *Detector) numberUnitSuffix(s *scan) {
	if d.unitSuffix == nil {
		return
	}
	for _, m := range d.unitSuffix.FindAllStringSubmatch(s.Unclaimed, -1) {
		if !d.inBounds(m[2]) {
			continue
		}
		s.Emit(Record{Value: m[2], Unit: canonicalUnit(m[3])}, m[1])
	}
}

func (d *Detector) wordNumbers(s *scan) {
	for _, m := range reWords.FindAllStringSubmatch(s.Unclaimed, -1) {
		tokens := strings.FieldsFunc(m[1], func(r rune) bool {
			return r == ' ' || r == '-'
		})
		v, ok := parseWords(tokens)
		if !ok {
			continue
		}
		value := strconv.FormatInt(v, 10)
		if !d.inBounds(value) {
			continue
		}
		s.Emit(Record{Value: value}, m[1])
	}
}

func (d *Detector) digitNumbers(s *scan) {
	for _, m := range reDigits.FindAllStringSubmatch(s.Unclaimed, -1) {
		if !d.inBounds(m[1]) {
			continue
		}
		s.Emit(Record{Value: m[1]}, m[1])
	}
}

// inBounds checks the integer digit count of a decimal literal
func (d *Detector) inBounds(value string) bool {
	intPart, _, _ := strings.Cut(value, ".")
	n := len(intPart)
	return n >= d.minDigits && n <= d.maxDigits
}

// RangeDetector recognizes numeric ranges in one entity's configuration
type RangeDetector struct {
	entity    string
	tag       string
	minDigits int
	maxDigits int
	norm      *normalize.Normalizer

	between *regexp.Regexp
	dashed  *regexp.Regexp

	pipeline []detect.Sub[RangeRecord]
}

type rangeScan = detect.Scan[RangeRecord]

// NewRange builds a number-range detector for the given entity name
func NewRange(entity string, opts Options) (*RangeDetector, error) {
	if entity == "" {
		return nil, fmt.Errorf("numeral: empty entity name")
	}
	lo, hi := opts.bounds()
	if lo > hi {
		return nil, fmt.Errorf("numeral: min digits %d exceeds max digits %d", lo, hi)
	}
	if opts.UnitType != "" && !knownUnitType(opts.UnitType) {
		return nil, fmt.Errorf("numeral: unknown unit type %q", opts.UnitType)
	}

	unit := ""
	if alt := unitAlternation(opts.UnitType); alt != "" {
		unit = `(?:\s*(` + alt + `))?`
	} else {
		unit = `()`
	}
	d := &RangeDetector{
		entity:    entity,
		tag:       "__" + entity + "__",
		minDigits: lo,
		maxDigits: hi,
		norm:      normalize.New(),
		between: regexp.MustCompile(
			`\b(between\s+(\d+(?:\.\d+)?)\s+(?:and|to)\s+(\d+(?:\.\d+)?)` + unit + `)\b`),
		dashed: regexp.MustCompile(
			`\b((\d+(?:\.\d+)?)\s*(?:-|to)\s*(\d+(?:\.\d+)?)` + unit + `)\b`),
	}
	d.pipeline = []detect.Sub[RangeRecord]{
		d.betweenRange,
		d.dashedRange,
	}
	return d, nil
}

// Entity returns the entity name this detector reports under
func (d *RangeDetector) Entity() string { return d.entity }

// Detect runs range extraction over one request, with the same source
// precedence as Detector.Detect
func (d *RangeDetector) Detect(message, structured, fallback string) ([]RangeDetection, error) {
	if message == "" && structured == "" && fallback == "" {
		return nil, fmt.Errorf("numeral: no input: message, structured and fallback values all empty")
	}
	text, source := message, detect.SourceMessage
	if structured != "" {
		text, source = structured, detect.SourceStructured
	}
	out := d.detectOne(text, source)
	if len(out) == 0 && fallback != "" {
		out = d.detectOne(fallback, detect.SourceFallback)
	}
	return out, nil
}

// DetectBulk runs Detect over a batch of messages
func (d *RangeDetector) DetectBulk(messages []string) ([][]RangeDetection, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("numeral: no input: empty message batch")
	}
	out := make([][]RangeDetection, len(messages))
	for i, msg := range messages {
		out[i] = d.detectOne(msg, detect.SourceMessage)
	}
	return out, nil
}

func (d *RangeDetector) detectOne(text string, source detect.Source) []RangeDetection {
	s := detect.NewScan[RangeRecord](d.norm.Normalize(text), time.Time{})
	s.Run(d.tag, d.pipeline)
	return s.Detections(source)
}

func (d *RangeDetector) betweenRange(s *rangeScan) {
	for _, m := range d.between.FindAllStringSubmatch(s.Unclaimed, -1) {
		d.emit(s, m)
	}
}

func (d *RangeDetector) dashedRange(s *rangeScan) {
	for _, m := range d.dashed.FindAllStringSubmatch(s.Unclaimed, -1) {
		d.emit(s, m)
	}
}

func (d *RangeDetector) emit(s *rangeScan, m []string) {
	if !d.inBounds(m[2]) || !d.inBounds(m[3]) {
		return
	}
	if mustFloat(m[2]) > mustFloat(m[3]) {
		return
	}
	s.Emit(RangeRecord{
		MinValue: m[2],
		MaxValue: m[3],
		Unit:     canonicalUnit(m[4]),
	}, m[1])
}

func (d *RangeDetector) inBounds(value string) bool {
	intPart, _, _ := strings.Cut(value, ".")
	n := len(intPart)
	return n >= d.minDigits && n <= d.maxDigits
}

func mustFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("numeral: %q matched as number", s))
	}
	return f
}
