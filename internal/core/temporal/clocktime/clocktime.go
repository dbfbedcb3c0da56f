// Package clocktime extracts times of day from free-form text.
//
// Same cascade contract as the date engine: an ordered list of grammars
// over a shrinking unclaimed view, earlier entries claiming text before
// later ones run. Twelve-hour forms with an explicit meridiem go first;
// bare clock readings fall through to meridiem inference against the
// reference instant
package clocktime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"entex/internal/core/detect"
	"entex/internal/core/normalize"
)

// Meridiem tags how the hour value is to be read
type Meridiem string

const (
	// MeridiemAM and MeridiemPM are 12-hour readings
	MeridiemAM Meridiem = "am"
	MeridiemPM Meridiem = "pm"
	// Meridiem24 marks a 24-hour reading
	Meridiem24 Meridiem = "hrs"
	// MeridiemDiff marks a relative offset from the reference instant,
	// hours and minutes holding the offset instead of a clock reading
	MeridiemDiff Meridiem = "df"
)

// Record is one extracted time of day
type Record struct {
	Hour     int      `json:"hh"`
	Minute   int      `json:"mm"`
	Meridiem Meridiem `json:"nn"`
}

// Detection is one time record paired with the substring that produced it
type Detection = detect.Detection[Record]

// Options configures a Detector. The zero value means UTC and wall clock
type Options struct {
	// Timezone is an IANA identifier; empty means UTC
	Timezone string

	// Clock supplies the reference instant; nil means time.Now
	Clock func() time.Time
}

// Static grammars over normalized (lowercased, single-spaced, padded) text.
// Hour tokens accept 1-12 for meridiem forms and 00-23 for 24-hour forms;
// minute tokens accept 00-59
var (
	// <hour>[:. ]<minutes> <am|pm>, e.g. "10:33 pm", "1033pm", "2-33-a.m"
	reTwelveHour = regexp.MustCompile(
		`\D((0?[2-9]|0?1[0-2]?)[\s-]*(?::|\.|\s)?[\s-]*?([0-5][0-9])[\s-]*?(pm|am|a\.m|p\.m))`)

	// <hour> <am|pm>, e.g. "10 pm", "2-am"
	reTwelveHourNoMin = regexp.MustCompile(
		`\s((0?[2-9]|0?1[0-2]?)[\s-]*(am|pm|a\.m|p\.m))`)

	// "in / in about / after <n> <mins|hours>"
	reDifference = regexp.MustCompile(
		`\b((in\sabout|in|after)\s(\d+)\s?(min|mins|minutes|hour|hours|hrs|hr))\b`)

	// "<n> <mins|hours> later"
	reDifferenceLater = regexp.MustCompile(
		`\b((\d+)\s?(min|mins|minutes|hour|hours|hrs|hr)\s?(later|ltr|latr|lter)s?)\b`)

	// 24-hour reading with hour 00 or 13-23, e.g. "13:50"
	reRestricted24 = regexp.MustCompile(
		`\D((00|1[3-9]?|2[0-3])[:.\s]([0-5][0-9]))[^amp.|\d]`)

	// bare <hour>:<minutes> with no meridiem, e.g. "6:20"
	reTwentyFour = regexp.MustCompile(
		`\D((00|0?[2-9]|0?1[0-9]?|2[0-3])[:.\s]([0-5][0-9]))[^amp.|\d]`)

	// "<by|before|after|at|dot|exactly|exact> <hour>[:<minutes>]"
	rePrefixed = regexp.MustCompile(
		`((?:by|before|after|at|dot|exactly|exact)[\s-]*((0?[1-9]|1[0-2])[:.\s]*([0-5][0-9])?))\s`)

	// "<hour>[:<minutes>] o'clock", "7 hours"
	reOClock = regexp.MustCompile(
		`\s(((0?[1-9]|1[0-2])[:.\s]*([0-5][0-9])?)[\s-]*(?:o'clock|o' clock|clock|oclock|o clock|hours))\s`)

	hourWords = map[string]bool{"hour": true, "hours": true, "hrs": true, "hr": true}
)

// Detector is a configured time-of-day pipeline. Safe for concurrent use;
// every call builds its own scan state
type Detector struct {
	entity string
	tag    string
	loc    *time.Location
	norm   *normalize.Normalizer
	clock  func() time.Time

	pipeline []detect.Sub[Record]
}

// New builds a Detector for the given entity name
func New(entity string, opts Options) (*Detector, error) {
	if entity == "" {
		return nil, fmt.Errorf("clocktime: empty entity name")
	}
	tz := opts.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("clocktime: timezone %q: %w", tz, err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	d := &Detector{
		entity: entity,
		tag:    "__" + entity + "__",
		loc:    loc,
		norm:   normalize.New(),
		clock:  clock,
	}
	d.pipeline = []detect.Sub[Record]{
		d.twelveHour,
		d.twelveHourNoMin,
		d.difference,
		d.differenceLater,
		d.restricted24,
		d.twentyFour,
		d.prefixed,
		d.oClock,
	}
	return d, nil
}

// Entity returns the entity name given at construction
func (d *Detector) Entity() string { return d.entity }

// Detect runs the pipeline for one request, with the same input-selection
// contract as the date engine: structured value wins, fallback is scanned
// only when the primary input yields nothing
func (d *Detector) Detect(message, structured, fallback string) ([]Detection, error) {
	if message == "" && structured == "" && fallback == "" {
		return nil, fmt.Errorf("clocktime: no input: message, structured and fallback values all empty")
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

// DetectBulk applies the pipeline independently to each message, sharing
// one reference instant across the batch
func (d *Detector) DetectBulk(messages []string) ([][]Detection, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("clocktime: no input: empty message batch")
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
	s.Run(d.tag, d.pipeline)
	return s.Detections(source)
}

// twelveHour matches <hour><minutes> with an explicit meridiem
func (d *Detector) twelveHour(s *detect.Scan[Record]) {
	for _, m := range reTwelveHour.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(Record{
			Hour:     atoi(m[2]),
			Minute:   atoi(m[3]),
			Meridiem: foldMeridiem(m[4]),
		}, m[1])
	}
}

// twelveHourNoMin matches a bare hour with an explicit meridiem
func (d *Detector) twelveHourNoMin(s *detect.Scan[Record]) {
	for _, m := range reTwelveHourNoMin.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(Record{Hour: atoi(m[2]), Meridiem: foldMeridiem(m[3])}, m[1])
	}
}

// difference matches "in 30 mins" style offsets
func (d *Detector) difference(s *detect.Scan[Record]) {
	for _, m := range reDifference.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(diffRecord(atoi(m[3]), m[4]), m[1])
	}
}

// differenceLater matches "30 mins later" style offsets
func (d *Detector) differenceLater(s *detect.Scan[Record]) {
	for _, m := range reDifferenceLater.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(diffRecord(atoi(m[2]), m[3]), m[1])
	}
}

// restricted24 matches clock readings whose hour is only valid in 24-hour
// notation
func (d *Detector) restricted24(s *detect.Scan[Record]) {
	for _, m := range reRestricted24.FindAllStringSubmatch(s.Unclaimed, -1) {
		hh, mm := atoi(m[2]), atoi(m[3])
		s.Emit(Record{Hour: hh, Minute: mm, Meridiem: inferMeridiem(s.Now, hh, mm)}, m[1])
	}
}

// twentyFour matches any remaining <hour>:<minutes> reading
func (d *Detector) twentyFour(s *detect.Scan[Record]) {
	for _, m := range reTwentyFour.FindAllStringSubmatch(s.Unclaimed, -1) {
		hh, mm := atoi(m[2]), atoi(m[3])
		s.Emit(Record{Hour: hh, Minute: mm, Meridiem: inferMeridiem(s.Now, hh, mm)}, m[1])
	}
}

// prefixed matches "by 7", "at 6:30" style phrases
func (d *Detector) prefixed(s *detect.Scan[Record]) {
	for _, m := range rePrefixed.FindAllStringSubmatch(s.Unclaimed, -1) {
		hh, mm := atoi(m[3]), atoi(m[4])
		s.Emit(Record{Hour: hh, Minute: mm, Meridiem: inferMeridiem(s.Now, hh, mm)}, m[1])
	}
}

// oClock matches "5 o'clock" and "7 hours" style phrases
func (d *Detector) oClock(s *detect.Scan[Record]) {
	for _, m := range reOClock.FindAllStringSubmatch(s.Unclaimed, -1) {
		hh, mm := atoi(m[3]), atoi(m[4])
		s.Emit(Record{Hour: hh, Minute: mm, Meridiem: inferMeridiem(s.Now, hh, mm)}, m[1])
	}
}

// diffRecord builds a relative-offset record, the unit word deciding
// whether n lands in the hour or minute slot
func diffRecord(n int, unit string) Record {
	if hourWords[unit] {
		return Record{Hour: n, Meridiem: MeridiemDiff}
	}
	return Record{Minute: n, Meridiem: MeridiemDiff}
}

// foldMeridiem collapses "a.m"/"p.m" spellings to am/pm
func foldMeridiem(raw string) Meridiem {
	if strings.Contains(raw, "a") {
		return MeridiemAM
	}
	return MeridiemPM
}

// inferMeridiem picks am or pm so the reading lands within the 12-hour
// span starting at the reference instant. Hours outside 1-11 are already a
// 24-hour reading
func inferMeridiem(now time.Time, hh, mm int) Meridiem {
	if hh == 0 || hh >= 12 {
		return Meridiem24
	}
	ch, cm := now.Hour(), now.Minute()
	if ch >= 12 {
		ch -= 12
		if ch < hh || (ch == hh && cm < mm) {
			return MeridiemPM
		}
	} else {
		if ch > hh || (ch == hh && cm > mm) {
			return MeridiemPM
		}
	}
	return MeridiemAM
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
