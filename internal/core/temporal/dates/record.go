package dates

import (
	"time"

	"entex/internal/core/detect"
)

// Kind tags how a date record was derived. Values are stable wire strings
type Kind string

const (
	// KindExact is a complete calendar date read directly from text
	KindExact Kind = "date"
	// KindToday is a "today" synonym resolved against the reference instant
	KindToday Kind = "today"
	// KindTomorrow is a "tomorrow" synonym (+1 day)
	KindTomorrow Kind = "tomorrow"
	// KindYesterday is a "yesterday" synonym (-1 day)
	KindYesterday Kind = "yesterday"
	// KindDayAfter is "day after tomorrow" (+2 days)
	KindDayAfter Kind = "day_after"
	// KindDayBefore is "day before yesterday" (-2 days)
	KindDayBefore Kind = "day_before"
	// KindAfterNDays is "after n days" / "n days later"
	KindAfterNDays Kind = "after_n_days"
	// KindNextWeekday is "next <weekday>", strictly in the following week
	KindNextWeekday Kind = "day_in_next_week"
	// KindThisWeekday is "this <weekday>" within the current 7-day window
	KindThisWeekday Kind = "day_within_one_week"
	// KindPossibleDay is a bare day ordinal with month and year inferred
	KindPossibleDay Kind = "possible_day"
)

// Field marks whether a record field was read from text or filled by an
// inference rule
type Field string

const (
	// FieldDetected means the value came directly from matched text
	FieldDetected Field = "detected"
	// FieldInferred means a default rule supplied the value
	FieldInferred Field = "inferred"
)

// Provenance carries the per-field Field tags. All three are always set
type Provenance struct {
	Day   Field `json:"dd"`
	Month Field `json:"mm"`
	Year  Field `json:"yy"`
}

// detectedAll is the common case where every field was read from text
var detectedAll = Provenance{Day: FieldDetected, Month: FieldDetected, Year: FieldDetected}

// yearInferred marks the year-omitted named forms
var yearInferred = Provenance{Day: FieldDetected, Month: FieldDetected, Year: FieldInferred}

// dayDetectedOnly marks possible-tier records built from a bare day ordinal
var dayDetectedOnly = Provenance{Day: FieldDetected, Month: FieldInferred, Year: FieldInferred}

// Record is one extracted date. Values are emitted as matched or inferred
// and are not validated against actual month lengths; day 30 of February is
// a caller problem by design
type Record struct {
	Day    int        `json:"dd"`
	Month  int        `json:"mm"`
	Year   int        `json:"yy"`
	Kind   Kind       `json:"type"`
	Fields Provenance `json:"dinfo"`
}

// Date converts the record to a midnight time.Time in loc. February 30 and
// friends normalize per time.Date rules; use only where a real instant is
// needed, not for echoing values back to callers
func (r Record) Date(loc *time.Location) time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, loc)
}

// fromTime builds a fully-detected record of the given kind from t
func fromTime(t time.Time, kind Kind) Record {
	return Record{
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
		Kind:   kind,
		Fields: detectedAll,
	}
}

// Detection is one date record paired with the exact substring that
// produced it
type Detection = detect.Detection[Record]
