package dates

import (
	"reflect"
	"testing"
	"time"

	"entex/internal/core/detect"
)

// refClock pins the reference instant to Friday 2024-03-15 10:00 UTC
func refClock() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func newTestDetector(t *testing.T, opts Options) *Detector {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = refClock
	}
	d, err := New("date", opts)
	if err != nil {
		t.Fatalf("new detector: %v", err)
	}
	return d
}

func run(t *testing.T, d *Detector, msg string) []Detection {
	t.Helper()
	out, err := d.Detect(msg, "", "")
	if err != nil {
		t.Fatalf("detect %q: %v", msg, err)
	}
	return out
}

func one(t *testing.T, d *Detector, msg string) Detection {
	t.Helper()
	out := run(t, d, msg)
	if len(out) != 1 {
		t.Fatalf("detect %q: want 1 detection, got %d: %+v", msg, len(out), out)
	}
	return out[0]
}

func wantRecord(t *testing.T, got Detection, dd, mm, yy int, kind Kind) {
	t.Helper()
	r := got.EntityValue.Value
	if r.Day != dd || r.Month != mm || r.Year != yy || r.Kind != kind {
		t.Fatalf("got %d-%d-%d %q, want %d-%d-%d %q",
			r.Day, r.Month, r.Year, r.Kind, dd, mm, yy, kind)
	}
}

func TestDetect_NumericFormats(t *testing.T) {
	d := newTestDetector(t, Options{})

	got := one(t, d, "delivery on 28-12-2096 please")
	wantRecord(t, got, 28, 12, 2096, KindExact)
	if got.OriginalText != "28-12-2096" {
		t.Fatalf("original text %q", got.OriginalText)
	}
	if got.Source != detect.SourceMessage {
		t.Fatalf("source %q", got.Source)
	}

	// two-digit year defaults to the current century
	wantRecord(t, one(t, d, "born 6/2/39"), 6, 2, 2039, KindExact)

	// month-first kicks in when the day value rules out day-first
	wantRecord(t, one(t, d, "ship by 12/28/2096"), 28, 12, 2096, KindExact)

	// year-first only survives when the trailing day/month pair cannot be
	// read as a date on its own
	wantRecord(t, one(t, d, "1997/2/21 works"), 21, 2, 1997, KindExact)
}

func TestDetect_DayMonthYearOmittedRollsForward(t *testing.T) {
	d := newTestDetector(t, Options{})

	// 1 March 2024 is before the 15 March reference, so next year
	wantRecord(t, one(t, d, "on 1/3"), 1, 3, 2025, KindExact)

	// 20 March 2024 is still ahead
	wantRecord(t, one(t, d, "on 20/3"), 20, 3, 2024, KindExact)
}

func TestDetect_MonthNameFormats(t *testing.T) {
	d := newTestDetector(t, Options{})

	wantRecord(t, one(t, d, "meet on 21 nov 99"), 21, 11, 2099, KindExact)
	wantRecord(t, one(t, d, "21st nov 2099 it is"), 21, 11, 2099, KindExact)
	wantRecord(t, one(t, d, "2014 november 6"), 6, 11, 2014, KindExact)
	wantRecord(t, one(t, d, "2099, 21st nov"), 21, 11, 2099, KindExact)
	wantRecord(t, one(t, d, "nov 21st 2099"), 21, 11, 2099, KindExact)

	// misspellings resolve through the lexicon
	wantRecord(t, one(t, d, "09 febuary 2031"), 9, 2, 2031, KindExact)
}

func TestDetect_MonthNameNotAMonthIsSkipped(t *testing.T) {
	d := newTestDetector(t, Options{})

	// structurally matches the day-monthname grammar but "xyzzy" is not a
	// month, so the candidate is silently dropped
	if out := run(t, d, "see item 21 xyzzy"); len(out) != 0 {
		t.Fatalf("want no detections, got %+v", out)
	}
}

func TestDetect_YearInference(t *testing.T) {
	d := newTestDetector(t, Options{})

	// February already passed relative to 15 March 2024
	got := one(t, d, "schedule for 10 feb")
	wantRecord(t, got, 10, 2, 2025, KindExact)
	if f := got.EntityValue.Value.Fields; f.Year != FieldInferred || f.Day != FieldDetected {
		t.Fatalf("provenance %+v", f)
	}

	// day 20 has not passed within the current month
	wantRecord(t, one(t, d, "schedule for 20 march"), 20, 3, 2024, KindExact)

	// day 10 has passed within the current month
	wantRecord(t, one(t, d, "schedule for 10 march"), 10, 3, 2025, KindExact)

	// monthname-first form infers the same way
	wantRecord(t, one(t, d, "feb 10"), 10, 2, 2025, KindExact)
}

func TestDetect_RelativeTerms(t *testing.T) {
	d := newTestDetector(t, Options{})

	wantRecord(t, one(t, d, "see you today"), 15, 3, 2024, KindToday)
	wantRecord(t, one(t, d, "see you tonight"), 15, 3, 2024, KindToday)
	wantRecord(t, one(t, d, "see you tomorrow"), 16, 3, 2024, KindTomorrow)
	wantRecord(t, one(t, d, "it was yesterday"), 14, 3, 2024, KindYesterday)
	wantRecord(t, one(t, d, "tommorow then"), 16, 3, 2024, KindTomorrow)

	// compound forms claim before the single words run
	wantRecord(t, one(t, d, "day after tomorrow"), 17, 3, 2024, KindDayAfter)
	wantRecord(t, one(t, d, "day before yesterday"), 13, 3, 2024, KindDayBefore)

	wantRecord(t, one(t, d, "after 3 days"), 18, 3, 2024, KindAfterNDays)
	wantRecord(t, one(t, d, "5 days later"), 20, 3, 2024, KindAfterNDays)
}

func TestDetect_WeekdayTerms(t *testing.T) {
	d := newTestDetector(t, Options{})

	// reference is Friday; Monday already passed this week, so both forms
	// land on next week's Monday
	wantRecord(t, one(t, d, "next monday"), 18, 3, 2024, KindNextWeekday)
	wantRecord(t, one(t, d, "this monday"), 18, 3, 2024, KindThisWeekday)

	// Saturday is still ahead within the window
	wantRecord(t, one(t, d, "this saturday"), 16, 3, 2024, KindThisWeekday)

	// "next saturday" jumps strictly into the following week
	wantRecord(t, one(t, d, "next saturday"), 23, 3, 2024, KindNextWeekday)
}

func TestDetect_BareWeekdayStillMatches(t *testing.T) {
	d := newTestDetector(t, Options{})

	// the qualifier is optional, so a lone weekday name in prose is
	// captured too; characterizes a known over-trigger
	wantRecord(t, one(t, d, "the standup is monday as usual"), 18, 3, 2024, KindThisWeekday)
}

func TestDetect_RelativeMonthForms(t *testing.T) {
	d := newTestDetector(t, Options{})

	wantRecord(t, one(t, d, "3rd of this month"), 3, 3, 2024, KindExact)
	wantRecord(t, one(t, d, "5th of next month"), 5, 4, 2024, KindExact)

	// year rolls past December
	dec := newTestDetector(t, Options{Clock: func() time.Time {
		return time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
	}})
	wantRecord(t, one(t, dec, "5th of next month"), 5, 1, 2025, KindExact)
}

func TestDetect_PossibleDay(t *testing.T) {
	d := newTestDetector(t, Options{})

	// 21st has not passed in March
	got := one(t, d, "book the 21st")
	wantRecord(t, got, 21, 3, 2024, KindPossibleDay)
	if f := got.EntityValue.Value.Fields; f.Day != FieldDetected || f.Month != FieldInferred || f.Year != FieldInferred {
		t.Fatalf("provenance %+v", f)
	}

	// 2nd already passed, so the month advances
	wantRecord(t, one(t, d, "book the 2nd"), 2, 4, 2024, KindPossibleDay)

	// December overflow rolls the year
	dec := newTestDetector(t, Options{Clock: func() time.Time {
		return time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
	}})
	wantRecord(t, one(t, dec, "book the 5th"), 5, 1, 2025, KindPossibleDay)
}

func TestDetect_ExactTierClaimsBeforePossible(t *testing.T) {
	d := newTestDetector(t, Options{})

	out := run(t, d, "book 21/11/2024 and also the 23rd")
	if len(out) != 2 {
		t.Fatalf("want 2 detections, got %d: %+v", len(out), out)
	}
	wantRecord(t, out[0], 21, 11, 2024, KindExact)
	wantRecord(t, out[1], 23, 3, 2024, KindPossibleDay)
	if out[0].OriginalText != "21/11/2024" || out[1].OriginalText != "23rd" {
		t.Fatalf("original texts %q %q", out[0].OriginalText, out[1].OriginalText)
	}
}

func TestDetect_CenturyFromBotMessage(t *testing.T) {
	d := newTestDetector(t, Options{BotMessage: "what is your date of birth?"})

	wantRecord(t, one(t, d, "21 nov 99"), 21, 11, 1999, KindExact)

	d.SetBotMessage("")
	wantRecord(t, one(t, d, "21 nov 99"), 21, 11, 2099, KindExact)
}

func TestNormalizeYear(t *testing.T) {
	d := newTestDetector(t, Options{})
	now := refClock()

	if got := d.NormalizeYear("99", now); got != "2099" {
		t.Fatalf("no hint: %q", got)
	}
	if got := d.NormalizeYear("1999", now); got != "1999" {
		t.Fatalf("four digits: %q", got)
	}

	d.SetBotMessage("please enter your dob")
	if got := d.NormalizeYear("99", now); got != "1999" {
		t.Fatalf("birth hint: %q", got)
	}
	d.SetBotMessage("pick any year")
	if got := d.NormalizeYear("99", now); got != "2099" {
		t.Fatalf("unrelated hint: %q", got)
	}
}

func TestDetect_StructuredValueWins(t *testing.T) {
	d := newTestDetector(t, Options{})

	out, err := d.Detect("see you tomorrow", "25/12/2024", "")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 detection, got %d", len(out))
	}
	wantRecord(t, out[0], 25, 12, 2024, KindExact)
	if out[0].Source != detect.SourceStructured {
		t.Fatalf("source %q", out[0].Source)
	}
}

func TestDetect_FallbackValue(t *testing.T) {
	d := newTestDetector(t, Options{})

	out, err := d.Detect("no temporal content here", "", "tomorrow")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 detection, got %d", len(out))
	}
	wantRecord(t, out[0], 16, 3, 2024, KindTomorrow)
	if out[0].Source != detect.SourceFallback {
		t.Fatalf("source %q", out[0].Source)
	}

	// fallback is ignored when the message yields something
	got := one(t, d, "see you tomorrow")
	if got.Source != detect.SourceMessage {
		t.Fatalf("source %q", got.Source)
	}
}

func TestDetect_EmptyInputErrors(t *testing.T) {
	d := newTestDetector(t, Options{})
	if _, err := d.Detect("", "", ""); err == nil {
		t.Fatalf("want error for all-empty input")
	}
}

func TestNew_BadTimezone(t *testing.T) {
	if _, err := New("date", Options{Timezone: "Mars/Olympus"}); err == nil {
		t.Fatalf("want error for unknown timezone")
	}
	if _, err := New("", Options{}); err == nil {
		t.Fatalf("want error for empty entity name")
	}
}

func TestDetect_Timezone(t *testing.T) {
	// 23:30 UTC on the 15th is already the 16th in Kolkata
	d := newTestDetector(t, Options{
		Timezone: "Asia/Kolkata",
		Clock: func() time.Time {
			return time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)
		},
	})
	wantRecord(t, one(t, d, "see you today"), 16, 3, 2024, KindToday)
}

func TestDetect_Deterministic(t *testing.T) {
	d := newTestDetector(t, Options{})
	msg := "21/11/2024 or tomorrow or the 23rd"

	a := run(t, d, msg)
	b := run(t, d, msg)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("outputs differ:\n%+v\n%+v", a, b)
	}
}

func TestDetectBulk(t *testing.T) {
	d := newTestDetector(t, Options{})

	out, err := d.DetectBulk([]string{"see you tomorrow", "that was yesterday", "nothing"})
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("want 3 result lists, got %d", len(out))
	}
	if len(out[0]) != 1 || len(out[1]) != 1 || len(out[2]) != 0 {
		t.Fatalf("result lengths %d %d %d", len(out[0]), len(out[1]), len(out[2]))
	}
	wantRecord(t, out[0][0], 16, 3, 2024, KindTomorrow)
	wantRecord(t, out[1][0], 14, 3, 2024, KindYesterday)

	if _, err := d.DetectBulk(nil); err == nil {
		t.Fatalf("want error for empty batch")
	}
}

func TestDetect_MultipleDatesNoOverlap(t *testing.T) {
	d := newTestDetector(t, Options{})

	out := run(t, d, "either 1/2/2030 or 2 march 2031 or tomorrow")
	if len(out) != 3 {
		t.Fatalf("want 3 detections, got %d: %+v", len(out), out)
	}
	wantRecord(t, out[0], 1, 2, 2030, KindExact)
	wantRecord(t, out[1], 2, 3, 2031, KindExact)
	wantRecord(t, out[2], 16, 3, 2024, KindTomorrow)

	// spans must index disjoint portions of the normalized text
	seen := map[string]bool{}
	for _, det := range out {
		if det.OriginalText == "" {
			t.Fatalf("empty span in %+v", det)
		}
		if seen[det.OriginalText] {
			t.Fatalf("duplicate span %q", det.OriginalText)
		}
		seen[det.OriginalText] = true
	}
}

func TestDetect_NormalizedInput(t *testing.T) {
	d := newTestDetector(t, Options{})

	// mixed case and messy whitespace still match
	wantRecord(t, one(t, d, "  Meet   On 21 NOV   2099  "), 21, 11, 2099, KindExact)
}
