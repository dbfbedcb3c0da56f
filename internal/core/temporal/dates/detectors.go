package dates

import (
	"time"
)

// Numeric formats. Two-digit years go through NormalizeYear; an omitted
// year defaults to the current one and rolls forward when the resulting
// date is already past

// dayMonthYearNumeric matches <day>/<month>[/<year>], e.g. "6/2/39",
// "7/01/1997", "28-12-2096"
func (d *Detector) dayMonthYearNumeric(s *scan) {
	for _, m := range reDayMonthYear.FindAllStringSubmatch(s.Unclaimed, -1) {
		dd, mm := atoi(m[2]), atoi(m[3])
		var yy int
		if m[4] != "" {
			yy = atoi(d.NormalizeYear(m[4], s.Now))
		} else {
			yy = s.Now.Year()
			if time.Date(yy, time.Month(mm), dd, 0, 0, 0, 0, d.loc).Before(s.Now) {
				yy++
			}
		}
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll}, m[1])
	}
}

// monthDayYearNumeric matches <month>/<day>/<year>, e.g. "12-28-2096"
func (d *Detector) monthDayYearNumeric(s *scan) {
	for _, m := range reMonthDayYear.FindAllStringSubmatch(s.Unclaimed, -1) {
		dd, mm := atoi(m[3]), atoi(m[2])
		yy := atoi(d.NormalizeYear(m[4], s.Now))
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll}, m[1])
	}
}

// yearMonthDayNumeric matches <year>/<month>/<day>, e.g. "2017/12/01"
func (d *Detector) yearMonthDayNumeric(s *scan) {
	for _, m := range reYearMonthDay.FindAllStringSubmatch(s.Unclaimed, -1) {
		dd, mm := atoi(m[4]), atoi(m[3])
		yy := atoi(d.NormalizeYear(m[2], s.Now))
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll}, m[1])
	}
}

// Month-name formats. A token that fails the month lookup silently drops
// the candidate; the structural match alone carries no claim

// dayMonthNameYear matches <day> <monthname> <year>, e.g. "21 nov 99",
// "09-nov-2014"
func (d *Detector) dayMonthNameYear(s *scan) {
	for _, m := range reDayMonthNameYear.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, ok := d.lex.MonthIndex(m[3])
		if !ok {
			continue
		}
		dd := atoi(m[2])
		yy := atoi(d.NormalizeYear(m[4], s.Now))
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll},
			trimSpan(m[1]))
	}
}

// dayOrdinalMonthYear matches <day><ordinal?> [of] <monthname> <year>,
// e.g. "21st nov 99", "02nd of, january, 1972"
func (d *Detector) dayOrdinalMonthYear(s *scan) {
	for _, m := range reDayOrdinalMonthYear.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, ok := d.lex.MonthIndex(m[3])
		if !ok {
			continue
		}
		dd := atoi(m[2])
		yy := atoi(d.NormalizeYear(m[4], s.Now))
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll},
			trimSpan(m[1]))
	}
}

// yearMonthNameDay matches <year> <monthname> <day>, e.g. "2014 november 6"
func (d *Detector) yearMonthNameDay(s *scan) {
	for _, m := range reYearMonthNameDay.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, ok := d.lex.MonthIndex(m[3])
		if !ok {
			continue
		}
		dd := atoi(m[4])
		yy := atoi(d.NormalizeYear(m[2], s.Now))
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll}, m[1])
	}
}

// yearDayMonthName matches <year> <day><ordinal?> <monthname>,
// e.g. "2099 21st nov"
func (d *Detector) yearDayMonthName(s *scan) {
	for _, m := range reYearDayMonthName.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, ok := d.lex.MonthIndex(m[4])
		if !ok {
			continue
		}
		dd := atoi(m[3])
		yy := atoi(d.NormalizeYear(m[2], s.Now))
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll}, m[1])
	}
}

// monthDayOrdinalYear matches <monthname> <day><ordinal?> <year>,
// e.g. "nov 21st 2099"
func (d *Detector) monthDayOrdinalYear(s *scan) {
	for _, m := range reMonthDayOrdinalYear.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, ok := d.lex.MonthIndex(m[2])
		if !ok {
			continue
		}
		dd := atoi(m[3])
		yy := atoi(d.NormalizeYear(m[4], s.Now))
		s.Emit(Record{Day: dd, Month: mm, Year: yy, Kind: KindExact, Fields: detectedAll}, m[1])
	}
}

// Year-omitted named forms. The year is inferred: next year when the
// matched month has already passed, or when the matched day has already
// passed within the current month

func (d *Detector) inferYear(dd, mm int, now time.Time) int {
	switch {
	case int(now.Month()) > mm:
		return now.Year() + 1
	case now.Day() > dd && int(now.Month()) == mm:
		return now.Year() + 1
	}
	return now.Year()
}

// dayMonthName matches <day><ordinal?> [of] <monthname>, e.g. "21st nov",
// "12th of november"
func (d *Detector) dayMonthName(s *scan) {
	for _, m := range reDayMonthName.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, ok := d.lex.MonthIndex(m[3])
		if !ok {
			continue
		}
		dd := atoi(m[2])
		s.Emit(Record{
			Day: dd, Month: mm, Year: d.inferYear(dd, mm, s.Now),
			Kind: KindExact, Fields: yearInferred,
		}, m[1])
	}
}

// monthDayName matches <monthname> <day><ordinal?>, e.g. "feb 21st",
// "november 12"
func (d *Detector) monthDayName(s *scan) {
	for _, m := range reMonthDayName.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, ok := d.lex.MonthIndex(m[2])
		if !ok {
			continue
		}
		dd := atoi(m[3])
		s.Emit(Record{
			Day: dd, Month: mm, Year: d.inferYear(dd, mm, s.Now),
			Kind: KindExact, Fields: yearInferred,
		}, m[1])
	}
}

// Relative-day terms, each a fixed offset from the reference instant. The
// compound forms run before the single words so "day after tomorrow" is
// not eaten by "tomorrow"

func (d *Detector) dayAfterTomorrow(s *scan) {
	for _, m := range d.g.dayAfterTomorrow.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(fromTime(s.Now.AddDate(0, 0, 2), KindDayAfter), m[1])
	}
}

// daysAfter matches "after <n> days" and close misspellings
func (d *Detector) daysAfter(s *scan) {
	for _, m := range d.g.daysAfter.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(fromTime(s.Now.AddDate(0, 0, atoi(m[2])), KindAfterNDays), m[1])
	}
}

// daysLater matches "<n> days later" and close misspellings
func (d *Detector) daysLater(s *scan) {
	for _, m := range d.g.daysLater.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(fromTime(s.Now.AddDate(0, 0, atoi(m[2])), KindAfterNDays), m[1])
	}
}

func (d *Detector) dayBeforeYesterday(s *scan) {
	for _, m := range d.g.dayBeforeYesterday.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(fromTime(s.Now.AddDate(0, 0, -2), KindDayBefore), m[1])
	}
}

func (d *Detector) today(s *scan) {
	for _, m := range d.g.today.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(fromTime(s.Now, KindToday), m[1])
	}
}

func (d *Detector) tomorrow(s *scan) {
	for _, m := range d.g.tomorrow.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(fromTime(s.Now.AddDate(0, 0, 1), KindTomorrow), m[1])
	}
}

func (d *Detector) yesterday(s *scan) {
	for _, m := range d.g.yesterday.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(fromTime(s.Now.AddDate(0, 0, -1), KindYesterday), m[1])
	}
}

// Weekday-relative terms. Weekday indexes run Sunday=1 through Saturday=7

func currentWeekday(now time.Time) int {
	return int(now.Weekday()) + 1
}

// nextWeekday matches "next <weekday>" and resolves strictly into the
// following week, so "next sunday" on a Tuesday skips this week's Sunday
func (d *Detector) nextWeekday(s *scan) {
	for _, m := range d.g.nextWeekday.FindAllStringSubmatch(s.Unclaimed, -1) {
		day, ok := d.lex.WeekdayIndex(m[3])
		if !ok {
			continue
		}
		offset := day - currentWeekday(s.Now) + 7
		s.Emit(fromTime(s.Now.AddDate(0, 0, offset), KindNextWeekday), m[1])
	}
}

// thisWeekday matches "this <weekday>" and its qualifier synonyms,
// resolving within the current 7-day window and wrapping forward when the
// weekday has already passed. The qualifier is optional, so a bare weekday
// name anywhere in the text also lands here once no earlier detector has
// claimed it
func (d *Detector) thisWeekday(s *scan) {
	for _, m := range d.g.thisWeekday.FindAllStringSubmatch(s.Unclaimed, -1) {
		day, ok := d.lex.WeekdayIndex(m[3])
		if !ok {
			continue
		}
		offset := day - currentWeekday(s.Now)
		if offset < 0 {
			offset += 7
		}
		s.Emit(fromTime(s.Now.AddDate(0, 0, offset), KindThisWeekday), trimSpan(m[1]))
	}
}

// Relative-month forms. All three fields are mechanically derived from an
// explicit phrase, so these stay in the exact tier

// dayOfThisMonth matches "<day> of this month" variants
func (d *Detector) dayOfThisMonth(s *scan) {
	for _, m := range reDayOfThisMonth.FindAllStringSubmatch(s.Unclaimed, -1) {
		s.Emit(Record{
			Day: atoi(m[2]), Month: int(s.Now.Month()), Year: s.Now.Year(),
			Kind: KindExact, Fields: detectedAll,
		}, m[1])
	}
}

// dayOfNextMonth matches "<day> of next month" variants, rolling the year
// past December
func (d *Detector) dayOfNextMonth(s *scan) {
	for _, m := range d.g.dayOfNextMonth.FindAllStringSubmatch(s.Unclaimed, -1) {
		mm, yy := int(s.Now.Month())+1, s.Now.Year()
		if mm > 12 {
			mm = 1
			yy++
		}
		s.Emit(Record{
			Day: atoi(m[2]), Month: mm, Year: yy,
			Kind: KindExact, Fields: detectedAll,
		}, m[1])
	}
}

// Possible tier

// bareOrdinalDay matches a lone "<day><ordinal>" like "21st". Month and
// year default to the current ones; a day already past advances the month,
// rolling the year at December. The emitted date may be calendrically
// invalid (a "30th" matched in February stays February 30), by contract
func (d *Detector) bareOrdinalDay(s *scan) {
	for _, m := range reOrdinalDay.FindAllStringSubmatch(s.Unclaimed, -1) {
		dd := atoi(m[2])
		mm, yy := int(s.Now.Month()), s.Now.Year()

		candidate := time.Date(yy, time.Month(mm), dd, 0, 0, 0, 0, d.loc)
		todayMidnight := time.Date(yy, s.Now.Month(), s.Now.Day(), 0, 0, 0, 0, d.loc)
		if candidate.Before(todayMidnight) {
			mm++
			if mm > 12 {
				mm = 1
				yy++
			}
		}
		s.Emit(Record{
			Day: dd, Month: mm, Year: yy,
			Kind: KindPossibleDay, Fields: dayDetectedOnly,
		}, m[1])
	}
}
