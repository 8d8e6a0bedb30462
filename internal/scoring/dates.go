package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is one employment period found in resume text, at month
// precision. Open ranges ("Present"/"Current") have a zero End.
type DateRange struct {
	Start time.Time // first day of the start month, UTC
	End   time.Time // first day of the stated end month; zero when open
	Open  bool
}

const monthNames = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|` +
	`Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

// The three supported textual forms, tried in order. A span that parses
// under an earlier pattern can still be re-found by a later one; the
// normalized-key dedup below collapses exact repeats.
var (
	reMonthRange = regexp.MustCompile(`(?i)\b(` + monthNames + `)\s+(\d{4})\s*[-–—]\s*(` +
		monthNames + `)\s+(\d{4}|Present|Current)\b`)
	reNumericRange = regexp.MustCompile(`(?i)\b(\d{1,2})[/\-](\d{2,4})\s*[-–—]\s*(\d{1,2})[/\-](\d{2,4}|Present|Current)\b`)
	reYearRange = regexp.MustCompile(`(?i)\b(\d{4})\s*(?:to|[-–—])\s*(\d{4}|Present|Current)\b`)
)

var monthIndex = func() map[string]time.Month {
	idx := map[string]time.Month{}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		idx[name] = m
		idx[name[:3]] = m
	}
	idx["sept"] = time.September
	return idx
}()

func parseMonthName(s string) (time.Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if m, ok := monthIndex[s]; ok {
		return m, true
	}
	if len(s) >= 3 {
		if m, ok := monthIndex[s[:3]]; ok {
			return m, true
		}
	}
	return 0, false
}

// normYear expands two-digit years: values below 50 land in the 2000s,
// the rest in the 1900s.
func normYear(s string) (int, bool) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if len(s) == 2 {
		if y < 50 {
			return 2000 + y, true
		}
		return 1900 + y, true
	}
	return y, true
}

func isOpenEnd(s string) bool {
	switch strings.ToLower(s) {
	case "present", "current":
		return true
	}
	return false
}

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// FindDateRanges scans free text for employment date ranges in the three
// supported forms and returns them deduplicated on the normalized
// (start year-month, end year-month-or-present) key. A span that fails to
// parse is discarded silently.
func FindDateRanges(text string) []DateRange {
	var found []DateRange

	for _, m := range reMonthRange.FindAllStringSubmatch(text, -1) {
		sm, ok1 := parseMonthName(m[1])
		sy, ok2 := normYear(m[2])
		if !ok1 || !ok2 {
			continue
		}
		r := DateRange{Start: monthStart(sy, sm)}
		if isOpenEnd(m[4]) {
			r.Open = true
		} else {
			em, ok3 := parseMonthName(m[3])
			ey, ok4 := normYear(m[4])
			if !ok3 || !ok4 {
				continue
			}
			r.End = monthStart(ey, em)
		}
		found = append(found, r)
	}

	for _, m := range reNumericRange.FindAllStringSubmatch(text, -1) {
		sm, err := strconv.Atoi(m[1])
		sy, ok := normYear(m[2])
		if err != nil || !ok || sm < 1 || sm > 12 {
			continue
		}
		r := DateRange{Start: monthStart(sy, time.Month(sm))}
		if isOpenEnd(m[4]) {
			r.Open = true
		} else {
			em, err := strconv.Atoi(m[3])
			ey, ok := normYear(m[4])
			if err != nil || !ok || em < 1 || em > 12 {
				continue
			}
			r.End = monthStart(ey, time.Month(em))
		}
		found = append(found, r)
	}

	for _, m := range reYearRange.FindAllStringSubmatch(text, -1) {
		sy, ok := normYear(m[1])
		if !ok {
			continue
		}
		// Year-only ranges span January through December.
		r := DateRange{Start: monthStart(sy, time.January)}
		if isOpenEnd(m[2]) {
			r.Open = true
		} else {
			ey, ok := normYear(m[2])
			if !ok {
				continue
			}
			r.End = monthStart(ey, time.December)
		}
		found = append(found, r)
	}

	seen := map[string]bool{}
	uniq := found[:0]
	for _, r := range found {
		k := r.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		uniq = append(uniq, r)
	}
	return uniq
}

func (r DateRange) key() string {
	end := "present"
	if !r.Open {
		end = r.End.Format("2006-01")
	}
	return r.Start.Format("2006-01") + "|" + end
}

// Months is the duration of the range in months. A closed range counts
// through the end of its final month (Jan 2021 - May 2021 is 5 months); an
// open range is measured from the start month to today, rounding up one
// month when the leftover day component reaches 15.
func (r DateRange) Months(today time.Time) int {
	if r.Open {
		return monthsBetween(r.Start, today)
	}
	return monthsBetween(r.Start, r.End.AddDate(0, 1, 0))
}

// monthsBetween is the calendar year/month difference from a to b, plus one
// when the residual day-of-month difference is 15 or more.
func monthsBetween(a, b time.Time) int {
	if a.After(b) {
		a, b = b, a
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	days := b.Day() - a.Day()
	if days < 0 {
		months--
		// Days remaining in a's month plus b's day-of-month.
		prev := time.Date(b.Year(), b.Month(), 0, 0, 0, 0, 0, time.UTC)
		days += prev.Day()
	}
	if days >= 15 {
		months++
	}
	if months < 0 {
		return 0
	}
	return months
}
