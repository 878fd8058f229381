// Package dates normalizes the heterogeneous date strings found in intake
// forms and legacy records into one canonical DDMMYYYY digit string.
// Parsing never fails hard: anything unrecognizable collapses to Sentinel,
// because upstream data is untrusted free text.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Sentinel is returned for any date that cannot be parsed. Callers must
// check for it before using a canonical date in age or ordering logic;
// in lexicographic sorts it compares lower than every real date.
const Sentinel = "00000000"

var (
	reISO   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reLocal = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	reDigit = regexp.MustCompile(`\d`)
	reYMD8  = regexp.MustCompile(`^(19|20)\d{6}$`)
	reAny8  = regexp.MustCompile(`^\d{8}$`)
)

// Normalize converts a date string to canonical DDMMYYYY form.
// Recognized shapes, tried in order: ISO YYYY-MM-DD, localized DD/MM/YYYY,
// then a digits-only fallback where a 19/20 century prefix marks the
// 8 digits as YYYYMMDD (reordered) and any other 8 digits are taken as
// already canonical. Everything else yields Sentinel.
func Normalize(s string) string {
	if s == "" {
		return Sentinel
	}
	if m := reISO.FindStringSubmatch(s); m != nil {
		return m[3] + m[2] + m[1]
	}
	if m := reLocal.FindStringSubmatch(s); m != nil {
		return m[1] + m[2] + m[3]
	}
	digits := ""
	for _, d := range reDigit.FindAllString(s, -1) {
		digits += d
	}
	if reYMD8.MatchString(digits) {
		return digits[6:8] + digits[4:6] + digits[0:4]
	}
	if reAny8.MatchString(digits) {
		return digits
	}
	return Sentinel
}

// ToDisplay renders any date string as DD/MM/YYYY. Unparseable input is
// returned verbatim so the UI shows whatever the user typed instead of a
// fake zero date.
func ToDisplay(s string) string {
	d := Normalize(s)
	if d == Sentinel {
		return s
	}
	return fmt.Sprintf("%s/%s/%s", d[0:2], d[2:4], d[4:8])
}

// Age computes full years elapsed between a birth date (any recognized
// shape) and now. The second return is false when the input is
// unparseable or the result would be negative; no age is shown then.
func Age(birth string, now time.Time) (int, bool) {
	d := Normalize(birth)
	if d == Sentinel {
		return 0, false
	}
	dd, _ := strconv.Atoi(d[0:2])
	mm, _ := strconv.Atoi(d[2:4])
	yyyy, _ := strconv.Atoi(d[4:8])

	age := now.Year() - yyyy
	if int(now.Month()) < mm || (int(now.Month()) == mm && now.Day() < dd) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}
