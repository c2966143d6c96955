// Package normalize converts the messy scalar values coming out of the
// commercial-assets sheet (currency text, day-first dates, "05to50Lakhs"
// ranges, #N/A sentinels) into typed Go values. Every function is
// best-effort: bad input yields a default or absence plus a logged warning,
// never an error to the caller.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	logrus "github.com/sirupsen/logrus"
)

var (
	reInt = regexp.MustCompile(`\d+`)

	// Currency glyphs, thousands separators and the trailing "+" seen in
	// cells like "₹1,23,456" and "3,50,000+".
	numberCleaner = strings.NewReplacer("₹", "", "Rs.", "", "Rs", "", ",", "", "+", "", " ", "")
)

// dateFormats are tried in order; the first match wins. The sheet mixes ISO
// and day-first entries within the same column.
var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

func isSentinel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n/a", "#n/a", "na", "none":
		return true
	}
	return false
}

// NormalizeNumber reduces a raw cell to a plain numeric string. Sentinel
// tokens report absence via ok=false. Free-text ranges such as "05to50Lakhs"
// or "upto01Lakhs" collapse to their LAST embedded integer, i.e. the upper
// bound of the range.
func NormalizeNumber(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if isSentinel(s) {
		return "", false
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "to") {
		ints := reInt.FindAllString(s, -1)
		if len(ints) > 0 {
			n, err := strconv.Atoi(ints[len(ints)-1])
			if err == nil {
				return strconv.Itoa(n), true
			}
		}
	}

	return numberCleaner.Replace(s), true
}

// SafeInt converts raw to an integer, truncating toward zero ("12.7" → 12).
// Any failure yields def.
func SafeInt(raw string, def int) int {
	s, ok := NormalizeNumber(raw)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return int(f)
}

// SafeFloat converts raw to a float64, yielding def on any failure.
func SafeFloat(raw string, def float64) float64 {
	s, ok := NormalizeNumber(raw)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// ParseBool reports whether raw is one of the affirmative sheet tokens.
// Anything else, including empty text, is false; there is no tri-state.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "available", "operational":
		return true
	}
	return false
}

// ParseDate tries the known sheet date formats in order and returns nil for
// sentinels or unparsable text. An unparsable value is logged once here so
// the mappers never have to.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if isSentinel(s) {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	logrus.Warnf("could not parse date '%s'", raw)
	return nil
}

// MaxInt extracts every embedded integer from free-text like "1, 2/3" and
// returns the largest, or def when there is none. Used for platform counts,
// where the biggest platform number observed stands in for the count.
func MaxInt(raw string, def int) int {
	max := def
	found := false
	for _, tok := range reInt.FindAllString(raw, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if !found || n > max {
			max = n
			found = true
		}
	}
	return max
}
