package search

import (
	"regexp"
	"strconv"
	"strings"
)

var salaryPattern = regexp.MustCompile(`[0-9][0-9,]*(\.[0-9]+)?\s*[kK]?`)

// ParseSalary extracts a single comparable number from a free-text salary
// string. For ranged text like "$90,000 - $120,000" it takes the first number,
// i.e. the lower bound of the range. Concatenating every digit in the string
// (the obvious one-liner) turns that example into 90000120000, so ranged
// postings would never match any sane filter; parsing the first number keeps
// the field usable. Handles "$", thousands separators and a "K" suffix.
// Returns false when the text contains no number.
func ParseSalary(s string) (int, bool) {
	m := salaryPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	m = strings.TrimSpace(m)

	multiplier := 1.0
	if strings.HasSuffix(strings.ToUpper(m), "K") {
		multiplier = 1000
		m = strings.TrimSpace(m[:len(m)-1])
	}

	m = strings.ReplaceAll(m, ",", "")
	val, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return int(val * multiplier), true
}
