package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// FirstNonEmpty returns the first value that is not empty, or "" when
// all are. Callers use it to express ordered-priority fallbacks by name
// instead of ad-hoc || chains.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// QuarterLabel converts a "YYYY-MM" date into a quarter label such as
// "Q3 2026". Anything that does not match the pattern passes through
// unchanged.
func QuarterLabel(date string) string {
	m := yearMonthPattern.FindStringSubmatch(date)
	if m == nil {
		return date
	}
	month, err := strconv.Atoi(m[2])
	if err != nil || month < 1 || month > 12 {
		return date
	}
	quarter := (month + 2) / 3
	return fmt.Sprintf("Q%d %s", quarter, m[1])
}
