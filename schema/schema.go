package schema

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — Column contract for the wide indicator table
// ============================================================================
// The World Bank export is wide format: four identity columns followed by one
// column per year. Instead of discovering year columns dynamically by name
// pattern, the contract enumerates the expected range up front: year columns
// must parse to a 4-digit year, and only years in [MinYear, MaxYear] are
// kept. Out-of-range years are discarded with a reason; a column that parses
// to no year at all is a hard error.
// ============================================================================

// Year range covered by the indicator dataset.
const (
	MinYear = 1960
	MaxYear = 2020
)

// Identity column keys (snake_case-normalized header names).
const (
	ColCountryName   = "country_name"
	ColCountryCode   = "country_code"
	ColIndicatorName = "indicator_name"
	ColIndicatorCode = "indicator_code"
)

// Country reference table column keys.
const (
	ColAlpha3    = "alpha_3"
	ColRegion    = "region"
	ColSubRegion = "sub_region"
)

// MalformedYearLabelError reports a wide-table column whose name cannot be
// parsed into a 4-digit year after prefix stripping.
type MalformedYearLabelError struct {
	Label string
}

func (e *MalformedYearLabelError) Error() string {
	return fmt.Sprintf("malformed year label %q: no 4-digit year after prefix stripping", e.Label)
}

// ParseYearLabel recovers the 4-digit year from a wide-table column label.
// Exports commonly carry a non-numeric marker prefix on year columns
// ("x1990", "yr1990"); the prefix is stripped before parsing. The remaining
// text must be exactly four digits.
func ParseYearLabel(label string) (int, error) {
	s := strings.TrimSpace(label)
	start := 0
	for start < len(s) && (s[start] < '0' || s[start] > '9') {
		start++
	}
	digits := s[start:]
	if len(digits) != 4 {
		return 0, &MalformedYearLabelError{Label: label}
	}
	year := 0
	for i := 0; i < 4; i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, &MalformedYearLabelError{Label: label}
		}
		year = year*10 + int(c-'0')
	}
	return year, nil
}

// InRange reports whether a year falls inside the dataset contract.
func InRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// ToSnakeCase converts "Country Name" → "country_name".
func ToSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
