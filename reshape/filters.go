package reshape

import "time"

// ============================================================================
// FILTERS — Exact-match views over the observation set
// ============================================================================
// Each filter is a single pass returning a new slice. Filters compose in any
// order: chaining them is equivalent to one pass with the combined predicate.
// No match is an empty result, never an error.
// ============================================================================

// FilterByIndicator returns observations for one indicator code.
func FilterByIndicator(obs []Observation, indicatorCode string) []Observation {
	return filter(obs, func(o Observation) bool {
		return o.IndicatorCode == indicatorCode
	})
}

// FilterByCountry returns observations for one country code.
func FilterByCountry(obs []Observation, countryCode string) []Observation {
	return filter(obs, func(o Observation) bool {
		return o.CountryCode == countryCode
	})
}

// FilterByYear returns observations for one calendar year. The argument is
// truncated before comparison, so any instant within the year matches.
func FilterByYear(obs []Observation, year time.Time) []Observation {
	want := Truncate(year.Year())
	return filter(obs, func(o Observation) bool {
		return o.Year.Equal(want)
	})
}

func filter(obs []Observation, pred func(Observation) bool) []Observation {
	out := make([]Observation, 0)
	for _, o := range obs {
		if pred(o) {
			out = append(out, o)
		}
	}
	return out
}
