package reshape

import "time"

// ============================================================================
// RESHAPE TYPES — Wide input, long output
// ============================================================================

// RawIndicatorRow is one wide-format row: one (country, indicator) pair with
// a value per year. A nil value means the cell was empty in the source.
type RawIndicatorRow struct {
	CountryName   string
	CountryCode   string
	IndicatorName string
	IndicatorCode string
	Values        map[int]*float64 // year → value
}

// CountryMeta is one row of the ISO country reference table.
type CountryMeta struct {
	Alpha3    string
	Region    string
	SubRegion string
}

// Observation is one long-format data point: a single (country, indicator,
// year) measurement with country metadata joined in. Region and SubRegion
// are empty when the country code had no match in the reference table.
type Observation struct {
	CountryName   string    `json:"countryName"`
	CountryCode   string    `json:"countryCode"`
	IndicatorCode string    `json:"indicatorCode"`
	Year          time.Time `json:"year"` // truncated to January 1, UTC
	Measure       float64   `json:"measure"`
	Region        string    `json:"region,omitempty"`
	SubRegion     string    `json:"subRegion,omitempty"`
}

// Truncate normalizes a calendar year to its canonical truncated date:
// January 1 of that year, UTC.
func Truncate(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
