package reshape

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/klimalens-org/klimalens/schema"
)

// ============================================================================
// LOAD — Wide-to-long reshape + country metadata join
// ============================================================================
// Pipeline per raw row:
//   1. Emit one Observation per non-nil year cell within the schema range.
//   2. Round the measure to 2 decimal places.
//   3. Left-join country metadata on country_code == alpha_3.
//
// Absent cells produce no observation. Unmatched country codes keep their
// observations with empty region/sub-region. Empty input yields empty output.
// ============================================================================

// Load reshapes wide indicator rows into the long observation set.
// Years are emitted in ascending order within each row, so output order is
// deterministic: input row order, then year order.
func Load(rows []RawIndicatorRow, meta []CountryMeta) []Observation {
	byAlpha3 := indexMeta(meta)

	var out []Observation
	for _, row := range rows {
		years := make([]int, 0, len(row.Values))
		for year, v := range row.Values {
			if v == nil || !schema.InRange(year) {
				continue
			}
			years = append(years, year)
		}
		sort.Ints(years)

		for _, year := range years {
			obs := Observation{
				CountryName:   row.CountryName,
				CountryCode:   row.CountryCode,
				IndicatorCode: row.IndicatorCode,
				Year:          Truncate(year),
				Measure:       roundMeasure(*row.Values[year]),
			}
			if m, ok := byAlpha3[row.CountryCode]; ok {
				obs.Region = m.Region
				obs.SubRegion = m.SubRegion
			}
			out = append(out, obs)
		}
	}
	return out
}

func indexMeta(meta []CountryMeta) map[string]CountryMeta {
	byAlpha3 := make(map[string]CountryMeta, len(meta))
	for _, m := range meta {
		if m.Alpha3 == "" {
			continue
		}
		byAlpha3[m.Alpha3] = m
	}
	return byAlpha3
}

// roundMeasure rounds to 2 decimal places, half away from zero.
// 1000000.455 rounds to 1000000.46.
func roundMeasure(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
