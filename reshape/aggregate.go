package reshape

import (
	"errors"
	"sort"
)

// ============================================================================
// AGGREGATION — Region grouping and averaging
// ============================================================================
// Groups are discovered from the records present, in encounter order, then
// sorted by descending average. The sort is stable, so ties keep discovery
// order. Observations whose country had no reference match group under
// UnknownRegion rather than being dropped.
// ============================================================================

// ErrEmptyInput is returned when an aggregate is requested over no records.
var ErrEmptyInput = errors.New("reshape: no observations to aggregate")

// UnknownRegion labels the group for observations with no joined metadata.
const UnknownRegion = "Unknown"

// RegionAverage is one (region, sub-region) group with its mean measure.
type RegionAverage struct {
	Region    string  `json:"region"`
	SubRegion string  `json:"subRegion"`
	Average   float64 `json:"average"`
	Count     int     `json:"count"`
}

// AverageByRegion groups observations by (region, sub-region) and computes
// the arithmetic mean of measure within each group. Groups are ordered by
// descending average; ties keep group-discovery order. By construction a
// discovered group is never empty, so the only failure is an empty input.
func AverageByRegion(obs []Observation) ([]RegionAverage, error) {
	if len(obs) == 0 {
		return nil, ErrEmptyInput
	}

	type groupKey struct{ region, subRegion string }
	sums := make(map[groupKey]float64)
	counts := make(map[groupKey]int)
	var order []groupKey

	for _, o := range obs {
		key := groupKey{region: o.Region, subRegion: o.SubRegion}
		if key.region == "" {
			key.region = UnknownRegion
		}
		if key.subRegion == "" {
			key.subRegion = UnknownRegion
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		sums[key] += o.Measure
		counts[key]++
	}

	groups := make([]RegionAverage, 0, len(order))
	for _, key := range order {
		groups = append(groups, RegionAverage{
			Region:    key.region,
			SubRegion: key.subRegion,
			Average:   sums[key] / float64(counts[key]),
			Count:     counts[key],
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Average > groups[j].Average
	})
	return groups, nil
}
