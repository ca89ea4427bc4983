package report

import (
	"fmt"
	"sort"

	"github.com/klimalens-org/klimalens/reshape"
)

// ============================================================================
// CHART BUILDERS — Observations → ChartConfig
// ============================================================================

// BuildLineChart produces one series per requested country for a single
// indicator, with a point per year in chronological order. Countries with no
// observations contribute an empty series so the legend stays aligned with
// the spec.
func BuildLineChart(spec *Spec, obs []reshape.Observation) *ChartConfig {
	if spec.LineChart == nil {
		return nil
	}

	indicator := reshape.FilterByIndicator(obs, spec.LineChart.Indicator)

	series := make([]ChartSeries, 0, len(spec.LineChart.Countries))
	for _, code := range spec.LineChart.Countries {
		countryObs := reshape.FilterByCountry(indicator, code)
		sort.SliceStable(countryObs, func(i, j int) bool {
			return countryObs[i].Year.Before(countryObs[j].Year)
		})

		points := make([]ChartPoint, 0, len(countryObs))
		name := code
		for _, o := range countryObs {
			name = o.CountryName
			points = append(points, ChartPoint{
				Label: fmt.Sprintf("%d", o.Year.Year()),
				Value: o.Measure,
			})
		}
		series = append(series, ChartSeries{Name: name, Data: points})
	}

	return &ChartConfig{
		ChartType:  "line",
		Title:      spec.Label(spec.LineChart.Indicator),
		XAxis:      "Year",
		YAxis:      spec.Label(spec.LineChart.Indicator),
		Series:     series,
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// BuildBarChart produces a grouped bar chart: one series per indicator, one
// bar per (region, sub-region) average for the comparison year. Regions keep
// the descending-average order of the first indicator that discovers them.
func BuildBarChart(spec *Spec, obs []reshape.Observation) *ChartConfig {
	if spec.BarChart == nil {
		return nil
	}

	year := reshape.Truncate(spec.BarChart.Year)

	series := make([]ChartSeries, 0, len(spec.BarChart.Indicators))
	for _, code := range spec.BarChart.Indicators {
		selected := reshape.FilterByYear(reshape.FilterByIndicator(obs, code), year)

		groups, err := reshape.AverageByRegion(selected)
		if err != nil {
			// No data for this indicator in the comparison year.
			series = append(series, ChartSeries{Name: spec.Label(code)})
			continue
		}

		points := make([]ChartPoint, 0, len(groups))
		for _, g := range groups {
			points = append(points, ChartPoint{
				Label: fmt.Sprintf("%s — %s", g.Region, g.SubRegion),
				Value: g.Average,
			})
		}
		series = append(series, ChartSeries{Name: spec.Label(code), Data: points})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      fmt.Sprintf("Regional averages, %d", spec.BarChart.Year),
		XAxis:      "Region",
		YAxis:      "Average",
		Series:     series,
		ShowLegend: true,
		ShowGrid:   true,
	}
}
