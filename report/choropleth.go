package report

import "github.com/klimalens-org/klimalens/reshape"

// ============================================================================
// CHOROPLETH BUILDER — Observations → country/value series
// ============================================================================

// BuildChoropleth produces the country→value series for one map section.
// ColorScale and Reversed pass through untouched — choosing and applying the
// scale belongs to the renderer.
func BuildChoropleth(spec *Spec, section ChoroplethSpec, obs []reshape.Observation) ChoroplethConfig {
	selected := reshape.FilterByYear(
		reshape.FilterByIndicator(obs, section.Indicator),
		reshape.Truncate(section.Year),
	)

	values := make([]ChoroplethValue, 0, len(selected))
	for _, o := range selected {
		values = append(values, ChoroplethValue{
			CountryCode: o.CountryCode,
			CountryName: o.CountryName,
			Value:       o.Measure,
		})
	}

	title := section.Title
	if title == "" {
		title = spec.Label(section.Indicator)
	}

	return ChoroplethConfig{
		Title:         title,
		IndicatorCode: section.Indicator,
		Year:          section.Year,
		ColorScale:    section.ColorScale,
		Reversed:      section.Reversed,
		Values:        values,
	}
}
