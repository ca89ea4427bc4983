// Package klimalens turns World Bank climate/energy indicator exports into
// render-ready report view models.
//
// Usage:
//
//	import (
//	    "github.com/klimalens-org/klimalens/helpers"
//	    "github.com/klimalens-org/klimalens/report"
//	    "github.com/klimalens-org/klimalens/reshape"
//	)
//
//	rows, err := helpers.ParseIndicatorCSV(indicatorBytes)
//	meta, err := helpers.ParseCountryCSV(countryBytes)
//	obs := reshape.Load(rows, meta)
//	rep, err := report.Build(spec, obs)
//
// The pipeline reshapes the wide indicator table (one column per year) into a
// long observation set keyed by (country, indicator, year), left-joins ISO
// country metadata, and builds chart, choropleth, and table configurations.
// Rendering is someone else's job — klimalens never draws, colors, or lays
// out anything; it hands the renderer declarative configs and data.
package klimalens
