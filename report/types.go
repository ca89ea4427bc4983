package report

// ============================================================================
// REPORT TYPES — Render-ready view models
// ============================================================================
// Everything here is declarative input for an external renderer. A config
// names a color scale or a format class; it never computes a color, a pixel,
// or a projection.
// ============================================================================

// Report is the full set of view models for one run, in document order.
type Report struct {
	Title        string             `json:"title"`
	LineChart    *ChartConfig       `json:"lineChart,omitempty"`
	BarChart     *ChartConfig       `json:"barChart,omitempty"`
	Choropleths  []ChoroplethConfig `json:"choropleths,omitempty"`
	RankingTable *TableData         `json:"rankingTable,omitempty"`
}

// ChartConfig defines how to render a line or bar chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "line", "bar"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries is one data series in a chart.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint is a single labelled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChoroplethConfig defines one map section: a value per country code plus
// the scale parameterization carried through from the report spec.
type ChoroplethConfig struct {
	Title         string            `json:"title"`
	IndicatorCode string            `json:"indicatorCode"`
	Year          int               `json:"year"`
	ColorScale    string            `json:"colorScale"`
	Reversed      bool              `json:"reversed"`
	Values        []ChoroplethValue `json:"values"`
}

// ChoroplethValue is one country's value on the map.
type ChoroplethValue struct {
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	Value       float64 `json:"value"`
}

// TableData defines a conditionally formatted table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// TableRow is one table row.
type TableRow struct {
	Cells []TableCell `json:"cells"`
}

// TableCell is one cell with an optional conditional-format class.
// Class is one of "positive", "negative", "neutral", or empty for plain
// cells; the renderer maps classes to colors.
type TableCell struct {
	Text  string `json:"text"`
	Class string `json:"class,omitempty"`
}

// Conditional-format classes.
const (
	ClassPositive = "positive"
	ClassNegative = "negative"
	ClassNeutral  = "neutral"
)
