package report

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// REPORT SPEC — YAML report definition
// ============================================================================
// The report is fully described by configuration: which indicators appear in
// which sections, and the display label for each indicator code. Labels are
// an explicit enumerated mapping — nothing is inferred from the data.
// ============================================================================

// Spec describes one report.
type Spec struct {
	Title  string            `yaml:"title"`
	Labels map[string]string `yaml:"labels"` // indicator code → display label

	LineChart    *LineChartSpec    `yaml:"line_chart,omitempty"`
	BarChart     *BarChartSpec     `yaml:"bar_chart,omitempty"`
	Choropleths  []ChoroplethSpec  `yaml:"choropleths,omitempty"`
	RankingTable *RankingTableSpec `yaml:"ranking_table,omitempty"`
}

// LineChartSpec selects one indicator across years for a set of countries.
type LineChartSpec struct {
	Indicator string   `yaml:"indicator"`
	Countries []string `yaml:"countries"`
}

// BarChartSpec compares regional averages of several indicators in one year.
type BarChartSpec struct {
	Indicators []string `yaml:"indicators"`
	Year       int      `yaml:"year"`
}

// ChoroplethSpec parameterizes one map: indicator, title, color scale name,
// and whether the scale is reversed.
type ChoroplethSpec struct {
	Indicator  string `yaml:"indicator"`
	Title      string `yaml:"title"`
	Year       int    `yaml:"year"`
	ColorScale string `yaml:"color_scale"`
	Reversed   bool   `yaml:"reversed"`
}

// RankingTableSpec selects the pivoted comparison table. AnchorYear is the
// first pivot column; countries lacking a value there are dropped.
type RankingTableSpec struct {
	Indicator      string `yaml:"indicator"`
	AnchorYear     int    `yaml:"anchor_year"`
	ComparisonYear int    `yaml:"comparison_year"`
}

// ParseSpec parses and validates a YAML report spec.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse report spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that the spec has at least one section and a display label
// for every referenced indicator code.
func (s *Spec) Validate() error {
	if s.LineChart == nil && s.BarChart == nil && len(s.Choropleths) == 0 && s.RankingTable == nil {
		return fmt.Errorf("report spec has no sections")
	}

	for _, code := range s.referencedIndicators() {
		if _, ok := s.Labels[code]; !ok {
			return fmt.Errorf("report spec references indicator %q with no display label", code)
		}
	}
	return nil
}

// Label returns the display label for an indicator code, falling back to the
// code itself.
func (s *Spec) Label(code string) string {
	if label, ok := s.Labels[code]; ok {
		return label
	}
	return code
}

func (s *Spec) referencedIndicators() []string {
	var codes []string
	if s.LineChart != nil {
		codes = append(codes, s.LineChart.Indicator)
	}
	if s.BarChart != nil {
		codes = append(codes, s.BarChart.Indicators...)
	}
	for _, c := range s.Choropleths {
		codes = append(codes, c.Indicator)
	}
	if s.RankingTable != nil {
		codes = append(codes, s.RankingTable.Indicator)
	}
	return codes
}
