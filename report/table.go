package report

import (
	"fmt"
	"math"

	"github.com/klimalens-org/klimalens/reshape"
)

// ============================================================================
// RANKING TABLE BUILDER — Pivoted comparison with conditional classes
// ============================================================================

// Change smaller than this (in percent) is formatted as neutral.
const neutralChangeThreshold = 0.5

// BuildRankingTable pivots one indicator over the anchor and comparison
// years, one row per country. The change column carries a conditional-format
// class: positive when the measure grew by more than the neutral threshold,
// negative when it shrank, neutral otherwise or when either cell is missing.
// Countries without an anchor-year value are dropped by the pivot.
func BuildRankingTable(spec *Spec, obs []reshape.Observation) *TableData {
	if spec.RankingTable == nil {
		return nil
	}
	rt := spec.RankingTable

	wide := reshape.PivotWide(
		reshape.FilterByIndicator(obs, rt.Indicator),
		[]int{rt.AnchorYear, rt.ComparisonYear},
	)

	table := &TableData{
		Title: spec.Label(rt.Indicator),
		Columns: []string{
			"Country",
			fmt.Sprintf("%d", rt.AnchorYear),
			fmt.Sprintf("%d", rt.ComparisonYear),
			"Change",
		},
	}

	for _, row := range wide {
		anchor := row.Values[rt.AnchorYear]
		comparison := row.Values[rt.ComparisonYear]

		cells := []TableCell{
			{Text: row.CountryName},
			{Text: formatCell(anchor)},
			{Text: formatCell(comparison)},
			changeCell(anchor, comparison),
		}
		table.Rows = append(table.Rows, TableRow{Cells: cells})
	}
	return table
}

func formatCell(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// changeCell formats percent change between anchor and comparison with its
// conditional class.
func changeCell(anchor, comparison *float64) TableCell {
	if anchor == nil || comparison == nil {
		return TableCell{Text: "N/A", Class: ClassNeutral}
	}
	if *anchor == 0 {
		return TableCell{Text: "N/A", Class: ClassNeutral}
	}

	pct := (*comparison - *anchor) / math.Abs(*anchor) * 100

	class := ClassNeutral
	if pct > neutralChangeThreshold {
		class = ClassPositive
	} else if pct < -neutralChangeThreshold {
		class = ClassNegative
	}
	return TableCell{Text: fmt.Sprintf("%+.2f%%", pct), Class: class}
}
