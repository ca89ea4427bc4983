package reshape

// ============================================================================
// PIVOT — Long-to-wide reshape for tabular views
// ============================================================================

// WideRow is one pivoted row: a country with one value per requested year.
// A missing cell is nil.
type WideRow struct {
	CountryName string
	Values      map[int]*float64 // requested year → measure
}

// PivotWide reshapes observations back into one row per country name with a
// column per requested year. Rows appear in country-discovery order. A row
// is dropped entirely when the first requested year — the anchor — has no
// value for that country; this mirrors the data-quality filter applied
// before tabular display. Callers normally filter to a single indicator
// first; with mixed indicators the last observation per (country, year)
// wins.
func PivotWide(obs []Observation, years []int) []WideRow {
	if len(years) == 0 {
		return nil
	}

	wanted := make(map[int]bool, len(years))
	for _, y := range years {
		wanted[y] = true
	}

	cells := make(map[string]map[int]*float64)
	var order []string
	for _, o := range obs {
		year := o.Year.Year()
		if !wanted[year] {
			continue
		}
		row, seen := cells[o.CountryName]
		if !seen {
			row = make(map[int]*float64, len(years))
			cells[o.CountryName] = row
			order = append(order, o.CountryName)
		}
		v := o.Measure
		row[year] = &v
	}

	anchor := years[0]
	var out []WideRow
	for _, name := range order {
		row := cells[name]
		if row[anchor] == nil {
			continue
		}
		values := make(map[int]*float64, len(years))
		for _, y := range years {
			values[y] = row[y]
		}
		out = append(out, WideRow{CountryName: name, Values: values})
	}
	return out
}
