package schema

import "fmt"

// ============================================================================
// LAYOUT — Maps CSV header positions onto the column contract
// ============================================================================

// Role classifies a column in the wide indicator table.
type Role int

const (
	RoleIdentity Role = iota
	RoleYear
	RoleDiscarded
)

// Column is one classified header position.
type Column struct {
	Index int
	Name  string // original header text
	Role  Role
	Key   string // identity key, for RoleIdentity
	Year  int    // parsed year, for RoleYear
}

// DiscardedColumn records why a column was excluded from the layout.
type DiscardedColumn struct {
	Name   string
	Reason string
}

// Layout is the classified header of a wide indicator table.
type Layout struct {
	Columns   []Column
	Discarded []DiscardedColumn

	identity map[string]int // identity key → column index
}

// BuildLayout classifies a CSV header row against the column contract.
// Identity columns are matched by snake_case name. Every other column must
// parse as a year label; years outside [MinYear, MaxYear] are discarded with
// a reason, and a label with no year in it is a MalformedYearLabelError.
// All four identity columns must be present.
func BuildLayout(headers []string) (*Layout, error) {
	identityKeys := map[string]bool{
		ColCountryName:   true,
		ColCountryCode:   true,
		ColIndicatorName: true,
		ColIndicatorCode: true,
	}

	layout := &Layout{identity: make(map[string]int)}
	for i, h := range headers {
		key := ToSnakeCase(h)
		if identityKeys[key] {
			layout.Columns = append(layout.Columns, Column{Index: i, Name: h, Role: RoleIdentity, Key: key})
			layout.identity[key] = i
			continue
		}

		year, err := ParseYearLabel(h)
		if err != nil {
			return nil, err
		}
		if !InRange(year) {
			layout.Columns = append(layout.Columns, Column{Index: i, Name: h, Role: RoleDiscarded, Year: year})
			layout.Discarded = append(layout.Discarded, DiscardedColumn{
				Name:   h,
				Reason: fmt.Sprintf("year %d outside contract range %d–%d", year, MinYear, MaxYear),
			})
			continue
		}
		layout.Columns = append(layout.Columns, Column{Index: i, Name: h, Role: RoleYear, Year: year})
	}

	for key := range identityKeys {
		if _, ok := layout.identity[key]; !ok {
			return nil, fmt.Errorf("indicator table header missing required column %q", key)
		}
	}
	return layout, nil
}

// IdentityIndex returns the column index for an identity key.
func (l *Layout) IdentityIndex(key string) (int, bool) {
	i, ok := l.identity[key]
	return i, ok
}

// YearColumns returns the in-range year columns in header order.
func (l *Layout) YearColumns() []Column {
	var cols []Column
	for _, c := range l.Columns {
		if c.Role == RoleYear {
			cols = append(cols, c)
		}
	}
	return cols
}
