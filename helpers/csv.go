package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klimalens-org/klimalens/reshape"
	"github.com/klimalens-org/klimalens/schema"
)

// ============================================================================
// CSV HELPERS — Raw bytes → typed rows
// ============================================================================
// The caller reads each file from wherever it lives; these helpers convert
// the bytes into the reshape input types. Both tables are read fully into
// memory — no streaming. Header problems are fatal; malformed data rows and
// unparsable cells are absorbed as absence.
// ============================================================================

// ParseIndicatorCSV parses the wide-format indicator table.
// The header is classified against the schema contract first, so a column
// that is neither identity nor a parseable year aborts with
// schema.MalformedYearLabelError. Blank and non-numeric cells become absent
// values rather than errors.
func ParseIndicatorCSV(data []byte) ([]reshape.RawIndicatorRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read indicator CSV header: %w", err)
	}

	layout, err := schema.BuildLayout(headers)
	if err != nil {
		return nil, err
	}

	nameIdx, _ := layout.IdentityIndex(schema.ColCountryName)
	codeIdx, _ := layout.IdentityIndex(schema.ColCountryCode)
	indNameIdx, _ := layout.IdentityIndex(schema.ColIndicatorName)
	indCodeIdx, _ := layout.IdentityIndex(schema.ColIndicatorCode)
	yearCols := layout.YearColumns()

	var rows []reshape.RawIndicatorRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		row := reshape.RawIndicatorRow{
			CountryName:   field(record, nameIdx),
			CountryCode:   field(record, codeIdx),
			IndicatorName: field(record, indNameIdx),
			IndicatorCode: field(record, indCodeIdx),
			Values:        make(map[int]*float64, len(yearCols)),
		}

		for _, col := range yearCols {
			cell := field(record, col.Index)
			if cell == "" {
				row.Values[col.Year] = nil
				continue
			}
			if f, err := strconv.ParseFloat(cell, 64); err == nil {
				v := f
				row.Values[col.Year] = &v
			} else {
				row.Values[col.Year] = nil
			}
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// ParseCountryCSV parses the ISO country reference table.
// alpha_3 is required in the header; rows with an empty alpha_3 are skipped.
// region and sub_region are optional columns.
func ParseCountryCSV(data []byte) ([]reshape.CountryMeta, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read country CSV header: %w", err)
	}

	alpha3Idx, regionIdx, subRegionIdx := -1, -1, -1
	for i, h := range headers {
		switch schema.ToSnakeCase(h) {
		case schema.ColAlpha3:
			alpha3Idx = i
		case schema.ColRegion:
			regionIdx = i
		case schema.ColSubRegion:
			subRegionIdx = i
		}
	}
	if alpha3Idx < 0 {
		return nil, fmt.Errorf("country table header missing required column %q", schema.ColAlpha3)
	}

	var meta []reshape.CountryMeta
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		alpha3 := field(record, alpha3Idx)
		if alpha3 == "" {
			continue
		}
		meta = append(meta, reshape.CountryMeta{
			Alpha3:    alpha3,
			Region:    field(record, regionIdx),
			SubRegion: field(record, subRegionIdx),
		})
	}
	return meta, nil
}

// field returns the trimmed cell at index, or "" when out of range.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
