package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klimalens-org/klimalens/reshape"
)

func testSpec(t *testing.T) *Spec {
	t.Helper()
	spec, err := ParseSpec(specYAML)
	require.NoError(t, err)
	return spec
}

func testObservations() []reshape.Observation {
	return []reshape.Observation{
		{CountryName: "United States", CountryCode: "USA", IndicatorCode: "EN.ATM.CO2E.KT",
			Year: reshape.Truncate(1990), Measure: 4844520, Region: "Americas", SubRegion: "Northern America"},
		{CountryName: "United States", CountryCode: "USA", IndicatorCode: "EN.ATM.CO2E.KT",
			Year: reshape.Truncate(2014), Measure: 5254279.29, Region: "Americas", SubRegion: "Northern America"},
		{CountryName: "China", CountryCode: "CHN", IndicatorCode: "EN.ATM.CO2E.KT",
			Year: reshape.Truncate(1990), Measure: 2173360, Region: "Asia", SubRegion: "Eastern Asia"},
		{CountryName: "China", CountryCode: "CHN", IndicatorCode: "EN.ATM.CO2E.KT",
			Year: reshape.Truncate(2014), Measure: 10291926.88, Region: "Asia", SubRegion: "Eastern Asia"},
		{CountryName: "Germany", CountryCode: "DEU", IndicatorCode: "EN.ATM.CO2E.KT",
			Year: reshape.Truncate(2014), Measure: 719883.0, Region: "Europe", SubRegion: "Western Europe"},
		{CountryName: "United States", CountryCode: "USA", IndicatorCode: "EG.USE.ELEC.KH.PC",
			Year: reshape.Truncate(2014), Measure: 12984.06, Region: "Americas", SubRegion: "Northern America"},
	}
}

func TestBuildLineChart(t *testing.T) {
	chart := BuildLineChart(testSpec(t), testObservations())

	require.NotNil(t, chart)
	assert.Equal(t, "line", chart.ChartType)
	require.Len(t, chart.Series, 3, "one series per requested country")

	usa := chart.Series[0]
	assert.Equal(t, "United States", usa.Name)
	require.Len(t, usa.Data, 2)
	assert.Equal(t, "1990", usa.Data[0].Label)
	assert.Equal(t, "2014", usa.Data[1].Label)

	// India has no observations: empty series, legend slot preserved.
	assert.Equal(t, "IND", chart.Series[2].Name)
	assert.Empty(t, chart.Series[2].Data)
}

func TestBuildBarChart(t *testing.T) {
	chart := BuildBarChart(testSpec(t), testObservations())

	require.NotNil(t, chart)
	assert.Equal(t, "bar", chart.ChartType)
	require.Len(t, chart.Series, 2, "one series per indicator")

	co2 := chart.Series[0]
	assert.Equal(t, "CO2 emissions (kt)", co2.Name)
	require.Len(t, co2.Data, 3)
	// Descending regional average for 2014.
	assert.Equal(t, "Asia — Eastern Asia", co2.Data[0].Label)
	assert.Equal(t, "Americas — Northern America", co2.Data[1].Label)
	assert.Equal(t, "Europe — Western Europe", co2.Data[2].Label)
}

func TestBuildChoroplethPassesScaleThrough(t *testing.T) {
	spec := testSpec(t)

	config := BuildChoropleth(spec, spec.Choropleths[1], testObservations())

	assert.Equal(t, "Viridis", config.ColorScale)
	assert.True(t, config.Reversed)
	assert.Equal(t, "Electric power consumption (kWh per capita)", config.Title, "label fills a missing title")
	require.Len(t, config.Values, 1)
	assert.Equal(t, "USA", config.Values[0].CountryCode)
	assert.Equal(t, 12984.06, config.Values[0].Value)
}

func TestBuildRankingTable(t *testing.T) {
	table := BuildRankingTable(testSpec(t), testObservations())

	require.NotNil(t, table)
	assert.Equal(t, []string{"Country", "1990", "2014", "Change"}, table.Columns)
	require.Len(t, table.Rows, 2, "Germany lacks the 1990 anchor and is dropped")

	usa := table.Rows[0].Cells
	assert.Equal(t, "United States", usa[0].Text)
	assert.Equal(t, ClassPositive, usa[3].Class)

	chn := table.Rows[1].Cells
	assert.Equal(t, "China", chn[0].Text)
	assert.Equal(t, ClassPositive, chn[3].Class)
}

func TestRankingTableChangeClasses(t *testing.T) {
	tests := []struct {
		name       string
		anchor     *float64
		comparison *float64
		class      string
	}{
		{"growth", f(100), f(150), ClassPositive},
		{"decline", f(100), f(50), ClassNegative},
		{"flat", f(100), f(100.1), ClassNeutral},
		{"missing comparison", f(100), nil, ClassNeutral},
		{"zero anchor", f(0), f(10), ClassNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, changeCell(tt.anchor, tt.comparison).Class)
		})
	}
}

func TestBuildEmptyObservations(t *testing.T) {
	rep, err := Build(testSpec(t), nil)

	require.NoError(t, err, "empty data must not fail the build")
	require.NotNil(t, rep.LineChart)
	require.NotNil(t, rep.BarChart)
	require.Len(t, rep.Choropleths, 2)
	assert.Empty(t, rep.Choropleths[0].Values)
	require.NotNil(t, rep.RankingTable)
	assert.Empty(t, rep.RankingTable.Rows)
}

func TestBuildFullReport(t *testing.T) {
	rep, err := Build(testSpec(t), testObservations())

	require.NoError(t, err)
	assert.Equal(t, "Climate & Energy Report", rep.Title)
	assert.NotNil(t, rep.LineChart)
	assert.NotNil(t, rep.BarChart)
	assert.Len(t, rep.Choropleths, 2)
	assert.NotNil(t, rep.RankingTable)
}

func f(v float64) *float64 { return &v }
