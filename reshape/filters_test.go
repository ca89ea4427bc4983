package reshape

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleObservations() []Observation {
	obs := []Observation{
		{CountryCode: "USA", IndicatorCode: "EN.ATM.CO2E.KT", Year: Truncate(2016), Measure: 10},
		{CountryCode: "USA", IndicatorCode: "EN.ATM.CO2E.KT", Year: Truncate(2017), Measure: 11},
		{CountryCode: "CHN", IndicatorCode: "EN.ATM.CO2E.KT", Year: Truncate(2017), Measure: 20},
		{CountryCode: "USA", IndicatorCode: "EG.USE.ELEC.KH.PC", Year: Truncate(2017), Measure: 30},
		{CountryCode: "IND", IndicatorCode: "EG.USE.ELEC.KH.PC", Year: Truncate(2018), Measure: 40},
	}
	return obs
}

func TestFilterByIndicator(t *testing.T) {
	got := FilterByIndicator(sampleObservations(), "EG.USE.ELEC.KH.PC")
	assert.Len(t, got, 2)

	assert.Empty(t, FilterByIndicator(sampleObservations(), "NO.SUCH.CODE"))
}

func TestFilterByCountry(t *testing.T) {
	got := FilterByCountry(sampleObservations(), "USA")
	assert.Len(t, got, 3)

	assert.Empty(t, FilterByCountry(sampleObservations(), "ZZZ"))
}

func TestFilterByYear(t *testing.T) {
	obs := sampleObservations()

	got := FilterByYear(obs, Truncate(2017))
	assert.Len(t, got, 3, "size equals count of records in that year")

	// Any instant within the year matches the truncated date.
	midYear := time.Date(2017, time.June, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, got, FilterByYear(obs, midYear))

	assert.Empty(t, FilterByYear(obs, Truncate(1961)))
}

func TestFilterOrderIndependence(t *testing.T) {
	obs := sampleObservations()

	indicatorFirst := FilterByCountry(FilterByIndicator(obs, "EN.ATM.CO2E.KT"), "USA")
	countryFirst := FilterByIndicator(FilterByCountry(obs, "USA"), "EN.ATM.CO2E.KT")

	var combined []Observation
	for _, o := range obs {
		if o.IndicatorCode == "EN.ATM.CO2E.KT" && o.CountryCode == "USA" {
			combined = append(combined, o)
		}
	}

	if diff := cmp.Diff(indicatorFirst, countryFirst); diff != "" {
		t.Errorf("filter order changed the result (-indicatorFirst +countryFirst):\n%s", diff)
	}
	if diff := cmp.Diff(combined, indicatorFirst); diff != "" {
		t.Errorf("chained filters differ from single-pass filter (-combined +chained):\n%s", diff)
	}
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	obs := sampleObservations()
	before := make([]Observation, len(obs))
	copy(before, obs)

	FilterByIndicator(obs, "EN.ATM.CO2E.KT")
	FilterByCountry(obs, "USA")
	FilterByYear(obs, Truncate(2017))

	if diff := cmp.Diff(before, obs); diff != "" {
		t.Errorf("input mutated by filtering:\n%s", diff)
	}
}
