package report

import "github.com/klimalens-org/klimalens/reshape"

// ============================================================================
// REPORT ASSEMBLY
// ============================================================================

// Build assembles every section of the spec over one observation set.
// An empty observation set produces a structurally valid report with empty
// sections — data sparsity never fails the run.
func Build(spec *Spec, obs []reshape.Observation) (*Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rep := &Report{
		Title:        spec.Title,
		LineChart:    BuildLineChart(spec, obs),
		BarChart:     BuildBarChart(spec, obs),
		RankingTable: BuildRankingTable(spec, obs),
	}
	for _, section := range spec.Choropleths {
		rep.Choropleths = append(rep.Choropleths, BuildChoropleth(spec, section, obs))
	}
	return rep, nil
}
