// Package telemetry aggregates per-generation score statistics and writes
// them to structured logs and CSV.
package telemetry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats holds aggregated score statistics for one generation.
type GenerationStats struct {
	Generation int     `csv:"generation"`
	Population int     `csv:"population"`
	Best       float64 `csv:"best"`
	Mean       float64 `csv:"mean"`
	Median     float64 `csv:"median"`
	P90        float64 `csv:"p90"`
	Worst      float64 `csv:"worst"`
	StdDev     float64 `csv:"std_dev"`
}

// ComputeGenerationStats aggregates a generation's scores. NaN scores are
// excluded from the aggregates; an all-NaN or empty slice yields zero stats.
func ComputeGenerationStats(generation int, scores []float64) GenerationStats {
	finite := make([]float64, 0, len(scores))
	for _, s := range scores {
		if !math.IsNaN(s) {
			finite = append(finite, s)
		}
	}

	gs := GenerationStats{Generation: generation, Population: len(scores)}
	if len(finite) == 0 {
		return gs
	}

	sort.Float64s(finite)

	gs.Worst = finite[0]
	gs.Best = finite[len(finite)-1]
	gs.Mean = stat.Mean(finite, nil)
	gs.Median = stat.Quantile(0.5, stat.Empirical, finite, nil)
	gs.P90 = stat.Quantile(0.9, stat.Empirical, finite, nil)
	if len(finite) > 1 {
		gs.StdDev = stat.StdDev(finite, nil)
	}

	return gs
}
