package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/evolution/config"
)

// Collector aggregates each completed generation's scores and forwards them
// to the structured log and the output manager.
type Collector struct {
	cfg *config.Config
	out *OutputManager
}

// NewCollector creates a collector. out may be nil (CSV output disabled).
func NewCollector(cfg *config.Config, out *OutputManager) *Collector {
	return &Collector{cfg: cfg, out: out}
}

// Record aggregates one generation's ranked scores, logs the summary, and
// appends a CSV row when output is enabled.
func (c *Collector) Record(generation int, scores []float64) GenerationStats {
	stats := ComputeGenerationStats(generation, scores)

	if c.cfg.Telemetry.LogStats {
		slog.Info("generation complete",
			"generation", stats.Generation,
			"population", stats.Population,
			"best", stats.Best,
			"mean", stats.Mean,
			"median", stats.Median,
			"p90", stats.P90,
			"worst", stats.Worst,
			"std_dev", stats.StdDev,
		)
	}

	if err := c.out.WriteGeneration(stats); err != nil {
		slog.Error("writing generation stats", "error", err)
	}

	return stats
}
