package aggregate

import (
	"time"

	"smartcity-asset-sync/assets"
)

// Reference carries the externally fixed constants the aggregator needs,
// injected so tests can substitute them.
type Reference struct {
	TotalBudget   float64
	InfraProjects []string
}

// Result bundles every aggregate view derived from one snapshot.
type Result struct {
	Statistics     Statistics
	Risks          []Risk
	Budget         Budget
	UpcomingAssets []UpcomingAsset
	InfraProjects  []InfraProject
}

// Run derives all aggregate views from one asset snapshot. The snapshot is
// never mutated; rerunning with the same inputs yields an identical Result.
func Run(list []assets.Asset, now time.Time, ref Reference) Result {
	stats := CalculateStatistics(list, now)
	return Result{
		Statistics:     stats,
		Risks:          ExtractRisks(list, now),
		Budget:         CalculateBudget(stats, ref.TotalBudget),
		UpcomingAssets: ExtractUpcomingAssets(list, now),
		InfraProjects:  ExtractInfraProjects(list, ref.InfraProjects),
	}
}
