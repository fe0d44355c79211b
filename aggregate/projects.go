package aggregate

import (
	"math"
	"strings"

	"smartcity-asset-sync/assets"
)

// Infra project status values.
const (
	ProjectComplete   = "완료"
	ProjectInProgress = "진행중"
)

// InfraProject is the progress roll-up for one of the fixed infrastructure
// projects.
type InfraProject struct {
	Name            string  `json:"name"`
	TotalAssets     int     `json:"totalAssets"`
	CompletedAssets int     `json:"completedAssets"`
	Progress        int     `json:"progress"`
	Budget          float64 `json:"budget"`
	Status          string  `json:"status"`
}

// ExtractInfraProjects rolls up assets under each project token. An asset
// belongs to a project when its project, category or name contains the token
// (case-sensitive, as stored). Projects with no matching assets are omitted.
func ExtractInfraProjects(list []assets.Asset, tokens []string) []InfraProject {
	projects := []InfraProject{}
	for _, token := range tokens {
		var total, completed int
		var budget float64
		for _, a := range list {
			if !strings.Contains(a.Project, token) &&
				!strings.Contains(a.Category, token) &&
				!strings.Contains(a.Name, token) {
				continue
			}
			total++
			budget += a.TotalValue
			if isComplete(a.Status) {
				completed++
			}
		}
		if total == 0 {
			continue
		}
		status := ProjectInProgress
		if completed == total {
			status = ProjectComplete
		}
		projects = append(projects, InfraProject{
			Name:            token,
			TotalAssets:     total,
			CompletedAssets: completed,
			Progress:        int(math.Round(float64(completed) / float64(total) * 100)),
			Budget:          budget,
			Status:          status,
		})
	}
	return projects
}

func isComplete(status string) bool {
	return status == assets.StatusInService ||
		status == assets.StatusComplete ||
		status == assets.StatusDelivered
}
