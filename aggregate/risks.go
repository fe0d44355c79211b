package aggregate

import (
	"fmt"
	"sort"
	"time"

	"smartcity-asset-sync/assets"
)

// Risk types.
const (
	RiskWarrantyExpired  = "warranty_expired"
	RiskWarrantyExpiring = "warranty_expiring"
	RiskMaintenance      = "maintenance"
)

// Severity levels, ordered critical < high < medium < low.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

var severityRank = map[string]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

// maxRisks caps the published risk list.
const maxRisks = 20

// Risk is a derived warning about one asset. Regenerated on every run from
// the current snapshot; it carries no identity across runs.
type Risk struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Asset       string `json:"asset"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// ExtractRisks derives the risk list. The warranty check and the maintenance
// check are independent, so one asset can contribute up to two risks. The
// result is sorted by severity (stable: ties keep scan order) and capped at
// maxRisks.
func ExtractRisks(list []assets.Asset, now time.Time) []Risk {
	risks := []Risk{}
	horizon := now.Add(recentWindow)

	for _, a := range list {
		if t, ok := parseDate(a.WarrantyExpiry); ok {
			if !t.After(now) {
				risks = append(risks, Risk{
					Type:        RiskWarrantyExpired,
					Severity:    SeverityHigh,
					Asset:       a.Name,
					Description: fmt.Sprintf("보증기간 만료 (%s)", a.WarrantyExpiry),
					Action:      "보증 연장 또는 유지보수 계약 검토",
				})
			} else if t.Before(horizon) {
				risks = append(risks, Risk{
					Type:        RiskWarrantyExpiring,
					Severity:    SeverityMedium,
					Asset:       a.Name,
					Description: fmt.Sprintf("보증기간 만료 임박 (%s)", a.WarrantyExpiry),
					Action:      "보증 연장 준비",
				})
			}
		}

		if a.Status == assets.StatusNeedsInspection || a.Status == assets.StatusInRepair ||
			a.Condition == assets.ConditionPoor {
			severity := SeverityMedium
			if a.Status == assets.StatusInRepair {
				severity = SeverityHigh
			}
			state := a.Status
			if state == "" {
				state = a.Condition
			}
			risks = append(risks, Risk{
				Type:        RiskMaintenance,
				Severity:    severity,
				Asset:       a.Name,
				Description: fmt.Sprintf("자산 상태: %s", state),
				Action:      "유지보수 조치 필요",
			})
		}
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return severityRank[risks[i].Severity] < severityRank[risks[j].Severity]
	})
	if len(risks) > maxRisks {
		risks = risks[:maxRisks]
	}
	return risks
}
