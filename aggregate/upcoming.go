package aggregate

import (
	"sort"
	"time"

	"smartcity-asset-sync/assets"
)

// maxUpcoming caps the upcoming-delivery list.
const maxUpcoming = 10

// UpcomingAsset is one asset awaiting delivery, shaped for the dashboard
// table.
type UpcomingAsset struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	ExpectedDate string  `json:"expectedDate"`
	Value        float64 `json:"value"`
	Supplier     string  `json:"supplier"`
}

// ExtractUpcomingAssets selects assets whose expected delivery is strictly in
// the future, soonest first, capped at maxUpcoming.
func ExtractUpcomingAssets(list []assets.Asset, now time.Time) []UpcomingAsset {
	type pending struct {
		asset assets.Asset
		at    time.Time
	}
	var future []pending
	for _, a := range list {
		if t, ok := parseDate(a.ExpectedDelivery); ok && t.After(now) {
			future = append(future, pending{asset: a, at: t})
		}
	}
	sort.SliceStable(future, func(i, j int) bool { return future[i].at.Before(future[j].at) })
	if len(future) > maxUpcoming {
		future = future[:maxUpcoming]
	}

	out := make([]UpcomingAsset, 0, len(future))
	for _, p := range future {
		value := p.asset.TotalValue
		if value == 0 {
			value = p.asset.UnitPrice
		}
		out = append(out, UpcomingAsset{
			Name:         p.asset.Name,
			Category:     p.asset.Category,
			ExpectedDate: p.asset.ExpectedDelivery,
			Value:        value,
			Supplier:     p.asset.Supplier,
		})
	}
	return out
}
