// Package aggregate derives the dashboard's statistic views from one asset
// snapshot. Every function here is pure: the same snapshot, clock, and
// reference constants always produce the same output.
package aggregate

import (
	"time"

	"smartcity-asset-sync/assets"
)

// recentWindow bounds the "recently added" and "warranty expiring" checks.
const recentWindow = 30 * 24 * time.Hour

// Bucket is an aggregate count/value pair for one grouping key.
type Bucket struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// Statistics is the single-pass roll-up over the asset collection.
type Statistics struct {
	TotalAssets        int               `json:"totalAssets"`
	TotalValue         float64           `json:"totalValue"`
	ByCategory         map[string]Bucket `json:"byCategory"`
	ByManager          map[string]Bucket `json:"byManager"`
	ByStatus           map[string]Bucket `json:"byStatus"`
	ByProject          map[string]Bucket `json:"byProject"`
	WarrantyActive     int               `json:"warrantyActive"`
	WarrantyExpired    int               `json:"warrantyExpired"`
	RecentlyAdded      int               `json:"recentlyAdded"`
	UpcomingDeliveries int               `json:"upcomingDeliveries"`
}

// CalculateStatistics folds the asset collection into Statistics. Assets with
// an empty grouping field land in the sentinel buckets; no asset is dropped
// or double-counted, so bucket counts always partition the collection.
func CalculateStatistics(list []assets.Asset, now time.Time) Statistics {
	stats := Statistics{
		TotalAssets: len(list),
		ByCategory:  map[string]Bucket{},
		ByManager:   map[string]Bucket{},
		ByStatus:    map[string]Bucket{},
		ByProject:   map[string]Bucket{},
	}
	cutoff := now.Add(-recentWindow)

	for _, a := range list {
		value := a.Value()
		stats.TotalValue += value

		accumulate(stats.ByCategory, keyOr(a.Category, assets.CategoryUnclassified), value)
		accumulate(stats.ByManager, keyOr(a.Manager, assets.ManagerUnassigned), value)
		accumulate(stats.ByStatus, keyOr(a.Status, assets.StatusUnknown), value)
		accumulate(stats.ByProject, keyOr(a.Project, assets.ProjectGeneral), value)

		if t, ok := parseDate(a.WarrantyExpiry); ok {
			if t.After(now) {
				stats.WarrantyActive++
			} else {
				stats.WarrantyExpired++
			}
		}
		if t, ok := parseDate(a.CreatedAt); ok && t.After(cutoff) {
			stats.RecentlyAdded++
		}
		if t, ok := parseDate(a.ExpectedDelivery); ok && t.After(now) {
			stats.UpcomingDeliveries++
		}
	}
	return stats
}

func accumulate(m map[string]Bucket, key string, value float64) {
	b := m[key]
	b.Count++
	b.Value += value
	m[key] = b
}

func keyOr(key, sentinel string) string {
	if key == "" {
		return sentinel
	}
	return key
}

// parseDate accepts the two date shapes Notion emits: plain dates from date
// properties and RFC3339 timestamps from the page envelope.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
