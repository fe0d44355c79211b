// Package dashboard merges the aggregate documents plus reference data into
// the single consumer-ready document behind the dashboard page. Pure
// reshaping and formatting; no aggregate value is recomputed here.
package dashboard

import (
	"sort"
	"time"

	"smartcity-asset-sync/aggregate"
	"smartcity-asset-sync/assets"
)

// maxRecentAssets and maxRisks cap the presentation tables.
const (
	maxRecentAssets = 10
	maxRisks        = 10
)

// KPI is the headline number block.
type KPI struct {
	TotalAssets         int     `json:"totalAssets"`
	TotalValue          float64 `json:"totalValue"`
	TotalValueFormatted string  `json:"totalValueFormatted"`
	OperationRate       int     `json:"operationRate"`
	ExecutionRate       float64 `json:"executionRate"`
	WarrantyActiveRate  int     `json:"warrantyActiveRate"`
	DaysRemaining       int     `json:"daysRemaining"`
}

// CategoryEntry is one slice of the category chart.
type CategoryEntry struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// ManagerEntry is one bar of the per-manager chart.
type ManagerEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecentAsset is one row of the latest-additions table, already formatted.
type RecentAsset struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Value    string `json:"value"`
	Manager  string `json:"manager"`
	Date     string `json:"date"`
}

// ProjectView decorates an infra project with its formatted budget.
type ProjectView struct {
	aggregate.InfraProject
	BudgetFormatted string `json:"budgetFormatted"`
}

// UpcomingView decorates an upcoming asset with formatted value and date.
type UpcomingView struct {
	aggregate.UpcomingAsset
	ValueFormatted        string `json:"valueFormatted"`
	ExpectedDateFormatted string `json:"expectedDateFormatted"`
}

// BudgetView decorates the budget with formatted amounts.
type BudgetView struct {
	aggregate.Budget
	TotalFormatted     string `json:"totalFormatted"`
	ExecutedFormatted  string `json:"executedFormatted"`
	RemainingFormatted string `json:"remainingFormatted"`
}

// Data is the composed dashboard document.
type Data struct {
	LastSync   string `json:"lastSync"`
	SyncStatus string `json:"syncStatus"`

	KPI KPI `json:"kpi"`

	CategoryChart []CategoryEntry `json:"categoryChart"`
	ManagerChart  []ManagerEntry  `json:"managerChart"`

	RecentAssets   []RecentAsset    `json:"recentAssets"`
	InfraProjects  []ProjectView    `json:"infraProjects"`
	UpcomingAssets []UpcomingView   `json:"upcomingAssets"`
	Risks          []aggregate.Risk `json:"risks"`
	Budget         BudgetView       `json:"budget"`
}

// Input is everything Compose consumes: the persisted documents of the last
// successful sync plus the sync status line.
type Input struct {
	Assets         []assets.Asset
	Statistics     aggregate.Statistics
	InfraProjects  []aggregate.InfraProject
	UpcomingAssets []aggregate.UpcomingAsset
	Risks          []aggregate.Risk
	Budget         aggregate.Budget

	LastSync   string
	SyncStatus string
}

// Compose builds the dashboard document. target is the program end date for
// the D-Day counter; now is injected for reproducible output.
func Compose(in Input, target, now time.Time) Data {
	status := in.SyncStatus
	if status == "" {
		status = "unknown"
	}

	if in.Budget.ByCategory == nil {
		in.Budget.ByCategory = []aggregate.CategoryBudget{}
	}

	warrantyRate := 0
	if in.Statistics.TotalAssets > 0 {
		warrantyRate = int(float64(in.Statistics.WarrantyActive) / float64(in.Statistics.TotalAssets) * 100)
	}

	data := Data{
		LastSync:   in.LastSync,
		SyncStatus: status,
		KPI: KPI{
			TotalAssets:         in.Statistics.TotalAssets,
			TotalValue:          in.Statistics.TotalValue,
			TotalValueFormatted: FormatCurrency(in.Statistics.TotalValue),
			OperationRate:       100,
			ExecutionRate:       in.Budget.ExecutionRate,
			WarrantyActiveRate:  warrantyRate,
			DaysRemaining:       DaysRemaining(target, now),
		},
		CategoryChart:  categoryChart(in.Statistics.ByCategory),
		ManagerChart:   managerChart(in.Statistics.ByManager),
		RecentAssets:   recentAssets(in.Assets),
		InfraProjects:  []ProjectView{},
		UpcomingAssets: []UpcomingView{},
		Risks:          in.Risks,
		Budget: BudgetView{
			Budget:             in.Budget,
			TotalFormatted:     FormatCurrency(in.Budget.Total),
			ExecutedFormatted:  FormatCurrency(in.Budget.Executed),
			RemainingFormatted: FormatCurrency(in.Budget.Remaining),
		},
	}

	for _, p := range in.InfraProjects {
		data.InfraProjects = append(data.InfraProjects, ProjectView{
			InfraProject:    p,
			BudgetFormatted: FormatCurrency(p.Budget),
		})
	}
	for _, u := range in.UpcomingAssets {
		view := UpcomingView{UpcomingAsset: u, ValueFormatted: FormatCurrency(u.Value)}
		if t, ok := parseDate(u.ExpectedDate); ok {
			view.ExpectedDateFormatted = formatKoreanDate(t)
		} else {
			view.ExpectedDateFormatted = "-"
		}
		data.UpcomingAssets = append(data.UpcomingAssets, view)
	}
	if data.Risks == nil {
		data.Risks = []aggregate.Risk{}
	}
	if len(data.Risks) > maxRisks {
		data.Risks = data.Risks[:maxRisks]
	}
	return data
}

// categoryChart converts the bucket map into a chart-friendly sequence in
// sorted key order, keeping compose output reproducible.
func categoryChart(buckets map[string]aggregate.Bucket) []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(buckets))
	for name, b := range buckets {
		entries = append(entries, CategoryEntry{Name: name, Count: b.Count, Value: b.Value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func managerChart(buckets map[string]aggregate.Bucket) []ManagerEntry {
	entries := make([]ManagerEntry, 0, len(buckets))
	for name, b := range buckets {
		entries = append(entries, ManagerEntry{Name: name, Count: b.Count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// recentAssets picks the ten newest assets by creation time and formats them
// for the table.
func recentAssets(list []assets.Asset) []RecentAsset {
	sorted := make([]assets.Asset, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := parseDate(sorted[i].CreatedAt)
		tj, _ := parseDate(sorted[j].CreatedAt)
		return ti.After(tj)
	})
	if len(sorted) > maxRecentAssets {
		sorted = sorted[:maxRecentAssets]
	}

	rows := make([]RecentAsset, 0, len(sorted))
	for _, a := range sorted {
		value := a.TotalValue
		if value == 0 {
			value = a.UnitPrice
		}
		date := "-"
		if t, ok := parseDate(a.CreatedAt); ok {
			date = formatKoreanDate(t)
		}
		rows = append(rows, RecentAsset{
			Name:     orDash(a.Name),
			Category: orDash(a.Category),
			Status:   orDash(a.Status),
			Value:    FormatCurrency(value),
			Manager:  orDash(a.Manager),
			Date:     date,
		})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// parseDate mirrors the aggregator's tolerant date parsing: plain dates or
// RFC3339 timestamps.
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
