package pipeline

import (
	"time"

	"go.uber.org/zap"

	"smartcity-asset-sync/assets"
	"smartcity-asset-sync/config"
	"smartcity-asset-sync/dashboard"
	"smartcity-asset-sync/store"
)

// Composer merges the persisted documents into dashboard-data.json.
type Composer struct {
	Store  *store.Store
	Config *config.Config
	Logger *zap.Logger

	Now func() time.Time
}

// Run loads whatever documents the last sync left behind, composes them and
// writes the dashboard document. Missing documents degrade to empty views so
// a compose after a failed sync still refreshes the dashboard from disk.
func (c *Composer) Run() error {
	in := dashboard.Input{}

	var assetList []assets.Asset
	if err := c.Store.ReadDocument(store.DocAssets, &assetList); err == nil {
		in.Assets = assetList
	}
	_ = c.Store.ReadDocument(store.DocStatistics, &in.Statistics)
	_ = c.Store.ReadDocument(store.DocInfraProjects, &in.InfraProjects)
	_ = c.Store.ReadDocument(store.DocUpcomingAssets, &in.UpcomingAssets)
	_ = c.Store.ReadDocument(store.DocRisks, &in.Risks)
	_ = c.Store.ReadDocument(store.DocBudget, &in.Budget)

	var info SyncInfo
	if err := c.Store.ReadDocument(store.DocSyncInfo, &info); err == nil {
		in.LastSync = info.LastSyncKST
		in.SyncStatus = info.Status
	}

	target, err := c.Config.Reference.TargetTime()
	if err != nil {
		return err
	}

	data := dashboard.Compose(in, target, c.now())
	if err := c.Store.WriteDocument(store.DocDashboard, data); err != nil {
		c.Logger.Error("failed to write dashboard document", zap.Error(err))
		return err
	}

	c.Logger.Info("dashboard composed",
		zap.Int("total_assets", data.KPI.TotalAssets),
		zap.String("total_value", data.KPI.TotalValueFormatted),
		zap.Float64("execution_rate", data.KPI.ExecutionRate),
		zap.Int("days_remaining", data.KPI.DaysRemaining),
		zap.Int("categories", len(data.CategoryChart)),
		zap.Int("risks", len(data.Risks)))
	return nil
}

func (c *Composer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
