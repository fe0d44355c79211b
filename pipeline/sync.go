// Package pipeline sequences the sync and compose stages and owns the
// sync-status record. Whatever happens during a run, sync-info.json is
// written before control returns to the caller.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartcity-asset-sync/aggregate"
	"smartcity-asset-sync/assets"
	"smartcity-asset-sync/config"
	"smartcity-asset-sync/store"
)

// sourceName identifies the upstream in sync-info.json.
const sourceName = "Notion API"

// kst renders the operator-facing timestamp. Falls back to a fixed offset
// when the host has no tzdata.
var kst = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*60*60)
}()

// Fetcher supplies the full asset collection for one run.
type Fetcher interface {
	FetchAllAssets(ctx context.Context, databaseID string) ([]assets.Asset, error)
}

// SyncInfo is the status record of one run, the one artifact guaranteed to
// exist afterwards, success or failure.
type SyncInfo struct {
	LastSync     string  `json:"lastSync"`
	LastSyncKST  string  `json:"lastSyncKST"`
	RunID        string  `json:"runId"`
	Source       string  `json:"source"`
	DatabaseID   string  `json:"databaseId"`
	TotalRecords int     `json:"totalRecords"`
	SyncDuration float64 `json:"syncDuration"`
	Status       string  `json:"status"`
	Error        string  `json:"error,omitempty"`
}

// Syncer drives fetch → aggregate → persist.
type Syncer struct {
	Fetcher Fetcher
	Store   *store.Store
	Config  *config.Config
	Logger  *zap.Logger

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// Run executes one sync. On fetch failure nothing but the error status
// record is written; on persistence failure the remaining documents are
// still attempted and the run is reported as failed.
func (s *Syncer) Run(ctx context.Context) error {
	start := s.now()
	runID := uuid.NewString()
	logger := s.Logger.With(zap.String("run_id", runID))

	logger.Info("sync started",
		zap.String("database_id", s.Config.Notion.DatabaseID),
		zap.String("data_dir", s.Store.Dir))

	assetList, err := s.Fetcher.FetchAllAssets(ctx, s.Config.Notion.DatabaseID)
	if err != nil {
		logger.Error("fetch failed", zap.Error(err))
		s.writeSyncInfo(logger, runID, start, 0, err)
		return err
	}
	logger.Info("assets fetched", zap.Int("count", len(assetList)))

	now := s.now()
	result := aggregate.Run(assetList, now, aggregate.Reference{
		TotalBudget:   s.Config.Reference.TotalBudget,
		InfraProjects: s.Config.Reference.InfraProjects,
	})

	documents := []struct {
		name string
		body interface{}
	}{
		{store.DocAssets, assetList},
		{store.DocStatistics, result.Statistics},
		{store.DocInfraProjects, result.InfraProjects},
		{store.DocUpcomingAssets, result.UpcomingAssets},
		{store.DocRisks, result.Risks},
		{store.DocBudget, result.Budget},
	}

	var writeErr error
	for _, doc := range documents {
		if err := s.Store.WriteDocument(doc.name, doc.body); err != nil {
			// Fatal for this document only; the rest are still attempted.
			logger.Error("failed to write document", zap.String("document", doc.name), zap.Error(err))
			if writeErr == nil {
				writeErr = err
			}
			continue
		}
		logger.Debug("document written", zap.String("document", doc.name))
	}

	s.writeSyncInfo(logger, runID, start, len(assetList), writeErr)
	if writeErr != nil {
		return writeErr
	}

	logger.Info("sync finished",
		zap.Int("total_assets", result.Statistics.TotalAssets),
		zap.Float64("total_value", result.Statistics.TotalValue),
		zap.Int("categories", len(result.Statistics.ByCategory)),
		zap.Int("risks", len(result.Risks)),
		zap.Int("upcoming", len(result.UpcomingAssets)),
		zap.Duration("duration", s.now().Sub(start)))
	return nil
}

// writeSyncInfo persists the status record. Its own write failure is only
// logged: by then the run outcome is already decided and there is nowhere
// left to record it.
func (s *Syncer) writeSyncInfo(logger *zap.Logger, runID string, start time.Time, records int, runErr error) {
	now := s.now()
	info := SyncInfo{
		LastSync:     now.UTC().Format(time.RFC3339),
		LastSyncKST:  now.In(kst).Format("2006. 1. 2. 15:04:05"),
		RunID:        runID,
		Source:       sourceName,
		DatabaseID:   s.Config.Notion.DatabaseID,
		TotalRecords: records,
		SyncDuration: now.Sub(start).Seconds(),
		Status:       "success",
	}
	if runErr != nil {
		info.Status = "error"
		info.Error = runErr.Error()
	}
	if err := s.Store.WriteDocument(store.DocSyncInfo, info); err != nil {
		logger.Error("failed to write sync info", zap.Error(err))
	}
}

func (s *Syncer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
