// Package verify checks that the deployed dashboard actually renders the
// freshly published data. The page builds itself client-side from
// dashboard-data.json, so a plain HTTP fetch proves nothing; a headless
// browser session does.
package verify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"smartcity-asset-sync/config"
)

const defaultTimeout = 60 * time.Second

// Check probes the dashboard URL, loads it headlessly, and fails when the
// page does not render or reports anything but a successful sync.
func Check(ctx context.Context, cfg config.VerifyConfig, logger *zap.Logger) error {
	if cfg.DashboardURL == "" {
		return fmt.Errorf("dashboard url not configured")
	}

	// Cheap reachability probe before paying for a browser session.
	probe := &http.Client{Timeout: 10 * time.Second}
	resp, err := probe.Head(cfg.DashboardURL)
	if err != nil {
		resp, err = probe.Get(cfg.DashboardURL)
		if err != nil {
			return fmt.Errorf("dashboard unreachable: %w", err)
		}
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dashboard returned %s", resp.Status)
	}

	timeout := defaultTimeout
	if d, err := time.ParseDuration(cfg.Timeout); err == nil && d > 0 {
		timeout = d
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var syncStatus, lastSync string
	var totalAssets int
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(cfg.DashboardURL),
		// The page fetches dashboard-data.json on load and exposes it as
		// window.dashboardData once rendered.
		chromedp.Sleep(3*time.Second),
		chromedp.Evaluate(`window.dashboardData ? window.dashboardData.syncStatus : ""`, &syncStatus),
		chromedp.Evaluate(`window.dashboardData ? window.dashboardData.lastSync : ""`, &lastSync),
		chromedp.Evaluate(`window.dashboardData && window.dashboardData.kpi ? window.dashboardData.kpi.totalAssets : 0`, &totalAssets),
	)
	if err != nil {
		return fmt.Errorf("dashboard did not render: %w", err)
	}

	if syncStatus != "success" {
		return fmt.Errorf("dashboard shows sync status %q (last sync %s)", syncStatus, lastSync)
	}

	logger.Info("dashboard verified",
		zap.String("url", cfg.DashboardURL),
		zap.String("last_sync", lastSync),
		zap.Int("total_assets", totalAssets))
	return nil
}
