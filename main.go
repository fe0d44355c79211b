package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"smartcity-asset-sync/config"
	"smartcity-asset-sync/notion"
	"smartcity-asset-sync/pipeline"
	"smartcity-asset-sync/store"
	"smartcity-asset-sync/verify"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "asset-sync",
	Short: "Smart-city asset dashboard data pipeline",
	Long: `Synchronizes the asset master database from Notion and produces the JSON
documents behind the public dashboard.

Stages:
  sync     fetch assets from Notion, aggregate, write the data documents
  compose  merge the data documents into dashboard-data.json
  verify   headless check that the deployed dashboard renders the new data

Running without a subcommand executes sync followed by compose.

Configuration is environment-driven: NOTION_API_KEY, NOTION_DATABASE_ID,
DATA_DIR, DASHBOARD_URL. An optional config.yaml overrides the defaults.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSync(cmd.Context()); err != nil {
			return err
		}
		return runCompose()
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch assets from Notion and write the data documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context())
	},
}

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Merge the data documents into dashboard-data.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompose()
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the deployed dashboard renders the published data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return verify.Check(cmd.Context(), cfg.Verify, logger)
	},
}

func runSync(ctx context.Context) error {
	st, err := store.New(cfg.Output.DataDir)
	if err != nil {
		return err
	}
	syncer := &pipeline.Syncer{
		Fetcher: notion.NewClient(cfg.Notion, logger),
		Store:   st,
		Config:  cfg,
		Logger:  logger,
	}
	return syncer.Run(ctx)
}

func runCompose() error {
	st, err := store.New(cfg.Output.DataDir)
	if err != nil {
		return err
	}
	composer := &pipeline.Composer{Store: st, Config: cfg, Logger: logger}
	return composer.Run()
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to optional config file")
	rootCmd.AddCommand(syncCmd, composeCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
