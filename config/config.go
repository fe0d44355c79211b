// Package config holds the pipeline configuration: Notion credentials, output
// location, and the fixed reference data (budget ceiling, program target date,
// infra project tokens) that the aggregator and composer consume. Values come
// from built-in defaults, an optional YAML file, then environment overrides,
// in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDatabaseID is the asset master database queried when
	// NOTION_DATABASE_ID is not set.
	DefaultDatabaseID = "2aa50aa9577d81ee9cd0e7e63b3fdf25"

	// DefaultNotionBaseURL is the public Notion API endpoint.
	DefaultNotionBaseURL = "https://api.notion.com/v1"

	// DefaultDataDir is where the output documents land.
	DefaultDataDir = "data"
)

// Config is the full pipeline configuration.
type Config struct {
	Notion    NotionConfig    `yaml:"notion"`
	Output    OutputConfig    `yaml:"output"`
	Reference ReferenceConfig `yaml:"reference"`
	Publish   PublishConfig   `yaml:"publish"`
	Verify    VerifyConfig    `yaml:"verify"`
}

// NotionConfig configures the data source.
type NotionConfig struct {
	APIKey     string `yaml:"api_key"`
	DatabaseID string `yaml:"database_id"`
	BaseURL    string `yaml:"base_url"`
}

// OutputConfig configures document persistence.
type OutputConfig struct {
	DataDir string `yaml:"data_dir"`
}

// ReferenceConfig carries the externally fixed program constants. They are
// configuration, not data: the budget ceiling comes from the grant agreement,
// not from the asset records.
type ReferenceConfig struct {
	TotalBudget   float64  `yaml:"total_budget"`
	TargetDate    string   `yaml:"target_date"` // YYYY-MM-DD, program end for the D-Day counter
	InfraProjects []string `yaml:"infra_projects"`
}

// PublishConfig configures the GitHub Pages publisher.
type PublishConfig struct {
	GitHubToken string `yaml:"github_token"`
	Repo        string `yaml:"repo"` // owner/name
	Branch      string `yaml:"branch"`
}

// VerifyConfig configures the deployed-dashboard check.
type VerifyConfig struct {
	DashboardURL string `yaml:"dashboard_url"`
	Timeout      string `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Notion: NotionConfig{
			DatabaseID: DefaultDatabaseID,
			BaseURL:    DefaultNotionBaseURL,
		},
		Output: OutputConfig{DataDir: DefaultDataDir},
		Reference: ReferenceConfig{
			TotalBudget: 24_000_000_000,
			TargetDate:  "2025-12-31",
			InfraProjects: []string{
				"SDDC", "네트워크", "AI관제", "데이터허브", "통합플랫폼", "보안시스템",
			},
		},
		Publish: PublishConfig{Branch: "main"},
		Verify:  VerifyConfig{Timeout: "60s"},
	}
}

// Load builds the configuration: defaults, then the YAML file at path if it
// exists, then environment variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("NOTION_API_KEY"); v != "" {
		c.Notion.APIKey = v
	}
	if v := os.Getenv("NOTION_DATABASE_ID"); v != "" {
		c.Notion.DatabaseID = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Output.DataDir = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		c.Publish.GitHubToken = v
	}
	if v := os.Getenv("PAGES_REPO"); v != "" {
		c.Publish.Repo = v
	}
	if v := os.Getenv("DASHBOARD_URL"); v != "" {
		c.Verify.DashboardURL = v
	}
}

// TargetTime parses the program target date.
func (r ReferenceConfig) TargetTime() (time.Time, error) {
	t, err := time.Parse("2006-01-02", r.TargetDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid target_date %q: %w", r.TargetDate, err)
	}
	return t, nil
}
