package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultDatabaseID, cfg.Notion.DatabaseID)
	assert.Equal(t, DefaultNotionBaseURL, cfg.Notion.BaseURL)
	assert.Equal(t, DefaultDataDir, cfg.Output.DataDir)
	assert.Equal(t, 24_000_000_000.0, cfg.Reference.TotalBudget)
	assert.Equal(t, "2025-12-31", cfg.Reference.TargetDate)
	assert.Contains(t, cfg.Reference.InfraProjects, "SDDC")
	assert.Len(t, cfg.Reference.InfraProjects, 6)
	assert.Equal(t, "main", cfg.Publish.Branch)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabaseID, cfg.Notion.DatabaseID)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
notion:
  database_id: custom-db
output:
  data_dir: out
reference:
  total_budget: 500
  infra_projects: ["SDDC"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-db", cfg.Notion.DatabaseID)
	assert.Equal(t, "out", cfg.Output.DataDir)
	assert.Equal(t, 500.0, cfg.Reference.TotalBudget)
	assert.Equal(t, []string{"SDDC"}, cfg.Reference.InfraProjects)
	// Untouched keys keep their defaults.
	assert.Equal(t, "2025-12-31", cfg.Reference.TargetDate)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notion:\n  database_id: from-file\n"), 0644))

	t.Setenv("NOTION_API_KEY", "secret-from-env")
	t.Setenv("NOTION_DATABASE_ID", "from-env")
	t.Setenv("DATA_DIR", "/tmp/from-env")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("PAGES_REPO", "org/pages")
	t.Setenv("DASHBOARD_URL", "https://example.test/dash")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Notion.APIKey)
	assert.Equal(t, "from-env", cfg.Notion.DatabaseID)
	assert.Equal(t, "/tmp/from-env", cfg.Output.DataDir)
	assert.Equal(t, "gh-token", cfg.Publish.GitHubToken)
	assert.Equal(t, "org/pages", cfg.Publish.Repo)
	assert.Equal(t, "https://example.test/dash", cfg.Verify.DashboardURL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notion: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestTargetTime(t *testing.T) {
	ref := ReferenceConfig{TargetDate: "2025-12-31"}
	target, err := ref.TargetTime()
	require.NoError(t, err)
	assert.Equal(t, 2025, target.Year())
	assert.Equal(t, 31, target.Day())

	_, err = ReferenceConfig{TargetDate: "연말"}.TargetTime()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_date")
}
