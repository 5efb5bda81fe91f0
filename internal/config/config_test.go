package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-analytics/internal/kpi"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.True(t, cfg.RFM.RankTies)
	assert.Equal(t, 10, cfg.KPI.TopN)
	assert.Equal(t, 30*time.Second, cfg.Input.Timeout)
	assert.Equal(t, kpi.Options{Period: kpi.PeriodMonth, TopN: 10}, cfg.KPIOptions())

	ref, err := cfg.Reference()
	require.NoError(t, err)
	assert.True(t, ref.IsZero())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input:
  path: data/transactions.csv
  timeout: 5s
  columns:
    customer: [client_ref]
rfm:
  reference_date: "2024-06-30"
  rank_ties: false
etl:
  start: "2024-01-01"
  end: "2024-06-30"
output:
  dir: results
  db: results/analytics.db
kpi:
  top_n: 5
  period: week
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "data/transactions.csv", cfg.Input.Path)
	assert.Equal(t, 5*time.Second, cfg.Input.Timeout)
	assert.False(t, cfg.RFM.RankTies)
	assert.Equal(t, "results/analytics.db", cfg.Output.DB)
	assert.Equal(t, kpi.Options{Period: kpi.PeriodWeek, TopN: 5}, cfg.KPIOptions())

	ref, err := cfg.Reference()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), ref)

	start, end, err := cfg.Window()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), end)

	columns := cfg.Columns()
	assert.Equal(t, []string{"client_ref"}, columns.Customer)
	assert.Equal(t, []string{"transaction_id", "invoiceno", "order_id"}, columns.Order)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output:\n  dir: from-file\n")
	t.Setenv(EnvOutputDir, "from-env")
	t.Setenv(EnvDB, "env.db")
	t.Setenv(EnvSourceDSN, "sqlite://shop.db")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
	assert.Equal(t, "env.db", cfg.Output.DB)
	assert.Equal(t, "sqlite://shop.db", cfg.Input.SourceDSN)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))

	require.NoError(t, err)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown field", "output:\n  folder: x\n"},
		{"malformed yaml", "rfm: [\n"},
		{"bad reference date", "rfm:\n  reference_date: 30/06/2024\n"},
		{"window end before start", "etl:\n  start: \"2024-06-01\"\n  end: \"2024-01-01\"\n"},
		{"unknown period", "kpi:\n  period: quarter\n"},
		{"negative top n", "kpi:\n  top_n: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
