package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sciplot/internal/charts"
	"sciplot/internal/config"
	"sciplot/internal/errors"
	"sciplot/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Render.DPI = 72
	cfg.Render.WidthIn = 4
	cfg.Render.HeightIn = 3
	return cfg
}

// TestRun_PartialDataDir exercises the core batch contract: charts whose
// dataset exists render, the rest fail with a diagnostic, and neither outcome
// aborts the pass.
func TestRun_PartialDataDir(t *testing.T) {
	cfg := testConfig(t)
	for _, name := range []string{"basic_line", "basic_bar", "basic_scatter"} {
		require.NoError(t, testkit.WriteDataset(cfg.Paths.DataDir, name))
	}

	summary, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	total := len(charts.AllSpecs())
	assert.Equal(t, 3, summary.Succeeded())
	assert.Equal(t, total-3, summary.Failed())
	assert.Len(t, summary.Results, total)

	for _, r := range summary.Results {
		switch r.Variant {
		case "basic_line", "basic_bar", "basic_scatter":
			assert.NoError(t, r.Err)
			_, statErr := os.Stat(filepath.Join(cfg.Paths.OutputDir, r.Output))
			assert.NoError(t, statErr, "missing output for %s", r.Variant)
		default:
			require.Error(t, r.Err, "expected failure for %s", r.Variant)
			assert.True(t, errors.IsCode(r.Err, errors.CodeMissingFile),
				"expected MISSING_FILE for %s, got %v", r.Variant, r.Err)
		}
	}
}

func TestRun_AllDatasets(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, testkit.WriteAll(cfg.Paths.DataDir))

	summary, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(charts.AllSpecs()), summary.Succeeded())
	assert.Equal(t, 0, summary.Failed())
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	cfg := testConfig(t)
	cfg.Batch.Parallel = true
	cfg.Batch.ParallelLimit = 2
	require.NoError(t, testkit.WriteAll(cfg.Paths.DataDir))

	summary, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(charts.AllSpecs()), summary.Succeeded())
	assert.Equal(t, 0, summary.Failed())
}

func TestRun_SchemaMismatchRecorded(t *testing.T) {
	cfg := testConfig(t)
	// A header-compatible file with one required column renamed.
	path := filepath.Join(cfg.Paths.DataDir, "basic_line_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("time,volume\n0.0,0.05\n"), 0o644))

	summary, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	var lineResult *Result
	for i := range summary.Results {
		if summary.Results[i].Variant == "basic_line" {
			lineResult = &summary.Results[i]
		}
	}
	require.NotNil(t, lineResult)
	require.Error(t, lineResult.Err)
	assert.True(t, errors.IsCode(lineResult.Err, errors.CodeSchemaMismatch))
	assert.Contains(t, lineResult.Err.Error(), "amplitude")
}

func TestWriteReport(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, testkit.WriteDataset(cfg.Paths.DataDir, "basic_line"))

	summary, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, WriteReport(summary, cfg.Paths.OutputDir))

	md, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, "report.md"))
	require.NoError(t, err)
	text := string(md)
	assert.Contains(t, text, summary.RunID)
	assert.Contains(t, text, "| line_chart | basic_line | basic_line_chart.png | ok |")
	assert.Contains(t, text, "## Failures")
	assert.Contains(t, text, "bar_chart/basic_bar")

	html, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, "report.html"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(html), "<table>") ||
		strings.Contains(string(html), "<h1"), "report.html should be rendered markup")
}
