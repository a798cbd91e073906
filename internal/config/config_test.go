package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "plot", cfg.Paths.OutputDir)
	assert.Equal(t, 300, cfg.Render.DPI)
	assert.Equal(t, 8.0, cfg.Render.WidthIn)
	assert.Equal(t, 6.0, cfg.Render.HeightIn)
	assert.False(t, cfg.Batch.Parallel)
	assert.Equal(t, int64(3), cfg.Batch.ParallelLimit)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PLOT_DATA_DIR", "/tmp/datasets")
	t.Setenv("PLOT_OUTPUT_DIR", "/tmp/out")
	t.Setenv("PLOT_DPI", "150")
	t.Setenv("PLOT_PARALLEL", "true")
	t.Setenv("PLOT_PARALLEL_LIMIT", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/datasets", cfg.Paths.DataDir)
	assert.Equal(t, "/tmp/out", cfg.Paths.OutputDir)
	assert.Equal(t, 150, cfg.Render.DPI)
	assert.True(t, cfg.Batch.Parallel)
	assert.Equal(t, int64(6), cfg.Batch.ParallelLimit)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative dpi", "PLOT_DPI", "-1"},
		{"zero width", "PLOT_WIDTH_IN", "0"},
		{"zero parallel limit", "PLOT_PARALLEL_LIMIT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnparseableValuesFallBack(t *testing.T) {
	t.Setenv("PLOT_DPI", "not-a-number")
	t.Setenv("PLOT_PARALLEL", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Render.DPI)
	assert.False(t, cfg.Batch.Parallel)
}
