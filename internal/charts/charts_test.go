package charts_test

import (
	"os"
	"path/filepath"
	"testing"

	"sciplot/internal/charts"
	"sciplot/internal/dataset"
	"sciplot/internal/render"
	"sciplot/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStyle keeps rendering fast in tests; cosmetics are the same code path
// as the production 300 DPI style.
func testStyle() render.Style {
	return render.NewStyle(72, 4, 3)
}

func TestFamilies_CoverAllVariants(t *testing.T) {
	families := charts.Families()
	require.Len(t, families, 6)

	counts := map[string]int{}
	total := 0
	for _, f := range families {
		counts[f.Name] = len(f.Variants)
		total += len(f.Variants)
	}

	assert.Equal(t, 3, counts["line_chart"])
	assert.Equal(t, 4, counts["bar_chart"])
	assert.Equal(t, 5, counts["scatter_plot"])
	assert.Equal(t, 5, counts["box_plot"])
	assert.Equal(t, 5, counts["histogram"])
	assert.Equal(t, 6, counts["3d_plot"])
	assert.Equal(t, total, len(charts.AllSpecs()))
}

func TestSpecs_UniqueNamesAndFiles(t *testing.T) {
	names := map[string]bool{}
	files := map[string]bool{}
	outputs := map[string]bool{}
	for _, f := range charts.Families() {
		for _, v := range f.Variants {
			assert.False(t, names[v.Spec.Name], "duplicate name %s", v.Spec.Name)
			assert.False(t, files[v.Spec.File], "duplicate file %s", v.Spec.File)
			assert.False(t, outputs[v.Output], "duplicate output %s", v.Output)
			names[v.Spec.Name] = true
			files[v.Spec.File] = true
			outputs[v.Output] = true
		}
	}
}

// TestRenderAllVariants is the end-to-end smoke pass: every variant renders
// its example dataset to a non-empty PNG.
func TestRenderAllVariants(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, testkit.WriteAll(dataDir))
	st := testStyle()

	for _, family := range charts.Families() {
		for _, v := range family.Variants {
			t.Run(family.Name+"/"+v.Spec.Name, func(t *testing.T) {
				table, err := dataset.Load(dataDir, v.Spec)
				require.NoError(t, err)

				outPath := filepath.Join(outDir, v.Output)
				require.NoError(t, v.Render(table, st, outPath))

				info, err := os.Stat(outPath)
				require.NoError(t, err)
				assert.Greater(t, info.Size(), int64(0))
			})
		}
	}
}

// TestRenderIdempotent verifies that re-rendering the same input to the same
// path produces identical bytes.
func TestRenderIdempotent(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, testkit.WriteDataset(dataDir, "basic_line"))

	v := charts.LineFamily().Variants[0]
	st := testStyle()

	table, err := dataset.Load(dataDir, v.Spec)
	require.NoError(t, err)

	outPath := filepath.Join(outDir, v.Output)
	require.NoError(t, v.Render(table, st, outPath))
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.NoError(t, v.Render(table, st, outPath))
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestRenderConfidenceInterval_RaggedBand verifies that a row with a blank
// band cell drops out whole instead of misaligning the band polygon.
func TestRenderConfidenceInterval_RaggedBand(t *testing.T) {
	table := &dataset.Table{
		Headers: []string{"time", "mean", "lower_ci", "upper_ci"},
		Rows: []dataset.Row{
			{"time": "0.0", "mean": "0.05", "lower_ci": "-0.15", "upper_ci": "0.25"},
			{"time": "0.2", "mean": "0.19", "lower_ci": "-0.01", "upper_ci": "0.39"},
			{"time": "0.4", "mean": "0.46", "lower_ci": "0.26", "upper_ci": ""},
			{"time": "0.6", "mean": "0.73", "lower_ci": "0.53", "upper_ci": "0.93"},
		},
	}

	v := charts.LineFamily().Variants[2]
	outPath := filepath.Join(t.TempDir(), v.Output)
	require.NoError(t, v.Render(table, testStyle(), outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestRenderScatter_RaggedThirdColumn verifies that non-numeric color or size
// cells drop their row rather than leaving the glyph styling misindexed.
func TestRenderScatter_RaggedThirdColumn(t *testing.T) {
	tests := []struct {
		name    string
		variant int
		column  string
	}{
		{"colored", 1, "color_value"},
		{"sized", 2, "size_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &dataset.Table{
				Headers: []string{"x", "y", tt.column},
				Rows: []dataset.Row{
					{"x": "1.2", "y": "2.4", tt.column: "10.5"},
					{"x": "2.1", "y": "4.3", tt.column: "n/a"},
					{"x": "3.5", "y": "6.8", tt.column: "8.7"},
				},
			}

			v := charts.ScatterFamily().Variants[tt.variant]
			outPath := filepath.Join(t.TempDir(), v.Output)
			require.NoError(t, v.Render(table, testStyle(), outPath))

			info, err := os.Stat(outPath)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}
}

// TestRenderScatter_NoNumericTriples covers the degenerate case where the
// third column never parses: the chart still renders, just empty.
func TestRenderScatter_NoNumericTriples(t *testing.T) {
	table := &dataset.Table{
		Headers: []string{"x", "y", "color_value"},
		Rows: []dataset.Row{
			{"x": "1.2", "y": "2.4", "color_value": "low"},
			{"x": "2.1", "y": "4.3", "color_value": "high"},
		},
	}

	v := charts.ScatterFamily().Variants[1]
	outPath := filepath.Join(t.TempDir(), v.Output)
	require.NoError(t, v.Render(table, testStyle(), outPath))
}

// TestRenderOverwrites verifies overwrite-if-exists semantics on the output
// path.
func TestRenderOverwrites(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, testkit.WriteDataset(dataDir, "basic_bar"))

	v := charts.BarFamily().Variants[0]
	table, err := dataset.Load(dataDir, v.Spec)
	require.NoError(t, err)

	outPath := filepath.Join(outDir, v.Output)
	require.NoError(t, os.WriteFile(outPath, []byte("stale"), 0o644))
	require.NoError(t, v.Render(table, testStyle(), outPath))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("stale"), content)
	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content[:4])
}
