package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sciplot/internal/charts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteAll_CoversEverySpec(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteAll(dir))

	for _, spec := range charts.AllSpecs() {
		content, err := os.ReadFile(filepath.Join(dir, spec.File))
		require.NoError(t, err, "missing %s", spec.File)

		header := strings.Split(strings.SplitN(string(content), "\n", 2)[0], ",")
		for _, col := range spec.Columns {
			assert.Contains(t, header, col, "%s header missing %s", spec.File, col)
		}
	}
}

func TestWriteDataset_Deterministic(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	require.NoError(t, WriteDataset(a, "basic_scatter"))
	require.NoError(t, WriteDataset(b, "basic_scatter"))

	fa, err := os.ReadFile(filepath.Join(a, "basic_scatter_data.csv"))
	require.NoError(t, err)
	fb, err := os.ReadFile(filepath.Join(b, "basic_scatter_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
}

func TestWriteDataset_UnknownName(t *testing.T) {
	err := WriteDataset(t.TempDir(), "no_such_dataset")
	assert.Error(t, err)
}

func TestExportFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset_formats.xlsx")
	require.NoError(t, ExportFormats(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Len(t, sheets, len(charts.Families()))
	assert.Contains(t, sheets, "line_chart")

	rows, err := f.GetRows("line_chart")
	require.NoError(t, err)
	// Header plus one row per variant.
	require.Len(t, rows, len(charts.LineFamily().Variants)+1)
	assert.Equal(t, "dataset", rows[0][0])
	assert.Equal(t, "basic_line", rows[1][0])
}
