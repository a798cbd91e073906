package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sciplot/internal/charts"
	"sciplot/internal/dataset"
	"sciplot/internal/errors"
	"sciplot/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	for _, spec := range charts.AllSpecs() {
		t.Run(spec.Name, func(t *testing.T) {
			_, err := dataset.Load(dir, spec)
			require.Error(t, err)
			assert.Equal(t, errors.CodeMissingFile, errors.GetCode(err))

			// The diagnostic names the path and every required column.
			assert.Contains(t, err.Error(), filepath.Join(dir, spec.File))
			for _, col := range spec.Columns {
				assert.Contains(t, err.Error(), col)
			}
			assert.Contains(t, err.Error(), spec.Description)
		})
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	for _, spec := range charts.AllSpecs() {
		t.Run(spec.Name, func(t *testing.T) {
			dir := t.TempDir()

			// Write a file with every required column except the last,
			// renamed so the column count stays plausible.
			kept := spec.Columns[:len(spec.Columns)-1]
			dropped := spec.Columns[len(spec.Columns)-1]
			header := append(append([]string{}, kept...), dropped+"_renamed")
			content := strings.Join(header, ",") + "\n" + strings.Repeat("1,", len(header)-1) + "1\n"
			writeFile(t, dir, spec.File, content)

			_, err := dataset.Load(dir, spec)
			require.Error(t, err)
			assert.Equal(t, errors.CodeSchemaMismatch, errors.GetCode(err))

			// The first line names precisely the missing column, not the
			// present ones.
			firstLine := strings.SplitN(err.Error(), "\n", 2)[0]
			assert.Contains(t, firstLine, dropped)
			for _, col := range kept {
				assert.NotContains(t, firstLine, col+",")
			}
		})
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	spec := charts.LineFamily().Variants[0].Spec
	dir := t.TempDir()
	writeFile(t, dir, spec.File, "time,amplitude\n")

	_, err := dataset.Load(dir, spec)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaMismatch, errors.GetCode(err))
	assert.Contains(t, err.Error(), "no data rows")
}

func TestLoad_ValidDatasets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testkit.WriteAll(dir))

	for _, spec := range charts.AllSpecs() {
		t.Run(spec.Name, func(t *testing.T) {
			table, err := dataset.Load(dir, spec)
			require.NoError(t, err)

			for _, col := range spec.Columns {
				assert.True(t, table.HasColumn(col), "column %s", col)
			}

			content, err := os.ReadFile(filepath.Join(dir, spec.File))
			require.NoError(t, err)
			lines := strings.Count(strings.TrimSpace(string(content)), "\n")
			assert.Equal(t, lines, table.Len(), "row count must match data lines")
		})
	}
}

func TestLoad_BasicLineScenario(t *testing.T) {
	spec := charts.LineFamily().Variants[0].Spec
	dir := t.TempDir()
	writeFile(t, dir, spec.File, "time,amplitude\n0.0,0.05\n0.2,0.19\n")

	table, err := dataset.Load(dir, spec)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []float64{0.0, 0.2}, table.Floats("time"))
	assert.Equal(t, []float64{0.05, 0.19}, table.Floats("amplitude"))

	// Deleting the file reproduces MissingFile naming the columns.
	require.NoError(t, os.Remove(filepath.Join(dir, spec.File)))
	_, err = dataset.Load(dir, spec)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingFile, errors.GetCode(err))
	assert.Contains(t, err.Error(), "time, amplitude")
}

func TestLoad_BasicBarScenario(t *testing.T) {
	spec := charts.BarFamily().Variants[0].Spec
	dir := t.TempDir()
	writeFile(t, dir, spec.File, "category,value\nMethod A,85\nMethod B,72\n")

	table, err := dataset.Load(dir, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"Method A", "Method B"}, table.Strings("category"))

	// Renaming value to score yields SchemaMismatch naming value.
	writeFile(t, dir, spec.File, "category,score\nMethod A,85\nMethod B,72\n")
	_, err = dataset.Load(dir, spec)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaMismatch, errors.GetCode(err))
	firstLine := strings.SplitN(err.Error(), "\n", 2)[0]
	assert.Contains(t, firstLine, "value")
}

func TestLoad_XlsxFallback(t *testing.T) {
	spec := charts.BarFamily().Variants[0].Spec
	dir := t.TempDir()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"category", "value"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Method A", 85}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Method B", 72}))
	xlsxName := strings.TrimSuffix(spec.File, ".csv") + ".xlsx"
	require.NoError(t, f.SaveAs(filepath.Join(dir, xlsxName)))
	require.NoError(t, f.Close())

	table, err := dataset.Load(dir, spec)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []float64{85, 72}, table.Floats("value"))
}

func TestLoad_RaggedRowsTolerated(t *testing.T) {
	spec := charts.HistogramFamily().Variants[1].Spec // multiple_histogram
	dir := t.TempDir()
	writeFile(t, dir, spec.File, "group_a,group_b,group_c\n23.5,28.3,31.2\n,31.0\n25.1,30.1,33.5\n")

	table, err := dataset.Load(dir, spec)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	// The empty and absent cells drop out of the numeric view.
	assert.Equal(t, []float64{23.5, 25.1}, table.Floats("group_a"))
	assert.Equal(t, []float64{28.3, 31.0, 30.1}, table.Floats("group_b"))
	assert.Equal(t, []float64{31.2, 33.5}, table.Floats("group_c"))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
