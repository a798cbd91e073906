package dataset

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"

	"sciplot/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Load resolves a Spec against the data directory and returns the validated
// table. Every chart variant goes through this one routine; the three checks
// (file exists, parses to at least one data row, has all required columns)
// are not repeated anywhere else.
//
// Both .csv and .xlsx inputs are accepted: the Spec names the CSV file, and
// a sibling .xlsx with the same base name is used when the CSV is absent.
func Load(dir string, spec Spec) (*Table, error) {
	path := filepath.Join(dir, spec.File)

	// The diagnostic names the CSV path the Spec documents, even though a
	// sibling xlsx would also have satisfied it.
	resolved, ok := resolvePath(path)
	if !ok {
		return nil, errors.MissingFile(path, spec.FormatDoc())
	}

	rows, err := readRows(resolved)
	if err != nil {
		return nil, err
	}
	path = resolved
	if len(rows) < 2 {
		return nil, errors.SchemaMismatch(path, nil, spec.FormatDoc())
	}

	table := buildTable(rows)
	if missing := table.MissingColumns(spec.Columns); len(missing) > 0 {
		return nil, errors.SchemaMismatch(path, missing, spec.FormatDoc())
	}

	log.Printf("[Loader] %s: %d columns, %d rows", filepath.Base(path), len(table.Headers), table.Len())
	return table, nil
}

// resolvePath finds the file to read: the documented CSV, or an xlsx sibling
// with the same base name
func resolvePath(path string) (string, bool) {
	if fileExists(path) {
		return path, true
	}
	xlsxPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
	if fileExists(xlsxPath) {
		return xlsxPath, true
	}
	return "", false
}

// readRows reads the raw cell grid from a CSV or xlsx file
func readRows(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readExcelRows(path)
	}
	return readCSVRows(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Ragged rows are tolerated; short rows simply leave cells absent.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", path)
	}
	return rows, nil
}

// readExcelRows reads Sheet1 of an xlsx workbook into the same raw grid form
// as the CSV path produces
func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", path)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read Sheet1 of %s", path)
	}
	return rows, nil
}

// buildTable converts the raw grid into a Table: first row becomes trimmed
// headers, remaining rows become header-keyed maps
func buildTable(rows [][]string) *Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(Row, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &Table{Headers: headers, Rows: dataRows}
}
