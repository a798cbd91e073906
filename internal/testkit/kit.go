// Package testkit provides deterministic example datasets for every chart
// variant. Tests use it to stage fixtures; cmd/exampledata uses it to write
// the demo data a first-time user starts from.
package testkit

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"sciplot/internal/charts"
	"sciplot/internal/errors"

	"github.com/xuri/excelize/v2"
)

// WriteAll writes every example dataset into dir
func WriteAll(dir string) error {
	for _, spec := range charts.AllSpecs() {
		if err := WriteDataset(dir, spec.Name); err != nil {
			return err
		}
	}
	return nil
}

// WriteDataset writes the example data for one named dataset specification
func WriteDataset(dir, name string) error {
	gen, ok := generators[name]
	if !ok {
		return errors.New(errors.CodeInternalError, fmt.Sprintf("no generator for dataset %s", name))
	}

	for _, spec := range charts.AllSpecs() {
		if spec.Name != name {
			continue
		}
		path := filepath.Join(dir, spec.File)
		if err := writeCSV(path, gen()); err != nil {
			return err
		}
		log.Printf("[TestKit] wrote %s", path)
		return nil
	}
	return errors.New(errors.CodeInternalError, fmt.Sprintf("no spec for dataset %s", name))
}

func writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return f.Close()
}

// ExportFormats writes the dataset format reference workbook: one sheet per
// chart family listing each dataset's file, required columns, purpose and
// example rows
func ExportFormats(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for fi, family := range charts.Families() {
		sheet := family.Name
		if fi == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return errors.Wrapf(err, "failed to create sheet %s", sheet)
			}
		}

		row := 1
		setRow := func(values ...interface{}) error {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			row++
			return f.SetSheetRow(sheet, cell, &values)
		}

		if err := setRow("dataset", "file", "required columns", "purpose", "example"); err != nil {
			return err
		}
		for _, v := range family.Variants {
			example := strings.ReplaceAll(strings.TrimSpace(v.Spec.Example), "\n", " | ")
			err := setRow(v.Spec.Name, v.Spec.File,
				strings.Join(v.Spec.Columns, ", "), v.Spec.Description, example)
			if err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
