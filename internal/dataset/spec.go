package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is the declared contract for one named chart variant's input file:
// where it lives, which columns it must have, and how to document it to the
// user when the file is absent or malformed. Specs are fixed at compile time.
type Spec struct {
	Name        string   // variant identifier, e.g. "basic_line"
	File        string   // file name under the data dir, e.g. "basic_line_data.csv"
	Columns     []string // required columns, in documented order
	Description string   // one-line statement of what the dataset shows
	Example     string   // literal example CSV snippet (header plus a few rows)
}

// FormatDoc renders the format documentation carried by MissingFile and
// SchemaMismatch diagnostics. It is sufficient for a user to hand-author a
// valid file: required columns, purpose and a literal example.
func (s Spec) FormatDoc() string {
	var b strings.Builder
	fmt.Fprintf(&b, "expected format for %s:\n", s.File)
	fmt.Fprintf(&b, "  required columns: %s\n", strings.Join(s.Columns, ", "))
	fmt.Fprintf(&b, "  purpose: %s\n", s.Description)
	b.WriteString("  example:\n")
	for _, line := range strings.Split(strings.TrimSpace(s.Example), "\n") {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	return b.String()
}

// Row is one data row keyed by column name. Cell values stay as the strings
// the parser produced; typed access goes through the Table accessors.
type Row map[string]string

// Table is validated in-memory tabular data ready for rendering. It is
// created once per run, consumed immediately and discarded.
type Table struct {
	Headers []string
	Rows    []Row
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has the named column
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns exactly the required columns absent from the table,
// preserving the required order
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Floats returns the numeric values of a column. Cells that do not parse as
// numbers (including empty cells in ragged datasets) are skipped, matching
// the tolerant parsing of the loader.
func (t *Table) Floats(col string) []float64 {
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if f, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64); err == nil {
			values = append(values, f)
		}
	}
	return values
}

// Strings returns the textual values of a column, row order preserved
func (t *Table) Strings(col string) []string {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[col])
	}
	return values
}

// FloatPairs returns aligned numeric values from two columns, keeping only
// rows where both cells parse. Used by x/y style charts.
func (t *Table) FloatPairs(xcol, ycol string) (xs, ys []float64) {
	for _, row := range t.Rows {
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[xcol]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[ycol]), 64)
		if errX == nil && errY == nil {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// FloatsWhere returns the numeric values of valueCol for rows whose cells
// match every entry of match
func (t *Table) FloatsWhere(valueCol string, match map[string]string) []float64 {
	var out []float64
rows:
	for _, row := range t.Rows {
		for col, want := range match {
			if strings.TrimSpace(row[col]) != want {
				continue rows
			}
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// FloatPairsBy returns the x/y pairs of rows whose label column equals label
func (t *Table) FloatPairsBy(xcol, ycol, labelCol, label string) (xs, ys []float64) {
	for _, row := range t.Rows {
		if strings.TrimSpace(row[labelCol]) != label {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[xcol]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[ycol]), 64)
		if errX == nil && errY == nil {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// Labels returns the distinct trimmed values of a column in first-seen order
func (t *Table) Labels(col string) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, row := range t.Rows {
		label := strings.TrimSpace(row[col])
		if label != "" && !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}

// GroupedFloats splits a value column by the values of a label column,
// preserving first-seen group order. Used by box, violin and grouped charts.
func (t *Table) GroupedFloats(labelCol, valueCol string) (labels []string, groups [][]float64) {
	index := make(map[string]int)
	for _, row := range t.Rows {
		label := strings.TrimSpace(row[labelCol])
		v, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
		if err != nil {
			continue
		}
		i, ok := index[label]
		if !ok {
			i = len(labels)
			index[label] = i
			labels = append(labels, label)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], v)
	}
	return labels, groups
}
