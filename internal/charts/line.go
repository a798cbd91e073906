package charts

import (
	"strconv"
	"strings"

	"sciplot/internal/dataset"
	"sciplot/internal/render"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineFamily covers the three line chart variants: basic, multi-series and
// mean-with-confidence-band.
func LineFamily() Family {
	return Family{
		Name: "line_chart",
		Variants: []Variant{
			{
				Spec: dataset.Spec{
					Name:        "basic_line",
					File:        "basic_line_data.csv",
					Columns:     []string{"time", "amplitude"},
					Description: "a single variable tracked over time",
					Example: `time,amplitude
0.0,0.05
0.2,0.19
0.4,0.46
0.6,0.73`,
				},
				Output: "basic_line_chart.png",
				Render: renderBasicLine,
			},
			{
				Spec: dataset.Spec{
					Name:        "multiple_line",
					File:        "multiple_line_data.csv",
					Columns:     []string{"time", "series_a", "series_b", "series_c"},
					Description: "three series compared over the same time axis",
					Example: `time,series_a,series_b,series_c
0.0,0.05,0.95,0.02
0.2,0.19,0.81,0.09
0.4,0.46,0.54,0.23
0.6,0.73,0.27,0.36`,
				},
				Output: "multiple_line_chart.png",
				Render: renderMultipleLine,
			},
			{
				Spec: dataset.Spec{
					Name:        "confidence_interval",
					File:        "confidence_interval_data.csv",
					Columns:     []string{"time", "mean", "lower_ci", "upper_ci"},
					Description: "a mean series with its confidence band",
					Example: `time,mean,lower_ci,upper_ci
0.0,0.05,-0.15,0.25
0.2,0.19,-0.01,0.39
0.4,0.46,0.26,0.66
0.6,0.73,0.53,0.93`,
				},
				Output: "confidence_interval_chart.png",
				Render: renderConfidenceInterval,
			},
		},
	}
}

func renderBasicLine(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Basic Line Chart", "Time", "Amplitude")

	xs, ys := t.FloatPairs("time", "amplitude")
	line, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = st.Color(0)
	p.Add(line)
	p.Legend.Add("Amplitude", line)

	return st.Save(p, outPath)
}

func renderMultipleLine(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Multiple Series Line Chart", "Time", "Value")

	series := []struct {
		column string
		label  string
		glyph  draw.GlyphDrawer
	}{
		{"series_a", "Series A", draw.CircleGlyph{}},
		{"series_b", "Series B", draw.BoxGlyph{}},
		{"series_c", "Series C", draw.TriangleGlyph{}},
	}

	for i, s := range series {
		xs, ys := t.FloatPairs("time", s.column)
		line, points, err := plotter.NewLinePoints(xyPoints(xs, ys))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = st.Color(i)
		points.GlyphStyle.Color = st.Color(i)
		points.GlyphStyle.Radius = vg.Points(2.5)
		points.GlyphStyle.Shape = s.glyph
		p.Add(line, points)
		p.Legend.Add(s.label, line, points)
	}

	return st.Save(p, outPath)
}

func renderConfidenceInterval(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Line Chart with Confidence Interval", "Time", "Value")

	// Collect the four columns per row so a ragged cell drops the whole row
	// and the slices stay aligned.
	var xs, means, lower, upper []float64
	for _, row := range t.Rows {
		x, errX := strconv.ParseFloat(strings.TrimSpace(row["time"]), 64)
		m, errM := strconv.ParseFloat(strings.TrimSpace(row["mean"]), 64)
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(row["lower_ci"]), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(row["upper_ci"]), 64)
		if errX != nil || errM != nil || errLo != nil || errHi != nil {
			continue
		}
		xs = append(xs, x)
		means = append(means, m)
		lower = append(lower, lo)
		upper = append(upper, hi)
	}

	// Band polygon: along the upper bound, back along the lower bound.
	band := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		band = append(band, plotter.XY{X: xs[i], Y: upper[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: xs[i], Y: lower[i]})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = translucent(st.Color(0), 0x33)
	poly.LineStyle.Width = 0
	p.Add(poly)

	line, err := plotter.NewLine(xyPoints(xs, means))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = st.Color(0)
	p.Add(line)
	p.Legend.Add("Mean", line)

	return st.Save(p, outPath)
}
