package charts

import (
	"fmt"

	"sciplot/internal/dataset"
	"sciplot/internal/render"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// HistogramFamily covers the five distribution variants: basic, multiple
// overlaid, stacked by category, 2D binned and observed-vs-theoretical.
func HistogramFamily() Family {
	return Family{
		Name: "histogram",
		Variants: []Variant{
			{
				Spec: dataset.Spec{
					Name:        "basic_histogram",
					File:        "basic_histogram_data.csv",
					Columns:     []string{"values"},
					Description: "a single sample of measurements",
					Example: `values
23.5
25.1
22.8
28.3
30.1`,
				},
				Output: "basic_histogram.png",
				Render: renderBasicHistogram,
			},
			{
				Spec: dataset.Spec{
					Name:        "multiple_histogram",
					File:        "multiple_histogram_data.csv",
					Columns:     []string{"group_a", "group_b", "group_c"},
					Description: "three samples overlaid for comparison; columns may have unequal lengths",
					Example: `group_a,group_b,group_c
23.5,28.3,31.2
25.1,30.1,33.5
22.8,27.9,29.8
,31.0,`,
				},
				Output: "multiple_histograms.png",
				Render: renderMultipleHistograms,
			},
			{
				Spec: dataset.Spec{
					Name:        "stacked_histogram",
					File:        "stacked_histogram_data.csv",
					Columns:     []string{"value", "category"},
					Description: "one sample per category stacked into shared bins",
					Example: `value,category
23.5,Type A
25.1,Type A
28.3,Type B
30.1,Type B
31.2,Type C`,
				},
				Output: "stacked_histogram.png",
				Render: renderStackedHistogram,
			},
			{
				Spec: dataset.Spec{
					Name:        "histogram_2d",
					File:        "2d_histogram_data.csv",
					Columns:     []string{"x", "y"},
					Description: "joint distribution of two variables as binned counts",
					Example: `x,y
1.2,2.4
2.1,4.3
3.5,6.8
4.2,8.1
5.0,9.9`,
				},
				Output: "histogram_2d.png",
				Render: render2DHistogram,
			},
			{
				Spec: dataset.Spec{
					Name:        "distribution_comparison",
					File:        "distribution_comparison_data.csv",
					Columns:     []string{"observed", "theoretical"},
					Description: "an observed sample against its theoretical counterpart",
					Example: `observed,theoretical
23.5,24.1
25.1,25.8
22.8,23.2
28.3,28.9`,
				},
				Output: "distribution_comparison.png",
				Render: renderDistributionComparison,
			},
		},
	}
}

func renderBasicHistogram(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Basic Histogram", "Value", "Count")

	hist, err := plotter.NewHist(plotter.Values(t.Floats("values")), 20)
	if err != nil {
		return err
	}
	hist.FillColor = translucent(st.Color(0), 0xbb)
	p.Add(hist)

	return st.Save(p, outPath)
}

func renderMultipleHistograms(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Multiple Histograms", "Value", "Count")

	groups := []struct {
		column string
		label  string
	}{
		{"group_a", "Group A"},
		{"group_b", "Group B"},
		{"group_c", "Group C"},
	}

	for i, g := range groups {
		values := t.Floats(g.column)
		if len(values) == 0 {
			continue
		}
		hist, err := plotter.NewHist(plotter.Values(values), 20)
		if err != nil {
			return err
		}
		hist.FillColor = translucent(st.Color(i), 0x77)
		p.Add(hist)
		p.Legend.Add(g.label, legendMarker(st, i))
	}

	return st.Save(p, outPath)
}

// renderStackedHistogram stacks per-category counts over bins shared by the
// whole sample, using stacked bar charts over nominal bin labels
func renderStackedHistogram(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Stacked Histogram", "Value", "Count")

	all := t.Floats("value")
	if len(all) == 0 {
		return fmt.Errorf("no numeric values in column value")
	}
	min, max := minMax(all)
	const bins = 12

	labels := t.Labels("category")
	var prev *plotter.BarChart
	for i, label := range labels {
		values := t.FloatsWhere("value", map[string]string{"category": label})
		counts := binCounts(values, min, max, bins)
		bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(18))
		if err != nil {
			return err
		}
		bars.Color = st.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(label, bars)
		prev = bars
	}

	centers := binCenters(min, max, bins)
	names := make([]string, len(centers))
	for i, c := range centers {
		names[i] = fmt.Sprintf("%.1f", c)
	}
	p.NominalX(names...)

	return st.Save(p, outPath)
}

func render2DHistogram(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("2D Histogram", "X", "Y")

	xs, ys := t.FloatPairs("x", "y")
	if len(xs) == 0 {
		return fmt.Errorf("no numeric x/y pairs")
	}
	const bins = 20
	minX, maxX := minMax(xs)
	minY, maxY := minMax(ys)
	cxs := binCenters(minX, maxX, bins)
	cys := binCenters(minY, maxY, bins)

	var gx, gy, gz []float64
	counts := make([][]float64, bins)
	for i := range counts {
		counts[i] = make([]float64, bins)
	}
	for i := range xs {
		counts[binIndex(xs[i], minX, maxX, bins)][binIndex(ys[i], minY, maxY, bins)]++
	}
	for i := 0; i < bins; i++ {
		for j := 0; j < bins; j++ {
			gx = append(gx, cxs[i])
			gy = append(gy, cys[j])
			gz = append(gz, counts[i][j])
		}
	}

	heat := plotter.NewHeatMap(render.NewGrid(gx, gy, gz), palette.Heat(12, 1))
	p.Add(heat)

	return st.Save(p, outPath)
}

func renderDistributionComparison(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Distribution Comparison", "Value", "Count")

	series := []struct {
		column string
		label  string
	}{
		{"observed", "Observed"},
		{"theoretical", "Theoretical"},
	}

	for i, s := range series {
		hist, err := plotter.NewHist(plotter.Values(t.Floats(s.column)), 20)
		if err != nil {
			return err
		}
		hist.FillColor = translucent(st.Color(i), 0x77)
		p.Add(hist)
		p.Legend.Add(s.label, legendMarker(st, i))
	}

	return st.Save(p, outPath)
}

// legendMarker builds a colored glyph for plotters that have no thumbnail of
// their own
func legendMarker(st render.Style, i int) *plotter.Scatter {
	marker, _ := plotter.NewScatter(plotter.XYs{})
	marker.GlyphStyle.Color = st.Color(i)
	marker.GlyphStyle.Radius = vg.Points(4)
	marker.GlyphStyle.Shape = draw.BoxGlyph{}
	return marker
}
