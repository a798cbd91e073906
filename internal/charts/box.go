package charts

import (
	"math"

	"sciplot/internal/dataset"
	"sciplot/internal/render"

	moremath "github.com/aclements/go-moremath/stats"
	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxFamily covers the five distribution-by-group variants: basic box,
// violin, grouped box, notched box and horizontal box.
func BoxFamily() Family {
	return Family{
		Name: "box_plot",
		Variants: []Variant{
			{
				Spec: dataset.Spec{
					Name:        "basic_box",
					File:        "basic_box_data.csv",
					Columns:     []string{"group", "value"},
					Description: "repeated measurements per group",
					Example: `group,value
Group A,23.5
Group A,25.1
Group A,22.8
Group B,28.3
Group B,30.1`,
				},
				Output: "basic_box_plot.png",
				Render: renderBasicBox,
			},
			{
				Spec: dataset.Spec{
					Name:        "violin",
					File:        "violin_plot_data.csv",
					Columns:     []string{"category", "measurement"},
					Description: "measurement distributions drawn as density outlines",
					Example: `category,measurement
Type A,15.2
Type A,16.8
Type A,14.9
Type B,18.5
Type B,19.2`,
				},
				Output: "violin_plot.png",
				Render: renderViolin,
			},
			{
				Spec: dataset.Spec{
					Name:        "grouped_box",
					File:        "grouped_box_data.csv",
					Columns:     []string{"time_point", "condition", "response"},
					Description: "responses per condition at each time point",
					Example: `time_point,condition,response
T1,Control,12.5
T1,Control,13.2
T1,Treatment,15.8
T2,Control,14.2
T2,Treatment,18.5`,
				},
				Output: "grouped_box_plot.png",
				Render: renderGroupedBox,
			},
			{
				Spec: dataset.Spec{
					Name:        "notched_box",
					File:        "notched_box_data.csv",
					Columns:     []string{"method", "performance"},
					Description: "performance per method with median confidence notches",
					Example: `method,performance
Method 1,85.2
Method 1,87.1
Method 1,84.5
Method 2,78.9
Method 2,80.3`,
				},
				Output: "notched_box_plot.png",
				Render: renderNotchedBox,
			},
			{
				Spec: dataset.Spec{
					Name:        "horizontal_box",
					File:        "horizontal_box_data.csv",
					Columns:     []string{"algorithm", "execution_time"},
					Description: "execution time distributions drawn horizontally",
					Example: `algorithm,execution_time
Algorithm A,0.25
Algorithm A,0.28
Algorithm B,0.45
Algorithm B,0.48
Algorithm B,0.42`,
				},
				Output: "horizontal_box_plot.png",
				Render: renderHorizontalBox,
			},
		},
	}
}

func renderBasicBox(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Basic Box Plot", "Group", "Value")

	labels, groups := t.GroupedFloats("group", "value")
	for i, values := range groups {
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(values))
		if err != nil {
			return err
		}
		box.FillColor = translucent(st.Color(i), 0x99)
		p.Add(box)
	}
	p.NominalX(labels...)

	return st.Save(p, outPath)
}

// renderViolin draws one density outline per category. The kernel density
// estimate comes from go-moremath (Scott bandwidth); the quartile overlay
// comes from montanaflynn/stats.
func renderViolin(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Violin Plot", "Category", "Measurement")

	labels, groups := t.GroupedFloats("category", "measurement")
	for i, values := range groups {
		if len(values) == 0 {
			continue
		}

		sample := moremath.Sample{Xs: values}
		kde := moremath.KDE{
			Sample:    sample,
			Bandwidth: moremath.BandwidthScott(sample),
		}
		lo, hi := sample.Bounds()
		lo -= 2 * kde.Bandwidth
		hi += 2 * kde.Bandwidth

		ys := linspace(lo, hi, 80)
		densities := make([]float64, len(ys))
		maxD := 0.0
		for j, y := range ys {
			densities[j] = kde.PDF(y)
			if densities[j] > maxD {
				maxD = densities[j]
			}
		}
		if maxD == 0 {
			continue
		}

		// Mirror the density about the category position, max half-width 0.4.
		scale := 0.4 / maxD
		outline := make(plotter.XYs, 0, 2*len(ys))
		for j := range ys {
			outline = append(outline, plotter.XY{X: float64(i) + densities[j]*scale, Y: ys[j]})
		}
		for j := len(ys) - 1; j >= 0; j-- {
			outline = append(outline, plotter.XY{X: float64(i) - densities[j]*scale, Y: ys[j]})
		}
		violin, err := plotter.NewPolygon(outline)
		if err != nil {
			return err
		}
		violin.Color = translucent(st.Color(i), 0x88)
		violin.LineStyle.Color = st.Color(i)
		violin.LineStyle.Width = vg.Points(1)
		p.Add(violin)

		quartiles, err := mstats.Quartile(values)
		if err != nil {
			return err
		}
		iqr, err := plotter.NewLine(plotter.XYs{
			{X: float64(i), Y: quartiles.Q1},
			{X: float64(i), Y: quartiles.Q3},
		})
		if err != nil {
			return err
		}
		iqr.LineStyle.Width = vg.Points(3)
		p.Add(iqr)

		median, err := plotter.NewScatter(plotter.XYs{{X: float64(i), Y: quartiles.Q2}})
		if err != nil {
			return err
		}
		median.GlyphStyle.Radius = vg.Points(2.5)
		median.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(median)
	}
	p.NominalX(labels...)

	return st.Save(p, outPath)
}

func renderGroupedBox(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Grouped Box Plot", "Time Point", "Response")

	timePoints := t.Labels("time_point")
	conditions := t.Labels("condition")

	// One slot per time point, conditions packed inside the slot.
	slot := float64(len(conditions) + 1)
	ticks := make([]plot.Tick, 0, len(timePoints))
	for ti, tp := range timePoints {
		for ci, cond := range conditions {
			values := t.FloatsWhere("response", map[string]string{
				"time_point": tp,
				"condition":  cond,
			})
			if len(values) == 0 {
				continue
			}
			loc := float64(ti)*slot + float64(ci)
			box, err := plotter.NewBoxPlot(vg.Points(20), loc, plotter.Values(values))
			if err != nil {
				return err
			}
			box.FillColor = translucent(st.Color(ci), 0x99)
			p.Add(box)
		}
		center := float64(ti)*slot + float64(len(conditions)-1)/2
		ticks = append(ticks, plot.Tick{Value: center, Label: tp})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	for ci, cond := range conditions {
		p.Legend.Add(cond, legendMarker(st, ci))
	}

	return st.Save(p, outPath)
}

// renderNotchedBox draws standard boxes with a thick notch segment spanning
// the median confidence interval (median ± 1.57·IQR/√n, quartiles from
// montanaflynn/stats)
func renderNotchedBox(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Notched Box Plot", "Method", "Performance")

	labels, groups := t.GroupedFloats("method", "performance")
	for i, values := range groups {
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(values))
		if err != nil {
			return err
		}
		box.FillColor = translucent(st.Color(i), 0x99)
		p.Add(box)

		quartiles, err := mstats.Quartile(values)
		if err != nil {
			return err
		}
		notch := 1.57 * (quartiles.Q3 - quartiles.Q1) / math.Sqrt(float64(len(values)))
		interval, err := plotter.NewLine(plotter.XYs{
			{X: float64(i), Y: quartiles.Q2 - notch},
			{X: float64(i), Y: quartiles.Q2 + notch},
		})
		if err != nil {
			return err
		}
		interval.LineStyle.Width = vg.Points(4)
		interval.LineStyle.Color = st.Color(3)
		p.Add(interval)
	}
	p.NominalX(labels...)

	return st.Save(p, outPath)
}

func renderHorizontalBox(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Horizontal Box Plot", "Execution Time (s)", "Algorithm")

	labels, groups := t.GroupedFloats("algorithm", "execution_time")
	for i, values := range groups {
		box, err := plotter.NewBoxPlot(vg.Points(25), float64(i), plotter.Values(values))
		if err != nil {
			return err
		}
		box.FillColor = translucent(st.Color(i), 0x99)
		box.Horizontal = true
		p.Add(box)
	}
	p.NominalY(labels...)

	return st.Save(p, outPath)
}
