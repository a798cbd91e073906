package testkit

import (
	"fmt"
	"math"
	"math/rand"
)

// generators build the synthetic example data for each dataset, mirroring
// the demo data the suite has always shipped: sine series, categorical
// scores, normal draws and sampled surfaces. Each generator seeds its own
// source so output is identical run to run.
var generators = map[string]func() [][]string{
	"basic_line":              basicLineData,
	"multiple_line":           multipleLineData,
	"confidence_interval":     confidenceIntervalData,
	"basic_bar":               basicBarData,
	"grouped_bar":             groupedBarData,
	"stacked_bar":             stackedBarData,
	"horizontal_bar":          horizontalBarData,
	"basic_scatter":           basicScatterData,
	"colored_scatter":         coloredScatterData,
	"sized_scatter":           sizedScatterData,
	"categorical_scatter":     categoricalScatterData,
	"correlation_matrix":      correlationMatrixData,
	"basic_box":               basicBoxData,
	"violin":                  violinData,
	"grouped_box":             groupedBoxData,
	"notched_box":             notchedBoxData,
	"horizontal_box":          horizontalBoxData,
	"basic_histogram":         basicHistogramData,
	"multiple_histogram":      multipleHistogramData,
	"stacked_histogram":       stackedHistogramData,
	"histogram_2d":            histogram2DData,
	"distribution_comparison": distributionComparisonData,
	"surface_3d":              surface3DData,
	"scatter_3d":              scatter3DData,
	"wireframe_3d":            wireframe3DData,
	"bar_3d":                  bar3DData,
	"contour_3d":              contour3DData,
	"parametric_3d":           parametric3DData,
}

const seed = 42

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func f(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func basicLineData() [][]string {
	r := newRand()
	rows := [][]string{{"time", "amplitude"}}
	for i := 0; i < 100; i++ {
		t := float64(i) * 0.1
		rows = append(rows, []string{f(t), f(math.Sin(t) + 0.1*r.NormFloat64())})
	}
	return rows
}

func multipleLineData() [][]string {
	r := newRand()
	rows := [][]string{{"time", "series_a", "series_b", "series_c"}}
	for i := 0; i < 100; i++ {
		t := float64(i) * 0.1
		rows = append(rows, []string{
			f(t),
			f(math.Sin(t) + 0.1*r.NormFloat64()),
			f(math.Cos(t) + 0.1*r.NormFloat64()),
			f(math.Sin(t+math.Pi/4) + 0.1*r.NormFloat64()),
		})
	}
	return rows
}

func confidenceIntervalData() [][]string {
	r := newRand()
	rows := [][]string{{"time", "mean", "lower_ci", "upper_ci"}}
	for i := 0; i < 100; i++ {
		t := float64(i) * 0.1
		mean := math.Sin(t) + 0.05*r.NormFloat64()
		rows = append(rows, []string{f(t), f(mean), f(mean - 0.2), f(mean + 0.2)})
	}
	return rows
}

func basicBarData() [][]string {
	return [][]string{
		{"category", "value"},
		{"Method A", "85"},
		{"Method B", "72"},
		{"Method C", "91"},
		{"Method D", "68"},
		{"Method E", "79"},
	}
}

func groupedBarData() [][]string {
	return [][]string{
		{"category", "group_a", "group_b", "group_c"},
		{"Q1", "85", "72", "91"},
		{"Q2", "78", "85", "68"},
		{"Q3", "92", "79", "85"},
		{"Q4", "88", "91", "77"},
	}
}

func stackedBarData() [][]string {
	return [][]string{
		{"category", "part_a", "part_b", "part_c"},
		{"Product A", "30", "25", "20"},
		{"Product B", "35", "30", "15"},
		{"Product C", "25", "35", "25"},
		{"Product D", "40", "20", "25"},
	}
}

func horizontalBarData() [][]string {
	return [][]string{
		{"item", "score"},
		{"Algorithm A", "92"},
		{"Algorithm B", "85"},
		{"Algorithm C", "78"},
		{"Algorithm D", "88"},
		{"Algorithm E", "81"},
	}
}

func basicScatterData() [][]string {
	r := newRand()
	rows := [][]string{{"x", "y"}}
	for i := 0; i < 100; i++ {
		x := r.NormFloat64()
		rows = append(rows, []string{f(x), f(2*x + r.NormFloat64())})
	}
	return rows
}

func coloredScatterData() [][]string {
	r := newRand()
	rows := [][]string{{"x", "y", "color_value"}}
	for i := 0; i < 100; i++ {
		x := r.NormFloat64()
		y := 2*x + r.NormFloat64()
		rows = append(rows, []string{f(x), f(y), f(x + y + r.NormFloat64())})
	}
	return rows
}

func sizedScatterData() [][]string {
	r := newRand()
	rows := [][]string{{"x", "y", "size_value"}}
	for i := 0; i < 100; i++ {
		x := r.NormFloat64()
		rows = append(rows, []string{
			f(x),
			f(2*x + r.NormFloat64()),
			fmt.Sprintf("%d", 20+r.Intn(180)),
		})
	}
	return rows
}

func categoricalScatterData() [][]string {
	r := newRand()
	labels := []string{"Group A", "Group B", "Group C"}
	offsets := []float64{0, 2, -1.5}
	rows := [][]string{{"x", "y", "category"}}
	for i := 0; i < 90; i++ {
		g := i % len(labels)
		x := r.NormFloat64() + offsets[g]
		rows = append(rows, []string{f(x), f(2*x + r.NormFloat64()), labels[g]})
	}
	return rows
}

func correlationMatrixData() [][]string {
	r := newRand()
	rows := [][]string{{"var1", "var2", "var3", "var4"}}
	for i := 0; i < 100; i++ {
		v1 := r.NormFloat64()
		v2 := 2*v1 + r.NormFloat64()
		v3 := -v1 + 0.5*r.NormFloat64()
		v4 := r.NormFloat64()
		rows = append(rows, []string{f(v1), f(v2), f(v3), f(v4)})
	}
	return rows
}

func groupedValues(labels []string, means, stddevs []float64, perGroup int, header []string) [][]string {
	r := newRand()
	rows := [][]string{header}
	for g, label := range labels {
		for i := 0; i < perGroup; i++ {
			rows = append(rows, []string{label, f(means[g] + stddevs[g]*r.NormFloat64())})
		}
	}
	return rows
}

func basicBoxData() [][]string {
	return groupedValues(
		[]string{"Group A", "Group B", "Group C"},
		[]float64{24, 29, 21}, []float64{1.5, 2.0, 1.2}, 40,
		[]string{"group", "value"})
}

func violinData() [][]string {
	return groupedValues(
		[]string{"Type A", "Type B", "Type C"},
		[]float64{15.5, 18.8, 13.2}, []float64{1.0, 1.4, 0.8}, 60,
		[]string{"category", "measurement"})
}

func groupedBoxData() [][]string {
	r := newRand()
	rows := [][]string{{"time_point", "condition", "response"}}
	base := map[string]float64{"Control": 12.5, "Treatment": 15.5}
	for ti, tp := range []string{"T1", "T2", "T3"} {
		for _, cond := range []string{"Control", "Treatment"} {
			for i := 0; i < 20; i++ {
				v := base[cond] + float64(ti)*1.5 + r.NormFloat64()
				rows = append(rows, []string{tp, cond, f(v)})
			}
		}
	}
	return rows
}

func notchedBoxData() [][]string {
	return groupedValues(
		[]string{"Method 1", "Method 2", "Method 3"},
		[]float64{85.5, 79.0, 88.5}, []float64{1.5, 1.2, 2.0}, 40,
		[]string{"method", "performance"})
}

func horizontalBoxData() [][]string {
	return groupedValues(
		[]string{"Algorithm A", "Algorithm B", "Algorithm C"},
		[]float64{0.25, 0.45, 0.33}, []float64{0.02, 0.04, 0.03}, 40,
		[]string{"algorithm", "execution_time"})
}

func basicHistogramData() [][]string {
	r := newRand()
	rows := [][]string{{"values"}}
	for i := 0; i < 200; i++ {
		rows = append(rows, []string{f(25 + 2.5*r.NormFloat64())})
	}
	return rows
}

func multipleHistogramData() [][]string {
	r := newRand()
	rows := [][]string{{"group_a", "group_b", "group_c"}}
	for i := 0; i < 150; i++ {
		rows = append(rows, []string{
			f(24 + 1.5*r.NormFloat64()),
			f(29 + 2.0*r.NormFloat64()),
			f(32 + 1.8*r.NormFloat64()),
		})
	}
	return rows
}

func stackedHistogramData() [][]string {
	r := newRand()
	rows := [][]string{{"value", "category"}}
	means := map[string]float64{"Type A": 24, "Type B": 29, "Type C": 32}
	for _, label := range []string{"Type A", "Type B", "Type C"} {
		for i := 0; i < 80; i++ {
			rows = append(rows, []string{f(means[label] + 1.8*r.NormFloat64()), label})
		}
	}
	return rows
}

func histogram2DData() [][]string {
	r := newRand()
	rows := [][]string{{"x", "y"}}
	for i := 0; i < 500; i++ {
		x := r.NormFloat64()
		rows = append(rows, []string{f(x), f(0.8*x + 0.6*r.NormFloat64())})
	}
	return rows
}

func distributionComparisonData() [][]string {
	r := newRand()
	rows := [][]string{{"observed", "theoretical"}}
	for i := 0; i < 200; i++ {
		rows = append(rows, []string{
			f(25 + 2.5*r.NormFloat64()),
			f(25 + 2.2*r.NormFloat64()),
		})
	}
	return rows
}

func surfaceGrid(header []string) [][]string {
	rows := [][]string{header}
	for i := 0; i < 50; i++ {
		for j := 0; j < 50; j++ {
			x := -5 + float64(i)*10.0/49
			y := -5 + float64(j)*10.0/49
			z := math.Sin(math.Sqrt(x*x + y*y))
			rows = append(rows, []string{f(x), f(y), f(z)})
		}
	}
	return rows
}

func surface3DData() [][]string {
	return surfaceGrid([]string{"x", "y", "z"})
}

func wireframe3DData() [][]string {
	rows := [][]string{{"x", "y", "z"}}
	for i := 0; i < 25; i++ {
		for j := 0; j < 25; j++ {
			x := -5 + float64(i)*10.0/24
			y := -5 + float64(j)*10.0/24
			z := math.Sin(math.Sqrt(x*x + y*y))
			rows = append(rows, []string{f(x), f(y), f(z)})
		}
	}
	return rows
}

func contour3DData() [][]string {
	return surfaceGrid([]string{"x", "y", "z"})
}

func scatter3DData() [][]string {
	r := newRand()
	labels := []string{"Group A", "Group B", "Group C"}
	rows := [][]string{{"x", "y", "z", "group"}}
	for i := 0; i < 90; i++ {
		g := i % len(labels)
		x := r.NormFloat64() + float64(g)*2
		y := r.NormFloat64()
		z := x + y + r.NormFloat64()
		rows = append(rows, []string{f(x), f(y), f(z), labels[g]})
	}
	return rows
}

func bar3DData() [][]string {
	r := newRand()
	rows := [][]string{{"x_pos", "y_pos", "height"}}
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			rows = append(rows, []string{
				fmt.Sprintf("%d", x),
				fmt.Sprintf("%d", y),
				f(3 + 6*r.Float64()),
			})
		}
	}
	return rows
}

func parametric3DData() [][]string {
	rows := [][]string{{"t", "x", "y", "z", "curve_type"}}
	for i := 0; i < 200; i++ {
		t := float64(i) * 4 * math.Pi / 199
		rows = append(rows, []string{
			f(t), f(math.Cos(t)), f(math.Sin(t)), f(t / (4 * math.Pi)), "helix",
		})
	}
	for i := 0; i < 200; i++ {
		t := float64(i) * 4 * math.Pi / 199
		radius := t / (4 * math.Pi)
		rows = append(rows, []string{
			f(t), f(radius * math.Cos(t)), f(radius * math.Sin(t)), "0.000", "spiral",
		})
	}
	return rows
}
