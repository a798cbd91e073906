package charts

import (
	"fmt"

	"sciplot/internal/dataset"
	"sciplot/internal/render"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ScatterFamily covers the five scatter plot variants: basic, colored by a
// third value, sized by a third value, split by category, and the pairwise
// correlation matrix.
func ScatterFamily() Family {
	return Family{
		Name: "scatter_plot",
		Variants: []Variant{
			{
				Spec: dataset.Spec{
					Name:        "basic_scatter",
					File:        "basic_scatter_data.csv",
					Columns:     []string{"x", "y"},
					Description: "paired observations of two variables",
					Example: `x,y
1.2,2.4
2.1,4.3
3.5,6.8
4.2,8.1`,
				},
				Output: "basic_scatter_plot.png",
				Render: renderBasicScatter,
			},
			{
				Spec: dataset.Spec{
					Name:        "colored_scatter",
					File:        "colored_scatter_data.csv",
					Columns:     []string{"x", "y", "color_value"},
					Description: "paired observations colored by a third variable",
					Example: `x,y,color_value
1.2,2.4,10.5
2.1,4.3,15.2
3.5,6.8,8.7
4.2,8.1,20.1`,
				},
				Output: "colored_scatter_plot.png",
				Render: renderColoredScatter,
			},
			{
				Spec: dataset.Spec{
					Name:        "sized_scatter",
					File:        "sized_scatter_data.csv",
					Columns:     []string{"x", "y", "size_value"},
					Description: "paired observations sized by a third variable",
					Example: `x,y,size_value
1.2,2.4,50
2.1,4.3,120
3.5,6.8,80
4.2,8.1,200`,
				},
				Output: "sized_scatter_plot.png",
				Render: renderSizedScatter,
			},
			{
				Spec: dataset.Spec{
					Name:        "categorical_scatter",
					File:        "categorical_scatter_data.csv",
					Columns:     []string{"x", "y", "category"},
					Description: "paired observations labeled by group",
					Example: `x,y,category
1.2,2.4,Group A
2.1,4.3,Group B
3.5,6.8,Group A
4.2,8.1,Group C`,
				},
				Output: "categorical_scatter_plot.png",
				Render: renderCategoricalScatter,
			},
			{
				Spec: dataset.Spec{
					Name:        "correlation_matrix",
					File:        "correlation_matrix_data.csv",
					Columns:     []string{"var1", "var2", "var3", "var4"},
					Description: "four variables plotted pairwise with Pearson correlations",
					Example: `var1,var2,var3,var4
1.2,2.4,3.1,4.5
2.1,4.3,2.8,3.9
3.5,6.8,4.2,5.1
4.2,8.1,3.7,4.8`,
				},
				Output: "correlation_matrix.png",
				Render: renderCorrelationMatrix,
			},
		},
	}
}

func renderBasicScatter(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Basic Scatter Plot", "X", "Y")

	xs, ys := t.FloatPairs("x", "y")
	scatter, err := plotter.NewScatter(xyPoints(xs, ys))
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = st.Color(0)
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	return st.Save(p, outPath)
}

func renderColoredScatter(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Colored Scatter Plot", "X", "Y")

	// Aligned triples: a row with a bad color_value drops entirely so the
	// style func indexes match the plotted points.
	var pts plotter.XYs
	var cs []float64
	for _, row := range t.Rows {
		x, y, c, ok := rowXYZ(row, "x", "y", "color_value")
		if !ok {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
		cs = append(cs, c)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}

	pal := palette.Heat(12, 1).Colors()
	var minC, maxC float64
	if len(cs) > 0 {
		minC, maxC = minMax(cs)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		idx := 0
		if maxC > minC {
			idx = int((cs[i] - minC) / (maxC - minC) * float64(len(pal)-1))
		}
		return draw.GlyphStyle{
			Color:  pal[idx],
			Radius: vg.Points(3.5),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	return st.Save(p, outPath)
}

func renderSizedScatter(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Sized Scatter Plot", "X", "Y")

	var pts plotter.XYs
	var sizes []float64
	for _, row := range t.Rows {
		x, y, s, ok := rowXYZ(row, "x", "y", "size_value")
		if !ok {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
		sizes = append(sizes, s)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}

	var minS, maxS float64
	if len(sizes) > 0 {
		minS, maxS = minMax(sizes)
	}
	fill := translucent(st.Color(0), 0xaa)
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		// Bubble radius between 2 and 10 points, scaled by size_value.
		radius := vg.Points(2)
		if maxS > minS {
			radius = vg.Points(2 + 8*(sizes[i]-minS)/(maxS-minS))
		}
		return draw.GlyphStyle{
			Color:  fill,
			Radius: radius,
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	return st.Save(p, outPath)
}

func renderCategoricalScatter(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Categorical Scatter Plot", "X", "Y")

	shapes := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.BoxGlyph{},
		draw.PyramidGlyph{},
		draw.PlusGlyph{},
		draw.CrossGlyph{},
	}

	for i, label := range t.Labels("category") {
		xs, ys := t.FloatPairsBy("x", "y", "category", label)
		scatter, err := plotter.NewScatter(xyPoints(xs, ys))
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = st.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(3.5)
		scatter.GlyphStyle.Shape = shapes[i%len(shapes)]
		p.Add(scatter)
		p.Legend.Add(label, scatter)
	}

	return st.Save(p, outPath)
}

// renderCorrelationMatrix draws the 4x4 pairwise panel figure: scatter plots
// off the diagonal, variable names on it, with the Pearson r (gonum/stat) in
// each panel title.
func renderCorrelationMatrix(t *dataset.Table, st render.Style, outPath string) error {
	vars := []string{"var1", "var2", "var3", "var4"}

	plots := make([][]*plot.Plot, len(vars))
	for i := range vars {
		plots[i] = make([]*plot.Plot, len(vars))
		for j := range vars {
			p := plot.New()
			p.X.Tick.Label.Font.Size = vg.Points(8)
			p.Y.Tick.Label.Font.Size = vg.Points(8)

			if i == j {
				p.Title.Text = vars[i]
				p.HideAxes()
				plots[i][j] = p
				continue
			}

			xs, ys := t.FloatPairs(vars[j], vars[i])
			scatter, err := plotter.NewScatter(xyPoints(xs, ys))
			if err != nil {
				return err
			}
			scatter.GlyphStyle.Color = st.Color(0)
			scatter.GlyphStyle.Radius = vg.Points(1.5)
			p.Add(scatter)

			r := stat.Correlation(xs, ys, nil)
			p.Title.Text = fmt.Sprintf("r = %.2f", r)
			p.Title.TextStyle.Font.Size = vg.Points(9)
			plots[i][j] = p
		}
	}

	return st.SaveGrid(plots, outPath)
}
