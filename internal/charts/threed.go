package charts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"sciplot/internal/dataset"
	"sciplot/internal/render"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ThreeDFamily covers the six 3D variants. gonum/plot draws on a 2D canvas,
// so grid data (surface, bars, contour) renders as heat map or contour
// figures, and point or path data (scatter, wireframe, parametric) goes
// through a fixed isometric projection onto 2D primitives.
func ThreeDFamily() Family {
	return Family{
		Name: "3d_plot",
		Variants: []Variant{
			{
				Spec: dataset.Spec{
					Name:        "surface_3d",
					File:        "3d_surface_data.csv",
					Columns:     []string{"x", "y", "z"},
					Description: "a z value sampled over an x/y grid",
					Example: `x,y,z
0.0,0.0,0.5
0.1,0.0,0.6
0.0,0.1,0.7
0.1,0.1,0.8`,
				},
				Output: "surface_3d.png",
				Render: renderSurface3D,
			},
			{
				Spec: dataset.Spec{
					Name:        "scatter_3d",
					File:        "3d_scatter_data.csv",
					Columns:     []string{"x", "y", "z", "group"},
					Description: "grouped points in three dimensions",
					Example: `x,y,z,group
1.2,2.4,3.1,Group A
2.1,4.3,2.8,Group B
3.5,6.8,4.2,Group A
4.2,8.1,3.7,Group C`,
				},
				Output: "scatter_3d.png",
				Render: renderScatter3D,
			},
			{
				Spec: dataset.Spec{
					Name:        "wireframe_3d",
					File:        "3d_wireframe_data.csv",
					Columns:     []string{"x", "y", "z"},
					Description: "a z grid drawn as projected mesh lines",
					Example: `x,y,z
0.0,0.0,0.5
0.1,0.0,0.6
0.0,0.1,0.7
0.1,0.1,0.8`,
				},
				Output: "wireframe_3d.png",
				Render: renderWireframe3D,
			},
			{
				Spec: dataset.Spec{
					Name:        "bar_3d",
					File:        "3d_bar_data.csv",
					Columns:     []string{"x_pos", "y_pos", "height"},
					Description: "bar heights positioned on an integer grid",
					Example: `x_pos,y_pos,height
0,0,5.2
1,0,7.8
2,0,3.4
0,1,6.1`,
				},
				Output: "bar_3d.png",
				Render: renderBar3D,
			},
			{
				Spec: dataset.Spec{
					Name:        "contour_3d",
					File:        "3d_contour_data.csv",
					Columns:     []string{"x", "y", "z"},
					Description: "a z grid drawn as contour levels",
					Example: `x,y,z
0.0,0.0,0.5
0.1,0.0,0.6
0.0,0.1,0.7
0.1,0.1,0.8`,
				},
				Output: "contour_3d.png",
				Render: renderContour3D,
			},
			{
				Spec: dataset.Spec{
					Name:        "parametric_3d",
					File:        "parametric_3d_data.csv",
					Columns:     []string{"t", "x", "y", "z", "curve_type"},
					Description: "parametric space curves, one per curve_type",
					Example: `t,x,y,z,curve_type
0.0,1.0,0.0,0.0,helix
0.1,0.95,0.31,0.1,helix
0.0,1.0,0.0,0.0,spiral
0.1,0.90,0.28,0.0,spiral`,
				},
				Output: "parametric_3d.png",
				Render: renderParametric3D,
			},
		},
	}
}

func renderSurface3D(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("3D Surface", "X", "Y")

	grid, err := tableGrid(t, "x", "y", "z")
	if err != nil {
		return err
	}
	p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))

	return st.Save(p, outPath)
}

func renderScatter3D(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("3D Scatter", "", "")
	p.HideAxes()

	proj := render.DefaultProjection()
	for i, label := range t.Labels("group") {
		pts := make(plotter.XYs, 0)
		for _, row := range t.Rows {
			if strings.TrimSpace(row["group"]) != label {
				continue
			}
			x, y, z, ok := rowXYZ(row, "x", "y", "z")
			if !ok {
				continue
			}
			px, py := proj.Point(x, y, z)
			pts = append(pts, plotter.XY{X: px, Y: py})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = st.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(3.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(label, scatter)
	}

	return st.Save(p, outPath)
}

func renderWireframe3D(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("3D Wireframe", "", "")
	p.HideAxes()

	grid, err := tableGrid(t, "x", "y", "z")
	if err != nil {
		return err
	}

	proj := render.DefaultProjection()
	paths := append(grid.RowPaths(), grid.ColPaths()...)
	for _, path := range paths {
		pts := make(plotter.XYs, 0, len(path))
		for _, pt := range path {
			px, py := proj.Point(pt[0], pt[1], pt[2])
			pts = append(pts, plotter.XY{X: px, Y: py})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(0.75)
		line.LineStyle.Color = st.Color(0)
		p.Add(line)
	}

	return st.Save(p, outPath)
}

func renderBar3D(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("3D Bars", "X Position", "Y Position")

	grid, err := tableGrid(t, "x_pos", "y_pos", "height")
	if err != nil {
		return err
	}
	p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))

	return st.Save(p, outPath)
}

func renderContour3D(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("3D Contour", "X", "Y")

	grid, err := tableGrid(t, "x", "y", "z")
	if err != nil {
		return err
	}

	zs := t.Floats("z")
	min, max := minMax(zs)
	levels := linspace(min, max, 10)
	p.Add(plotter.NewContour(grid, levels, palette.Heat(12, 1)))

	return st.Save(p, outPath)
}

func renderParametric3D(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("3D Parametric Curves", "", "")
	p.HideAxes()

	proj := render.DefaultProjection()
	for i, label := range t.Labels("curve_type") {
		type sample struct {
			t, x, y, z float64
		}
		var samples []sample
		for _, row := range t.Rows {
			if strings.TrimSpace(row["curve_type"]) != label {
				continue
			}
			tv, err := strconv.ParseFloat(strings.TrimSpace(row["t"]), 64)
			if err != nil {
				continue
			}
			x, y, z, ok := rowXYZ(row, "x", "y", "z")
			if !ok {
				continue
			}
			samples = append(samples, sample{t: tv, x: x, y: y, z: z})
		}
		sort.Slice(samples, func(a, b int) bool { return samples[a].t < samples[b].t })

		pts := make(plotter.XYs, 0, len(samples))
		for _, s := range samples {
			px, py := proj.Point(s.x, s.y, s.z)
			pts = append(pts, plotter.XY{X: px, Y: py})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = st.Color(i)
		p.Add(line)
		p.Legend.Add(label, line)
	}

	return st.Save(p, outPath)
}

// tableGrid builds a render.Grid from three numeric columns
func tableGrid(t *dataset.Table, xcol, ycol, zcol string) (*render.Grid, error) {
	var xs, ys, zs []float64
	for _, row := range t.Rows {
		x, y, z, ok := rowXYZ(row, xcol, ycol, zcol)
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
		zs = append(zs, z)
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("no numeric %s/%s/%s triples", xcol, ycol, zcol)
	}
	return render.NewGrid(xs, ys, zs), nil
}

func rowXYZ(row dataset.Row, xcol, ycol, zcol string) (x, y, z float64, ok bool) {
	x, errX := strconv.ParseFloat(strings.TrimSpace(row[xcol]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(row[ycol]), 64)
	z, errZ := strconv.ParseFloat(strings.TrimSpace(row[zcol]), 64)
	return x, y, z, errX == nil && errY == nil && errZ == nil
}
