package render

import (
	"math"
	"sort"
)

// Projection is a fixed orthographic camera used to draw 3D geometry with 2D
// primitives: rotate about the vertical axis by Azimuth, tilt by Elevation,
// drop the depth coordinate. Angles are in degrees.
type Projection struct {
	Azimuth   float64
	Elevation float64
}

// DefaultProjection matches the usual oblique view of a 3D axes
func DefaultProjection() Projection {
	return Projection{Azimuth: 45, Elevation: 30}
}

// Point maps a 3D point to canvas coordinates
func (pr Projection) Point(x, y, z float64) (px, py float64) {
	az := pr.Azimuth * math.Pi / 180
	el := pr.Elevation * math.Pi / 180

	depth := x*math.Sin(az) + y*math.Cos(az)
	px = x*math.Cos(az) - y*math.Sin(az)
	py = z*math.Cos(el) + depth*math.Sin(el)
	return px, py
}

// Grid is a rectangular z grid assembled from (x, y, z) triples, in the form
// the heat map and contour plotters consume. Cells absent from the input are
// filled with the minimum z so the palette mapping stays finite.
type Grid struct {
	xs, ys []float64
	z      [][]float64
}

// NewGrid builds a Grid from parallel coordinate slices
func NewGrid(xs, ys, zs []float64) *Grid {
	ux := uniqueSorted(xs)
	uy := uniqueSorted(ys)

	xIndex := indexOf(ux)
	yIndex := indexOf(uy)

	minZ := math.Inf(1)
	for _, z := range zs {
		if z < minZ {
			minZ = z
		}
	}
	if math.IsInf(minZ, 1) {
		minZ = 0
	}

	z := make([][]float64, len(ux))
	for i := range z {
		z[i] = make([]float64, len(uy))
		for j := range z[i] {
			z[i][j] = minZ
		}
	}
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if len(zs) < n {
		n = len(zs)
	}
	for k := 0; k < n; k++ {
		z[xIndex[xs[k]]][yIndex[ys[k]]] = zs[k]
	}

	return &Grid{xs: ux, ys: uy, z: z}
}

// Dims implements plotter.GridXYZ
func (g *Grid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// Z implements plotter.GridXYZ
func (g *Grid) Z(c, r int) float64 { return g.z[c][r] }

// X implements plotter.GridXYZ
func (g *Grid) X(c int) float64 { return g.xs[c] }

// Y implements plotter.GridXYZ
func (g *Grid) Y(r int) float64 { return g.ys[r] }

// RowPaths returns the grid's points organized along constant-y rows, for
// wireframe drawing
func (g *Grid) RowPaths() [][][3]float64 {
	paths := make([][][3]float64, 0, len(g.ys))
	for r := range g.ys {
		path := make([][3]float64, 0, len(g.xs))
		for c := range g.xs {
			path = append(path, [3]float64{g.xs[c], g.ys[r], g.z[c][r]})
		}
		paths = append(paths, path)
	}
	return paths
}

// ColPaths returns the grid's points organized along constant-x columns
func (g *Grid) ColPaths() [][][3]float64 {
	paths := make([][][3]float64, 0, len(g.xs))
	for c := range g.xs {
		path := make([][3]float64, 0, len(g.ys))
		for r := range g.ys {
			path = append(path, [3]float64{g.xs[c], g.ys[r], g.z[c][r]})
		}
		paths = append(paths, path)
	}
	return paths
}

func uniqueSorted(values []float64) []float64 {
	seen := make(map[float64]bool, len(values))
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

func indexOf(sorted []float64) map[float64]int {
	index := make(map[float64]int, len(sorted))
	for i, v := range sorted {
		index[v] = i
	}
	return index
}
