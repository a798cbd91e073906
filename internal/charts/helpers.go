package charts

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
)

// xyPoints zips aligned slices into plotter points
func xyPoints(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// translucent returns the palette color with the given alpha, for fills
func translucent(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}

// linspace returns n evenly spaced values across [min, max]
func linspace(min, max float64, n int) []float64 {
	if n < 2 {
		return []float64{min}
	}
	step := (max - min) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	return out
}

// binIndex places a value into one of n equal bins spanning [min, max]
func binIndex(v, min, max float64, n int) int {
	if max <= min {
		return 0
	}
	i := int((v - min) / (max - min) * float64(n))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

// binCounts counts values per bin over the shared range [min, max]
func binCounts(values []float64, min, max float64, n int) []float64 {
	counts := make([]float64, n)
	for _, v := range values {
		counts[binIndex(v, min, max, n)]++
	}
	return counts
}

// binCenters returns the midpoints of n equal bins over [min, max]
func binCenters(min, max float64, n int) []float64 {
	width := (max - min) / float64(n)
	centers := make([]float64, n)
	for i := range centers {
		centers[i] = min + (float64(i)+0.5)*width
	}
	return centers
}

// minMax returns the bounds of a non-empty slice
func minMax(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
