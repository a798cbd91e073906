package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjection_TopView(t *testing.T) {
	// At 90 degrees elevation the projection is a straight top-down view of
	// the rotated x/y plane; z drops out.
	pr := Projection{Azimuth: 0, Elevation: 90}

	px, py := pr.Point(1, 2, 100)
	assert.InDelta(t, 1, px, 1e-9)
	assert.InDelta(t, 2, py, 1e-9)
}

func TestProjection_FrontView(t *testing.T) {
	// At 0 elevation only z survives vertically.
	pr := Projection{Azimuth: 0, Elevation: 0}

	_, py := pr.Point(3, 7, 2)
	assert.InDelta(t, 2, py, 1e-9)
}

func TestProjection_DistancePreservedUnderRotation(t *testing.T) {
	pr := DefaultProjection()
	x1, y1 := pr.Point(0, 0, 0)
	x2, y2 := pr.Point(1, 0, 0)
	d := math.Hypot(x2-x1, y2-y1)
	assert.Greater(t, d, 0.0)
	assert.LessOrEqual(t, d, 1.0+1e-9)
}

func TestNewGrid_Dims(t *testing.T) {
	xs := []float64{0, 1, 0, 1}
	ys := []float64{0, 0, 1, 1}
	zs := []float64{10, 20, 30, 40}

	g := NewGrid(xs, ys, zs)
	c, r := g.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 10.0, g.Z(0, 0))
	assert.Equal(t, 20.0, g.Z(1, 0))
	assert.Equal(t, 30.0, g.Z(0, 1))
	assert.Equal(t, 40.0, g.Z(1, 1))
	assert.Equal(t, 0.0, g.X(0))
	assert.Equal(t, 1.0, g.Y(1))
}

func TestNewGrid_SparseCellsFilledWithMin(t *testing.T) {
	xs := []float64{0, 1, 0}
	ys := []float64{0, 0, 1}
	zs := []float64{5, 9, 7}

	g := NewGrid(xs, ys, zs)
	// Cell (1,1) was never observed; it takes the minimum z.
	assert.Equal(t, 5.0, g.Z(1, 1))
}

func TestGrid_Paths(t *testing.T) {
	xs := []float64{0, 1, 0, 1}
	ys := []float64{0, 0, 1, 1}
	zs := []float64{1, 2, 3, 4}

	g := NewGrid(xs, ys, zs)
	rows := g.RowPaths()
	cols := g.ColPaths()
	assert.Len(t, rows, 2)
	assert.Len(t, cols, 2)
	assert.Equal(t, [3]float64{0, 0, 1}, rows[0][0])
	assert.Equal(t, [3]float64{1, 0, 2}, rows[0][1])
	assert.Equal(t, [3]float64{0, 1, 3}, cols[0][1])
}
