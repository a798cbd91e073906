// Package charts defines the six chart families and their dataset contracts.
// Each variant pairs a dataset.Spec with a render function; loading and
// validation always go through dataset.Load, rendering always goes through
// the explicit render.Style value.
package charts

import (
	"sciplot/internal/dataset"
	"sciplot/internal/render"
)

// RenderFunc maps a validated table onto one chart image
type RenderFunc func(t *dataset.Table, st render.Style, outPath string) error

// Variant is one named chart: its input contract, output file and renderer
type Variant struct {
	Spec   dataset.Spec
	Output string
	Render RenderFunc
}

// Family is one of the six top-level chart categories
type Family struct {
	Name     string
	Variants []Variant
}

// Families returns all chart families in the order the original suite runs
// them
func Families() []Family {
	return []Family{
		LineFamily(),
		BarFamily(),
		ScatterFamily(),
		BoxFamily(),
		HistogramFamily(),
		ThreeDFamily(),
	}
}

// AllSpecs returns every dataset specification across all families
func AllSpecs() []dataset.Spec {
	var specs []dataset.Spec
	for _, f := range Families() {
		for _, v := range f.Variants {
			specs = append(specs, v.Spec)
		}
	}
	return specs
}
