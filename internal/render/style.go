package render

import (
	"image/color"
	"os"
	"path/filepath"

	"sciplot/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Style is the cosmetic configuration shared by every chart: palette, output
// resolution and font sizes. It is an explicit value passed to each renderer
// so chart generation stays referentially transparent; there is no package
// level mutable styling state.
type Style struct {
	Palette    []color.Color
	DPI        int
	Width      vg.Length
	Height     vg.Length
	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length
}

// scientificPalette mirrors the matplotlib tab colors used by journal-style
// figures
var scientificPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// gridColor is a light gray standing in for grid alpha 0.3 on white
var gridColor = color.RGBA{R: 0xb4, G: 0xb4, B: 0xb4, A: 0xff}

// NewStyle builds the scientific style at the given resolution
func NewStyle(dpi int, widthIn, heightIn float64) Style {
	return Style{
		Palette:    scientificPalette,
		DPI:        dpi,
		Width:      vg.Length(widthIn) * vg.Inch,
		Height:     vg.Length(heightIn) * vg.Inch,
		TitleSize:  vg.Points(16),
		LabelSize:  vg.Points(14),
		TickSize:   vg.Points(12),
		LegendSize: vg.Points(12),
	}
}

// Color returns the palette color for a series index, cycling past the end
func (s Style) Color(i int) color.Color {
	return s.Palette[i%len(s.Palette)]
}

// NewPlot creates a styled plot with title, axis labels and a light grid
func (s Style) NewPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = s.TitleSize
	p.Title.Padding = vg.Points(6)
	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Size = s.LabelSize
	p.X.Tick.Label.Font.Size = s.TickSize
	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Size = s.LabelSize
	p.Y.Tick.Label.Font.Size = s.TickSize
	p.Legend.TextStyle.Font.Size = s.LegendSize
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	return p
}

// Save renders the plot to a PNG at the configured size and DPI, overwriting
// any existing file at the path
func (s Style) Save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", path)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(s.Width, s.Height),
		vgimg.UseDPI(s.DPI),
	)
	p.Draw(draw.New(canvas))

	return writePNG(canvas, path)
}

// SaveGrid renders a rectangular arrangement of plots (nil cells stay blank)
// to a single PNG, for panel figures like the correlation matrix
func (s Style) SaveGrid(plots [][]*plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", path)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(s.Width, s.Height),
		vgimg.UseDPI(s.DPI),
	)
	dc := draw.New(canvas)

	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Points(4),
		PadY: vg.Points(4),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	return writePNG(canvas, path)
}

func writePNG(canvas *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return f.Close()
}
