package charts

import (
	"sciplot/internal/dataset"
	"sciplot/internal/render"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BarFamily covers the four bar chart variants: basic, grouped, stacked and
// horizontal.
func BarFamily() Family {
	return Family{
		Name: "bar_chart",
		Variants: []Variant{
			{
				Spec: dataset.Spec{
					Name:        "basic_bar",
					File:        "basic_bar_data.csv",
					Columns:     []string{"category", "value"},
					Description: "one value per category",
					Example: `category,value
Method A,85
Method B,72
Method C,91
Method D,68`,
				},
				Output: "basic_bar_chart.png",
				Render: renderBasicBar,
			},
			{
				Spec: dataset.Spec{
					Name:        "grouped_bar",
					File:        "grouped_bar_data.csv",
					Columns:     []string{"category", "group_a", "group_b", "group_c"},
					Description: "three groups compared side by side per category",
					Example: `category,group_a,group_b,group_c
Q1,85,72,91
Q2,78,85,68
Q3,92,79,85
Q4,88,91,77`,
				},
				Output: "grouped_bar_chart.png",
				Render: renderGroupedBar,
			},
			{
				Spec: dataset.Spec{
					Name:        "stacked_bar",
					File:        "stacked_bar_data.csv",
					Columns:     []string{"category", "part_a", "part_b", "part_c"},
					Description: "three parts stacked to a total per category",
					Example: `category,part_a,part_b,part_c
Product A,30,25,20
Product B,35,30,15
Product C,25,35,25
Product D,40,20,25`,
				},
				Output: "stacked_bar_chart.png",
				Render: renderStackedBar,
			},
			{
				Spec: dataset.Spec{
					Name:        "horizontal_bar",
					File:        "horizontal_bar_data.csv",
					Columns:     []string{"item", "score"},
					Description: "ranked scores drawn as horizontal bars",
					Example: `item,score
Algorithm A,92
Algorithm B,85
Algorithm C,78
Algorithm D,88`,
				},
				Output: "horizontal_bar_chart.png",
				Render: renderHorizontalBar,
			},
		},
	}
}

func renderBasicBar(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Basic Bar Chart", "Category", "Value")

	bars, err := plotter.NewBarChart(plotter.Values(t.Floats("value")), vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = st.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(t.Strings("category")...)

	return st.Save(p, outPath)
}

func renderGroupedBar(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Grouped Bar Chart", "Category", "Value")

	groups := []struct {
		column string
		label  string
	}{
		{"group_a", "Group A"},
		{"group_b", "Group B"},
		{"group_c", "Group C"},
	}

	width := vg.Points(14)
	for i, g := range groups {
		bars, err := plotter.NewBarChart(plotter.Values(t.Floats(g.column)), width)
		if err != nil {
			return err
		}
		bars.Color = st.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = width * vg.Length(i-1)
		p.Add(bars)
		p.Legend.Add(g.label, bars)
	}
	p.NominalX(t.Strings("category")...)

	return st.Save(p, outPath)
}

func renderStackedBar(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Stacked Bar Chart", "Category", "Value")

	parts := []struct {
		column string
		label  string
	}{
		{"part_a", "Part A"},
		{"part_b", "Part B"},
		{"part_c", "Part C"},
	}

	var prev *plotter.BarChart
	for i, part := range parts {
		bars, err := plotter.NewBarChart(plotter.Values(t.Floats(part.column)), vg.Points(30))
		if err != nil {
			return err
		}
		bars.Color = st.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(part.label, bars)
		prev = bars
	}
	p.NominalX(t.Strings("category")...)

	return st.Save(p, outPath)
}

func renderHorizontalBar(t *dataset.Table, st render.Style, outPath string) error {
	p := st.NewPlot("Horizontal Bar Chart", "Score", "Item")

	bars, err := plotter.NewBarChart(plotter.Values(t.Floats("score")), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = st.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	bars.Horizontal = true
	p.Add(bars)
	p.NominalY(t.Strings("item")...)

	return st.Save(p, outPath)
}
