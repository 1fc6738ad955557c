package figure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mahesh-hegde/chitra/app/config"
	"github.com/mahesh-hegde/chitra/app/dataset"
)

// Build renders a complete figure for the given selection. Axis
// columns are normalized independently; the color column picks the
// encoding: continuous (one trace, colorbar) for numeric, bool,
// datetime and duration columns, discrete (one trace per category,
// legend) for text columns. Unknown column names fall back to the
// dataset's first column, matching the normalizer.
func Build(d *dataset.Dataset, sel Selection, plot config.PlotDefaults) Figure {
	xs := dataset.Normalize(d, sel.X)
	ys := dataset.Normalize(d, sel.Y)
	zs := dataset.Normalize(d, sel.Z)

	xCol := resolveColumn(d, sel.X)
	yCol := resolveColumn(d, sel.Y)
	zCol := resolveColumn(d, sel.Z)
	colorCol := resolveColumn(d, sel.Color)
	colorSeries := dataset.Normalize(d, colorCol.Name())

	custom := customData(xCol, yCol, zCol, colorCol)
	hover := hoverTemplate(xCol.Name(), yCol.Name(), zCol.Name(), colorCol.Name())

	layout := Layout{
		Title:    Title{Text: plot.Title},
		AutoSize: false,
		Width:    plot.Width,
		Height:   plot.Height,
		Margin:   Margin{L: 65, R: 50, B: 65, T: 90},
		Scene: Scene{
			XAxis: Axis{Title: Title{Text: xCol.Name()}},
			YAxis: Axis{Title: Title{Text: yCol.Name()}},
			ZAxis: Axis{Title: Title{Text: zCol.Name()}},
		},
	}

	if colorCol.Kind().Continuous() {
		trace := Trace{
			Type: "scatter3d",
			Mode: "markers",
			Name: "Data Points",
			X:    xs.Values,
			Y:    ys.Values,
			Z:    zs.Values,
			Marker: Marker{
				Size:       plot.MarkerSize,
				Opacity:    plot.Opacity,
				Color:      Floats(colorSeries.Values),
				ColorScale: plot.ColorScale,
				ShowScale:  true,
				ColorBar:   &ColorBar{Title: Title{Text: colorCol.Name()}},
			},
			CustomData:    custom,
			HoverTemplate: hover,
		}
		return Figure{Data: []Trace{trace}, Layout: layout}
	}

	// Discrete: partition rows by category code. Codes are assigned in
	// first-seen order, so trace order and palette assignment are stable
	// across renders of the same column.
	traces := make([]Trace, 0, len(colorSeries.Categories))
	for code, category := range colorSeries.Categories {
		trace := Trace{
			Type: "scatter3d",
			Mode: "markers",
			Name: category,
			Marker: Marker{
				Size:    plot.MarkerSize,
				Opacity: plot.Opacity,
				Color:   paletteColor(code),
			},
			HoverTemplate: hover,
		}
		for i, v := range colorSeries.Values {
			if int(v) != code {
				continue
			}
			trace.X = append(trace.X, xs.Values[i])
			trace.Y = append(trace.Y, ys.Values[i])
			trace.Z = append(trace.Z, zs.Values[i])
			trace.CustomData = append(trace.CustomData, custom[i])
		}
		traces = append(traces, trace)
	}
	layout.ShowLegend = true
	layout.Legend = &Legend{Title: Title{Text: colorCol.Name()}}
	return Figure{Data: traces, Layout: layout}
}

func resolveColumn(d *dataset.Dataset, name string) *dataset.Column {
	if col, ok := d.Column(name); ok {
		return col
	}
	return d.First()
}

// customData carries, per point, the row index and the four selected
// columns' original display values, so tooltips never show normalized
// codes or epoch seconds.
func customData(x, y, z, color *dataset.Column) [][]string {
	rows := x.Len()
	custom := make([][]string, rows)
	for i := 0; i < rows; i++ {
		custom[i] = []string{
			strconv.Itoa(i),
			x.DisplayValue(i),
			y.DisplayValue(i),
			z.DisplayValue(i),
			color.DisplayValue(i),
		}
	}
	return custom
}

func hoverTemplate(xName, yName, zName, colorName string) string {
	var b strings.Builder
	b.WriteString("Row %{customdata[0]}")
	fmt.Fprintf(&b, "<br>%s: %%{customdata[1]}", xName)
	fmt.Fprintf(&b, "<br>%s: %%{customdata[2]}", yName)
	fmt.Fprintf(&b, "<br>%s: %%{customdata[3]}", zName)
	fmt.Fprintf(&b, "<br>%s: %%{customdata[4]}", colorName)
	b.WriteString("<extra></extra>")
	return b.String()
}
