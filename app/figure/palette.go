package figure

// Qualitative palette for discrete color mode, matching plotly's
// default category colors. Categories past the end wrap around.
var discretePalette = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

func paletteColor(i int) string {
	return discretePalette[i%len(discretePalette)]
}
