package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlotDefaults holds the visual constants applied to every rendered figure.
// They are configuration, not per-call parameters.
type PlotDefaults struct {
	Title      string  `json:"title"`
	MarkerSize float64 `json:"marker_size"`
	Opacity    float64 `json:"opacity"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	ColorScale string  `json:"color_scale"`
}

// SourceDefaults names the data source and the columns to preselect,
// so a known dataset can be opened without any prompting.
type SourceDefaults struct {
	File    string `json:"file"`
	Sheet   string `json:"sheet"`
	Table   string `json:"table"`
	CSVSep  string `json:"csv_sep"`
	ColumnX string `json:"column_x"`
	ColumnY string `json:"column_y"`
	ColumnZ string `json:"column_z"`
	// Column whose values drive the point colors.
	ColorCoding string `json:"color_coding"`
}

type ChitraConfig struct {
	Source SourceDefaults `json:"source"`
	Plot   PlotDefaults   `json:"plot"`
}

// ServerRuntimeConfig carries the bind parameters, set from CLI flags.
type ServerRuntimeConfig struct {
	Addr        string
	Port        int
	RateLimit   int
	GzipLevel   int
	OpenBrowser bool
}

func Default() *ChitraConfig {
	return &ChitraConfig{
		Source: SourceDefaults{
			CSVSep: ",",
		},
		Plot: PlotDefaults{
			Title:      "3D Scatter Plot - Interactive",
			MarkerSize: 3,
			Opacity:    0.8,
			Width:      1300,
			Height:     900,
			ColorScale: "Viridis",
		},
	}
}

// Load reads a config file and overlays it on the defaults. Zero values
// in the file keep their defaults.
func Load(path string) (*ChitraConfig, error) {
	conf := Default()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	var fileConf ChitraConfig
	if err := json.NewDecoder(f).Decode(&fileConf); err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}
	mergeConfig(conf, &fileConf)
	return conf, nil
}

func mergeConfig(base, over *ChitraConfig) {
	if over.Source.File != "" {
		base.Source.File = over.Source.File
	}
	if over.Source.Sheet != "" {
		base.Source.Sheet = over.Source.Sheet
	}
	if over.Source.Table != "" {
		base.Source.Table = over.Source.Table
	}
	if over.Source.CSVSep != "" {
		base.Source.CSVSep = over.Source.CSVSep
	}
	if over.Source.ColumnX != "" {
		base.Source.ColumnX = over.Source.ColumnX
	}
	if over.Source.ColumnY != "" {
		base.Source.ColumnY = over.Source.ColumnY
	}
	if over.Source.ColumnZ != "" {
		base.Source.ColumnZ = over.Source.ColumnZ
	}
	if over.Source.ColorCoding != "" {
		base.Source.ColorCoding = over.Source.ColorCoding
	}
	if over.Plot.Title != "" {
		base.Plot.Title = over.Plot.Title
	}
	if over.Plot.MarkerSize != 0 {
		base.Plot.MarkerSize = over.Plot.MarkerSize
	}
	if over.Plot.Opacity != 0 {
		base.Plot.Opacity = over.Plot.Opacity
	}
	if over.Plot.Width != 0 {
		base.Plot.Width = over.Plot.Width
	}
	if over.Plot.Height != 0 {
		base.Plot.Height = over.Plot.Height
	}
	if over.Plot.ColorScale != "" {
		base.Plot.ColorScale = over.Plot.ColorScale
	}
}
