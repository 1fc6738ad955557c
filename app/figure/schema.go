// Package figure builds plotly-compatible 3D scatter figures from a
// dataset and the current column selection. The types here marshal
// directly into plotly.js's figure JSON.
package figure

import (
	"math"
	"strconv"
)

// Selection names the four columns a figure is rendered against.
// Columns may overlap (the color column may equal an axis column).
type Selection struct {
	X     string `json:"x"`
	Y     string `json:"y"`
	Z     string `json:"z"`
	Color string `json:"color"`
}

// Floats marshals like a plain JSON array, except that NaN and Inf
// become null. plotly treats null as a gap, and encoding/json refuses
// NaN outright.
type Floats []float64

func (f Floats) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 1+len(f)*8)
	buf = append(buf, '[')
	for i, v := range f {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	buf = append(buf, ']')
	return buf, nil
}

type Title struct {
	Text string `json:"text"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

// Marker carries the point styling. Color is either a Floats series
// (continuous mode) or a single palette hex string (discrete mode).
type Marker struct {
	Size       float64   `json:"size"`
	Opacity    float64   `json:"opacity"`
	Color      any       `json:"color,omitempty"`
	ColorScale string    `json:"colorscale,omitempty"`
	ShowScale  bool      `json:"showscale,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
}

type Trace struct {
	Type          string     `json:"type"`
	Mode          string     `json:"mode"`
	Name          string     `json:"name,omitempty"`
	X             Floats     `json:"x"`
	Y             Floats     `json:"y"`
	Z             Floats     `json:"z"`
	Marker        Marker     `json:"marker"`
	CustomData    [][]string `json:"customdata,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
}

type Axis struct {
	Title Title `json:"title"`
}

type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

type Legend struct {
	Title Title `json:"title"`
}

type Layout struct {
	Title      Title   `json:"title"`
	AutoSize   bool    `json:"autosize"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Margin     Margin  `json:"margin"`
	Scene      Scene   `json:"scene"`
	ShowLegend bool    `json:"showlegend"`
	Legend     *Legend `json:"legend,omitempty"`
}

// Figure is the fully rendered plot description. It is regenerated
// from scratch on every render, never patched.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}
