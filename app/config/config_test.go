package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	conf := Default()
	assert.Equal(t, 3.0, conf.Plot.MarkerSize)
	assert.Equal(t, 0.8, conf.Plot.Opacity)
	assert.Equal(t, 1300, conf.Plot.Width)
	assert.Equal(t, 900, conf.Plot.Height)
	assert.Equal(t, "Viridis", conf.Plot.ColorScale)
	assert.Equal(t, ",", conf.Source.CSVSep)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"source": {"file": "Data.csv", "column_x": "Price (INR)", "color_coding": "Price (INR)"},
		"plot": {"title": "Fault Groups", "width": 800}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Data.csv", conf.Source.File)
	assert.Equal(t, "Price (INR)", conf.Source.ColumnX)
	assert.Equal(t, "Fault Groups", conf.Plot.Title)
	assert.Equal(t, 800, conf.Plot.Width)
	// untouched fields keep their defaults
	assert.Equal(t, 900, conf.Plot.Height)
	assert.Equal(t, 0.8, conf.Plot.Opacity)
	assert.Equal(t, ",", conf.Source.CSVSep)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
