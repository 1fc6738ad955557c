package session

import (
	"testing"

	"github.com/mahesh-hegde/chitra/app/common"
	"github.com/mahesh-hegde/chitra/app/config"
	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/mahesh-hegde/chitra/app/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	d, err := dataset.New([]*dataset.Column{
		dataset.NewNumericColumn("price", []float64{10, 20, 30}, nil),
		dataset.NewNumericColumn("rating", []float64{4.5, 3.0, 5.0}, nil),
		dataset.NewTextColumn("category", []string{"A", "B", "A"}, nil),
	})
	require.NoError(t, err)
	s, err := New(d, figure.Selection{X: "price", Y: "rating", Z: "price", Color: "price"}, config.Default().Plot)
	require.NoError(t, err)
	return s
}

func TestNew_RendersInitialFigure(t *testing.T) {
	s := newTestSession(t)
	fig := s.Figure()
	require.Len(t, fig.Data, 1)
	assert.Len(t, fig.Data[0].X, 3)
}

func TestNew_RejectsUnknownInitialColumn(t *testing.T) {
	d, err := dataset.New([]*dataset.Column{
		dataset.NewNumericColumn("price", []float64{1}, nil),
	})
	require.NoError(t, err)
	_, err = New(d, figure.Selection{X: "price", Y: "nope", Z: "price", Color: "price"}, config.Default().Plot)
	assert.ErrorContains(t, err, "nope")
}

func TestSet_RecomputesFromAllFourSelectors(t *testing.T) {
	s := newTestSession(t)

	// Changing only the color selector must still honor the earlier
	// axis values in the rebuilt figure.
	_, err := s.Set(AxisY, "price")
	require.NoError(t, err)
	fig, err := s.Set(AxisColor, "category")
	require.NoError(t, err)

	require.Len(t, fig.Data, 2, "discrete color mode expected")
	assert.Equal(t, "price", fig.Layout.Scene.YAxis.Title.Text)
	assert.Equal(t, figure.Selection{X: "price", Y: "price", Z: "price", Color: "category"}, s.Selection())
}

func TestSet_SelectorsMayOverlap(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Set(AxisColor, "price")
	require.NoError(t, err)
	_, err = s.Set(AxisX, "price")
	require.NoError(t, err)
	sel := s.Selection()
	assert.Equal(t, sel.X, sel.Color)
}

func TestSet_RejectsUnknownColumn(t *testing.T) {
	s := newTestSession(t)
	before := s.Selection()

	_, err := s.Set(AxisX, "bogus")
	require.Error(t, err)
	uve, ok := err.(*common.UserVisibleError)
	require.True(t, ok)
	assert.Equal(t, 400, uve.HttpCode)
	assert.Equal(t, before, s.Selection(), "failed update must not change state")
}

func TestSet_RejectsUnknownAxis(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Set(Axis("w"), "price")
	assert.Error(t, err)
}
