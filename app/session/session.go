// Package session owns the live state of one plotting session: the
// loaded dataset and the four current column selectors. Every selector
// change rebuilds the whole figure from the current values of all four.
package session

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/mahesh-hegde/chitra/app/common"
	"github.com/mahesh-hegde/chitra/app/config"
	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/mahesh-hegde/chitra/app/figure"
)

// Axis identifies one of the four selectors.
type Axis string

const (
	AxisX     Axis = "x"
	AxisY     Axis = "y"
	AxisZ     Axis = "z"
	AxisColor Axis = "color"
)

// Session holds the immutable post-coercion dataset and the mutable
// selection. The mutex serializes recomputes, so a render always
// completes before the next selector change is applied.
type Session struct {
	mu   sync.Mutex
	ds   *dataset.Dataset
	sel  figure.Selection
	plot config.PlotDefaults
	fig  figure.Figure
}

// New validates the initial selection against the dataset and renders
// the first figure.
func New(ds *dataset.Dataset, initial figure.Selection, plot config.PlotDefaults) (*Session, error) {
	for _, name := range []string{initial.X, initial.Y, initial.Z, initial.Color} {
		if !ds.HasColumn(name) {
			return nil, fmt.Errorf("initial selection references unknown column %q", name)
		}
	}
	s := &Session{ds: ds, sel: initial, plot: plot}
	s.fig = figure.Build(ds, initial, plot)
	return s, nil
}

// Set changes one selector and recomputes the figure from all four
// current selectors. Unknown columns are rejected before any render,
// so the normalizer's first-column fallback never fires from here.
func (s *Session) Set(axis Axis, column string) (figure.Figure, error) {
	if !s.ds.HasColumn(column) {
		return figure.Figure{}, common.Errorf(http.StatusBadRequest,
			"no column named %q in the dataset", column)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch axis {
	case AxisX:
		s.sel.X = column
	case AxisY:
		s.sel.Y = column
	case AxisZ:
		s.sel.Z = column
	case AxisColor:
		s.sel.Color = column
	default:
		return figure.Figure{}, common.Errorf(http.StatusBadRequest,
			"unknown selector %q, expected x, y, z or color", string(axis))
	}

	s.fig = figure.Build(s.ds, s.sel, s.plot)
	return s.fig, nil
}

// Figure returns the current rendered figure.
func (s *Session) Figure() figure.Figure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fig
}

// Selection returns the current four selector values.
func (s *Session) Selection() figure.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// Dataset returns the session's dataset. It is read-only after load.
func (s *Session) Dataset() *dataset.Dataset {
	return s.ds
}
