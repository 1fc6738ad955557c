// Package dataset holds the in-memory table model: typed columns, the
// one-time ordinal coercion pass, and the normalization that turns any
// column into a plottable numeric series.
package dataset

import (
	"fmt"
)

// Dataset is an ordered set of equally long named columns. It is
// immutable after the ordinal pass; every render reads it by reference.
type Dataset struct {
	cols   []*Column
	byName map[string]*Column
}

func New(cols []*Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("dataset needs at least one column")
	}
	byName := make(map[string]*Column, len(cols))
	rows := cols[0].Len()
	for _, c := range cols {
		if c.Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name(), c.Len(), rows)
		}
		if _, dup := byName[c.Name()]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c.Name())
		}
		byName[c.Name()] = c
	}
	return &Dataset{cols: cols, byName: byName}, nil
}

func (d *Dataset) Rows() int {
	return d.cols[0].Len()
}

func (d *Dataset) Columns() []*Column {
	return d.cols
}

func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name()
	}
	return names
}

func (d *Dataset) Column(name string) (*Column, bool) {
	c, ok := d.byName[name]
	return c, ok
}

// First returns the leftmost column, the fallback target for unknown
// column references.
func (d *Dataset) First() *Column {
	return d.cols[0]
}

func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.byName[name]
	return ok
}
