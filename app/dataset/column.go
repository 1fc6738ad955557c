package dataset

import (
	"strconv"
	"time"
)

// Column is a named, typed sequence of cell values. Exactly one backing
// slice is populated, matching the column's kind; missing marks cells
// that had no value in the source.
type Column struct {
	name    string
	kind    Kind
	floats  []float64
	bools   []bool
	times   []time.Time
	durs    []time.Duration
	strs    []string
	missing []bool
}

func NewNumericColumn(name string, values []float64, missing []bool) *Column {
	return &Column{name: name, kind: KindNumeric, floats: values, missing: padMissing(missing, len(values))}
}

func NewBoolColumn(name string, values []bool, missing []bool) *Column {
	return &Column{name: name, kind: KindBool, bools: values, missing: padMissing(missing, len(values))}
}

func NewDatetimeColumn(name string, values []time.Time, missing []bool) *Column {
	return &Column{name: name, kind: KindDatetime, times: values, missing: padMissing(missing, len(values))}
}

func NewDurationColumn(name string, values []time.Duration, missing []bool) *Column {
	return &Column{name: name, kind: KindDuration, durs: values, missing: padMissing(missing, len(values))}
}

func NewTextColumn(name string, values []string, missing []bool) *Column {
	return &Column{name: name, kind: KindText, strs: values, missing: padMissing(missing, len(values))}
}

func padMissing(missing []bool, n int) []bool {
	if missing == nil {
		return make([]bool, n)
	}
	return missing
}

func (c *Column) Name() string { return c.name }

func (c *Column) Kind() Kind { return c.kind }

func (c *Column) Len() int {
	switch c.kind {
	case KindNumeric:
		return len(c.floats)
	case KindBool:
		return len(c.bools)
	case KindDatetime:
		return len(c.times)
	case KindDuration:
		return len(c.durs)
	case KindText:
		return len(c.strs)
	}
	return 0
}

func (c *Column) Missing(i int) bool { return c.missing[i] }

// DisplayValue renders the original cell value for tooltips. It never
// shows an internal code or epoch-seconds number: a text cell renders
// its label, a datetime its RFC 3339 form, a duration its Go notation.
func (c *Column) DisplayValue(i int) string {
	switch c.kind {
	case KindNumeric:
		if c.missing[i] {
			return "0"
		}
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64)
	case KindBool:
		if c.missing[i] {
			return "false"
		}
		return strconv.FormatBool(c.bools[i])
	case KindDatetime:
		if c.missing[i] {
			return ""
		}
		return c.times[i].Format(time.RFC3339)
	case KindDuration:
		if c.missing[i] {
			return ""
		}
		return c.durs[i].String()
	case KindText:
		if c.missing[i] || c.strs[i] == "" {
			return unknownCategory
		}
		return c.strs[i]
	}
	return ""
}
