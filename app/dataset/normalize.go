package dataset

import (
	"log/slog"
	"math"
)

const unknownCategory = "Unknown"

// Series is the plot-ready numeric form of one column: one value per
// row, with NaN as the only missing-value sentinel (datetime and
// duration gaps). Text columns additionally carry their distinct
// category labels in first-seen order, so code i maps to Categories[i].
type Series struct {
	Values     []float64
	Categories []string
}

// Normalize converts the named column into a Series, one value per
// dataset row. Rules by kind:
//
//   - duration: total seconds, fractional
//   - datetime: elapsed seconds since the Unix epoch; missing becomes NaN
//   - text: missing becomes "Unknown", then each distinct category gets
//     an integer code in first-seen order
//   - numeric/bool: missing becomes 0, values cast to float64
//
// An unknown column name falls back to the first column. This mirrors
// the reference behavior; callers that want strict validation should
// check HasColumn before selecting.
func Normalize(d *Dataset, name string) Series {
	col, ok := d.Column(name)
	if !ok {
		col = d.First()
		slog.Warn("column not found, falling back to first column",
			"requested", name, "fallback", col.Name())
	}
	return normalizeColumn(col)
}

func normalizeColumn(c *Column) Series {
	n := c.Len()
	values := make([]float64, n)

	switch c.kind {
	case KindDuration:
		for i, dur := range c.durs {
			if c.missing[i] {
				values[i] = math.NaN()
				continue
			}
			values[i] = dur.Seconds()
		}
		return Series{Values: values}
	case KindDatetime:
		for i, t := range c.times {
			if c.missing[i] {
				values[i] = math.NaN()
				continue
			}
			values[i] = float64(t.UnixNano()) / 1e9
		}
		return Series{Values: values}
	case KindText:
		codes := make(map[string]float64, 16)
		var categories []string
		for i, s := range c.strs {
			if c.missing[i] || s == "" {
				s = unknownCategory
			}
			code, seen := codes[s]
			if !seen {
				code = float64(len(categories))
				codes[s] = code
				categories = append(categories, s)
			}
			values[i] = code
		}
		return Series{Values: values, Categories: categories}
	case KindBool:
		for i, b := range c.bools {
			if b && !c.missing[i] {
				values[i] = 1
			}
		}
		return Series{Values: values}
	case KindNumeric:
		for i, f := range c.floats {
			// NaN is reserved as the missing sentinel; a numeric column
			// must never emit one, whatever its backing values hold.
			if c.missing[i] || math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			values[i] = f
		}
		return Series{Values: values}
	}
	return Series{Values: values}
}
