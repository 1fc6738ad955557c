package dataset

import (
	"strconv"
	"strings"
)

// OrdinalIntent is the operator's per-column decision for a text
// column: keep it categorical, or coerce it to numbers.
type OrdinalIntent int

const (
	KeepText OrdinalIntent = iota
	ConvertToNumber
)

// OrdinalDecisions maps column name to the chosen intent. Text columns
// absent from the map keep their text kind.
type OrdinalDecisions map[string]OrdinalIntent

// ApplyOrdinalDecisions runs the one-time coercion pass over a freshly
// loaded dataset. After it returns, the dataset is treated as
// immutable:
//
//   - text + KeepText: missing cells become the "Unknown" category
//   - text + ConvertToNumber: cells parsed as numbers, unparsable and
//     missing cells become 0, the column kind becomes numeric
//   - numeric/bool: missing cells filled with the zero value
//   - datetime/duration: untouched; gaps stay missing and normalize to NaN
func ApplyOrdinalDecisions(d *Dataset, decisions OrdinalDecisions) {
	for _, c := range d.cols {
		switch c.kind {
		case KindText:
			if decisions[c.name] == ConvertToNumber {
				coerceTextToNumeric(c)
				continue
			}
			for i := range c.strs {
				if c.missing[i] || c.strs[i] == "" {
					c.strs[i] = unknownCategory
					c.missing[i] = false
				}
			}
		case KindNumeric:
			for i := range c.floats {
				if c.missing[i] {
					c.floats[i] = 0
					c.missing[i] = false
				}
			}
		case KindBool:
			for i := range c.bools {
				if c.missing[i] {
					c.bools[i] = false
					c.missing[i] = false
				}
			}
		case KindDatetime, KindDuration:
		}
	}
}

func coerceTextToNumeric(c *Column) {
	floats := make([]float64, len(c.strs))
	for i, s := range c.strs {
		if c.missing[i] {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			continue
		}
		floats[i] = v
	}
	c.kind = KindNumeric
	c.floats = floats
	c.strs = nil
	for i := range c.missing {
		c.missing[i] = false
	}
}
