package dataset

// Kind is the semantic type tag of a column. It is decided once, when a
// column is built (or changed by the one-time ordinal pass), and every
// normalization or color-mode decision switches on it exhaustively.
type Kind int

const (
	KindNumeric Kind = iota
	KindBool
	KindDatetime
	KindDuration
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime"
	case KindDuration:
		return "duration"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Continuous reports whether a column of this kind drives a continuous
// color scale. Only text columns are discrete.
func (k Kind) Continuous() bool {
	return k != KindText
}
