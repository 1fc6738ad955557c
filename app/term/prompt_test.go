package term

import (
	"strings"
	"testing"

	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/mahesh-hegde/chitra/app/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseFrom(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		options []string
		want    string
		wantErr bool
	}{
		{"first option", "1\n", []string{"a.csv", "b.csv"}, "a.csv", false},
		{"retries after junk", "zero\n9\n2\n", []string{"a.csv", "b.csv"}, "b.csv", false},
		{"single option needs no input", "", []string{"only.csv"}, "only.csv", false},
		{"input closed", "", []string{"a.csv", "b.csv"}, "", true},
		{"no options", "1\n", nil, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			p := NewPrompter(strings.NewReader(tc.input), &out)
			got, err := p.ChooseFrom("file", tc.options)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrdinalDecisions(t *testing.T) {
	d, err := dataset.New([]*dataset.Column{
		dataset.NewNumericColumn("price", []float64{1}, nil),
		dataset.NewTextColumn("grade", []string{"7"}, nil),
		dataset.NewTextColumn("label", []string{"x"}, nil),
	})
	require.NoError(t, err)

	// convert "grade", keep "label"
	var out strings.Builder
	p := NewPrompter(strings.NewReader("2\n1\n"), &out)
	decisions, err := p.OrdinalDecisions(d)
	require.NoError(t, err)

	assert.Equal(t, dataset.ConvertToNumber, decisions["grade"])
	_, decided := decisions["label"]
	assert.False(t, decided, "keep-as-text is the absent default")
	assert.NotContains(t, out.String(), "price", "numeric columns are not prompted")
}

func TestChooseSelection(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("1\n2\n3\n1\n"), &out)
	sel, err := p.ChooseSelection([]string{"price", "rating", "count"})
	require.NoError(t, err)
	assert.Equal(t, figure.Selection{X: "price", Y: "rating", Z: "count", Color: "price"}, sel)
}
