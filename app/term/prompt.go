// Package term holds the interactive terminal prompts used at startup:
// picking a data file, a sheet or table, the ordinal decisions for text
// columns, and the initial axis selection.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/mahesh-hegde/chitra/app/figure"
)

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ChooseFrom presents a numbered menu and loops until the operator
// enters a valid number. A single option is returned without asking.
func (p *Prompter) ChooseFrom(label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no %s available to choose from", label)
	}
	if len(options) == 1 {
		return options[0], nil
	}

	fmt.Fprintf(p.out, "\nAvailable %s:\n", label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "(%d) - %s\n", i+1, opt)
	}
	fmt.Fprintf(p.out, "\nPlease choose a %s by entering the corresponding number (e.g., 1):\n", label)

	for {
		fmt.Fprint(p.out, "Your choice: ")
		if !p.in.Scan() {
			return "", fmt.Errorf("input closed while choosing a %s", label)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if choice < 1 || choice > len(options) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		selected := options[choice-1]
		fmt.Fprintf(p.out, "You selected: %s\n", selected)
		return selected, nil
	}
}

// OrdinalDecisions asks, for every text column, whether to keep it as
// text or convert it to numbers.
func (p *Prompter) OrdinalDecisions(d *dataset.Dataset) (dataset.OrdinalDecisions, error) {
	decisions := dataset.OrdinalDecisions{}
	for _, col := range d.Columns() {
		if col.Kind() != dataset.KindText {
			continue
		}
		choice, err := p.ChooseFrom(
			fmt.Sprintf("handling for text column %q", col.Name()),
			[]string{"keep as text", "convert to number"},
		)
		if err != nil {
			return nil, err
		}
		if choice == "convert to number" {
			decisions[col.Name()] = dataset.ConvertToNumber
		}
	}
	return decisions, nil
}

// ChooseSelection asks for the X, Y, Z and color-coding columns.
func (p *Prompter) ChooseSelection(names []string) (figure.Selection, error) {
	var sel figure.Selection
	var err error
	if sel.X, err = p.ChooseFrom("column for X-Axis", names); err != nil {
		return sel, err
	}
	if sel.Y, err = p.ChooseFrom("column for Y-Axis", names); err != nil {
		return sel, err
	}
	if sel.Z, err = p.ChooseFrom("column for Z-Axis", names); err != nil {
		return sel, err
	}
	if sel.Color, err = p.ChooseFrom("column for Color-Coding", names); err != nil {
		return sel, err
	}
	return sel, nil
}
