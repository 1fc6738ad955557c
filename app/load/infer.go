// Package load reads tabular sources (delimited text, spreadsheets,
// SQLite tables) into a dataset, inferring each column's kind from its
// cell values.
package load

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mahesh-hegde/chitra/app/dataset"
)

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FromRecords builds a dataset from a header row and string records.
// Every source funnels through here, so kind inference behaves the
// same for CSV, spreadsheets and SQLite. Short records are padded with
// missing cells.
func FromRecords(header []string, records [][]string) (*dataset.Dataset, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("source has no header row")
	}
	wide := 0
	for _, record := range records {
		if len(record) > len(header) {
			wide++
		}
	}
	if wide > 0 {
		slog.Warn("records wider than the header, extra cells ignored",
			"records", wide, "columns", len(header))
	}
	cols := make([]*dataset.Column, len(header))
	for i, name := range header {
		cells := make([]string, len(records))
		for r, record := range records {
			if i < len(record) {
				cells[r] = strings.TrimSpace(record[i])
			}
		}
		cols[i] = inferColumn(strings.TrimSpace(name), cells)
	}
	return dataset.New(cols)
}

// inferColumn picks the most specific kind every non-empty cell parses
// as, trying bool, number, datetime and duration before giving up and
// keeping text. Empty cells are marked missing.
func inferColumn(name string, cells []string) *dataset.Column {
	missing := make([]bool, len(cells))
	present := 0
	for i, cell := range cells {
		if cell == "" {
			missing[i] = true
			continue
		}
		present++
	}
	if present == 0 {
		// Nothing to infer from; an all-empty column stays textual and
		// normalizes to a single "Unknown" category.
		return dataset.NewTextColumn(name, cells, missing)
	}

	if allCells(cells, missing, isBool) {
		values := make([]bool, len(cells))
		for i, cell := range cells {
			if !missing[i] {
				values[i], _ = strconv.ParseBool(strings.ToLower(cell))
			}
		}
		return dataset.NewBoolColumn(name, values, missing)
	}

	if allCells(cells, missing, isNumber) {
		values := make([]float64, len(cells))
		for i, cell := range cells {
			if missing[i] {
				continue
			}
			v, _ := strconv.ParseFloat(cell, 64)
			// Literal NaN/Inf cells parse fine but carry no plottable
			// value; mark them missing so the ordinal pass zero-fills
			// them like any other numeric gap.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				missing[i] = true
				continue
			}
			values[i] = v
		}
		return dataset.NewNumericColumn(name, values, missing)
	}

	if allCells(cells, missing, isDatetime) {
		values := make([]time.Time, len(cells))
		for i, cell := range cells {
			if !missing[i] {
				values[i], _ = parseDatetime(cell)
			}
		}
		return dataset.NewDatetimeColumn(name, values, missing)
	}

	if allCells(cells, missing, isDuration) {
		values := make([]time.Duration, len(cells))
		for i, cell := range cells {
			if !missing[i] {
				values[i], _ = time.ParseDuration(cell)
			}
		}
		return dataset.NewDurationColumn(name, values, missing)
	}

	return dataset.NewTextColumn(name, cells, missing)
}

func allCells(cells []string, missing []bool, pred func(string) bool) bool {
	for i, cell := range cells {
		if missing[i] {
			continue
		}
		if !pred(cell) {
			return false
		}
	}
	return true
}

func isBool(cell string) bool {
	switch strings.ToLower(cell) {
	case "true", "false":
		return true
	}
	return false
}

func isNumber(cell string) bool {
	_, err := strconv.ParseFloat(cell, 64)
	return err == nil
}

func isDatetime(cell string) bool {
	_, err := parseDatetime(cell)
	return err == nil
}

func parseDatetime(cell string) (time.Time, error) {
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, cell)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func isDuration(cell string) bool {
	_, err := time.ParseDuration(cell)
	return err == nil
}
