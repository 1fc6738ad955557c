package load

import (
	"fmt"

	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/xuri/excelize/v2"
)

// WorkbookSheets lists the sheet names of an .xlsx file, in workbook
// order, so the caller can prompt when there is more than one.
func WorkbookSheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook %q: %w", path, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// ReadWorkbook loads one sheet of an .xlsx file. An empty sheet name
// selects the first sheet.
func ReadWorkbook(path, sheet string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %q has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q of %q: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %q is empty, expected a header row", sheet, path)
	}

	return FromRecords(rows[0], rows[1:])
}
