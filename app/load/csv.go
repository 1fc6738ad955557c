package load

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mahesh-hegde/chitra/app/dataset"
)

// ReadCSV loads a delimited text file. The first record is the header;
// sep is usually ',' or '\t'.
func ReadCSV(path string, sep rune) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = sep
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%q is empty, expected a header row", path)
	}

	return FromRecords(records[0], records[1:])
}
