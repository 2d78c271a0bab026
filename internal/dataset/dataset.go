// Package dataset loads training data for parkr networks from CSV.
//
// Each row holds the input values followed by the expected output values:
//
//	x1,x2,...,xN,y1,...,yM
//
// The split between inputs and outputs is given by the caller.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidData is returned for rows that cannot be used as examples.
var ErrInvalidData = errors.New("invalid dataset")

// Dataset pairs input rows with their expected outputs.
type Dataset struct {
	Inputs   [][]float64
	Expected [][]float64
}

// Options controls CSV parsing.
type Options struct {
	Inputs int  // Number of leading columns that are inputs; the rest are outputs.
	Header bool // Skip the first row.
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// Split keeps the first (1 - validationRatio) of the rows for training and
// returns the rest as a validation set. Rows are not shuffled.
func (d *Dataset) Split(validationRatio float64) (*Dataset, *Dataset) {
	splitIdx := int(float64(d.Len()) * (1.0 - validationRatio))
	splitIdx = max(0, min(splitIdx, d.Len()))

	return &Dataset{
			Inputs:   d.Inputs[:splitIdx],
			Expected: d.Expected[:splitIdx],
		}, &Dataset{
			Inputs:   d.Inputs[splitIdx:],
			Expected: d.Expected[splitIdx:],
		}
}

// Read parses CSV rows from r.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	if opts.Inputs <= 0 {
		return nil, errors.Wrapf(ErrInvalidData, "input width must be positive, got %d", opts.Inputs)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}

	if opts.Header && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrInvalidData, "no rows")
	}

	width := len(records[0])
	if width <= opts.Inputs {
		return nil, errors.Wrapf(ErrInvalidData, "rows have %d columns, need more than %d inputs", width, opts.Inputs)
	}

	d := &Dataset{
		Inputs:   make([][]float64, len(records)),
		Expected: make([][]float64, len(records)),
	}
	for i, record := range records {
		values, err := ParseRow(record)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		d.Inputs[i] = values[:opts.Inputs:opts.Inputs]
		d.Expected[i] = values[opts.Inputs:]
	}

	return d, nil
}

// ParseRow converts string fields to float64 values.
func ParseRow(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for j, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidData, "column %d: %q is not a number", j+1, field)
		}
		values[j] = v
	}
	return values, nil
}

// Load reads a dataset from the CSV file at path.
func Load(path string, opts Options) (*Dataset, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for data loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = file.Close() }()

	return Read(file, opts)
}
