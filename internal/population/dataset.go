package population

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LabelColumn is the 0/1 LinkedIn usage column.
const LabelColumn = "sm_li"

// RequiredColumns must all be present in the dataset header.
var RequiredColumns = []string{"income", "education", "age", "parent", "married", "female", LabelColumn}

// Dataset is a read-only, column-oriented view of the survey table.
type Dataset struct {
	columns map[string][]float64
	rows    int
}

// Load reads the CSV dataset at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrDatasetLoad{Path: path, Err: err}
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, &ErrDatasetLoad{Path: path, Err: err}
	}
	return ds, nil
}

// Parse reads a CSV table with a header row. Only RequiredColumns are kept;
// other columns are ignored.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty dataset")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	ds := &Dataset{columns: make(map[string][]float64, len(RequiredColumns))}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", ds.rows+1, err)
		}

		for _, col := range RequiredColumns {
			raw := strings.TrimSpace(rec[index[col]])
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %q is not a number", ds.rows+1, col, raw)
			}
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, fmt.Errorf("row %d column %s: %q is not a finite number", ds.rows+1, col, raw)
			}
			if col == LabelColumn && val != 0 && val != 1 {
				return nil, fmt.Errorf("row %d column %s: label must be 0 or 1, got %v", ds.rows+1, col, val)
			}
			ds.columns[col] = append(ds.columns[col], val)
		}
		ds.rows++
	}

	return ds, nil
}

// FromColumns builds a dataset from in-memory columns. Every required column
// must be present and all columns must have the same length.
func FromColumns(cols map[string][]float64) (*Dataset, error) {
	n := -1
	ds := &Dataset{columns: make(map[string][]float64, len(RequiredColumns))}
	for _, col := range RequiredColumns {
		vals, ok := cols[col]
		if !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
		if n >= 0 && len(vals) != n {
			return nil, fmt.Errorf("column %q has %d rows, want %d", col, len(vals), n)
		}
		n = len(vals)
		ds.columns[col] = append([]float64(nil), vals...)
	}
	ds.rows = n
	return ds, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Column returns the values of a required column, or nil for unknown names.
// The returned slice must not be modified.
func (d *Dataset) Column(name string) []float64 { return d.columns[name] }
