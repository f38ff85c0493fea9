// Package table holds generated rows in a column-oriented in-memory
// table and serializes them to CSV.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for table construction
var (
	ErrEmptyHeader     = errors.New("table header is empty")
	ErrInvalidRowCount = errors.New("row count must be positive")
)

// RowSource produces rows one at a time. synth generators satisfy it.
type RowSource interface {
	Header() []string
	Next() ([]string, error)
}

// Table is a fixed-header, column-oriented collection of string cells.
type Table struct {
	names []string
	cols  [][]string
}

// New creates an empty table with the given column names.
func New(header []string) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}
	names := make([]string, len(header))
	copy(names, header)
	return &Table{
		names: names,
		cols:  make([][]string, len(header)),
	}, nil
}

// FromSource collects exactly n rows from src into a new table.
func FromSource(src RowSource, n int) (*Table, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidRowCount, n)
	}

	t, err := New(src.Header())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		row, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err := t.AppendRow(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}

// Header returns the column names in output order.
func (t *Table) Header() []string {
	return t.names
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// AppendRow adds one row; cell count must match the header.
func (t *Table) AppendRow(row []string) error {
	if len(row) != len(t.names) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.names))
	}
	for i, cell := range row {
		t.cols[i] = append(t.cols[i], cell)
	}
	return nil
}

// Row returns row i as cells in header order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.cols))
	for c := range t.cols {
		row[c] = t.cols[c][i]
	}
	return row
}

// Column returns all values of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	for i, n := range t.names {
		if n == name {
			return t.cols[i], true
		}
	}
	return nil, false
}

// WriteCSV serializes the header and every row to w.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table as CSV to path, overwriting any existing
// file.
func (t *Table) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := t.WriteCSV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadFile parses a CSV file written by WriteFile back into a table.
func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyHeader
	}

	t, err := New(records[0])
	if err != nil {
		return nil, err
	}
	for i, row := range records[1:] {
		if err := t.AppendRow(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}
