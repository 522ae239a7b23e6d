// Package summary models the benchmark summary table: a CSV whose
// first record names the columns and whose remaining records hold one
// row per run.
package summary

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table is an in-memory summary table. Column order and row order are
// preserved across a read/write cycle; cells are raw strings.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// Read loads a summary CSV wholesale. Ragged rows are padded with
// empty cells so every row spans the full column set.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary table: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary table: %w", err)
	}
	if len(records) == 0 {
		return &Table{index: map[string]int{}}, nil
	}

	t := &Table{
		Columns: records[0],
		Rows:    records[1:],
		index:   make(map[string]int, len(records[0])),
	}
	for i, name := range t.Columns {
		t.index[name] = i
	}
	for i, row := range t.Rows {
		for len(row) < len(t.Columns) {
			row = append(row, "")
		}
		t.Rows[i] = row
	}
	return t, nil
}

// Write serializes the table back to path, header first, rows in their
// original order.
func (t *Table) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output table: %w", err)
	}

	wr := csv.NewWriter(f)
	if err := wr.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := wr.WriteAll(t.Rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	wr.Flush()
	if err := wr.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush output table: %w", err)
	}
	return f.Close()
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// EnsureColumn appends the named column at the end of the column order
// if it is not already present. Existing columns keep their position.
func (t *Table) EnsureColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.index[name] = len(t.Columns)
	t.Columns = append(t.Columns, name)
	for i, row := range t.Rows {
		t.Rows[i] = append(row, "")
	}
}

// Get returns the cell at row i, named column. Missing columns read as
// the empty string.
func (t *Table) Get(i int, name string) string {
	col, ok := t.index[name]
	if !ok || col >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][col]
}

// Set overwrites the cell at row i, named column. Setting an unknown
// column is a no-op; callers EnsureColumn first.
func (t *Table) Set(i int, name, value string) {
	col, ok := t.index[name]
	if !ok {
		return
	}
	t.Rows[i][col] = value
}
