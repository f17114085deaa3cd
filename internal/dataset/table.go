package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Table is a column-ordered float table with a shared index, used for
// computed trend output (one row per trajectory bin, one column per
// marker).
type Table struct {
	IndexName string
	Index     []float64

	cols  map[string][]float64
	order []string
}

func NewTable(indexName string, index []float64) *Table {
	return &Table{
		IndexName: indexName,
		Index:     index,
		cols:      make(map[string][]float64),
	}
}

// Set stores a column. Length must match the index.
func (t *Table) Set(name string, vals []float64) error {
	if len(vals) != len(t.Index) {
		return fmt.Errorf("table: column %q has %d rows, want %d", name, len(vals), len(t.Index))
	}
	if _, ok := t.cols[name]; !ok {
		t.order = append(t.order, name)
	}
	t.cols[name] = vals
	return nil
}

// Col returns the named column, nil if absent.
func (t *Table) Col(name string) []float64 { return t.cols[name] }

// Columns lists column names in insertion order.
func (t *Table) Columns() []string { return t.order }

// WriteCSV writes the table with a header row, index first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{t.IndexName}, t.order...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i, idx := range t.Index {
		row[0] = strconv.FormatFloat(idx, 'g', -1, 64)
		for j, name := range t.order {
			row[j+1] = strconv.FormatFloat(t.cols[name][i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
