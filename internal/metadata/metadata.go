// Package metadata wraps an aggregated annotation table as a generic
// sample-metadata object: a uniquely-valued string index plus named columns.
package metadata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ganot/amrannot/internal/annotation"
	"github.com/ganot/amrannot/internal/table"
)

var (
	// ErrNoIndex indicates the source table carries no row index.
	ErrNoIndex = errors.New("metadata table has no index")
	// ErrDuplicateIndex indicates the index values are not unique.
	ErrDuplicateIndex = errors.New("metadata index values are not unique")
)

// Metadata is an immutable view over an indexed table.
type Metadata struct {
	tbl *table.Table
}

// FromTable validates the table's index and wraps it. The index must exist,
// cover every row, and hold unique values.
func FromTable(t *table.Table) (*Metadata, error) {
	if t.Index == nil || len(t.Index) != len(t.Rows) {
		return nil, ErrNoIndex
	}
	seen := make(map[string]bool, len(t.Index))
	for _, v := range t.Index {
		if seen[v] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIndex, v)
		}
		seen[v] = true
	}
	return &Metadata{tbl: t}, nil
}

// FromDirectory aggregates every annotation file under the directory and
// wraps the result. Directories with zero files yield empty, valid metadata.
func FromDirectory(d *annotation.Directory) (*Metadata, error) {
	agg, err := d.Aggregate()
	if err != nil {
		return nil, err
	}
	return FromTable(agg)
}

// Table returns the underlying indexed table.
func (m *Metadata) Table() *table.Table { return m.tbl }

// Columns returns the column names, index excluded.
func (m *Metadata) Columns() []string { return m.tbl.Columns }

// Index returns the row index values.
func (m *Metadata) Index() []string { return m.tbl.Index }

// Len returns the number of rows.
func (m *Metadata) Len() int { return len(m.tbl.Rows) }

// WriteTSV renders the metadata as one tab-separated table with the index
// as the leading column.
func (m *Metadata) WriteTSV(w io.Writer) error {
	header := append([]string{m.tbl.IndexName}, m.tbl.Columns...)
	if _, err := io.WriteString(w, strings.Join(header, "\t")+"\n"); err != nil {
		return fmt.Errorf("write metadata header: %w", err)
	}
	for i, row := range m.tbl.Rows {
		line := append([]string{m.tbl.Index[i]}, row...)
		if _, err := io.WriteString(w, strings.Join(line, "\t")+"\n"); err != nil {
			return fmt.Errorf("write metadata row %d: %w", i, err)
		}
	}
	return nil
}
