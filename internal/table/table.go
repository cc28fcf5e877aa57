// Package table implements a minimal in-memory string table: ordered named
// columns, ordered rows, and an optional named row index. It carries exactly
// what annotation aggregation needs and no more.
package table

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table holds tabular data as strings. Index is nil until assigned by
// Concat; when set it has one entry per row.
type Table struct {
	Columns   []string
	Rows      [][]string
	Index     []string
	IndexName string
}

// ReadTSV parses a tab-separated stream. The first line is the header; each
// following line is one row. Rows shorter than the header are padded with
// empty cells, rows longer than the header are an error. An empty stream
// yields an empty table with no columns.
func ReadTSV(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	t := &Table{}
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Split(strings.TrimSuffix(sc.Text(), "\r"), "\t")
		if line == 1 {
			t.Columns = fields
			continue
		}
		if len(fields) > len(t.Columns) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(fields), len(t.Columns))
		}
		for len(fields) < len(t.Columns) {
			fields = append(fields, "")
		}
		t.Rows = append(t.Rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tsv: %w", err)
	}
	return t, nil
}

// InsertColumn returns a copy of t with a new column at position 0 holding
// the same value in every row.
func (t *Table) InsertColumn(name, value string) *Table {
	out := &Table{
		Columns:   append([]string{name}, t.Columns...),
		Rows:      make([][]string, len(t.Rows)),
		Index:     t.Index,
		IndexName: t.IndexName,
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string{value}, row...)
	}
	return out
}

// Column returns the values of the named column, or nil if absent.
func (t *Table) Column(name string) []string {
	idx := -1
	for i, col := range t.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	vals := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		vals[i] = row[idx]
	}
	return vals
}

// IndexColumnName labels the ordinal index assigned by Concat.
const IndexColumnName = "id"

// Concat concatenates tables preserving input order and intra-table row
// order. Columns are unioned in first-seen order; cells absent from a source
// table are left empty. Source indices are discarded and the result gets a
// fresh consecutive integer index, as text, named "id".
func Concat(tables []*Table) *Table {
	out := &Table{IndexName: IndexColumnName, Index: []string{}}

	pos := map[string]int{}
	for _, t := range tables {
		for _, col := range t.Columns {
			if _, ok := pos[col]; !ok {
				pos[col] = len(out.Columns)
				out.Columns = append(out.Columns, col)
			}
		}
	}

	for _, t := range tables {
		for _, row := range t.Rows {
			merged := make([]string, len(out.Columns))
			for i, col := range t.Columns {
				merged[pos[col]] = row[i]
			}
			out.Index = append(out.Index, strconv.Itoa(len(out.Rows)))
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}
