package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ganot/amrannot/internal/metadata"
)

// ErrRunNotFound indicates the requested export run doesn't exist.
var ErrRunNotFound = errors.New("export run not found")

// Run describes one exported aggregation.
type Run struct {
	ID       int64
	Source   string
	Kind     string
	Layout   string
	RowCount int
}

// MetadataStore persists aggregated metadata tables.
type MetadataStore struct {
	db *DB
}

// NewMetadataStore creates a new metadata store.
func NewMetadataStore(db *DB) *MetadataStore {
	return &MetadataStore{db: db}
}

// Save writes one aggregated metadata table as a run plus its cells, in a
// single transaction.
func (s *MetadataStore) Save(ctx context.Context, run Run, md *metadata.Metadata) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin export transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, kind, layout, row_count) VALUES (?, ?, ?, ?)`,
		run.Source, run.Kind, run.Layout, md.Len())
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cells (run_id, row_id, column_name, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare cell insert: %w", err)
	}
	defer stmt.Close()

	tbl := md.Table()
	for i, row := range tbl.Rows {
		for j, col := range tbl.Columns {
			if _, err := stmt.ExecContext(ctx, runID, tbl.Index[i], col, row[j]); err != nil {
				return 0, fmt.Errorf("insert cell %s/%s: %w", tbl.Index[i], col, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit export: %w", err)
	}
	return runID, nil
}

// GetRun returns one export run by id.
func (s *MetadataStore) GetRun(ctx context.Context, id int64) (*Run, error) {
	var run Run
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, kind, layout, row_count FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &run.Source, &run.Kind, &run.Layout, &run.RowCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &run, nil
}

// ListRuns returns all export runs, newest first.
func (s *MetadataStore) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, kind, layout, row_count FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Source, &run.Kind, &run.Layout, &run.RowCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Column returns the values of one column of a run, in row-id order.
func (s *MetadataStore) Column(ctx context.Context, runID int64, column string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM cells
		 WHERE run_id = ? AND column_name = ?
		 ORDER BY CAST(row_id AS INTEGER)`, runID, column)
	if err != nil {
		return nil, fmt.Errorf("query column: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan cell: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
