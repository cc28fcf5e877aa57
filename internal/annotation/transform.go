package annotation

import (
	"fmt"
	"io"
	"os"

	"github.com/ganot/amrannot/internal/table"
)

// IDColumn labels the column tagging every row with its owning identifier.
const IDColumn = "Sample/MAG_ID"

// Load parses one annotation stream and tags every row with the owning
// sample/MAG/feature id in a leading column.
func Load(r io.Reader, id string) (*table.Table, error) {
	t, err := table.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("parse annotations for %q: %w", id, err)
	}
	return t.InsertColumn(IDColumn, id), nil
}

// LoadAll folds every file of the directory into an ordered list of tagged
// tables, in discovery order. A failure on any file aborts the batch.
func (d *Directory) LoadAll() ([]*table.Table, error) {
	files, err := d.Files()
	if err != nil {
		return nil, err
	}

	tables := make([]*table.Table, 0, len(files))
	for _, f := range files {
		t, err := loadFile(f)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// Aggregate concatenates every annotation file of the directory into one
// table with a fresh ordinal string index named "id".
func (d *Directory) Aggregate() (*table.Table, error) {
	tables, err := d.LoadAll()
	if err != nil {
		return nil, err
	}
	return table.Concat(tables), nil
}

func loadFile(f File) (*table.Table, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open annotations for %q: %w", f.ID, err)
	}
	defer fh.Close()
	return Load(fh, f.ID)
}
