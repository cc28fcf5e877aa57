// Package annotation implements the AMRFinderPlus annotation file format:
// structural validation of single files, collection of files from a
// directory tree, and aggregation into one tagged table.
package annotation

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ganot/amrannot/internal/schema"
)

// Format is one annotation file on disk.
type Format struct {
	Path string
}

// Validate checks the header line against the canonical schema. An empty
// file is valid: it is the tool's way of reporting no hits. Only the first
// line is inspected; row contents are out of scope here.
func (f Format) Validate() error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open annotation file: %w", err)
	}
	defer fh.Close()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read annotation file: %w", err)
		}
		return nil
	}

	header := strings.Split(strings.TrimSuffix(sc.Text(), "\r"), "\t")
	if !schema.Matches(header) {
		return &ValidationError{Found: header}
	}
	return nil
}
