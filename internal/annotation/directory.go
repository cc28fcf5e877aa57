package annotation

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind selects which AMRFinderPlus report family a directory holds.
type Kind string

const (
	KindAnnotations Kind = "annotations"
	KindMutations   Kind = "mutations"
)

func (k Kind) suffix() string {
	return "_amr_" + string(k) + ".tsv"
}

// Layout is how annotation files are arranged under the root. It is inferred
// once when the directory is opened, never declared by the caller.
type Layout string

const (
	// LayoutFeature: files sit directly under the root, one id per feature.
	LayoutFeature Layout = "feature"
	// LayoutSample: one subdirectory per sample or MAG, each holding files.
	LayoutSample Layout = "sample"
)

// Directory is a rooted tree of annotation files in one of the two layouts.
type Directory struct {
	Root   string
	Kind   Kind
	Layout Layout
}

// File is one discovered annotation file and its owning identifier.
type File struct {
	ID   string
	Path string
}

// Open probes the root and resolves its layout: any subdirectory means the
// nested sample/MAG layout, otherwise the flat feature layout.
func Open(root string, kind Kind) (*Directory, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open annotation directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read annotation directory: %w", err)
	}
	layout := LayoutFeature
	for _, entry := range entries {
		if entry.IsDir() {
			layout = LayoutSample
			break
		}
	}
	return &Directory{Root: root, Kind: kind, Layout: layout}, nil
}

// PathFor returns the canonical relative path for an annotation file:
// [<dirName>/]<id><suffix>. Pure path arithmetic, no filesystem access.
func PathFor(kind Kind, id, dirName string) string {
	name := id + kind.suffix()
	if dirName == "" {
		return name
	}
	return path.Join(dirName, name)
}

// AnnotationsPath is PathFor for the annotations kind.
func AnnotationsPath(id, dirName string) string {
	return PathFor(KindAnnotations, id, dirName)
}

// PathFor resolves an annotation path against the directory root.
func (d *Directory) PathFor(id, dirName string) string {
	return filepath.Join(d.Root, filepath.FromSlash(PathFor(d.Kind, id, dirName)))
}

// Files enumerates annotation files in deterministic lexicographic order.
// In the flat layout the id is the filename stem; in the nested layout it is
// the owning subdirectory name.
func (d *Directory) Files() ([]File, error) {
	entries, err := os.ReadDir(d.Root)
	if err != nil {
		return nil, fmt.Errorf("read annotation directory: %w", err)
	}

	var files []File
	for _, entry := range entries {
		switch d.Layout {
		case LayoutFeature:
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), d.Kind.suffix()) {
				continue
			}
			files = append(files, File{
				ID:   strings.TrimSuffix(entry.Name(), d.Kind.suffix()),
				Path: filepath.Join(d.Root, entry.Name()),
			})
		case LayoutSample:
			if !entry.IsDir() {
				continue
			}
			sub, err := os.ReadDir(filepath.Join(d.Root, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("read sample directory %s: %w", entry.Name(), err)
			}
			for _, f := range sub {
				if f.IsDir() || !strings.HasSuffix(f.Name(), d.Kind.suffix()) {
					continue
				}
				files = append(files, File{
					ID:   entry.Name(),
					Path: filepath.Join(d.Root, entry.Name(), f.Name()),
				})
			}
		}
	}
	return files, nil
}

// Add writes a new annotation file at its canonical path and validates it.
// A blank id gets a generated UUID. The written file is removed again if its
// header fails validation. Returns the id used.
func (d *Directory) Add(r io.Reader, id, dirName string) (string, error) {
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	dest := d.PathFor(id, dirName)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create annotation directory: %w", err)
	}

	fh, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create annotation file: %w", err)
	}
	if _, err := io.Copy(fh, r); err != nil {
		fh.Close()
		os.Remove(dest)
		return "", fmt.Errorf("write annotation file: %w", err)
	}
	if err := fh.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("close annotation file: %w", err)
	}

	if err := (Format{Path: dest}).Validate(); err != nil {
		os.Remove(dest)
		return "", err
	}
	return id, nil
}
