package annotation

import (
	"strings"
	"testing"

	"github.com/ganot/amrannot/internal/schema"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPathFor(t *testing.T) {
	require.Equal(t, "X_amr_annotations.tsv", AnnotationsPath("X", ""))
	require.Equal(t, "D/X_amr_annotations.tsv", AnnotationsPath("X", "D"))
	require.Equal(t, "X_amr_mutations.tsv", PathFor(KindMutations, "X", ""))

	// Pure path arithmetic: calling twice yields the same result.
	require.Equal(t, AnnotationsPath("id", "dir_name"), AnnotationsPath("id", "dir_name"))
}

func TestOpen_FeatureLayout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "f1_amr_annotations.tsv", "")
	writeFile(t, dir, "f2_amr_annotations.tsv", "")

	d, err := Open(dir, KindAnnotations)
	require.NoError(t, err)
	require.Equal(t, LayoutFeature, d.Layout)

	files, err := d.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "f1", files[0].ID)
	require.Equal(t, "f2", files[1].ID)
}

func TestOpen_SampleLayout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sampleB/x_amr_annotations.tsv", "")
	writeFile(t, dir, "sampleA/y_amr_annotations.tsv", "")

	d, err := Open(dir, KindAnnotations)
	require.NoError(t, err)
	require.Equal(t, LayoutSample, d.Layout)

	files, err := d.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)
	// Deterministic lexicographic order, id from the owning subdirectory.
	require.Equal(t, "sampleA", files[0].ID)
	require.Equal(t, "sampleB", files[1].ID)
}

func TestOpen_EmptyDirectory(t *testing.T) {
	d, err := Open(t.TempDir(), KindAnnotations)
	require.NoError(t, err)
	require.Equal(t, LayoutFeature, d.Layout)

	files, err := d.Files()
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestOpen_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plain.tsv", "")

	_, err := Open(path, KindAnnotations)
	require.ErrorIs(t, err, ErrNotADirectory)
}

func TestDirectory_Files_IgnoresUnrelated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "f1_amr_annotations.tsv", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "f2_amr_mutations.tsv", "")

	d, err := Open(dir, KindAnnotations)
	require.NoError(t, err)

	files, err := d.Files()
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "f1", files[0].ID)
}

func TestDirectory_Add(t *testing.T) {
	d, err := Open(t.TempDir(), KindAnnotations)
	require.NoError(t, err)

	content := headerLine(schema.HeaderWithoutCoordinates) + "\n"
	id, err := d.Add(strings.NewReader(content), "sample1", "")
	require.NoError(t, err)
	require.Equal(t, "sample1", id)

	files, err := d.Files()
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, d.PathFor("sample1", ""), files[0].Path)
}

func TestDirectory_Add_GeneratedID(t *testing.T) {
	d, err := Open(t.TempDir(), KindAnnotations)
	require.NoError(t, err)

	id, err := d.Add(strings.NewReader(""), "", "")
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
}

func TestDirectory_Add_InvalidHeaderRemoved(t *testing.T) {
	d, err := Open(t.TempDir(), KindAnnotations)
	require.NoError(t, err)

	_, err = d.Add(strings.NewReader("bad\theader\n"), "sample1", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	files, err := d.Files()
	require.NoError(t, err)
	require.Empty(t, files)
}
