package annotation

import (
	"strings"
	"testing"

	"github.com/ganot/amrannot/internal/table"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tbl, err := Load(strings.NewReader("col1\tcol2\nval1\tval2\nval3\tval4"), "id_value_1")
	require.NoError(t, err)
	require.Equal(t, []string{"Sample/MAG_ID", "col1", "col2"}, tbl.Columns)
	require.Equal(t, [][]string{
		{"id_value_1", "val1", "val2"},
		{"id_value_1", "val3", "val4"},
	}, tbl.Rows)
}

func TestLoad_EmptyStream(t *testing.T) {
	tbl, err := Load(strings.NewReader(""), "id_value_1")
	require.NoError(t, err)
	require.Equal(t, []string{"Sample/MAG_ID"}, tbl.Columns)
	require.Empty(t, tbl.Rows)
}

func TestAggregate_TwoSamples(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A/A_amr_annotations.tsv", "col1\tcol2\nval1\tval2\nval3\tval4")
	writeFile(t, dir, "B/B_amr_annotations.tsv", "col1\tcol2\nval5\tval6\nval7\tval8")

	d, err := Open(dir, KindAnnotations)
	require.NoError(t, err)

	agg, err := d.Aggregate()
	require.NoError(t, err)
	require.Equal(t, []string{"Sample/MAG_ID", "col1", "col2"}, agg.Columns)
	require.Equal(t, [][]string{
		{"A", "val1", "val2"},
		{"A", "val3", "val4"},
		{"B", "val5", "val6"},
		{"B", "val7", "val8"},
	}, agg.Rows)
	require.Equal(t, []string{"0", "1", "2", "3"}, agg.Index)
	require.Equal(t, "id", agg.IndexName)
}

func TestAggregate_OrderFollowsDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_amr_annotations.tsv", "col1\nsecond")
	writeFile(t, dir, "a_amr_annotations.tsv", "col1\nfirst")

	d, err := Open(dir, KindAnnotations)
	require.NoError(t, err)

	agg, err := d.Aggregate()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, agg.Column("Sample/MAG_ID"))
	require.Equal(t, []string{"first", "second"}, agg.Column("col1"))
}

func TestAggregate_AppendingEqualsDirect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_amr_annotations.tsv", "col1\n1")
	writeFile(t, dir, "b_amr_annotations.tsv", "col1\n2")

	d, err := Open(dir, KindAnnotations)
	require.NoError(t, err)
	ab, err := d.LoadAll()
	require.NoError(t, err)

	writeFile(t, dir, "c_amr_annotations.tsv", "col1\n3")
	c, err := d.LoadAll()
	require.NoError(t, err)

	staged := table.Concat([]*table.Table{table.Concat(ab), c[2]})
	direct, err := d.Aggregate()
	require.NoError(t, err)
	require.Equal(t, direct, staged)
}

func TestAggregate_EmptyDirectory(t *testing.T) {
	d, err := Open(t.TempDir(), KindAnnotations)
	require.NoError(t, err)

	agg, err := d.Aggregate()
	require.NoError(t, err)
	require.Empty(t, agg.Rows)
	require.Equal(t, "id", agg.IndexName)
}

func TestAggregate_MissingFilePropagates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_amr_annotations.tsv", "col1\n1")

	d, err := Open(dir, KindAnnotations)
	require.NoError(t, err)

	files, err := d.Files()
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = loadFile(File{ID: "ghost", Path: dir + "/ghost_amr_annotations.tsv"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ghost")
}
