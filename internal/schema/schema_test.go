package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderShape(t *testing.T) {
	require.Len(t, Header, 22)
	require.Len(t, HeaderWithoutCoordinates, 18)

	// Coordinate block sits at positions 1-4.
	require.Equal(t, CoordinateColumns, Header[1:5])
	require.Equal(t, "Protein identifier", HeaderWithoutCoordinates[0])
	require.Equal(t, "Gene symbol", HeaderWithoutCoordinates[1])
}

func TestMatches(t *testing.T) {
	require.True(t, Matches(Header))
	require.True(t, Matches(HeaderWithoutCoordinates))

	// Partial coordinate block is invalid.
	partial := append([]string{Header[0], "Contig id", "Start"}, Header[5:]...)
	require.False(t, Matches(partial))

	// Reordering within the block is invalid.
	reordered := make([]string, len(Header))
	copy(reordered, Header)
	reordered[1], reordered[2] = reordered[2], reordered[1]
	require.False(t, Matches(reordered))

	require.False(t, Matches(append([]string{}, Header[:21]...)))
	require.False(t, Matches(append(append([]string{}, Header...), "Extra")))
	require.False(t, Matches([]string{"Incorrect Header 1"}))
	require.False(t, Matches(nil))
}
