// Package schema defines the canonical column layout of AMRFinderPlus
// annotation tables.
package schema

// Header is the full canonical header of an annotation file, in order.
// Positions 1-4 form the coordinate block, which is present only when the
// upstream tool was run with nucleotide input.
var Header = []string{
	"Protein identifier",
	"Contig id",
	"Start",
	"Stop",
	"Strand",
	"Gene symbol",
	"Sequence name",
	"Scope",
	"Element type",
	"Element subtype",
	"Class",
	"Subclass",
	"Method",
	"Target length",
	"Reference sequence length",
	"% Coverage of reference sequence",
	"% Identity to reference sequence",
	"Alignment length",
	"Accession of closest sequence",
	"Name of closest sequence",
	"HMM id",
	"HMM description",
}

// CoordinateColumns is the optional contiguous block. It is valid only in
// full and only in this order at its fixed position.
var CoordinateColumns = []string{"Contig id", "Start", "Stop", "Strand"}

// HeaderWithoutCoordinates is Header with the coordinate block removed.
var HeaderWithoutCoordinates = without(Header, CoordinateColumns)

func without(header, drop []string) []string {
	dropped := make(map[string]bool, len(drop))
	for _, col := range drop {
		dropped[col] = true
	}
	out := make([]string, 0, len(header)-len(drop))
	for _, col := range header {
		if !dropped[col] {
			out = append(out, col)
		}
	}
	return out
}

// Matches reports whether observed equals one of the two reference headers,
// compared by exact sequence equality.
func Matches(observed []string) bool {
	return equal(observed, Header) || equal(observed, HeaderWithoutCoordinates)
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
