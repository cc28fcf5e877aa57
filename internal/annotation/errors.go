package annotation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ganot/amrannot/internal/schema"
)

var (
	// ErrNotADirectory indicates the collector root is not a directory.
	ErrNotADirectory = errors.New("annotation root is not a directory")
	// ErrEmptyID indicates an operation received a blank identifier.
	ErrEmptyID = errors.New("annotation id is empty")
)

// ValidationError reports a header line that does not match the canonical
// annotation schema. Its message is a diagnostic contract: it names the
// format, lists the full reference header, notes the optional coordinate
// columns, and echoes the header actually found.
type ValidationError struct {
	Found []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"Header line does not match AMRFinderPlusAnnotation format. "+
			"Must consist of the following values: %s."+
			"\nWhile %s are optional."+
			"\n\nFound instead: %s",
		strings.Join(schema.Header, ", "),
		optionalClause(),
		strings.Join(e.Found, ", "),
	)
}

func optionalClause() string {
	cols := schema.CoordinateColumns
	return strings.Join(cols[:len(cols)-1], ", ") + " and " + cols[len(cols)-1]
}
