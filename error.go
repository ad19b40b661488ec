package txtar

import (
	"fmt"
)

// DirEscapeError indicates that a file name in the archive, after lexical
// path cleaning, is absolute or resolves outside the destination root.
// It reports the archive content as unsafe, as opposed to an environmental
// filesystem failure.
type DirEscapeError struct {
	// Path is the offending file name after lexical cleaning, in slash form.
	Path string
}

func (e *DirEscapeError) Error() string {
	return fmt.Sprintf("txtar: path %q escapes the destination directory", e.Path)
}
