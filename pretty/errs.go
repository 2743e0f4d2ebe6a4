package pretty

import (
	"errors"
	"fmt"
)

var (
	ErrIndentTooSmall    = errors.New("indentation should be two or more spaces but got one")
	ErrUnmatchedUnindent = errors.New("unindent does not match any outer indentation level")
)

// LineError locates a Deprettify failure in its input.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
