package compiler

import "fmt"

// IOError reports that a source or output file could not be opened or
// created. It wraps the underlying *os.PathError so callers can still
// unwrap it with errors.As/errors.Is.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
