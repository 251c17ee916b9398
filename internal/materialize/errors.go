package materialize

import (
	"errors"
	"fmt"
)

// WriteError reports a failed file write. The previous version of the file,
// if any, is left intact because writes replace files only via rename.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// AsWriteError attempts to unwrap an error into a WriteError.
func AsWriteError(err error) (*WriteError, bool) {
	var wErr *WriteError
	if errors.As(err, &wErr) {
		return wErr, true
	}
	return nil, false
}
