package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentRead covers a scene document that is missing, unparsable
	// or lacks the four styled border entries.
	ErrDocumentRead = errors.New("scene document unreadable")
	// ErrDocumentWrite covers a destination that could not be replaced.
	// The previous document is left intact.
	ErrDocumentWrite = errors.New("scene document not written")
)

// DocumentError records the operation and path that failed. It matches
// ErrDocumentRead or ErrDocumentWrite with errors.Is.
type DocumentError struct {
	Op   string
	Path string
	Err  error

	kind error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() []error { return []error{e.kind, e.Err} }

func readError(path string, err error) error {
	return &DocumentError{Op: "read scene", Path: path, Err: err, kind: ErrDocumentRead}
}

func writeError(path string, err error) error {
	return &DocumentError{Op: "write scene", Path: path, Err: err, kind: ErrDocumentWrite}
}
