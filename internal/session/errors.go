package session

import (
	"errors"
	"fmt"
)

// ErrNoActivePath is returned by Save when the page has never been saved or
// opened. Callers ask for a path and use SaveAs instead.
var ErrNoActivePath = errors.New("no active file path")

// ErrNotText is wrapped by Open when a file is not valid UTF-8 text.
var ErrNotText = errors.New("not UTF-8 text")

// IOError reports a document or config file that could not be read or
// written. For reads the session is left unchanged; for writes the page in
// memory is unaffected but nothing was persisted.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
