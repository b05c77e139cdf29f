package codec

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed      = errors.New("malformed JSON")
	ErrMissingField   = errors.New("missing field")
	ErrUnknownField   = errors.New("unknown field")
	ErrDuplicateField = errors.New("duplicate field")
	ErrWrongType      = errors.New("wrong type")
)

// DocumentError locates a structural problem in a cache document.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("cache document %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func docErr(path string, err error) error {
	return &DocumentError{Path: path, Err: err}
}
