package element

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed input; match with errors.Is.
var (
	ErrParse         = errors.New("parse error")
	ErrInvalidStrand = errors.New("invalid strand")
	ErrInvalidWeight = errors.New("invalid weight")
)

// ParseError locates a malformed line. Err carries one of the sentinels.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// At wraps err with its location, leaving nil alone.
func At(path string, line int, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Path: path, Line: line, Err: err}
}
