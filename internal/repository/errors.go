package repository

import (
	"errors"
	"fmt"
)

// ErrSinkUnavailable is returned when an optional catalog sink cannot be
// reached.
var ErrSinkUnavailable = errors.New("catalog sink unavailable")

// ParseError reports a stored catalog document that is not JSON or does not
// have the expected shape.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed catalog document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
