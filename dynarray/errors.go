package dynarray

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by New for a negative initial capacity.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIndexOutOfRange is the error all *IndexError values unwrap to.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError is returned by positional operations when an index violates
// the operation's bounds. Op names the operation, e.g. "get" or "insert".
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarray: %s: index %d out of range with length %d", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
