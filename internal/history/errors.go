package history

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when stdin closes before yielding any data.
	ErrEmptyInput = errors.New("expected input, but got nothing")
	// ErrInvalidUTF8 is returned when the submitted line is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrPath matches any *PathError.
	ErrPath = errors.New("cannot resolve history path")
	// ErrIO matches any *IOError.
	ErrIO = errors.New("cannot write history file")
)

// PathError reports a history path that could not be canonicalized.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrPath, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

func (e *PathError) Is(target error) bool { return target == ErrPath }

// IOError reports a failed create, write, or rename of the history file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
