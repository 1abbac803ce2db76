package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// DirErrorKind classifies why the debug directory could not be entered.
type DirErrorKind uint8

const (
	DirOther DirErrorKind = iota
	DirPermission
	DirNotFound
)

// dirHints maps each kind to the remedy printed after the fatal message.
var dirHints = map[DirErrorKind]string{
	DirPermission: "did you forget to elevate privileges?",
	DirNotFound:   "is the subsystem available?",
}

// String returns a short name for the kind.
func (k DirErrorKind) String() string {
	switch k {
	case DirPermission:
		return "permission"
	case DirNotFound:
		return "not-found"
	default:
		return "other"
	}
}

// Hint returns the remedy for k, or "" when there is none.
func (k DirErrorKind) Hint() string {
	return dirHints[k]
}

// ClassifyDirError maps a filesystem error onto a DirErrorKind.
func ClassifyDirError(err error) DirErrorKind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return DirPermission
	case errors.Is(err, fs.ErrNotExist):
		return DirNotFound
	default:
		return DirOther
	}
}

// DirError reports a failure to enter the debug directory.
type DirError struct {
	Path string
	Kind DirErrorKind
	Err  error
}

// NewDirError wraps err, classifying it.
func NewDirError(path string, err error) *DirError {
	return &DirError{Path: path, Kind: ClassifyDirError(err), Err: err}
}

func (e *DirError) Error() string {
	reason := e.Err
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		reason = pathErr.Err
	}
	return fmt.Sprintf("couldn't chdir to %s: %v", e.Path, reason)
}

func (e *DirError) Unwrap() error {
	return e.Err
}

// Hint returns the remedy for the error's kind, or "".
func (e *DirError) Hint() string {
	return e.Kind.Hint()
}

// ParseError reports an entry whose content is not a base-10 integer.
type ParseError struct {
	Name string
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid integer in %s: %q", e.Name, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingValueError reports a required entry absent from the debug directory.
type MissingValueError struct {
	Field string
}

func (e *MissingValueError) Error() string {
	return "missing required value: " + e.Field
}
