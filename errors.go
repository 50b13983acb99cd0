package inodefs

import "errors"

// Error kinds. Every failed operation returns a *PathError wrapping exactly
// one of these; use errors.Is to classify.
var (
	ErrNoSuchPath    = errors.New("no such file or directory")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotAFile      = errors.New("not a file")
	ErrAlreadyExists = errors.New("already exists")
	ErrWrongType     = errors.New("wrong node type")
	ErrNotEmpty      = errors.New("directory not empty")
	ErrReservedName  = errors.New("reserved name")
	ErrInvalidName   = errors.New("invalid name")
)

// PathError records a failed operation and the path it was applied to
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError wraps kind for operation op on p
func NewPathError(op string, p Path, kind error) *PathError {
	return &PathError{Op: op, Path: p.String(), Err: kind}
}
