package rbtree

import "errors"

// Errors returned by tree and index operations, checked with errors.Is.
var (
	// ErrInvalidArgument - nil comparator, bad option, wrong key width or nil index.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateKey - insert of a key already present.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound - delete or search of an absent key.
	ErrNotFound = errors.New("not found")
	// ErrOutOfMemory - insert past the WithMaxNodes bound.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrCorrupted - Verify found a broken tree property.
	ErrCorrupted = errors.New("corrupted tree")
)

// ErrorCode - diagnostic code retained as the tree's last error.
type ErrorCode int

// Error codes.
const (
	NoError ErrorCode = iota
	OutOfMemory
	DuplicateKey
	InvalidArgument
	NotFound
)

// String returns a human readable description of the code.
func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "no error"
	case OutOfMemory:
		return "node allocation failed"
	case DuplicateKey:
		return "key already present"
	case InvalidArgument:
		return "invalid argument"
	case NotFound:
		return "key not present"
	}
	return "unknown error"
}

// codeOf maps an error returned by this package to its ErrorCode.
func codeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrDuplicateKey):
		return DuplicateKey
	case errors.Is(err, ErrNotFound):
		return NotFound
	}
	return InvalidArgument
}

func doAssert(condition bool) {
	if !condition {
		panic("rbtree internal assertion failed")
	}
}
