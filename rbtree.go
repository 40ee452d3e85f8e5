// Package rbtree implements an ordered index backed by a red-black tree.
//
// Keys are ordered by a caller supplied comparator and map to caller owned
// values. The tree stores only a reference to every value; an optional cleanup
// callback is invoked with a value when its entry leaves the tree.
//
// Keys are stored as passed to Insert. Value-typed keys are therefore private
// copies. Keys that share memory with the caller, such as slices, pointers or
// structs holding them, must not be mutated after insertion unless the tree
// was built with WithKeyCopy. Index always keeps its own copy of each key.
//
// A tree is not safe for concurrent use. Callers sharing one instance across
// goroutines must serialize access themselves.
package rbtree

import "iter"

// Color - red-black tree node color.
type Color bool

// Node colors. The nil leaf is Black.
const (
	Red   Color = false
	Black Color = true
)

// String returns the color name.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// CompareFunc - total order over keys. It returns 0 when a and b are equal,
// a negative number when a orders before b and a positive number otherwise.
type CompareFunc[K any] func(a, b K) int

// CleanupFunc - callback invoked with a value once its entry is removed.
type CleanupFunc[V any] func(value V)

// Callback - callback function that is passed in Each.
type Callback[K, V any] func(key K, value V)

// Tree - red-black tree interface.
type Tree[K, V any] interface {
	Insert(key K, value V) error
	Search(key K) (value V, found bool)
	Delete(key K) error
	Each(cb Callback[K, V])
	All() iter.Seq2[K, V]
	Size() int
	Destroy()
	Verify() error
	LastError() ErrorCode
	DescribeError() string
}

// New - creates a new instance of red-black tree.
// cmp must not be nil, cleanup may be nil. A WithKeyCopy option for a key
// type other than K fails with ErrInvalidArgument.
func New[K, V any](cmp CompareFunc[K], cleanup CleanupFunc[V], opts ...Option) (Tree[K, V], error) {
	t, err := newTree(cmp, cleanup, opts...)
	if err != nil {
		return nil, err
	}
	return t, nil
}
