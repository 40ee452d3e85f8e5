package rbtree

import (
	"fmt"
	"iter"
	"unsafe"
)

// Index is an ordered index over fixed-width byte keys and opaque values.
// Every key must be exactly KeyWidth bytes long. Keys are copied on insert;
// values are stored by reference.
//
// Example usage:
//
//	idx, _ := NewIndex(4, bytes.Compare, nil)
//	idx.Insert([]byte{0, 0, 0, 1}, "one")
//	v, err := idx.Search([]byte{0, 0, 0, 1}) // v == "one", err == nil
//	idx.Destroy()
type Index struct {
	width int
	tree  *tree[string, any]
}

// NewIndex creates an empty index. keyWidth must be positive and cmp must
// not be nil; cleanup may be nil, in which case removed values are left to
// the caller. cmp receives views of the index's private key storage and must
// not modify or retain its arguments.
func NewIndex(keyWidth int, cmp func(a, b []byte) int, cleanup func(value any), opts ...Option) (*Index, error) {
	if keyWidth <= 0 || cmp == nil {
		return nil, ErrInvalidArgument
	}
	t, err := newTree[string, any](func(a, b string) int {
		return cmp(s2b(a), s2b(b))
	}, CleanupFunc[any](cleanup), opts...)
	if err != nil {
		return nil, err
	}
	return &Index{width: keyWidth, tree: t}, nil
}

// KeyWidth returns the byte width shared by every key.
func (idx *Index) KeyWidth() int {
	if idx == nil {
		return 0
	}
	return idx.width
}

func (idx *Index) checkKey(key []byte) error {
	if len(key) != idx.width {
		return idx.tree.fail(fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidArgument, len(key), idx.width))
	}
	return nil
}

// Insert adds key with value. It fails with ErrDuplicateKey when key is
// already present.
func (idx *Index) Insert(key []byte, value any) error {
	if idx == nil {
		return ErrInvalidArgument
	}
	if err := idx.checkKey(key); err != nil {
		return err
	}
	return idx.tree.Insert(string(key), value)
}

// Delete removes key. It fails with ErrNotFound when key is absent.
func (idx *Index) Delete(key []byte) error {
	if idx == nil {
		return ErrInvalidArgument
	}
	if err := idx.checkKey(key); err != nil {
		return err
	}
	return idx.tree.Delete(b2s(key))
}

// Search returns the value stored under key, or ErrNotFound.
func (idx *Index) Search(key []byte) (any, error) {
	if idx == nil {
		return nil, ErrInvalidArgument
	}
	if err := idx.checkKey(key); err != nil {
		return nil, err
	}
	value, found := idx.tree.Search(b2s(key))
	if !found {
		return nil, ErrNotFound
	}
	return value, nil
}

// All returns the entries in key order. Returned keys alias the index's
// private copies and must not be modified.
func (idx *Index) All() iter.Seq2[[]byte, any] {
	return func(yield func([]byte, any) bool) {
		if idx == nil {
			return
		}
		for key, value := range idx.tree.All() {
			if !yield(s2b(key), value) {
				return
			}
		}
	}
}

// Size returns the number of entries.
func (idx *Index) Size() int {
	if idx == nil {
		return 0
	}
	return idx.tree.Size()
}

// Destroy removes every entry, invoking cleanup once per value.
func (idx *Index) Destroy() {
	if idx == nil {
		return
	}
	idx.tree.Destroy()
}

// Verify checks the structural invariants. See Tree.Verify.
func (idx *Index) Verify() error {
	if idx == nil {
		return ErrInvalidArgument
	}
	return idx.tree.Verify()
}

// LastError returns the code of the most recent failure.
func (idx *Index) LastError() ErrorCode {
	if idx == nil {
		return InvalidArgument
	}
	return idx.tree.LastError()
}

// DescribeError renders the most recent failure and clears it.
func (idx *Index) DescribeError() string {
	if idx == nil {
		return "invalid index"
	}
	return idx.tree.DescribeError()
}

func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
