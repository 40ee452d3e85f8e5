package rbtree

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// tree - red-black tree type.
type tree[K, V any] struct {
	nodes   *arena[K, V]
	root    uint32
	size    int
	cmp     CompareFunc[K]
	cleanup CleanupFunc[V]
	keyCopy func(K) K
	lastErr ErrorCode
}

// newTree returns a tree with 0 nodes.
func newTree[K, V any](cmp CompareFunc[K], cleanup CleanupFunc[V], opts ...Option) (*tree[K, V], error) {
	if cmp == nil {
		return nil, ErrInvalidArgument
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	t := &tree[K, V]{
		nodes:   newArena[K, V](o),
		root:    nilNode,
		cmp:     cmp,
		cleanup: cleanup,
	}
	if o.keyCopy != nil {
		keyCopy, ok := o.keyCopy.(func(K) K)
		if !ok || keyCopy == nil {
			return nil, ErrInvalidArgument
		}
		t.keyCopy = keyCopy
	}
	return t, nil
}

// fail records err as the last error and returns it.
func (t *tree[K, V]) fail(err error) error {
	t.lastErr = codeOf(err)
	return err
}

// find descends from the root. It returns the matching node, or nilNode and
// the last visited node together with the side the key belongs on.
func (t *tree[K, V]) find(key K) (match, parent uint32, left bool) {
	current := t.root
	for current != nilNode {
		c := t.cmp(key, t.at(current).key)
		if c == 0 {
			return current, nilNode, false
		}
		parent, left = current, c < 0
		current = t.child(current, left)
	}
	return nilNode, parent, left
}

// Search returns the value stored under key.
func (t *tree[K, V]) Search(key K) (value V, found bool) {
	idx, _, _ := t.find(key)
	if idx == nilNode {
		return value, false
	}
	return t.at(idx).value, true
}

// Insert inserts the passed in value that is indexed by the passed in key
// into the tree. An already present key fails with ErrDuplicateKey and leaves
// the tree untouched.
func (t *tree[K, V]) Insert(key K, value V) error {
	match, parent, left := t.find(key)
	if match != nilNode {
		return t.fail(ErrDuplicateKey)
	}

	if t.keyCopy != nil {
		key = t.keyCopy(key)
	}
	idx, err := t.nodes.malloc(key, value)
	if err != nil {
		return t.fail(err)
	}

	t.at(idx).parent = parent
	switch {
	case parent == nilNode:
		t.root = idx
	case left:
		t.at(parent).left = idx
	default:
		t.at(parent).right = idx
	}
	t.size++

	t.insertFixup(idx)
	return nil
}

// Delete removes key and hands its value to the cleanup callback.
func (t *tree[K, V]) Delete(key K) error {
	idx, _, _ := t.find(key)
	if idx == nilNode {
		return t.fail(ErrNotFound)
	}

	value := t.remove(idx)
	if t.cleanup != nil {
		t.cleanup(value)
	}
	return nil
}

// Each iterates the whole tree in key order, and will call the given
// callback for each entry.
func (t *tree[K, V]) Each(cb Callback[K, V]) {
	for key, value := range t.All() {
		cb(key, value)
	}
}

// All returns the entries in key order. Every range over it starts from the
// smallest key again. The tree must not be mutated while ranging.
func (t *tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nilNode {
			return
		}
		for idx := t.minimum(t.root); idx != nilNode; idx = t.next(idx) {
			n := t.at(idx)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Size returns the number of entries in the tree.
func (t *tree[K, V]) Size() int {
	return t.size
}

// Destroy removes every entry, invoking the cleanup callback once per value.
// The tree stays usable and empty afterwards.
func (t *tree[K, V]) Destroy() {
	if debugEnabled() {
		Log.WithFields(logrus.Fields{"size": t.size}).Debug("destroying tree")
	}
	if t.cleanup != nil && t.root != nilNode {
		values := make([]V, 0, t.size)
		for _, value := range t.All() {
			values = append(values, value)
		}
		t.nodes.reset()
		t.root, t.size = nilNode, 0
		for _, value := range values {
			t.cleanup(value)
		}
		return
	}
	t.nodes.reset()
	t.root, t.size = nilNode, 0
}

// LastError returns the code of the most recent failure.
func (t *tree[K, V]) LastError() ErrorCode {
	return t.lastErr
}

// DescribeError renders the most recent failure and clears it.
func (t *tree[K, V]) DescribeError() string {
	s := t.lastErr.String()
	t.lastErr = NoError
	return s
}
