package rbtree

import "fmt"

// Verify checks the red-black properties, the parent links, the key order
// and the entry count. It returns an error wrapping ErrCorrupted describing
// the first violation found.
func (t *tree[K, V]) Verify() error {
	if t.root == nilNode {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrCorrupted, t.size)
		}
		return nil
	}
	if t.colorOf(t.root) != Black {
		return fmt.Errorf("%w: red root", ErrCorrupted)
	}
	if p := t.at(t.root).parent; p != nilNode {
		return fmt.Errorf("%w: root has parent %d", ErrCorrupted, p)
	}

	count := 0
	if _, err := t.verifyHelper(t.root, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrCorrupted, count, t.size)
	}
	if used := t.nodes.used(); used != t.size {
		return fmt.Errorf("%w: arena holds %d nodes, size is %d", ErrCorrupted, used, t.size)
	}

	prev := nilNode
	for idx := t.minimum(t.root); idx != nilNode; idx = t.next(idx) {
		if prev != nilNode && t.cmp(t.at(prev).key, t.at(idx).key) >= 0 {
			return fmt.Errorf("%w: key %v does not order before %v", ErrCorrupted, t.at(prev).key, t.at(idx).key)
		}
		prev = idx
	}
	return nil
}

// verifyHelper returns the black-height of the subtree rooted at idx.
func (t *tree[K, V]) verifyHelper(idx uint32, count *int) (int, error) {
	if idx == nilNode {
		return 1, nil
	}
	*count++
	if *count > t.size {
		return 0, fmt.Errorf("%w: more reachable nodes than size %d", ErrCorrupted, t.size)
	}

	n := t.at(idx)
	for _, c := range [2]uint32{n.left, n.right} {
		if c == nilNode {
			continue
		}
		if t.at(c).parent != idx {
			return 0, fmt.Errorf("%w: node %v has a stale parent link", ErrCorrupted, t.at(c).key)
		}
		if n.color == Red && t.at(c).color == Red {
			return 0, fmt.Errorf("%w: red node %v has a red child", ErrCorrupted, n.key)
		}
	}

	lh, err := t.verifyHelper(n.left, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.verifyHelper(n.right, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black-height %d != %d below %v", ErrCorrupted, lh, rh, n.key)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}
