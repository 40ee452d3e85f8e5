package rbtree

import "github.com/sirupsen/logrus"

// insertFixup restores the red-black properties after idx was linked in as
// a red leaf.
func (t *tree[K, V]) insertFixup(idx uint32) {
	for {
		parent := t.at(idx).parent

		// The parent is black (or idx is the root); nothing is violated.
		if t.colorOf(parent) == Black {
			break
		}

		// A red parent is never the root, so the grandparent exists.
		grandparent := t.at(parent).parent
		doAssert(grandparent != nilNode)

		parentLeft := t.at(grandparent).left == parent
		uncle := t.child(grandparent, !parentLeft)

		// Red uncle: push the violation up to the grandparent.
		if t.colorOf(uncle) == Red {
			t.setColor(parent, Black)
			t.setColor(uncle, Black)
			t.setColor(grandparent, Red)
			t.logCase("insert: red uncle", idx)
			idx = grandparent
			continue
		}

		// Inner grandchild: rotate it into the outer position.
		if t.isLeftChild(idx) != parentLeft {
			t.rotate(parent, parentLeft)
			t.logCase("insert: inner grandchild", idx)
			idx, parent = parent, idx
		}

		// Outer grandchild.
		t.setColor(parent, Black)
		t.setColor(grandparent, Red)
		t.rotate(grandparent, !parentLeft)
		t.logCase("insert: outer grandchild", idx)
		break
	}

	t.setColor(t.root, Black)
}

func (t *tree[K, V]) logCase(fixup string, idx uint32) {
	if debugEnabled() {
		Log.WithFields(logrus.Fields{
			"node": idx, "size": t.size,
		}).Debug(fixup)
	}
}
