package rbtree

import "github.com/sirupsen/logrus"

// replaceNode links newn into the position oldn holds under its parent,
// or makes it the root. newn may be nilNode.
func (t *tree[K, V]) replaceNode(oldn, newn uint32) {
	p := t.at(oldn).parent
	switch {
	case p == nilNode:
		t.root = newn
	case t.at(p).left == oldn:
		t.at(p).left = newn
	default:
		t.at(p).right = newn
	}
	if newn != nilNode {
		t.at(newn).parent = p
	}
}

// rotate performs a tree rotation around pivot. left=true rotates left.
//
// Left rotation:
//
//	  X              Y
//	A   Y    =>    X   C
//	   B C        A B
//
// Right rotation:
//
//	   Y            X
//	 X   C  =>    A   Y
//	A B              B C
func (t *tree[K, V]) rotate(pivot uint32, left bool) {
	up := t.child(pivot, !left)
	doAssert(up != nilNode)

	inner := t.child(up, left)
	if left {
		t.at(pivot).right = inner
	} else {
		t.at(pivot).left = inner
	}
	if inner != nilNode {
		t.at(inner).parent = pivot
	}

	t.replaceNode(pivot, up)

	if left {
		t.at(up).left = pivot
	} else {
		t.at(up).right = pivot
	}
	t.at(pivot).parent = up

	if debugEnabled() {
		Log.WithFields(logrus.Fields{
			"pivot": pivot, "up": up, "left": left,
		}).Debug("rotated")
	}
}

func (t *tree[K, V]) rotateLeft(pivot uint32) {
	t.rotate(pivot, true)
}

func (t *tree[K, V]) rotateRight(pivot uint32) {
	t.rotate(pivot, false)
}
