package rbtree

// remove unlinks idx from the tree and returns the value it carried.
func (t *tree[K, V]) remove(idx uint32) V {
	n := t.at(idx)

	// Two children: trade payloads with the in-order successor and remove
	// the successor instead. It has no left child.
	if n.left != nilNode && n.right != nilNode {
		succ := t.minimum(n.right)
		s := t.at(succ)
		n.key, s.key = s.key, n.key
		n.value, s.value = s.value, n.value
		idx, n = succ, s
	}

	value := n.value
	child := n.left
	if child == nilNode {
		child = n.right
	}

	switch {
	case child != nilNode:
		// A node with a single child is black and the child is a red leaf.
		t.replaceNode(idx, child)
		t.setColor(child, Black)
	case n.parent == nilNode:
		t.root = nilNode
	case n.color == Red:
		t.replaceNode(idx, nilNode)
	default:
		parent := n.parent
		sibling := t.child(parent, t.at(parent).left != idx)
		t.replaceNode(idx, nilNode)
		t.deleteFixup(parent, sibling)
	}

	t.nodes.release(idx)
	t.size--
	return value
}

// deleteFixup repairs the black-height deficit below parent on the side
// opposite sibling.
func (t *tree[K, V]) deleteFixup(parent, sibling uint32) {
	for {
		// The deficit side lost a black node, so the other side holds one.
		doAssert(sibling != nilNode)
		siblingLeft := t.at(parent).left == sibling

		// Red sibling: rotate it above the parent. Its former near child
		// becomes the black sibling and the parent turns red.
		if t.colorOf(sibling) == Red {
			t.setColor(parent, Red)
			t.setColor(sibling, Black)
			t.rotate(parent, !siblingLeft)
			t.logCase("delete: red sibling", sibling)
			sibling = t.child(parent, siblingLeft)
			continue
		}

		far := t.child(sibling, siblingLeft)
		near := t.child(sibling, !siblingLeft)

		// Black sibling with a red far child.
		if t.colorOf(far) == Red {
			t.setColor(far, Black)
			t.setColor(sibling, t.colorOf(parent))
			t.setColor(parent, Black)
			t.rotate(parent, !siblingLeft)
			t.logCase("delete: red far nephew", sibling)
			return
		}

		// Black sibling with a red near child only: turn it into the far
		// case above.
		if t.colorOf(near) == Red {
			t.setColor(near, Black)
			t.setColor(sibling, Red)
			t.rotate(sibling, siblingLeft)
			t.logCase("delete: red near nephew", sibling)
			sibling = near
			continue
		}

		t.setColor(sibling, Red)

		// Red parent absorbs the deficit.
		if t.colorOf(parent) == Red {
			t.setColor(parent, Black)
			t.logCase("delete: red parent", parent)
			return
		}

		// Everything black: the whole subtree under parent is one short,
		// carry on one level up unless parent is the root.
		grandparent := t.at(parent).parent
		if grandparent == nilNode {
			t.logCase("delete: deficit reached root", parent)
			return
		}
		t.logCase("delete: ascend", parent)
		sibling = t.child(grandparent, t.at(grandparent).left != parent)
		parent = grandparent
	}
}
