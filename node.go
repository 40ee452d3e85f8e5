package rbtree

import "math"

// nilNode is the reserved arena slot standing for every nil leaf.
const nilNode uint32 = 0

// maxArenaNodes is the largest number of live nodes one arena can address.
const maxArenaNodes uint64 = math.MaxUint32 - 1

// node is one arena slot. Links are arena indices, nilNode for absent.
type node[K, V any] struct {
	key                 K
	value               V
	parent, left, right uint32
	color               Color
}

// arena stores the nodes of a single tree and recycles freed slots.
type arena[K, V any] struct {
	storage  []node[K, V]
	free     []uint32
	maxNodes int
}

func newArena[K, V any](o options) *arena[K, V] {
	a := &arena[K, V]{maxNodes: o.maxNodes}
	a.storage = make([]node[K, V], 1, o.initialCapacity+1)
	a.storage[nilNode].color = Black
	return a
}

// used returns the number of live nodes.
func (a *arena[K, V]) used() int {
	return len(a.storage) - 1 - len(a.free)
}

// malloc returns a fresh red leaf holding key and value.
func (a *arena[K, V]) malloc(key K, value V) (uint32, error) {
	if a.maxNodes > 0 && a.used() >= a.maxNodes {
		return nilNode, ErrOutOfMemory
	}

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if uint64(len(a.storage)) > maxArenaNodes {
			return nilNode, ErrOutOfMemory
		}
		a.storage = append(a.storage, node[K, V]{})
		idx = uint32(len(a.storage) - 1)
	}

	a.storage[idx] = node[K, V]{key: key, value: value, color: Red}
	return idx, nil
}

// release zeroes the slot so it holds no references and queues it for reuse.
func (a *arena[K, V]) release(idx uint32) {
	doAssert(idx != nilNode)
	a.storage[idx] = node[K, V]{}
	a.free = append(a.free, idx)
}

// reset drops every node.
func (a *arena[K, V]) reset() {
	clear(a.storage)
	a.storage = a.storage[:1]
	a.storage[nilNode].color = Black
	a.free = nil
}

// Internal node attribute accessors. All of them accept nilNode.

func (t *tree[K, V]) colorOf(idx uint32) Color {
	if idx == nilNode {
		return Black
	}
	return t.nodes.storage[idx].color
}

func (t *tree[K, V]) setColor(idx uint32, c Color) {
	if idx != nilNode {
		t.nodes.storage[idx].color = c
	}
}

func (t *tree[K, V]) at(idx uint32) *node[K, V] {
	return &t.nodes.storage[idx]
}

func (t *tree[K, V]) isLeftChild(idx uint32) bool {
	p := t.at(idx).parent
	return p != nilNode && t.at(p).left == idx
}

// child returns the left child when left is set, the right one otherwise.
func (t *tree[K, V]) child(idx uint32, left bool) uint32 {
	if left {
		return t.at(idx).left
	}
	return t.at(idx).right
}

// minimum returns the left-most node of the subtree rooted at idx.
func (t *tree[K, V]) minimum(idx uint32) uint32 {
	for t.at(idx).left != nilNode {
		idx = t.at(idx).left
	}
	return idx
}

// next returns the in-order successor of idx, or nilNode.
func (t *tree[K, V]) next(idx uint32) uint32 {
	if r := t.at(idx).right; r != nilNode {
		return t.minimum(r)
	}
	for {
		p := t.at(idx).parent
		if p == nilNode {
			return nilNode
		}
		if t.at(p).left == idx {
			return p
		}
		idx = p
	}
}
