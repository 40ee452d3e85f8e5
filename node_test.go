package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaMallocReusesReleasedSlots(t *testing.T) {
	a := newArena[int, string](options{})

	first, err := a.malloc(1, "one")
	require.NoError(t, err)
	second, err := a.malloc(2, "two")
	require.NoError(t, err)

	assert.NotEqual(t, nilNode, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, a.used())
	assert.Equal(t, Red, a.storage[first].color)

	a.release(first)
	assert.Equal(t, 1, a.used())
	assert.Equal(t, node[int, string]{}, a.storage[first])

	third, err := a.malloc(3, "three")
	require.NoError(t, err)
	assert.Equal(t, first, third)
	assert.Equal(t, "three", a.storage[third].value)
}

func TestArenaMaxNodes(t *testing.T) {
	a := newArena[int, int](options{maxNodes: 1})

	idx, err := a.malloc(1, 1)
	require.NoError(t, err)

	_, err = a.malloc(2, 2)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	a.release(idx)
	_, err = a.malloc(2, 2)
	assert.NoError(t, err)
}

func TestArenaReset(t *testing.T) {
	a := newArena[int, int](options{initialCapacity: 8})
	for i := 0; i < 5; i++ {
		_, err := a.malloc(i, i)
		require.NoError(t, err)
	}
	a.release(3)

	a.reset()

	assert.Zero(t, a.used())
	assert.Len(t, a.storage, 1)
	assert.Empty(t, a.free)
	assert.Equal(t, Black, a.storage[nilNode].color)
}

func TestArenaReleaseNilPanics(t *testing.T) {
	a := newArena[int, int](options{})
	assert.Panics(t, func() { a.release(nilNode) })
}

func TestColorOfNilIsBlack(t *testing.T) {
	tr := newIntTree(t)
	assert.Equal(t, Black, tr.colorOf(nilNode))

	tr.setColor(nilNode, Red)
	assert.Equal(t, Black, tr.colorOf(nilNode))

	assert.Equal(t, "black", Black.String())
	assert.Equal(t, "red", Red.String())
}

func TestRotateLeftAtRoot(t *testing.T) {
	tr := buildTree(t, bk(2, bk(1, nil, nil), rd(4, bk(3, nil, nil), bk(5, nil, nil))))

	tr.rotateLeft(tr.root)

	assert.Equal(t,
		rd(4, bk(2, bk(1, nil, nil), bk(3, nil, nil)), bk(5, nil, nil)),
		shapeOf(tr))
	assert.Equal(t, nilNode, tr.at(tr.root).parent)
	assertParentLinks(t, tr, tr.root)
}

func TestRotateRightBelowRoot(t *testing.T) {
	tr := buildTree(t, bk(10,
		bk(5, rd(3, bk(2, nil, nil), bk(4, nil, nil)), bk(6, nil, nil)),
		bk(20, bk(15, nil, nil), bk(25, nil, nil))))

	five, _, _ := tr.find(5)
	tr.rotateRight(five)

	assert.Equal(t, bk(10,
		rd(3, bk(2, nil, nil), bk(5, bk(4, nil, nil), bk(6, nil, nil))),
		bk(20, bk(15, nil, nil), bk(25, nil, nil))),
		shapeOf(tr))
	assert.Equal(t, 10, tr.at(tr.root).key)
	assertParentLinks(t, tr, tr.root)
}

func TestRotateRoundTrip(t *testing.T) {
	s := bk(8, bk(4, bk(2, nil, nil), bk(6, nil, nil)), bk(12, bk(10, nil, nil), bk(14, nil, nil)))
	tr := buildTree(t, s)

	four, _, _ := tr.find(4)
	tr.rotateLeft(four)
	six, _, _ := tr.find(6)
	tr.rotateRight(six)

	assert.Equal(t, s, shapeOf(tr))
	assertParentLinks(t, tr, tr.root)
}

func TestNextWalksInOrder(t *testing.T) {
	tr := buildTree(t, bk(8, bk(4, bk(2, nil, nil), bk(6, nil, nil)), bk(12, bk(10, nil, nil), bk(14, nil, nil))))

	var keys []int
	for idx := tr.minimum(tr.root); idx != nilNode; idx = tr.next(idx) {
		keys = append(keys, tr.at(idx).key)
	}
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12, 14}, keys)
}

func assertParentLinks(tb testing.TB, tr *tree[int, int], idx uint32) {
	tb.Helper()
	if idx == nilNode {
		return
	}
	n := tr.at(idx)
	for _, c := range []uint32{n.left, n.right} {
		if c != nilNode {
			assert.Equal(tb, idx, tr.at(c).parent, "parent of %d", tr.at(c).key)
			assertParentLinks(tb, tr, c)
		}
	}
}
