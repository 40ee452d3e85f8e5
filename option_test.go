package rbtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptions(t *testing.T) {
	o, err := buildOptions([]Option{nil, WithMaxNodes(8), WithInitialCapacity(4)})
	require.NoError(t, err)
	assert.Equal(t, 8, o.maxNodes)
	assert.Equal(t, 4, o.initialCapacity)

	_, err = buildOptions([]Option{WithInitialCapacity(-1)})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// The limit check must compile and hold on 32-bit ints as well, where the
// arena limit exceeds math.MaxInt.
func TestWithMaxNodesAboveArenaLimit(t *testing.T) {
	o, err := buildOptions([]Option{WithMaxNodes(math.MaxInt32)})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, o.maxNodes)

	limit := maxArenaNodes + 1
	if limit > uint64(math.MaxInt) {
		t.Skip("int cannot exceed the arena limit on this platform")
	}
	_, err = buildOptions([]Option{WithMaxNodes(int(limit))})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
