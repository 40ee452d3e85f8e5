package rbtree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeOf(t *testing.T) {
	var testData = []struct {
		err      error
		expected ErrorCode
	}{
		{nil, NoError},
		{ErrOutOfMemory, OutOfMemory},
		{ErrDuplicateKey, DuplicateKey},
		{ErrInvalidArgument, InvalidArgument},
		{ErrNotFound, NotFound},
		{fmt.Errorf("%w: key is 3 bytes, want 4", ErrInvalidArgument), InvalidArgument},
		{fmt.Errorf("wrapped: %w", ErrNotFound), NotFound},
		{errors.New("other"), InvalidArgument},
	}

	for _, data := range testData {
		assert.Equal(t, data.expected, codeOf(data.err), "%v", data.err)
	}
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "no error", NoError.String())
	assert.Equal(t, "node allocation failed", OutOfMemory.String())
	assert.Equal(t, "key already present", DuplicateKey.String())
	assert.Equal(t, "invalid argument", InvalidArgument.String())
	assert.Equal(t, "key not present", NotFound.String())
	assert.Equal(t, "unknown error", ErrorCode(42).String())
}
