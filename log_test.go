package rbtree

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugLogRecordsFixups(t *testing.T) {
	hook := test.NewLocal(Log)
	level, out := Log.GetLevel(), Log.Out
	Log.SetLevel(logrus.DebugLevel)
	Log.SetOutput(io.Discard)
	defer func() {
		Log.SetLevel(level)
		Log.SetOutput(out)
		Log.ReplaceHooks(make(logrus.LevelHooks))
	}()

	tr := newIntTree(t)
	insertAll(t, tr, 10, 20, 30)
	require.NoError(t, tr.Delete(10))

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "rotated")
	assert.Contains(t, messages, "insert: outer grandchild")
}

func TestDebugLogSilentByDefault(t *testing.T) {
	hook := test.NewLocal(Log)
	defer Log.ReplaceHooks(make(logrus.LevelHooks))

	tr := newIntTree(t)
	insertAll(t, tr, 1, 2, 3, 4, 5)

	assert.Empty(t, hook.AllEntries())
}
