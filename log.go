package rbtree

import "github.com/sirupsen/logrus"

// Log receives the tree's Debug entries. Callers may replace its output,
// formatter or level.
var Log = logrus.New()

func debugEnabled() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
