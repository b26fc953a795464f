package levels

import "github.com/milk9111/mathbuilder/common"

// NewWatcher watches dirs for changed level files.
func NewWatcher(dirs ...string) (*common.Watcher, error) {
	return common.NewWatcher(isLevelFile, dirs...)
}
