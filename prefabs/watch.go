package prefabs

import (
	"path/filepath"
	"strings"

	"github.com/milk9111/mathbuilder/common"
)

// NewWatcher watches dirs for edited spec files.
func NewWatcher(dirs ...string) (*common.Watcher, error) {
	return common.NewWatcher(isSpecFile, dirs...)
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
