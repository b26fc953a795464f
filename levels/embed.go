package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed world1/*.json
var LevelsFS embed.FS

const (
	// LevelCount is the number of levels shipped in world1.
	LevelCount = 10
	World      = "world1"
)

// FileName returns the level file for a level number, e.g. world1/level03.json.
func FileName(number int) string {
	return path.Join(World, fmt.Sprintf("level%02d.json", number))
}

// Load reads, validates and decodes level number (1-based).
func Load(number int) (*Level, error) {
	if number < 1 || number > LevelCount {
		return nil, fmt.Errorf("levels: invalid level number: %d", number)
	}
	return LoadLevelFromFS(FileName(number))
}

// LoadLevelFromFS reads name from disk when a copy exists under levels/,
// otherwise from the embedded files.
func LoadLevelFromFS(name string) (*Level, error) {
	data, err := Read(name)
	if err != nil {
		return nil, err
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return lvl, nil
}

// Read returns the raw bytes of a level file.
func Read(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return data, nil
}

// Names lists the embedded level files in order.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, World)
	if err != nil {
		return nil, fmt.Errorf("levels: list %s: %w", World, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isLevelFile(e.Name()) {
			continue
		}
		out = append(out, path.Join(World, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func cleanLevelPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}

func isLevelFile(p string) bool {
	return strings.ToLower(filepath.Ext(p)) == ".json"
}
