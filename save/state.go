package save

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// State is the persisted progression blob.
type State struct {
	XP             int            `json:"xp"`
	LevelsUnlocked int            `json:"levelsUnlocked"`
	LevelStars     map[string]int `json:"levelStars"`
	TotalStars     int            `json:"totalStars"`
}

func DefaultState() State {
	return State{
		XP:             0,
		LevelsUnlocked: 1,
		LevelStars:     map[string]int{},
		TotalStars:     0,
	}
}

// LevelKey returns the levelStars key for a level number.
func LevelKey(level int) string {
	return fmt.Sprintf("level%d", level)
}

// StarsFor returns the best star count recorded for level, or 0.
func (s State) StarsFor(level int) int {
	return s.LevelStars[LevelKey(level)]
}

// IsUnlocked reports whether level can be played.
func (s State) IsUnlocked(level int) bool {
	return level >= 1 && level <= s.LevelsUnlocked
}

func sumStars(stars map[string]int) int {
	total := 0
	for _, v := range stars {
		total += v
	}
	return total
}

// limits bounds what a sanitized State may contain.
type limits struct {
	levelCount int
}

var levelKeyPattern = regexp.MustCompile(`^level([1-9][0-9]*)$`)

// fieldRule sanitizes one field of an untrusted blob into dst. raw is the
// decoded JSON value or nil when the field is absent. It returns false
// when raw was present but rejected.
type fieldRule struct {
	field string
	apply func(raw any, lim limits, dst *State) bool
}

// sanitizeRules run in order; totalStars is last because it is derived
// from levelStars.
var sanitizeRules = []fieldRule{
	{field: "xp", apply: sanitizeXP},
	{field: "levelsUnlocked", apply: sanitizeLevelsUnlocked},
	{field: "levelStars", apply: sanitizeLevelStars},
	{field: "totalStars", apply: deriveTotalStars},
}

func finiteNumber(raw any) (float64, bool) {
	f, ok := raw.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func sanitizeXP(raw any, _ limits, dst *State) bool {
	dst.XP = 0
	if raw == nil {
		return true
	}
	f, ok := finiteNumber(raw)
	if !ok || f < 0 {
		return false
	}
	if f >= float64(math.MaxInt) {
		dst.XP = math.MaxInt
		return true
	}
	dst.XP = int(math.Floor(f))
	return true
}

func sanitizeLevelsUnlocked(raw any, lim limits, dst *State) bool {
	dst.LevelsUnlocked = 1
	if raw == nil {
		return true
	}
	f, ok := finiteNumber(raw)
	if !ok {
		return false
	}
	if f < 1 || f > float64(lim.levelCount+1) {
		return false
	}
	dst.LevelsUnlocked = int(math.Floor(f))
	return true
}

func sanitizeLevelStars(raw any, lim limits, dst *State) bool {
	dst.LevelStars = map[string]int{}
	if raw == nil {
		return true
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	clean := true
	for key, v := range m {
		match := levelKeyPattern.FindStringSubmatch(key)
		if match == nil {
			clean = false
			continue
		}
		level, err := strconv.Atoi(match[1])
		if err != nil || level < 1 || level > lim.levelCount {
			clean = false
			continue
		}
		f, ok := finiteNumber(v)
		if !ok || f < 1 || f > 3 {
			clean = false
			continue
		}
		dst.LevelStars[key] = int(math.Floor(f))
	}
	return clean
}

func deriveTotalStars(raw any, _ limits, dst *State) bool {
	dst.TotalStars = sumStars(dst.LevelStars)
	if raw == nil {
		return true
	}
	f, ok := finiteNumber(raw)
	return ok && int(f) == dst.TotalStars && f == math.Trunc(f)
}

// sanitize decodes an untrusted blob field by field. Unparsable input or a
// non-object yields the default state. rejected lists fields whose stored
// value was discarded in whole or part.
func sanitize(blob string, lim limits) (state State, rejected []string) {
	var raw any
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return DefaultState(), []string{"*"}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return DefaultState(), []string{"*"}
	}

	state = DefaultState()
	for _, rule := range sanitizeRules {
		if !rule.apply(obj[rule.field], lim, &state) {
			rejected = append(rejected, rule.field)
		}
	}
	return state, rejected
}
