package levels

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Result is the outcome of validating a level description.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidationError is returned by Parse when the level fails validation.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "levels: invalid level: " + e.Errors[0]
	}
	return fmt.Sprintf("levels: invalid level (%d problems): %s", len(e.Errors), strings.Join(e.Errors, "; "))
}

// Validate checks a decoded level description. data is normally the result
// of unmarshalling JSON into an any; raw JSON bytes and *Level are also
// accepted. Every rule runs and every violation is reported, in order.
func Validate(data any) Result {
	v, ok := normalize(data)
	if !ok {
		return Result{Valid: false, Errors: []string{"Level data must be an object"}}
	}
	lvl, ok := asObject(v)
	if !ok {
		return Result{Valid: false, Errors: []string{"Level data must be an object"}}
	}

	errs := make([]string, 0)
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if name, ok := lvl.str("name"); !ok || name == "" {
		add(`Level must have a non-empty "name" string`)
	}

	for _, key := range []string{"gridWidth", "gridHeight"} {
		n, ok := lvl.number(key)
		if !ok || n < 1 || !isInteger(n) {
			add(`"%s" must be a positive integer`, key)
		}
	}

	platforms, ok := lvl.array("platforms")
	if !ok || len(platforms) == 0 {
		add(`"platforms" must be a non-empty array`)
	} else {
		for i, raw := range platforms {
			p, _ := asObject(raw)
			checkInteger(p, "gridX", fmt.Sprintf("platforms[%d]", i), add)
			checkInteger(p, "gridY", fmt.Sprintf("platforms[%d]", i), add)
			if w, ok := p.number("width"); !ok || w < 1 || !isInteger(w) {
				add("platforms[%d].width must be a positive integer", i)
			}
			if _, ok := p.str("tile"); !ok {
				add("platforms[%d].tile must be a string", i)
			}
		}
	}

	gaps, ok := lvl.array("gaps")
	if !ok {
		add(`"gaps" must be an array`)
	} else {
		for i, raw := range gaps {
			g, _ := asObject(raw)
			checkInteger(g, "gridX", fmt.Sprintf("gaps[%d]", i), add)
			checkInteger(g, "gridY", fmt.Sprintf("gaps[%d]", i), add)
			w, wok := g.number("width")
			if !wok || w < 1 || !isInteger(w) {
				add("gaps[%d].width must be a positive integer", i)
			}
			a, aok := g.number("correctAnswer")
			if !aok || a < 1 || !isInteger(a) {
				add("gaps[%d].correctAnswer must be a positive integer", i)
			}
			if wok && aok && w != a {
				add("gaps[%d].correctAnswer (%s) does not match width (%s)", i, formatNumber(a), formatNumber(w))
			}
		}
	}

	startX, startOK := checkPosition(lvl, "start", add)
	goalX, goalOK := checkPosition(lvl, "goal", add)

	if startOK && goalOK && goalX <= startX {
		add("Goal gridX should be greater than start gridX")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// checkPosition validates a {gridX, gridY} child object and returns its
// gridX when that coordinate is numeric.
func checkPosition(lvl object, key string, add func(string, ...any)) (float64, bool) {
	pos, ok := lvl.child(key)
	x, xok := pos.number("gridX")
	y, yok := pos.number("gridY")
	switch {
	case !ok || !xok || !yok:
		add(`"%s" must have numeric gridX and gridY coordinates`, key)
	case !isInteger(x) || !isInteger(y):
		add(`"%s" gridX and gridY must be integers`, key)
	}
	return x, ok && xok
}

// checkInteger reports a missing, non-numeric or fractional coordinate.
func checkInteger(o object, key, path string, add func(string, ...any)) {
	n, ok := o.number(key)
	switch {
	case !ok:
		add("%s.%s must be a number", path, key)
	case !isInteger(n):
		add("%s.%s must be an integer", path, key)
	}
}

// ValidateJSON decodes b and validates the result.
func ValidateJSON(b []byte) Result {
	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return Result{Valid: false, Errors: []string{"invalid JSON: " + err.Error()}}
	}
	return Validate(data)
}

// Parse validates b and decodes it into a Level. An invalid level yields a
// *ValidationError and no Level.
func Parse(b []byte) (*Level, error) {
	res := ValidateJSON(b)
	if !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("levels: decode: %w", err)
	}
	if lvl.Gaps == nil {
		lvl.Gaps = []Gap{}
	}
	return &lvl, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
