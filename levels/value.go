package levels

import (
	"encoding/json"
	"math"
)

// object is an untrusted JSON object. Field reads go through the typed
// accessors below; a missing key and a key of the wrong shape look the same.
type object map[string]any

func asObject(v any) (object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return object(m), true
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func (o object) number(key string) (float64, bool) {
	if o == nil {
		return 0, false
	}
	return asNumber(o[key])
}

func (o object) str(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	s, ok := o[key].(string)
	return s, ok
}

func (o object) array(key string) ([]any, bool) {
	if o == nil {
		return nil, false
	}
	a, ok := o[key].([]any)
	return a, ok
}

func (o object) child(key string) (object, bool) {
	if o == nil {
		return nil, false
	}
	return asObject(o[key])
}

// maxExactInt is the largest magnitude a float64 holds without rounding.
const maxExactInt = 1 << 53

func isInteger(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f) && math.Abs(f) <= maxExactInt
}

// normalize turns typed Go values into the generic JSON shape so the
// validator only ever inspects one representation.
func normalize(data any) (any, bool) {
	switch v := data.(type) {
	case nil:
		return nil, true
	case map[string]any, []any, string, float64, bool:
		return v, true
	case json.RawMessage:
		return decodeUntrusted(v)
	case []byte:
		return decodeUntrusted(v)
	case Level, *Level:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		return decodeUntrusted(b)
	default:
		return v, true
	}
}

func decodeUntrusted(b []byte) (any, bool) {
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	return out, true
}
