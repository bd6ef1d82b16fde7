package estimator

import (
	"fmt"
	"math"
	"strconv"
)

// Attributes carries the named physical parameters of a component, as found
// in an architecture specification.
type Attributes map[string]any

// Has reports whether key is present with a non-nil value.
func (a Attributes) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// Float returns key as a float64.
func (a Attributes) Float(key string) (float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%s: %w", key, ErrMissingAttribute)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

// FloatOr returns key as a float64, or def when key is absent.
func (a Attributes) FloatOr(key string, def float64) (float64, error) {
	if !a.Has(key) {
		return def, nil
	}
	return a.Float(key)
}

// Int returns key as an int. Floats must be integral.
func (a Attributes) Int(key string) (int, error) {
	f, err := a.Float(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: %v is not an integer: %w", key, f, ErrAttributeType)
	}
	return int(f), nil
}

// IntOr returns key as an int, or def when key is absent.
func (a Attributes) IntOr(key string, def int) (int, error) {
	if !a.Has(key) {
		return def, nil
	}
	return a.Int(key)
}

// String returns key as a string. Numbers are formatted.
func (a Attributes) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%s: %w", key, ErrMissingAttribute)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	case int, int64, float64, float32, uint, uint64:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%s: %T: %w", key, v, ErrAttributeType)
}

// StringOr returns key as a string, or def when key is absent.
func (a Attributes) StringOr(key, def string) (string, error) {
	if !a.Has(key) {
		return def, nil
	}
	return a.String(key)
}

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", x, ErrAttributeType)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%T: %w", v, ErrAttributeType)
}
