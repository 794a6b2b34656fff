package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidKeys signals that a supplied dictionary's key set differs
	// from the key set fixed at construction.
	ErrInvalidKeys = errors.New("params: invalid parameter keys")

	// ErrEmptyDict signals a nil or empty dictionary where parameters are
	// required.
	ErrEmptyDict = errors.New("params: empty parameter dict")
)

// Dict maps parameter names to values.
type Dict map[string]float64

// Clone returns an independent copy of d. A nil Dict clones to an empty one.
func (d Dict) Clone() Dict {
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in sorted order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is present.
func (d Dict) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Merge unions dicts left to right into a fresh Dict; later dicts win on
// key collisions. Nil dicts are skipped.
func Merge(dicts ...Dict) Dict {
	out := make(Dict)
	for _, d := range dicts {
		for k, v := range d {
			out[k] = v
		}
	}
	return out
}

// CheckKeys verifies that got's key set equals want exactly. Both
// directions count: absent required keys and unexpected extra keys each
// fail. The returned error wraps ErrInvalidKeys and names the offending
// keys in sorted order.
func CheckKeys(got Dict, want ...string) error {
	wantSet := make(map[string]struct{}, len(want))
	var missing []string
	for _, k := range want {
		wantSet[k] = struct{}{}
		if _, ok := got[k]; !ok {
			missing = append(missing, k)
		}
	}
	var unexpected []string
	for k := range got {
		if _, ok := wantSet[k]; !ok {
			unexpected = append(unexpected, k)
		}
	}
	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(unexpected)
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing ["+strings.Join(missing, " ")+"]")
	}
	if len(unexpected) > 0 {
		parts = append(parts, "unexpected ["+strings.Join(unexpected, " ")+"]")
	}
	return fmt.Errorf("%w: %s", ErrInvalidKeys, strings.Join(parts, ", "))
}
