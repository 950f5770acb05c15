// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

// LeftoverKey is the output key under which positional tokens are
// collected when Config.Leftover is set.
const LeftoverKey = "leftover"

// Values is the output of a parse: entry keys (see Entry.Key) mapped to
// bool, int, float64, string or []string values, plus LeftoverKey.
type Values map[string]any

// Has reports whether key is set.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Bool returns the boolean stored at key, or false.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// Int returns the integer stored at key. ok is false if the key is unset
// or holds a different type.
func (v Values) Int(key string) (n int, ok bool) {
	n, ok = v[key].(int)
	return n, ok
}

// Float returns the float stored at key. Integers are widened.
func (v Values) Float(key string) (f float64, ok bool) {
	switch x := v[key].(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

// String returns the string stored at key, or "".
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// List returns the list stored at key, or nil.
func (v Values) List(key string) []string {
	l, _ := v[key].([]string)
	return l
}

// Leftover returns the collected positional tokens.
func (v Values) Leftover() []string {
	return v.List(LeftoverKey)
}

func (v Values) appendLeftover(s string) {
	v[LeftoverKey] = append(v.List(LeftoverKey), s)
}
