// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

// Type is the declared value kind of a schema entry.
type Type string

const (
	// Boolean entries are true when present and never take a value.
	Boolean Type = "boolean"
	// Integer entries are parsed as base-10 integers.
	Integer Type = "integer"
	// Float entries are parsed as 64-bit floating point numbers.
	Float Type = "float"
	// String entries keep the raw value.
	String Type = "string"
	// List entries are split on the entry delimiter (default ",").
	List Type = "list"
)

// Types returns the closed set of recognized types in declaration order.
func Types() []Type {
	return []Type{Boolean, Integer, Float, String, List}
}

// Valid reports whether t is one of the recognized types.
func (t Type) Valid() bool {
	switch t {
	case Boolean, Integer, Float, String, List:
		return true
	}
	return false
}

// TakesValue reports whether a flag of this type needs a value.
func (t Type) TakesValue() bool {
	return t != Boolean
}

func (t Type) String() string {
	return string(t)
}
