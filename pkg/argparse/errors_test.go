// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
	"testing"
)

func TestArgumentErrorMessage(t *testing.T) {
	target := &Entry{Long: "target", Type: String}
	list := &Entry{Long: "locales", Type: List}
	tests := []struct {
		err  *ArgumentError
		want string
	}{
		{err: &ArgumentError{Entry: target, Flag: "--target"}, want: `expected "--target" to receive a string`},
		{err: &ArgumentError{Entry: target, Flag: "-t", Value: "", HasValue: true}, want: `expected "-t" to receive a string, got ""`},
		{err: &ArgumentError{Entry: list, Flag: "--locales"}, want: `expected "--locales" to receive a list`},
		{err: &ArgumentError{Flag: "--invalid"}, want: `"--invalid" is not a valid option`},
		{err: &ArgumentError{Value: "src/*.js", HasValue: true}, want: `"src/*.js" is not a valid option`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	argErr := fmt.Errorf("parse: %w", &ArgumentError{Flag: "--x"})
	schemaErr := fmt.Errorf("parse: %w", &SchemaError{Type: "bogus"})

	if !errors.Is(argErr, ErrInvalidArgument) || errors.Is(argErr, ErrInvalidSchema) {
		t.Errorf("argument error kind mismatch: %v", argErr)
	}
	if !errors.Is(schemaErr, ErrInvalidSchema) || errors.Is(schemaErr, ErrInvalidArgument) {
		t.Errorf("schema error kind mismatch: %v", schemaErr)
	}
	if got, want := schemaErr.Error(), `parse: invalid schema type "bogus"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTypes(t *testing.T) {
	for _, typ := range Types() {
		if !typ.Valid() {
			t.Errorf("%s.Valid() = false", typ)
		}
		if typ.TakesValue() == (typ == Boolean) {
			t.Errorf("%s.TakesValue() = %v", typ, typ.TakesValue())
		}
	}
	for _, typ := range []Type{"", "bool", "int", "List"} {
		if typ.Valid() {
			t.Errorf("%q.Valid() = true", typ)
		}
	}
}
