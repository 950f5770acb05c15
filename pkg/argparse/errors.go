// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for branching with errors.Is. They are never returned
// directly; *ArgumentError and *SchemaError match them.
var (
	// ErrInvalidArgument matches every *ArgumentError (bad user input).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidSchema matches every *SchemaError (bad program configuration).
	ErrInvalidSchema = errors.New("invalid schema")
)

// ArgumentError is returned when the command line does not satisfy the
// schema: unknown flags, missing or malformed values, and positional
// tokens when no leftover name is configured.
type ArgumentError struct {
	// Entry is the matched schema entry. It is nil for unknown flags and
	// rejected positional tokens.
	Entry *Entry
	// Flag is the flag as written by the user ("--count", "-c"), or
	// "$NAME" when the value came from the environment. Empty for
	// positional tokens.
	Flag string
	// Value is the raw value seen, if any.
	Value    string
	HasValue bool
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ArgumentError) Error() string {
	if e.Entry == nil {
		if e.Flag == "" {
			return fmt.Sprintf("%q is not a valid option", e.Value)
		}
		return fmt.Sprintf("%q is not a valid option", e.Flag)
	}
	msg := fmt.Sprintf("expected %q to receive %s", e.Flag, withArticle(string(e.Entry.Type)))
	if e.HasValue {
		msg += fmt.Sprintf(", got %q", e.Value)
	}
	return msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// SchemaError is returned when the schema itself is wrong: an entry with an
// unrecognized type, or conflicting or missing flag names.
type SchemaError struct {
	// Type is the offending declared type, if the failure is about a type.
	Type Type
	Msg  string
}

func (e *SchemaError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("invalid schema type %q", string(e.Type))
}

// Is reports whether target is ErrInvalidSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

func withArticle(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}
