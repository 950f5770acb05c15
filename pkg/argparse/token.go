// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "strings"

// terminator ends flag processing; every later token is positional.
const terminator = "--"

// Token is the lexical classification of one raw argument.
type Token struct {
	// Raw is the argument as given.
	Raw string
	// IsFlag is true for "-x" and "--xyz" forms.
	IsFlag bool
	// Long is true when the flag was written with two dashes.
	Long bool
	// Name is the flag name without dashes and without any "=value".
	Name string
	// Value is the text after the first "=", if HasValue.
	Value    string
	HasValue bool
}

// Classify splits a raw argument into a flag name and an optional inline
// value. It does not consult any schema.
//
//	--target=src  -> {Name: "target", Value: "src", HasValue: true}
//	-t            -> {Name: "t"}
//	src           -> {IsFlag: false}
//
// A lone "-" is positional. The "--" terminator is reported as a
// non-flag token; callers check for it with IsTerminator.
func Classify(raw string) Token {
	tok := Token{Raw: raw}
	var rest string
	switch {
	case raw == terminator || raw == "-":
		return tok
	case strings.HasPrefix(raw, "--"):
		rest = raw[2:]
		tok.Long = true
	case strings.HasPrefix(raw, "-"):
		rest = raw[1:]
	default:
		return tok
	}
	tok.IsFlag = true
	tok.Name, tok.Value, tok.HasValue = strings.Cut(rest, "=")
	return tok
}

// IsTerminator reports whether the token is the "--" end-of-flags marker.
func (t Token) IsTerminator() bool {
	return t.Raw == terminator
}

// Flag returns the flag in the dashed form the user wrote.
func (t Token) Flag() string {
	if t.Long {
		return "--" + t.Name
	}
	return "-" + t.Name
}

// looksLikeFlag reports whether s would be classified as a flag and is not
// a negative number such as "-5" or "-1.5".
func looksLikeFlag(s string) bool {
	if !Classify(s).IsFlag && s != terminator {
		return false
	}
	return !isNumeric(s)
}

// isNumeric checks if a string is a plain decimal number ("10", "-10",
// "3.14", "-3.14").
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	hasDigit := false
	hasDot := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.':
			if hasDot {
				return false
			}
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}
