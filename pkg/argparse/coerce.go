// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// coerce produces the typed value for entry e, matched by tok at args[i].
// consumed is 1 when the value was taken from args[i+1] and 0 otherwise.
func coerce(e *Entry, tok Token, args []string, i int, strict bool) (value any, consumed int, err error) {
	if !e.Type.Valid() {
		return nil, 0, &SchemaError{Type: e.Type}
	}
	if e.Type == Boolean {
		return true, 0, nil
	}

	raw := tok.Value
	if raw == "" && i+1 < len(args) && !looksLikeFlag(args[i+1]) {
		raw = args[i+1]
		consumed = 1
	}
	if raw == "" {
		return nil, consumed, &ArgumentError{Entry: e, Flag: tok.Flag()}
	}

	value, err = convert(e, raw, strict)
	if err != nil {
		return nil, consumed, &ArgumentError{Entry: e, Flag: tok.Flag(), Value: raw, HasValue: true, Err: err}
	}
	return value, consumed, nil
}

// convert turns raw text into the Go value for the entry type. raw is
// never empty.
func convert(e *Entry, raw string, strict bool) (any, error) {
	switch e.Type {
	case String:
		return raw, nil
	case List:
		return strings.Split(raw, e.delimiter()), nil
	case Integer:
		if strict {
			return strconv.Atoi(raw)
		}
		return parseIntPrefix(raw)
	case Float:
		if strict {
			f, err := strconv.ParseFloat(raw, 64)
			if err == nil && math.IsNaN(f) {
				err = &strconv.NumError{Func: "ParseFloat", Num: raw, Err: strconv.ErrSyntax}
			}
			return f, err
		}
		return parseFloatPrefix(raw)
	case Boolean:
		return strconv.ParseBool(raw)
	}
	return nil, &SchemaError{Type: e.Type}
}

// parseIntPrefix parses the longest leading base-10 integer in s, after
// optional leading whitespace. "10.4" yields 10 and "7up" yields 7.
// Digits that overflow int are an error rather than a rounded value.
func parseIntPrefix(s string) (int, error) {
	t := strings.TrimLeftFunc(s, unicode.IsSpace)
	n := 0
	if n < len(t) && (t[n] == '+' || t[n] == '-') {
		n++
	}
	start := n
	for n < len(t) && isDigit(t[n]) {
		n++
	}
	if n == start {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.Atoi(t[:n])
}

// parseFloatPrefix parses the longest leading decimal floating point
// literal in s, after optional leading whitespace. "Infinity" with an
// optional sign is accepted. Literals beyond the float64 range become
// +Inf or -Inf.
func parseFloatPrefix(s string) (float64, error) {
	t := strings.TrimLeftFunc(s, unicode.IsSpace)
	prefix := floatPrefix(t)
	if prefix == "" {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

func floatPrefix(s string) string {
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	if strings.HasPrefix(s[n:], "Infinity") {
		return s[:n+len("Infinity")]
	}
	digits := 0
	for n < len(s) && isDigit(s[n]) {
		n++
		digits++
	}
	if n < len(s) && s[n] == '.' {
		j := n + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			n = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		j := n + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			n = k
		}
	}
	return s[:n]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
