// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse parses command lines against a declarative schema.
//
// A schema is a list of entries, each naming a flag by its long and/or
// short form and declaring the type of its value. Parsing produces a
// Values map keyed by each entry's long name:
//
//	p, err := argparse.New(argparse.Config{
//	    Name:     "download",
//	    Version:  "v1.3.4",
//	    Leftover: "files",
//	    Schema: []argparse.Entry{
//	        {Long: "fast", Short: "f", Type: argparse.Boolean, Description: "Go fast."},
//	        {Long: "servers", Type: argparse.List, Description: "Servers to use."},
//	        {Long: "retries", Short: "r", Type: argparse.Integer, Default: 3},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	values, err := p.ParseOrExit(os.Args[1:])
//
// # Flag Syntax
//
//   - Boolean flags: -f, --fast
//   - Flags with values: -r=5, --retries=5, -r 5, --retries 5
//   - List values are split on "," unless the entry sets Delimiter
//   - Tokens that are not flags are collected under LeftoverKey when
//     Config.Leftover is set, and rejected otherwise
//   - "--" ends flag processing; the remaining tokens are positional
//
// A flag that needs a value takes the next token unless that token is
// itself a flag. Negative numbers such as "-5" are values, not flags.
//
// Short flags cannot be clustered: "-abc" names a single flag "abc".
//
// # Built-in Flags
//
// Every parser understands -h/--help and -V/--version. When either is seen,
// Parse writes the help or version text to Config.Output and returns a
// Result whose Exit field is ExitHelp or ExitVersion, without reading the
// remaining tokens. ParseOrExit then calls Config.Exit(0).
//
// # Numbers
//
// Integer and float values are parsed from their longest numeric prefix,
// so "10.4" is the integer 10 and "2.5x" is the float 2.5. Set
// Config.StrictNumbers to require the whole value to be numeric.
//
// # Errors
//
// Bad user input yields an *ArgumentError; a broken schema yields a
// *SchemaError. They match ErrInvalidArgument and ErrInvalidSchema with
// errors.Is. Parse writes the help text before returning either.
package argparse
