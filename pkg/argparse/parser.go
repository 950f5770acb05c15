// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
)

const (
	defaultName    = "command"
	defaultVersion = "no version"
)

// Config describes a program's command line.
type Config struct {
	// Name is the program name used in help and version output.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	// Version is printed by --version.
	Version     string  `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Schema      []Entry `json:"schema" yaml:"schema" toml:"schema"`
	// Leftover names the positional arguments in help output. When empty,
	// positional arguments are rejected.
	Leftover string `json:"leftover,omitempty" yaml:"leftover,omitempty" toml:"leftover,omitempty"`

	// StrictNumbers requires integer and float values to be entirely
	// numeric. By default the longest numeric prefix is used, so "10.4"
	// is accepted as the integer 10.
	StrictNumbers bool `json:"strictNumbers,omitempty" yaml:"strictNumbers,omitempty" toml:"strict_numbers,omitempty"`

	// Output receives help, version and diagnostic help text. Defaults to
	// os.Stdout.
	Output io.Writer `json:"-" yaml:"-" toml:"-"`
	// Exit is called by ParseOrExit after help or version output.
	// Defaults to os.Exit.
	Exit func(code int) `json:"-" yaml:"-" toml:"-"`
	// LookupEnv, if set, supplies values for entries with Env set.
	LookupEnv func(key string) (string, bool) `json:"-" yaml:"-" toml:"-"`
	// Logf, if set, receives debug logging.
	Logf func(format string, args ...any) `json:"-" yaml:"-" toml:"-"`
}

// Exit tells the caller how a parse ended.
type Exit int

const (
	// ExitNone means parsing finished normally.
	ExitNone Exit = iota
	// ExitHelp means --help was seen and help text was written.
	ExitHelp
	// ExitVersion means --version was seen and version text was written.
	ExitVersion
)

func (e Exit) String() string {
	switch e {
	case ExitNone:
		return "none"
	case ExitHelp:
		return "help"
	case ExitVersion:
		return "version"
	}
	return fmt.Sprintf("Exit(%d)", int(e))
}

// Result is the outcome of a successful parse.
type Result struct {
	Values Values
	// Exit is ExitHelp or ExitVersion when a built-in flag stopped the
	// parse. The program should then exit with status 0.
	Exit Exit
}

// Parser parses argument vectors against a fixed schema. A Parser is safe
// for concurrent use as long as Config.Output is.
type Parser struct {
	name        string
	version     string
	description string
	leftover    string
	strict      bool

	out       io.Writer
	exit      func(int)
	lookupEnv func(string) (string, bool)
	logf      func(string, ...any)

	idx *index
}

// New builds a Parser. The help and version entries are added ahead of
// cfg.Schema. It returns a *SchemaError if two entries share a name, if an
// entry has no name, or if a default cannot be represented in the entry
// type. Unrecognized entry types are reported when the entry is used; see
// Validate to check them up front.
func New(cfg Config) (*Parser, error) {
	idx, err := buildIndex(cfg.Schema)
	if err != nil {
		return nil, err
	}
	for _, e := range idx.ordered {
		if err := normalizeDefault(e); err != nil {
			return nil, err
		}
	}
	p := &Parser{
		name:        cfg.Name,
		version:     cfg.Version,
		description: cfg.Description,
		leftover:    cfg.Leftover,
		strict:      cfg.StrictNumbers,
		out:         cfg.Output,
		exit:        cfg.Exit,
		lookupEnv:   cfg.LookupEnv,
		logf:        cfg.Logf,
		idx:         idx,
	}
	if p.name == "" {
		p.name = defaultName
	}
	if p.version == "" {
		p.version = defaultVersion
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.exit == nil {
		p.exit = os.Exit
	}
	if p.logf == nil {
		p.logf = func(string, ...any) {}
	}
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(cfg Config) *Parser {
	p, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports every entry with an unrecognized type, which New
// accepts and Parse only rejects once the entry is used.
func (p *Parser) Validate() error {
	var errs []error
	for _, e := range p.idx.ordered {
		if !e.Type.Valid() {
			errs = append(errs, fmt.Errorf("%s: %w", displayFlag(e), &SchemaError{Type: e.Type}))
		}
	}
	return errors.Join(errs...)
}

// Entries returns the effective schema, built-ins first. The returned
// entries must not be modified.
func (p *Parser) Entries() []*Entry {
	return slices.Clone(p.idx.ordered)
}

// Lookup returns the entry declaring the long or short name.
func (p *Parser) Lookup(name string) (*Entry, bool) {
	return p.idx.lookup(name)
}

// Parse parses args, which should not include the program name.
//
// On failure the help text is written to the configured output and the
// *ArgumentError or *SchemaError is returned unchanged. A failure to write
// that help is dropped in favor of the parse error. If writing the output
// for --help or --version fails, the write error is returned instead.
func (p *Parser) Parse(args []string) (*Result, error) {
	res, err := p.parse(args)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidSchema) {
			p.WriteHelp(p.out)
		}
		return nil, err
	}
	return res, nil
}

// ParseOrExit is like Parse but exits the process with status 0 after
// --help or --version, as command line programs expect.
func (p *Parser) ParseOrExit(args []string) (Values, error) {
	res, err := p.Parse(args)
	if err != nil {
		return nil, err
	}
	if res.Exit != ExitNone {
		p.exit(0)
	}
	return res.Values, nil
}

func (p *Parser) parse(args []string) (*Result, error) {
	values := p.defaults()
	if err := p.applyEnv(values); err != nil {
		return nil, err
	}

	for i := 0; i < len(args); i++ {
		tok := Classify(args[i])
		if tok.IsTerminator() {
			for _, rest := range args[i+1:] {
				if err := p.addLeftover(values, rest); err != nil {
					return nil, err
				}
			}
			break
		}
		if !tok.IsFlag {
			if err := p.addLeftover(values, tok.Raw); err != nil {
				return nil, err
			}
			continue
		}

		e, ok := p.idx.lookup(tok.Name)
		if !ok {
			return nil, &ArgumentError{Flag: tok.Flag(), Value: tok.Value, HasValue: tok.HasValue}
		}
		value, consumed, err := coerce(e, tok, args, i, p.strict)
		if err != nil {
			return nil, err
		}

		switch {
		case e.isHelp():
			if err := p.WriteHelp(p.out); err != nil {
				return nil, fmt.Errorf("writing help: %w", err)
			}
			return &Result{Values: Values{helpLong: true}, Exit: ExitHelp}, nil
		case e.isVersion():
			if _, err := io.WriteString(p.out, p.VersionText()); err != nil {
				return nil, fmt.Errorf("writing version: %w", err)
			}
			return &Result{Values: Values{versionLong: true}, Exit: ExitVersion}, nil
		}

		p.logf("argparse: %s = %v", e.Key(), value)
		values[e.Key()] = value
		i += consumed
	}
	return &Result{Values: values}, nil
}

func (p *Parser) addLeftover(values Values, s string) error {
	if s == "" {
		return nil
	}
	if p.leftover == "" {
		return &ArgumentError{Value: s, HasValue: true}
	}
	values.appendLeftover(s)
	return nil
}

// defaults returns a fresh output seeded with declared defaults. List
// defaults are copied so callers may modify results freely.
func (p *Parser) defaults() Values {
	values := make(Values)
	for _, e := range p.idx.ordered {
		if e.Default == nil {
			continue
		}
		if l, ok := e.Default.([]string); ok {
			values[e.Key()] = slices.Clone(l)
			continue
		}
		values[e.Key()] = e.Default
	}
	return values
}

func (p *Parser) applyEnv(values Values) error {
	if p.lookupEnv == nil {
		return nil
	}
	for _, e := range p.idx.ordered {
		if e.Env == "" {
			continue
		}
		raw, ok := p.lookupEnv(e.Env)
		if !ok || raw == "" {
			continue
		}
		if !e.Type.Valid() {
			return &SchemaError{Type: e.Type}
		}
		v, err := convert(e, raw, p.strict)
		if err != nil {
			return &ArgumentError{Entry: e, Flag: "$" + e.Env, Value: raw, HasValue: true, Err: err}
		}
		p.logf("argparse: %s = %v (from $%s)", e.Key(), v, e.Env)
		values[e.Key()] = v
	}
	return nil
}

// normalizeDefault converts decoded defaults (float64 from JSON, int64 from
// TOML, []any from any decoder) to the Go type produced by parsing.
func normalizeDefault(e *Entry) error {
	if e.Default == nil || !e.Type.Valid() {
		return nil
	}
	bad := func() error {
		return &SchemaError{Msg: fmt.Sprintf("default %v (%T) for %s is not %s", e.Default, e.Default, displayFlag(e), withArticle(string(e.Type)))}
	}
	switch e.Type {
	case Boolean:
		if _, ok := e.Default.(bool); !ok {
			return bad()
		}
	case String:
		if _, ok := e.Default.(string); !ok {
			return bad()
		}
	case Integer:
		switch d := e.Default.(type) {
		case int:
		case int64:
			e.Default = int(d)
		case float64:
			if d != math.Trunc(d) {
				return bad()
			}
			e.Default = int(d)
		default:
			return bad()
		}
	case Float:
		switch d := e.Default.(type) {
		case float64:
		case int:
			e.Default = float64(d)
		case int64:
			e.Default = float64(d)
		default:
			return bad()
		}
	case List:
		switch d := e.Default.(type) {
		case []string:
		case string:
			e.Default = strings.Split(d, e.delimiter())
		case []any:
			l := make([]string, 0, len(d))
			for _, x := range d {
				s, ok := x.(string)
				if !ok {
					return bad()
				}
				l = append(l, s)
			}
			e.Default = l
		default:
			return bad()
		}
	}
	return nil
}
