// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "fmt"

const (
	helpLong     = "help"
	helpShort    = "h"
	versionLong  = "version"
	versionShort = "V"

	defaultDelimiter = ","
)

// Entry declares one flag.
type Entry struct {
	Type Type `json:"type" yaml:"type" toml:"type"`
	// Long is the name used with "--", e.g. "target" for --target.
	Long string `json:"long,omitempty" yaml:"long,omitempty" toml:"long,omitempty"`
	// Short is the name used with "-", e.g. "t" for -t.
	Short string `json:"short,omitempty" yaml:"short,omitempty" toml:"short,omitempty"`
	// TypeName overrides Type in help output (e.g. "glob", "uuid").
	TypeName    string `json:"typeName,omitempty" yaml:"typeName,omitempty" toml:"type_name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	// Default is stored in the output before any token is read. A nil
	// Default means the key stays unset until the flag is seen.
	Default any `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	// Delimiter splits List values. Empty means ",".
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty" toml:"delimiter,omitempty"`
	// Env names an environment variable consulted when Config.LookupEnv is set.
	Env string `json:"env,omitempty" yaml:"env,omitempty" toml:"env,omitempty"`
	// BuiltIn marks the reserved help and version entries.
	BuiltIn bool `json:"-" yaml:"-" toml:"-"`
}

// Key returns the output key for the entry: the long name, or the short
// name for short-only entries.
func (e *Entry) Key() string {
	if e.Long != "" {
		return e.Long
	}
	return e.Short
}

// DisplayType returns the type label shown in help text.
func (e *Entry) DisplayType() string {
	if e.TypeName != "" {
		return e.TypeName
	}
	return string(e.Type)
}

func (e *Entry) delimiter() string {
	if e.Delimiter == "" {
		return defaultDelimiter
	}
	return e.Delimiter
}

func (e *Entry) isHelp() bool {
	return e.BuiltIn && e.Long == helpLong
}

func (e *Entry) isVersion() bool {
	return e.BuiltIn && e.Long == versionLong
}

func builtInEntries() []Entry {
	return []Entry{
		{
			Type:        Boolean,
			Long:        helpLong,
			Short:       helpShort,
			Description: "Show this help information.",
			BuiltIn:     true,
		},
		{
			Type:        Boolean,
			Long:        versionLong,
			Short:       versionShort,
			Description: "Show the program version.",
			BuiltIn:     true,
		},
	}
}

// index resolves both the long and the short name of every entry to the
// same *Entry. It is built once by New and never mutated afterwards.
type index struct {
	byName  map[string]*Entry
	ordered []*Entry
}

func buildIndex(schema []Entry) (*index, error) {
	all := append(builtInEntries(), schema...)
	idx := &index{
		byName:  make(map[string]*Entry, 2*len(all)),
		ordered: make([]*Entry, 0, len(all)),
	}
	for i := range all {
		e := &all[i]
		if e.Long == "" && e.Short == "" {
			return nil, &SchemaError{Msg: fmt.Sprintf("schema entry %d has neither a long nor a short name", i-2)}
		}
		for _, name := range []string{e.Long, e.Short} {
			if name == "" {
				continue
			}
			if prev, ok := idx.byName[name]; ok {
				return nil, &SchemaError{Msg: fmt.Sprintf("flag name %q is declared by both %s and %s", name, displayFlag(prev), displayFlag(e))}
			}
			idx.byName[name] = e
		}
		idx.ordered = append(idx.ordered, e)
	}
	return idx, nil
}

func (x *index) lookup(name string) (*Entry, bool) {
	e, ok := x.byName[name]
	return e, ok
}

// displayFlag renders the preferred dashed form of an entry name.
func displayFlag(e *Entry) string {
	if e.Long != "" {
		return "--" + e.Long
	}
	return "-" + e.Short
}
