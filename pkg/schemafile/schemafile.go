// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile reads and writes argparse schemas stored as TOML,
// YAML or JSON files.
package schemafile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argschema/pkg/argparse"
	"gopkg.in/yaml.v3"
)

// Format is a schema file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// baseName is the file name Find looks for, without extension.
const baseName = "argschema"

// searchOrder lists the extensions Find tries in each directory.
var searchOrder = []string{".toml", ".yaml", ".yml", ".json"}

// ParseFormat returns the Format named s ("yml" is accepted for YAML).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("unknown schema format %q (want toml, yaml or json)", s)
}

// FormatOf returns the Format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot determine schema format of %s: no extension", path)
	}
	return ParseFormat(ext)
}

// DefaultFileName returns the file name Find looks for in the given format.
func DefaultFileName(f Format) string {
	return baseName + "." + string(f)
}

// Load reads the schema file at path.
func Load(path string) (*argparse.Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(b), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a schema in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*argparse.Config, error) {
	var cfg argparse.Config
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown schema format %q", format)
	}
	return &cfg, nil
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, format Format, cfg *argparse.Config) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(cfg)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}
	return fmt.Errorf("unknown schema format %q", format)
}

// Find looks for argschema.{toml,yaml,yml,json} in startDir and its
// parents and returns the first match. It returns an error matching
// os.ErrNotExist if there is none.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, ext := range searchOrder {
			path := filepath.Join(dir, baseName+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no %s schema file found from %s: %w", baseName, startDir, os.ErrNotExist)
}

// Starter returns a small example schema used by "argschema init".
func Starter(name string) *argparse.Config {
	return &argparse.Config{
		Name:        name,
		Version:     "0.1.0",
		Description: "Describe what " + name + " does.",
		Leftover:    "files",
		Schema: []argparse.Entry{
			{Long: "verbose", Short: "v", Type: argparse.Boolean, Description: "Print more output."},
			{Long: "output", Short: "o", Type: argparse.String, TypeName: "path", Description: "Where to write results.", Default: "-"},
			{Long: "jobs", Short: "j", Type: argparse.Integer, Description: "Number of parallel jobs.", Default: 1, Env: "JOBS"},
			{Long: "tags", Type: argparse.List, TypeName: "a,b,c", Description: "Tags to apply, separated by a comma."},
		},
	}
}
