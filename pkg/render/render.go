// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes parsed argument values in machine readable forms.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/yeetrun/argschema/pkg/argparse"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	Env  Format = "env"
	Dump Format = "dump"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{JSON, YAML, TOML, Env, Dump}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown output format %q (want %s)", s, strings.Join(names, ", "))
}

// Options tune the output.
type Options struct {
	// EnvPrefix is prepended to variable names in Env output.
	EnvPrefix string
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Write encodes values to w.
func Write(w io.Writer, format Format, values argparse.Values, opts Options) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(values)); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(map[string]any(values))
	case Env:
		s, err := godotenv.Marshal(EnvVars(values, opts.EnvPrefix))
		if err != nil {
			return err
		}
		if s != "" {
			s += "\n"
		}
		_, err = io.WriteString(w, s)
		return err
	case Dump:
		_, err := io.WriteString(w, dumper.Sdump(map[string]any(values)))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// String is like Write but returns the encoding.
func String(format Format, values argparse.Values, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, values, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EnvVars flattens values into environment variables: keys are upper
// cased with "-" replaced by "_", and lists are joined with ",".
func EnvVars(values argparse.Values, prefix string) map[string]string {
	vars := make(map[string]string, len(values))
	for k, v := range values {
		vars[envName(prefix, k)] = envValue(v)
	}
	return vars
}

func envName(prefix, key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	return prefix + name
}

func envValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []string:
		return strings.Join(x, ",")
	}
	return fmt.Sprint(v)
}
