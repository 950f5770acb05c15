// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemafile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeetrun/argschema/pkg/argparse"
)

const tomlSchema = `
name = "download-program"
version = "v1.3.4"
description = "A program for downloading files very fastly."
leftover = "files"

[[schema]]
long = "fast"
short = "f"
type = "boolean"
description = "Makes the download go very fast."

[[schema]]
long = "retries"
short = "r"
type = "integer"
default = 3
env = "RETRIES"

[[schema]]
long = "servers"
type = "list"
type_name = "s1,s2,s3"
delimiter = ";"
default = ["a", "b"]
`

const yamlSchema = `
name: download-program
version: v1.3.4
leftover: files
schema:
  - long: fast
    short: f
    type: boolean
  - long: retries
    short: r
    type: integer
    default: 3
    env: RETRIES
  - long: servers
    type: list
    typeName: s1,s2,s3
    delimiter: ";"
    default: [a, b]
`

const jsonSchema = `{
  "name": "download-program",
  "version": "v1.3.4",
  "leftover": "files",
  "schema": [
    {"long": "fast", "short": "f", "type": "boolean"},
    {"long": "retries", "short": "r", "type": "integer", "default": 3, "env": "RETRIES"},
    {"long": "servers", "type": "list", "typeName": "s1,s2,s3", "delimiter": ";", "default": ["a", "b"]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"schema.toml": tomlSchema,
		"schema.yaml": yamlSchema,
		"schema.yml":  yamlSchema,
		"schema.json": jsonSchema,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, name, content))
			require.NoError(t, err)
			require.NotNil(t, cfg)

			assert.Equal(t, "download-program", cfg.Name)
			assert.Equal(t, "v1.3.4", cfg.Version)
			assert.Equal(t, "files", cfg.Leftover)
			require.Len(t, cfg.Schema, 3)
			assert.Equal(t, argparse.Boolean, cfg.Schema[0].Type)
			assert.Equal(t, "f", cfg.Schema[0].Short)
			assert.Equal(t, "RETRIES", cfg.Schema[1].Env)
			assert.Equal(t, "s1,s2,s3", cfg.Schema[2].TypeName)
			assert.Equal(t, ";", cfg.Schema[2].Delimiter)

			// Decoded defaults come back as decoder-specific types; the
			// parser normalizes them.
			p, err := argparse.New(*cfg)
			require.NoError(t, err)
			res, err := p.Parse([]string{"-f", "--servers", "x;y", "file.txt"})
			require.NoError(t, err)
			assert.Equal(t, argparse.Values{
				"fast":     true,
				"retries":  3,
				"servers":  []string{"x", "y"},
				"leftover": []string{"file.txt"},
			}, res.Values)
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"bad.toml": "name = \"x\"\nbogus = 1\n",
		"bad.yaml": "name: x\nbogus: 1\n",
		"bad.json": `{"name": "x", "bogus": 1}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, name, content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bogus")
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v", err)

	_, err = Load(writeFile(t, dir, "schema.ini", "x=1"))
	assert.ErrorContains(t, err, `unknown schema format "ini"`)

	_, err = Load(writeFile(t, dir, "schema", "x=1"))
	assert.ErrorContains(t, err, "no extension")
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{TOML, YAML, JSON} {
		t.Run(string(format), func(t *testing.T) {
			want := Starter("demo")

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, want))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.Description, got.Description)
			assert.Equal(t, want.Leftover, got.Leftover)
			require.Len(t, got.Schema, len(want.Schema))
			for i := range want.Schema {
				assert.Equal(t, want.Schema[i].Long, got.Schema[i].Long)
				assert.Equal(t, want.Schema[i].Short, got.Schema[i].Short)
				assert.Equal(t, want.Schema[i].Type, got.Schema[i].Type)
				assert.Equal(t, want.Schema[i].TypeName, got.Schema[i].TypeName)
			}

			p, err := argparse.New(*got)
			require.NoError(t, err)
			require.NoError(t, p.Validate())
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	_, err := Find(deep)
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v", err)

	yamlPath := writeFile(t, root, "a/argschema.yaml", yamlSchema)
	got, err := Find(deep)
	require.NoError(t, err)
	assert.Equal(t, yamlPath, got)

	// TOML wins within a directory, and nearer directories win overall.
	tomlPath := writeFile(t, root, "a/argschema.toml", tomlSchema)
	got, err = Find(deep)
	require.NoError(t, err)
	assert.Equal(t, tomlPath, got)

	nearPath := writeFile(t, root, "a/b/argschema.json", jsonSchema)
	got, err = Find(deep)
	require.NoError(t, err)
	assert.Equal(t, nearPath, got)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"toml": TOML, "YAML": YAML, "yml": YAML, "json": JSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.True(t, strings.HasSuffix(DefaultFileName(TOML), "argschema.toml"))
}
