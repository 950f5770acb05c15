// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "argschema.toml")

	if Exists(path) {
		t.Fatal("Exists before write = true")
	}
	if err := WriteAtomic(path, []byte("one"), 0o644); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	if err := WriteAtomic(path, []byte("two"), 0o600); err != nil {
		t.Fatalf("WriteAtomic overwrite: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("content = %q, want %q", got, "two")
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("perm = %v, want %v", fi.Mode().Perm(), os.FileMode(0o600))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1 (temp file left behind?)", len(entries))
	}
}

func TestWriteAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x")
	if err := WriteAtomic(path, []byte("x"), 0o644); err == nil {
		t.Error("WriteAtomic into missing dir error = nil")
	}
}

func TestIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	same, err := Identical(path, []byte("a"))
	if err != nil || same {
		t.Fatalf("Identical(missing) = %v, %v", same, err)
	}
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if same, _ := Identical(path, []byte("a")); !same {
		t.Error("Identical(same) = false")
	}
	if same, _ := Identical(path, []byte("b")); same {
		t.Error("Identical(different) = true")
	}
}
