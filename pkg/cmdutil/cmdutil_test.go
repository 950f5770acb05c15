// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "y\n", want: true},
		{in: "YES\n", want: true},
		{in: "  y  \n", want: true},
		{in: "y", want: true},
		{in: "n\n"},
		{in: "\n"},
		{in: ""},
		{in: "yep\n"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.in), &out, "overwrite?")
			if err != nil {
				t.Fatalf("Confirm error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if out.String() != "overwrite? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}
