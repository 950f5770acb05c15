// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"io"
	"strings"
)

// helpColumn is the width the flag column is padded to.
const helpColumn = 20

// Help returns the usage text:
//
//	usage: NAME [--help] [--version] [--target=glob] ...files
//
//	DESCRIPTION
//
//		-h/--help            Show this help information.
//		-t/--target=glob     Target path.
func (p *Parser) Help() string {
	var sb strings.Builder

	sb.WriteString("usage: ")
	sb.WriteString(p.name)
	for _, e := range p.idx.ordered {
		sb.WriteByte(' ')
		sb.WriteString(usageArg(e))
	}
	if p.leftover != "" {
		sb.WriteString(" ...")
		sb.WriteString(p.leftover)
	}
	sb.WriteByte('\n')

	if p.description != "" {
		sb.WriteByte('\n')
		sb.WriteString(p.description)
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	for _, e := range p.idx.ordered {
		fmt.Fprintf(&sb, "\t%-*s %s\n", helpColumn, describeFlags(e), e.Description)
	}
	return sb.String()
}

// WriteHelp writes Help to w.
func (p *Parser) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, p.Help())
	return err
}

// VersionText returns "NAME version VERSION\n".
func (p *Parser) VersionText() string {
	return fmt.Sprintf("%s version %s\n", p.name, p.version)
}

// usageArg renders "[--long=TYPE]", preferring the long form.
func usageArg(e *Entry) string {
	if e.Type == Boolean {
		return "[" + displayFlag(e) + "]"
	}
	return "[" + displayFlag(e) + "=" + e.DisplayType() + "]"
}

// describeFlags renders "-s/--long=TYPE".
func describeFlags(e *Entry) string {
	var names []string
	if e.Short != "" {
		names = append(names, "-"+e.Short)
	}
	if e.Long != "" {
		names = append(names, "--"+e.Long)
	}
	s := strings.Join(names, "/")
	if e.Type != Boolean {
		s += "=" + e.DisplayType()
	}
	return s
}
