// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command download shows a program declaring its flags with argparse.
//
//	go run ./example/download --fast --servers=s1,s2 -m 1.5 a.zip b.zip
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/yeetrun/argschema/pkg/argparse"
)

var parser = argparse.MustNew(argparse.Config{
	Name:        "download-program",
	Version:     "1.0.0",
	Description: "Downloads files from a list of servers.",
	Leftover:    "files",
	Schema: []argparse.Entry{
		{Long: "fast", Short: "f", Type: argparse.Boolean, Description: "Skip checksum verification."},
		{Long: "token", Type: argparse.String, TypeName: "uuid", Description: "Access token.", Env: "DOWNLOAD_TOKEN"},
		{Long: "multiplier", Short: "m", Type: argparse.Float, Description: "Bandwidth multiplier.", Default: 1.0},
		{Long: "servers", Type: argparse.List, TypeName: "s1,s2,s3", Description: "Servers to try in order.", Default: []string{"mirror"}},
	},
	LookupEnv: os.LookupEnv,
})

func main() {
	log.SetFlags(0)
	values, err := parser.ParseOrExit(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	m, _ := values.Float("multiplier")
	fmt.Printf("servers:    %s\n", strings.Join(values.List("servers"), ", "))
	fmt.Printf("multiplier: %g\n", m)
	fmt.Printf("fast:       %v\n", values.Bool("fast"))
	if values.Has("token") {
		fmt.Println("token:      (set)")
	}
	for _, f := range values.Leftover() {
		fmt.Printf("download %s\n", f)
	}
}
