// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argschema parses command lines against a schema file and prints
// the result, so shell scripts get the same flag handling as Go programs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argschema/pkg/tui"
)

const schemaEnvVar = "ARGSCHEMA_FILE"

var exitFn = os.Exit

type globalFlagsParsed struct{}

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	outColor tui.Colorizer
	errColor tui.Colorizer

	getwd  func() (string, error)
	getenv func(string) string

	// passthrough holds everything after the first "--". It is kept away
	// from the subcommand router, which would otherwise act on --help.
	passthrough []string
}

func newCLI() *cli {
	return &cli{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		outColor: tui.NewColorizer(int(os.Stdout.Fd())),
		errColor: tui.NewColorizer(int(os.Stderr.Fd())),
		getwd:    os.Getwd,
		getenv:   os.Getenv,
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("argschema: ")
	exitFn(newCLI().run(context.Background(), os.Args[1:]))
}

func (c *cli) run(ctx context.Context, args []string) int {
	args, c.passthrough = splitPassthrough(args)
	handlers := map[string]yargs.SubcommandHandler{
		"parse":   c.handleParse,
		"usage":   c.handleUsage,
		"check":   c.handleCheck,
		"init":    c.handleInit,
		"version": c.handleVersion,
	}
	if err := yargs.RunSubcommandsWithGroups(ctx, args, buildHelpConfig(), globalFlagsParsed{}, handlers, nil); err != nil {
		c.printCLIError(err)
		return exitCode(err)
	}
	return 0
}

// splitPassthrough splits args at the first "--". rest is non-nil when a
// terminator was present, even if nothing follows it.
func splitPassthrough(args []string) (cmd, rest []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], append([]string{}, args[i+1:]...)
		}
	}
	return args, nil
}

// stripCommand drops the subcommand name the router leaves in args.
func stripCommand(args []string, name string) []string {
	if len(args) > 0 && args[0] == name {
		return args[1:]
	}
	return args
}

// exitError carries a process exit status along with the error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func (c *cli) printCLIError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(c.stderr, "%s %v\n", c.errColor.Red("error:"), err)
}

func toolVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return "dev"
	}
	return bi.Main.Version
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "argschema",
			Description: "Parse command lines against a declarative flag schema.",
			Examples: []string{
				"argschema parse -- --verbose -j 4 input.txt",
				"argschema parse --schema cli.yaml --format env -- \"$@\"",
				"argschema check *.toml",
				"argschema init --format yaml",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"parse": {
				Name:        "parse",
				Description: "Parse ARGS against the schema and print the values",
				Usage:       "[--schema FILE] [--format json|yaml|toml|env|dump] [--env-file FILE] -- ARGS...",
				Examples: []string{
					"argschema parse -- --target dist -f",
					"eval \"$(argschema parse --format env --env-prefix OPT_ -- \"$@\")\"",
				},
			},
			"usage": {
				Name:        "usage",
				Description: "Print the help text described by the schema",
				Usage:       "[--schema FILE]",
			},
			"check": {
				Name:        "check",
				Description: "Validate schema files",
				Usage:       "[FILE...]",
			},
			"init": {
				Name:        "init",
				Description: "Write a starter schema file",
				Usage:       "[--format toml|yaml|json] [--name NAME] [--force] [PATH]",
			},
			"version": {
				Name:        "version",
				Description: "Print the argschema version",
			},
		},
	}
}
