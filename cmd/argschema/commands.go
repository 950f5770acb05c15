// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argschema/pkg/argparse"
	"github.com/yeetrun/argschema/pkg/cmdutil"
	"github.com/yeetrun/argschema/pkg/env"
	"github.com/yeetrun/argschema/pkg/fileutil"
	"github.com/yeetrun/argschema/pkg/render"
	"github.com/yeetrun/argschema/pkg/schemafile"
	"golang.org/x/sync/errgroup"
)

const (
	exitArgument = 2
	exitSchema   = 3
)

type parseFlagsParsed struct {
	Schema    string   `flag:"schema" short:"s" help:"Schema file (default $ARGSCHEMA_FILE, then argschema.* in this or a parent directory)"`
	Format    string   `flag:"format" short:"f" default:"json" help:"Output format: json, yaml, toml, env or dump"`
	EnvFile   []string `flag:"env-file" help:"Read .env files consulted for entries with an env name"`
	EnvPrefix string   `flag:"env-prefix" help:"Prefix for variable names in env output"`
	Verbose   bool     `flag:"verbose" short:"v" help:"Log every value as it is parsed"`
}

func (c *cli) handleParse(ctx context.Context, args []string) error {
	result, err := yargs.ParseFlags[parseFlagsParsed](stripCommand(args, "parse"))
	if err != nil {
		return err
	}
	flags := result.Flags
	if len(result.Args) > 0 {
		return fmt.Errorf("unexpected arguments %q; program arguments go after --", result.Args)
	}
	format, err := render.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	cfg, err := c.loadSchema(flags.Schema)
	if err != nil {
		return withCode(exitSchema, err)
	}
	lookup, err := env.Load(flags.EnvFile...)
	if err != nil {
		return err
	}
	cfg.LookupEnv = lookup
	cfg.Output = c.stdout
	if flags.Verbose {
		cfg.Logf = log.Printf
	}
	p, err := argparse.New(*cfg)
	if err != nil {
		return withCode(exitSchema, err)
	}
	res, err := p.Parse(c.passthrough)
	if err != nil {
		if errors.Is(err, argparse.ErrInvalidSchema) {
			return withCode(exitSchema, err)
		}
		return withCode(exitArgument, err)
	}
	if res.Exit != argparse.ExitNone {
		return nil
	}
	return render.Write(c.stdout, format, res.Values, render.Options{EnvPrefix: flags.EnvPrefix})
}

type usageFlagsParsed struct {
	Schema string `flag:"schema" short:"s" help:"Schema file"`
}

func (c *cli) handleUsage(ctx context.Context, args []string) error {
	result, err := yargs.ParseFlags[usageFlagsParsed](stripCommand(args, "usage"))
	if err != nil {
		return err
	}
	cfg, err := c.loadSchema(result.Flags.Schema)
	if err != nil {
		return withCode(exitSchema, err)
	}
	p, err := argparse.New(*cfg)
	if err != nil {
		return withCode(exitSchema, err)
	}
	_, err = fmt.Fprint(c.stdout, p.Help())
	return err
}

type checkFlagsParsed struct{}

func (c *cli) handleCheck(ctx context.Context, args []string) error {
	result, err := yargs.ParseFlags[checkFlagsParsed](stripCommand(args, "check"))
	if err != nil {
		return err
	}
	files := result.Args
	if len(files) == 0 {
		path, err := c.schemaPath("")
		if err != nil {
			return err
		}
		files = []string{path}
	}

	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			errs[i] = checkSchema(path)
			return nil
		})
	}
	g.Wait()

	failed := 0
	for i, path := range files {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(c.stdout, "%s %s: %v\n", c.outColor.Red("FAIL"), path, errs[i])
			continue
		}
		fmt.Fprintf(c.stdout, "%s   %s\n", c.outColor.Green("ok"), path)
	}
	if failed > 0 {
		return withCode(1, fmt.Errorf("%d of %d schema files failed", failed, len(files)))
	}
	return nil
}

func checkSchema(path string) error {
	cfg, err := schemafile.Load(path)
	if err != nil {
		return err
	}
	p, err := argparse.New(*cfg)
	if err != nil {
		return err
	}
	return p.Validate()
}

type initFlagsParsed struct {
	Format string `flag:"format" short:"f" help:"Schema format: toml, yaml or json (default from PATH, else toml)"`
	Name   string `flag:"name" help:"Program name (default: the directory name)"`
	Force  bool   `flag:"force" help:"Overwrite an existing file without asking"`
}

func (c *cli) handleInit(ctx context.Context, args []string) error {
	result, err := yargs.ParseFlags[initFlagsParsed](stripCommand(args, "init"))
	if err != nil {
		return err
	}
	flags := result.Flags
	if len(result.Args) > 1 {
		return fmt.Errorf("init takes at most one PATH, got %d", len(result.Args))
	}
	var path string
	if len(result.Args) == 1 {
		path = result.Args[0]
	}

	format := schemafile.TOML
	switch {
	case flags.Format != "":
		if format, err = schemafile.ParseFormat(flags.Format); err != nil {
			return err
		}
	case path != "":
		if format, err = schemafile.FormatOf(path); err != nil {
			return err
		}
	}
	if path == "" {
		wd, err := c.getwd()
		if err != nil {
			return err
		}
		path = filepath.Join(wd, schemafile.DefaultFileName(format))
	}
	name := flags.Name
	if name == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		name = filepath.Base(filepath.Dir(abs))
	}

	var buf bytes.Buffer
	if err := schemafile.Encode(&buf, format, schemafile.Starter(name)); err != nil {
		return err
	}
	if fileutil.Exists(path) {
		same, err := fileutil.Identical(path, buf.Bytes())
		if err != nil {
			return err
		}
		if same {
			fmt.Fprintln(c.stdout, c.outColor.Dim(path+" is up to date"))
			return nil
		}
		if !flags.Force {
			ok, err := cmdutil.Confirm(c.stdin, c.stdout, fmt.Sprintf("%s exists. Overwrite?", path))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("not overwriting %s", path)
			}
		}
	}
	if err := fileutil.WriteAtomic(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "%s %s\n", c.outColor.Green("wrote"), path)
	return nil
}

func (c *cli) handleVersion(ctx context.Context, args []string) error {
	_, err := fmt.Fprintf(c.stdout, "argschema %s\n", toolVersion())
	return err
}

// schemaPath resolves the schema file: the explicit flag, then
// $ARGSCHEMA_FILE, then a search upward from the working directory.
func (c *cli) schemaPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := c.getenv(schemaEnvVar); p != "" {
		return p, nil
	}
	wd, err := c.getwd()
	if err != nil {
		return "", err
	}
	path, err := schemafile.Find(wd)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w; pass --schema or set $%s", err, schemaEnvVar)
	}
	return path, err
}

func (c *cli) loadSchema(flag string) (*argparse.Config, error) {
	path, err := c.schemaPath(flag)
	if err != nil {
		return nil, err
	}
	return schemafile.Load(path)
}
