// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cfi-layout prints the memory layout of the Fortran array
// descriptor as seen from Go, and the type codes of the interoperable Go
// types.
//
// Examples:
//
//	$> cfi-layout --rank=2
//	$> cfi-layout --types --json
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"github.com/ivan-pi/Fcpp/cfi"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

const usage = `Fortran Array Descriptor Layout.
Usage:
  cfi-layout -h | --help
  cfi-layout [--rank=N] [--json] [--types] [-v]
Options:
  -h --help     Show this screen.
  --rank=N      Number of dimension records to list [default: 1].
  --json        Format output as JSON instead of a table.
  --types       List the interoperable type codes instead of the members.
  -v            Log to stderr.`

type config struct {
	Help    bool   `docopt:"--help"`
	Rank    string `docopt:"--rank"`
	JSON    bool   `docopt:"--json"`
	Types   bool   `docopt:"--types"`
	Verbose bool   `docopt:"-v"`
}

type layout struct {
	Version int         `json:"version"`
	MaxRank int         `json:"max_rank"`
	Rank    int         `json:"rank"`
	Size    uintptr     `json:"size"`
	Fields  []cfi.Field `json:"fields"`
}

func main() {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}
	if err := run(os.Stdout, parser, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cfi-layout:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, parser *docopt.Parser, argv []string) error {
	opts, err := parser.ParseArgs(usage, argv, "")
	if err != nil {
		return err
	}
	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		return xerrors.Errorf("parsing options: %w", err)
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	if cfg.Types {
		logger.Debug("listing type codes")
		return printTypes(w, cfg.JSON, cfi.Types())
	}

	rank, err := strconv.Atoi(cfg.Rank)
	if err != nil {
		return xerrors.Errorf("--rank must be an integer, got %q", cfg.Rank)
	}
	// Establish a descriptor of that rank so that an invalid rank is
	// reported the same way a foreign caller would see it.
	var s cfi.Storage[[cfi.MaxRank]cfi.Dim]
	if err := cfi.Establish(s.Get(), nil, cfi.AttributeOther, cfi.TypeDouble, 0, cfi.Rank(rank), nil); err != nil {
		return err
	}

	l := layout{
		Version: int(s.Get().Version),
		MaxRank: cfi.MaxRank,
		Rank:    rank,
		Size:    cfi.SizeOf(rank),
		Fields:  cfi.Layout(rank),
	}
	logger.Debug("descriptor layout", zap.Int("rank", l.Rank), zap.Uintptr("size", l.Size), zap.Int("fields", len(l.Fields)))
	return printLayout(w, cfg.JSON, l)
}

func printLayout(w io.Writer, asJSON bool, l layout) error {
	if asJSON {
		return writeJSON(w, l)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Member", "C Type", "Offset", "Size")
	for _, f := range l.Fields {
		table.Append(f.Name, f.CType, strconv.Itoa(int(f.Offset)), strconv.Itoa(int(f.Size)))
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "version: %d\nrank: %d\nsize: %d bytes\n", l.Version, l.Rank, l.Size)
	return err
}

func printTypes(w io.Writer, asJSON bool, types []cfi.TypeInfo) error {
	if asJSON {
		return writeJSON(w, types)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Go Type", "C Type", "Code", "Fortran", "Elem Len")
	for _, ti := range types {
		table.Append(ti.GoType, ti.CType, strconv.Itoa(int(ti.Code)), ti.Code.String(), strconv.Itoa(int(ti.ElemLen)))
	}
	return table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
