// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cmaptool inspects XPM palettes and maps values to colors.
//
// Usage:
//
//	cmaptool [-d dir] [-v] <subcommand> [flags] ...
//
// By default cmaptool uses the palettes bundled with
// github.com/aclements/go-colormaps/colormaps. The -d flag, or the
// CMAPTOOL_DIR environment variable, selects a directory of *.xpm
// files instead. CMAPTOOL_PREFIX sets the default name prefix for
// the registered subcommand. Environment variables may also be set
// in a .env file in the current directory.
//
// Subcommands:
//
//	list [-l]                          list palette names
//	show <name>                        print a palette's colors
//	map [flags] <name> [values...]     map values to colors
//	sample [-n N] <name>               print evenly spaced samples
//	svg [-o file] <name>               plot a palette swatch as SVG
//	png [-o file] <name>               render a palette swatch as PNG
//	registered [-p prefix]             list go-gg and gonum plot names
//
// Palette names are case-insensitive, and a "_r" suffix selects the
// reversed palette.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-colormaps/colormap"
	"github.com/aclements/go-colormaps/colormaps"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	palDir  string
	verbose bool
)

func main() {
	log.SetPrefix("cmaptool: ")
	log.SetFlags(0)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}

	flag.StringVar(&palDir, "d", os.Getenv("CMAPTOOL_DIR"), "load palettes from `dir` (default: bundled palettes)")
	flag.BoolVar(&verbose, "v", false, "log palette loading")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	sc := lookupSubcommand(flag.Arg(0))
	if sc == nil {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sc.flags.Parse(flag.Args()[1:])
	sc.cmd()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <subcommand> [subcommand flags]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Subcommands:\n")
	for _, sc := range subcommands {
		fmt.Fprintf(os.Stderr, "  %s %s\n", sc.name, sc.desc)
	}
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	flag.PrintDefaults()
}

// loadRegistry loads the palette registry selected by -d. It exits on
// failure.
func loadRegistry() *colormap.Registry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var reg *colormap.Registry
	var err error
	if palDir == "" {
		reg, err = colormap.LoadFS(colormaps.FS, ".", colormap.WithLogger(logger))
	} else {
		reg, err = colormap.Load(palDir, colormap.WithLogger(logger))
	}
	if err != nil {
		log.Fatal(err)
	}
	return reg
}

// getPalette returns the palette named by the single positional
// argument of fs, or prints usage and exits.
func getPalette(fs *flag.FlagSet) *colormap.Palette {
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	p, err := loadRegistry().Get(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	return p
}

// createOutput opens path for writing, or returns stdout if path is
// "" or "-".
func createOutput(path string) *os.File {
	if path == "" || path == "-" {
		return os.Stdout
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}
