// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aclements/go-colormaps/colormap"
)

var cmdMapFlags = flag.NewFlagSet(os.Args[0]+" map", flag.ExitOnError)

var mapping struct {
	vmin, vmax optFloat
	noAuto     bool
	values     string
	hex        bool
}

func init() {
	f := cmdMapFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s map [flags] <name> [values...]\n\nIf no values are given, they are read from stdin.\n\n", os.Args[0])
		f.PrintDefaults()
	}
	f.Var(&mapping.vmin, "vmin", "map `value` to the first color (default: data minimum)")
	f.Var(&mapping.vmax, "vmax", "map `value` to the last color (default: data maximum)")
	f.BoolVar(&mapping.noAuto, "noauto", false, "use 0 and 1 for unset bounds instead of the data range")
	f.StringVar(&mapping.values, "values", "", "shell-quoted `list` of values to map")
	f.BoolVar(&mapping.hex, "hex", false, "print colors as #rrggbb")
	registerSubcommand("map", "[flags] <name> [values...] - map values to colors", cmdMap, f)
}

func cmdMap() {
	if cmdMapFlags.NArg() < 1 {
		cmdMapFlags.Usage()
		os.Exit(2)
	}
	name := cmdMapFlags.Arg(0)

	var values []float64
	if mapping.values != "" {
		vs, err := parseValues(mapping.values)
		if err != nil {
			log.Fatal(err)
		}
		values = append(values, vs...)
	}
	for _, arg := range cmdMapFlags.Args()[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalf("bad value %q", arg)
		}
		values = append(values, v)
	}
	if mapping.values == "" && cmdMapFlags.NArg() == 1 {
		vs, err := readValues(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		values = vs
	}

	colors, err := loadRegistry().MapValues(values, name, colormap.MapOptions{
		VMin:        mapping.vmin.v,
		VMax:        mapping.vmax.v,
		NoAutorange: mapping.noAuto,
	})
	if err != nil {
		log.Fatal(err)
	}
	for i, c := range colors {
		if mapping.hex {
			fmt.Printf("%g %s\n", values[i], hexColor(c))
		} else {
			fmt.Printf("%g %.4f %.4f %.4f %.4f\n", values[i], c.R, c.G, c.B, c.A)
		}
	}
}
