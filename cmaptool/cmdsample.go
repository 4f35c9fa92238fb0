// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var cmdSampleFlags = flag.NewFlagSet(os.Args[0]+" sample", flag.ExitOnError)

var sample struct {
	n          int
	vmin, vmax float64
}

func init() {
	f := cmdSampleFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sample [flags] <name>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.IntVar(&sample.n, "n", 256, "print `N` samples")
	f.Float64Var(&sample.vmin, "vmin", 0, "first sample `value`")
	f.Float64Var(&sample.vmax, "vmax", 1, "last sample `value`")
	registerSubcommand("sample", "[flags] <name> - print evenly spaced samples", cmdSample, f)
}

func cmdSample() {
	if cmdSampleFlags.NArg() != 1 {
		cmdSampleFlags.Usage()
		os.Exit(2)
	}
	colors, err := loadRegistry().Sample(cmdSampleFlags.Arg(0), sample.n, sample.vmin, sample.vmax)
	if err != nil {
		log.Fatal(err)
	}
	for _, c := range colors {
		fmt.Println(hexColor(c))
	}
}
