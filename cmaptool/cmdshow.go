// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aclements/go-colormaps/colormap"
	"golang.org/x/crypto/ssh/terminal"
)

var cmdShowFlags = flag.NewFlagSet(os.Args[0]+" show", flag.ExitOnError)

var show struct {
	swatch string
}

func init() {
	f := cmdShowFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s show [flags] <name>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&show.swatch, "swatch", "auto", "print color swatches: \"auto\", \"always\", or \"never\"")
	registerSubcommand("show", "[flags] <name> - print a palette's colors", cmdShow, f)
}

func cmdShow() {
	var swatch bool
	switch show.swatch {
	case "auto":
		swatch = isTerminal(os.Stdout)
	case "always":
		swatch = true
	case "never":
	default:
		cmdShowFlags.Usage()
		os.Exit(2)
	}

	p := getPalette(cmdShowFlags)
	for i := 0; i < p.Len(); i++ {
		fmt.Println(formatColor(p.At(i), swatch))
	}
}

func isTerminal(f *os.File) bool {
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return terminal.IsTerminal(int(f.Fd()))
}

// formatColor returns c in hex, optionally preceded by a 24-bit color
// swatch.
func formatColor(c colormap.RGBA, swatch bool) string {
	if !swatch {
		return hexColor(c)
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m %s", r>>8, g>>8, b>>8, hexColor(c))
}
