// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-colormaps/colormap/ggcmap"
)

var cmdSVGFlags = flag.NewFlagSet(os.Args[0]+" svg", flag.ExitOnError)

var svg struct {
	out           string
	width, height int
	n             int
}

func init() {
	f := cmdSVGFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s svg [flags] <name>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&svg.out, "o", "", "write output to `file` (default: stdout)")
	f.IntVar(&svg.width, "w", 500, "image `width`")
	f.IntVar(&svg.height, "h", 120, "image `height`")
	f.IntVar(&svg.n, "n", 0, "plot `N` samples (default: one per color)")
	registerSubcommand("svg", "[flags] <name> - plot a palette swatch as SVG", cmdSVG, f)
}

func cmdSVG() {
	p := getPalette(cmdSVGFlags)
	f := createOutput(svg.out)
	if err := ggcmap.Swatch(p, svg.n).WriteSVG(f, svg.width, svg.height); err != nil {
		log.Fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
