// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/aclements/go-colormaps/colormap"
	"github.com/aclements/go-colormaps/colormap/gonumcmap"
	"golang.org/x/image/draw"
)

var cmdPNGFlags = flag.NewFlagSet(os.Args[0]+" png", flag.ExitOnError)

var pngOpts struct {
	out           string
	width, height int
	n             int
}

func init() {
	f := cmdPNGFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s png [flags] <name>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&pngOpts.out, "o", "", "write output to `file` (default: stdout)")
	f.IntVar(&pngOpts.width, "w", 512, "image `width`")
	f.IntVar(&pngOpts.height, "h", 32, "image `height`")
	f.IntVar(&pngOpts.n, "n", 0, "render `N` samples (default: one per color)")
	registerSubcommand("png", "[flags] <name> - render a palette swatch as PNG", cmdPNG, f)
}

func cmdPNG() {
	p := getPalette(cmdPNGFlags)
	if pngOpts.width < 1 || pngOpts.height < 1 {
		log.Fatalf("bad image size %dx%d", pngOpts.width, pngOpts.height)
	}

	dst := swatchImage(p, pngOpts.n, pngOpts.width, pngOpts.height)
	f := createOutput(pngOpts.out)
	if err := png.Encode(f, dst); err != nil {
		log.Fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// swatchImage renders n samples of p as a width x height image. If
// n < 1, it renders one sample per color.
func swatchImage(p *colormap.Palette, n, width, height int) *image.RGBA {
	if n < 1 {
		n = p.Len()
	}
	colors := gonumcmap.New(p).Palette(n).Colors()

	// Draw one pixel per sample and scale it up.
	src := image.NewRGBA(image.Rect(0, 0, n, 1))
	for x, c := range colors {
		src.Set(x, 0, c)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
