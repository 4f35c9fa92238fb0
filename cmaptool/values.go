// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-colormaps/colormap"
	"github.com/kballard/go-shellquote"
	"github.com/lucasb-eyer/go-colorful"
)

// optFloat is a float flag that records whether it was set.
type optFloat struct {
	v *float64
}

func (f *optFloat) String() string {
	if f.v == nil {
		return ""
	}
	return strconv.FormatFloat(*f.v, 'g', -1, 64)
}

func (f *optFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v = &v
	return nil
}

// parseValues parses a shell-quoted list of numbers. Values may be
// separated by spaces or commas.
func parseValues(s string) ([]float64, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, w := range words {
		for _, f := range strings.Split(w, ",") {
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("bad value %q", f)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// readValues reads whitespace-separated numbers from r.
func readValues(r io.Reader) ([]float64, error) {
	var out []float64
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", scanner.Text())
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// hexColor formats c as #rrggbb, ignoring alpha.
func hexColor(c colormap.RGBA) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}
