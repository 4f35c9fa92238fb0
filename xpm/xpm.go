// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xpm reads color palettes stored as XPM images.
//
// Only the subset of XPM used by palette files is supported: a C-style
// array of quoted strings holding a header of four integers
//
//	"width height ncolors chars_per_pixel"
//
// followed by ncolors color table records and height pixel rows. The
// palette is the sequence of pixel colors in row-major order, with
// transparent ("None") pixels dropped. This is not a general XPM image
// decoder: hotspots, extensions, and color keys other than "c" are
// ignored.
package xpm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// ColorEntry is a color table value. It is either an RGB color or
// "no color", which marks transparent or background pixels. The zero
// ColorEntry is no color.
type ColorEntry struct {
	rgb RGB
	ok  bool
}

// NoColor returns the no-color entry.
func NoColor() ColorEntry { return ColorEntry{} }

// Color returns a ColorEntry holding c.
func Color(c RGB) ColorEntry { return ColorEntry{c, true} }

// RGB returns the entry's color and whether it has one.
func (e ColorEntry) RGB() (RGB, bool) { return e.rgb, e.ok }

func (e ColorEntry) String() string {
	if !e.ok {
		return "None"
	}
	return colorful.Color{R: e.rgb.R, G: e.rgb.G, B: e.rgb.B}.Hex()
}

// Header is the parsed first record of an XPM file.
type Header struct {
	Width, Height int
	NColors       int
	CharsPerPixel int
}

// Result is a decoded palette file.
type Result struct {
	Header Header

	// Colors is the palette, in row-major pixel order. It is
	// never empty.
	Colors []RGB

	// Duplicates lists color table symbols that were defined more
	// than once, in the order the redefinitions appeared. The
	// last definition of each symbol is the one used.
	Duplicates []string
}

// Parse parses an XPM palette from r and returns its colors.
func Parse(r io.Reader) ([]RGB, error) {
	res, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return res.Colors, nil
}

// ParseString is like Parse, but reads from s.
func ParseString(s string) ([]RGB, error) {
	return Parse(strings.NewReader(s))
}

// Decode parses an XPM palette from r. Any error in the input is
// reported as a *FormatError.
func Decode(r io.Reader) (*Result, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, formatErr(ErrNoData, "")
	}

	hdr, err := parseHeader(records[0])
	if err != nil {
		return nil, err
	}
	body := records[1:]
	if hdr.NColors > len(body) || hdr.Height > len(body)-hdr.NColors {
		return nil, formatErr(ErrTruncated, "header declares %d color and %d pixel records, found %d", hdr.NColors, hdr.Height, len(body))
	}

	res := &Result{Header: hdr}
	table := make(map[string]ColorEntry, hdr.NColors)
	for _, rec := range body[:hdr.NColors] {
		sym, entry, err := parseColorRecord(rec, hdr.CharsPerPixel)
		if err != nil {
			return nil, err
		}
		if _, ok := table[sym]; ok {
			res.Duplicates = append(res.Duplicates, sym)
		}
		table[sym] = entry
	}

	// Width*cpp may overflow, so compare in pixels.
	cpp := hdr.CharsPerPixel
	for i, row := range body[hdr.NColors : hdr.NColors+hdr.Height] {
		if len(row)%cpp != 0 || len(row)/cpp != hdr.Width {
			return nil, formatErr(ErrRowLength, "row %d: expected %d pixels of %d chars, got %d chars", i, hdr.Width, cpp, len(row))
		}
		for j := 0; j < len(row); j += cpp {
			// Unknown symbols are treated like "None".
			if c, ok := table[row[j:j+cpp]].RGB(); ok {
				res.Colors = append(res.Colors, c)
			}
		}
	}
	if len(res.Colors) == 0 {
		return nil, formatErr(ErrEmptyPalette, "")
	}
	return res, nil
}

// maxRecord bounds the length of a single input line.
const maxRecord = 256 << 20

// readRecords returns the contents of every quoted string line in r.
// Everything else (comments, the C declaration, braces) is skipped.
func readRecords(r io.Reader) ([]string, error) {
	var records []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxRecord)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, `"`) {
			continue
		}
		records = append(records, strings.Trim(line, `",;}`))
	}
	if err := scanner.Err(); err != nil {
		return nil, formatErr(ErrRead, "%v", err)
	}
	return records, nil
}

func parseHeader(rec string) (Header, error) {
	f := strings.Fields(rec)
	if len(f) != 4 {
		return Header{}, formatErr(ErrBadHeader, "want 4 integers, got %q", rec)
	}
	var v [4]int
	for i, s := range f {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Header{}, formatErr(ErrBadHeader, "%q", rec)
		}
		v[i] = n
	}
	if v[3] == 0 {
		return Header{}, formatErr(ErrBadHeader, "zero characters per pixel in %q", rec)
	}
	return Header{Width: v[0], Height: v[1], NColors: v[2], CharsPerPixel: v[3]}, nil
}

// parseColorRecord splits a color table record into its symbol and
// color. Only the "c" (color visual) key is consulted.
func parseColorRecord(rec string, cpp int) (string, ColorEntry, error) {
	if len(rec) < cpp {
		return rec, NoColor(), nil
	}
	sym, rest := rec[:cpp], rec[cpp:]
	f := strings.Fields(rest)
	for i := 0; i+1 < len(f); i++ {
		if f[i] != "c" {
			continue
		}
		val := f[i+1]
		if strings.EqualFold(val, "none") {
			return sym, NoColor(), nil
		}
		// colorful.Hex ignores trailing junk.
		if len(val) != 4 && len(val) != 7 {
			return "", ColorEntry{}, formatErr(ErrBadColor, "symbol %q: %q", sym, val)
		}
		c, err := colorful.Hex(val)
		if err != nil {
			return "", ColorEntry{}, formatErr(ErrBadColor, "symbol %q: %q", sym, val)
		}
		return sym, Color(RGB{c.R, c.G, c.B}), nil
	}
	return sym, NoColor(), nil
}
