// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/aclements/go-colormaps/xpm"
	"github.com/cespare/xxhash"
)

// RGBA is a color with each channel in [0, 1]. Colors produced by
// this package are opaque (A == 1). RGBA implements color.Color.
type RGBA struct {
	R, G, B, A float64
}

// RGBA returns the alpha-premultiplied 16-bit channels of c.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	ch := func(x float64) uint32 {
		x *= c.A
		if x <= 0 {
			return 0
		} else if x >= 1 {
			return 0xffff
		}
		return uint32(x*0xffff + 0.5)
	}
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	return ch(c.R), ch(c.G), ch(c.B), a
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}

// Palette is a named, ordered list of colors. A Palette is immutable
// and safe for concurrent use.
type Palette struct {
	name   string
	colors []xpm.RGB
}

// NewPalette returns a palette with the given name and colors. colors
// must be non-empty and every channel must be in [0, 1]. NewPalette
// copies colors.
func NewPalette(name string, colors []xpm.RGB) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("colormap: palette %q has no colors", name)
	}
	for i, c := range colors {
		for _, x := range [...]float64{c.R, c.G, c.B} {
			if !(0 <= x && x <= 1) {
				return nil, fmt.Errorf("colormap: palette %q: color %d %v out of range", name, i, c)
			}
		}
	}
	return &Palette{name, append([]xpm.RGB(nil), colors...)}, nil
}

// Name returns the palette's name.
func (p *Palette) Name() string { return p.name }

// Len returns the number of colors in p. It is always at least 1.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the i'th color of p as an opaque RGBA.
func (p *Palette) At(i int) RGBA {
	c := p.colors[i]
	return RGBA{c.R, c.G, c.B, 1}
}

// Colors returns a copy of p's colors.
func (p *Palette) Colors() []xpm.RGB {
	return append([]xpm.RGB(nil), p.colors...)
}

// Index returns the palette index for normalized position t. The
// interval [0, 1] is divided uniformly over the Len()-1 gaps between
// colors and t is rounded down, so 0 maps to the first color and 1
// maps to the last. Positions outside [0, 1] are clamped. NaN maps to
// the first color.
func (p *Palette) Index(t float64) int {
	last := len(p.colors) - 1
	f := math.Floor(t * float64(last))
	if !(f > 0) {
		return 0
	} else if f >= float64(last) {
		return last
	}
	return int(f)
}

// Map normalizes each of values with n and returns the corresponding
// palette colors, in order.
func (p *Palette) Map(n Normalizer, values []float64) []RGBA {
	out := make([]RGBA, len(values))
	for i, v := range values {
		out[i] = p.At(p.Index(n.Map(v)))
	}
	return out
}

// Reversed returns a copy of p with its colors in reverse order and
// "_r" appended to its name.
func (p *Palette) Reversed() *Palette {
	rev := make([]xpm.RGB, len(p.colors))
	for i, c := range p.colors {
		rev[len(rev)-1-i] = c
	}
	return &Palette{p.name + reversedSuffix, rev}
}

const reversedSuffix = "_r"

// Fingerprint returns a hash of p's color sequence. Palettes with
// identical colors have identical fingerprints, regardless of name.
func (p *Palette) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [24]byte
	for _, c := range p.colors {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(c.R))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(c.G))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(c.B))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (p *Palette) String() string {
	return fmt.Sprintf("%s[%d]", p.name, len(p.colors))
}
