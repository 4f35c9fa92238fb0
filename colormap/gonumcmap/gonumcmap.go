// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonumcmap adapts colormap palettes to gonum.org/v1/plot.
//
// A *ColorMap implements palette.ColorMap, so it can be handed to
// plotters such as plotter.HeatMap or plotter.ColorBar.
package gonumcmap

import (
	"image/color"
	"math"

	"github.com/aclements/go-colormaps/colormap"
	"gonum.org/v1/plot/palette"
)

// DefaultPrefix is the name prefix used by Register when prefix is "".
const DefaultPrefix = "custom_"

// ColorMap is a palette.ColorMap backed by a colormap.Palette. Values
// in [Min, Max] are bucketed onto the palette colors exactly as
// colormap.Registry.MapValues does with explicit bounds.
//
// Unlike colormap.Palette, a ColorMap is mutable and is not safe for
// concurrent use while it is being modified.
type ColorMap struct {
	p        *colormap.Palette
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*ColorMap)(nil)

// New returns a ColorMap for p with range [0, 1] and alpha 1.
func New(p *colormap.Palette) *ColorMap {
	return &ColorMap{p: p, min: 0, max: 1, alpha: 1}
}

// At returns the color for v. It returns palette.ErrNaN,
// palette.ErrUnderflow, or palette.ErrOverflow if v is NaN or outside
// [Min, Max], and a *colormap.ValueError if Min == Max.
func (c *ColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < c.min:
		return nil, palette.ErrUnderflow
	case v > c.max:
		return nil, palette.ErrOverflow
	}
	n, err := colormap.NewNormalizer(colormap.NormOptions{VMin: &c.min, VMax: &c.max})
	if err != nil {
		return nil, err
	}
	col := c.p.At(c.p.Index(n.Map(v)))
	col.A = c.alpha
	return col, nil
}

func (c *ColorMap) Min() float64       { return c.min }
func (c *ColorMap) Max() float64       { return c.max }
func (c *ColorMap) SetMin(v float64)   { c.min = v }
func (c *ColorMap) SetMax(v float64)   { c.max = v }
func (c *ColorMap) Alpha() float64     { return c.alpha }
func (c *ColorMap) SetAlpha(a float64) { c.alpha = math.Max(0, math.Min(1, a)) }

// Name returns the name of the underlying palette.
func (c *ColorMap) Name() string { return c.p.Name() }

// Source returns the underlying palette.
func (c *ColorMap) Source() *colormap.Palette { return c.p }

// Palette returns n colors evenly spaced over [Min, Max].
func (c *ColorMap) Palette(n int) palette.Palette {
	out := make(colors, 0, n)
	for i := 0; i < n; i++ {
		v := c.min
		if n > 1 {
			v = c.min + (c.max-c.min)*float64(i)/float64(n-1)
		}
		if i == n-1 && n > 1 {
			v = c.max
		}
		col, err := c.At(v)
		if err != nil {
			col = color.Transparent
		}
		out = append(out, col)
	}
	return out
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// Register returns a ColorMap for every palette in reg, keyed by
// prefix followed by the palette's registry name. If prefix is "",
// DefaultPrefix is used.
func Register(reg *colormap.Registry, prefix string) (map[string]*ColorMap, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	out := make(map[string]*ColorMap, reg.Len())
	for _, name := range reg.Names() {
		p, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		out[prefix+name] = New(p)
	}
	return out, nil
}
