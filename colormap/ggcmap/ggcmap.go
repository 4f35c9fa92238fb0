// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggcmap exposes colormap palettes to go-gg plots.
//
// A Ranger can be installed on any go-gg continuous scale to color a
// "color" or "fill" aesthetic with a palette:
//
//	s := gg.NewLinearScaler()
//	s.Ranger(ggcmap.NewRanger(p))
//	plot.SetScale("fill", s)
package ggcmap

import (
	"image/color"
	"reflect"

	"github.com/aclements/go-colormaps/colormap"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
)

// DefaultPrefix is the name prefix used by Register when prefix is "".
const DefaultPrefix = "custom_"

var colorType = reflect.TypeOf((*color.Color)(nil)).Elem()

// Ranger maps scaled values in [0, 1] to the colors of a palette. It
// is both a gg.ContinuousRanger and a gg.DiscreteRanger.
type Ranger struct {
	p *colormap.Palette
}

var (
	_ gg.ContinuousRanger = (*Ranger)(nil)
	_ gg.DiscreteRanger   = (*Ranger)(nil)
)

// NewRanger returns a Ranger for p.
func NewRanger(p *colormap.Palette) *Ranger {
	return &Ranger{p}
}

// Palette returns the underlying palette.
func (r *Ranger) Palette() *colormap.Palette { return r.p }

func (r *Ranger) String() string { return "palette " + r.p.Name() }

func (r *Ranger) RangeType() reflect.Type { return colorType }

// Map returns the palette color for x using the same bucketing as
// colormap.Palette.Index.
func (r *Ranger) Map(x float64) interface{} {
	return r.p.At(r.p.Index(x))
}

// Unmap returns the lowest position in [0, 1] that maps to color y.
func (r *Ranger) Unmap(y interface{}) (float64, bool) {
	c, ok := y.(colormap.RGBA)
	if !ok {
		return 0, false
	}
	n := r.p.Len()
	for i := 0; i < n; i++ {
		if r.p.At(i) == c {
			if n == 1 {
				return 0, true
			}
			return float64(i) / float64(n-1), true
		}
	}
	return 0, false
}

func (r *Ranger) Levels() (min, max int) {
	return r.p.Len(), r.p.Len()
}

func (r *Ranger) MapLevel(i, j int) interface{} {
	if i < 0 {
		i = 0
	} else if i >= r.p.Len() {
		i = r.p.Len() - 1
	}
	return r.p.At(i)
}

// Colors returns the palette as a slice suitable for
// gg.NewColorRanger.
func Colors(p *colormap.Palette) []color.Color {
	out := make([]color.Color, p.Len())
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// Continuous returns a go-gg palette that blends smoothly between the
// colors of p in linear RGB.
func Continuous(p *colormap.Palette) palette.Continuous {
	g := palette.RGBGradient{Colors: make([]color.RGBA, p.Len())}
	for i := range g.Colors {
		g.Colors[i] = color.RGBAModel.Convert(p.At(i)).(color.RGBA)
	}
	return g
}

// Rangers maps prefixed palette names to Rangers.
type Rangers map[string]*Ranger

// Register returns a Ranger for every palette in reg, keyed by prefix
// followed by the palette's registry name. If prefix is "",
// DefaultPrefix is used.
func Register(reg *colormap.Registry, prefix string) (Rangers, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	rs := make(Rangers, reg.Len())
	for _, name := range reg.Names() {
		p, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		rs[prefix+name] = NewRanger(p)
	}
	return rs, nil
}

// Get returns the Ranger registered as name.
func (rs Rangers) Get(name string) (*Ranger, bool) {
	r, ok := rs[name]
	return r, ok
}

// Continuous returns the smooth go-gg palette registered as name.
func (rs Rangers) Continuous(name string) (palette.Continuous, bool) {
	r, ok := rs[name]
	if !ok {
		return nil, false
	}
	return Continuous(r.p), true
}

// Swatch returns a plot of n evenly spaced samples of p as a strip of
// tiles. If n < 2, it uses one sample per palette color.
func Swatch(p *colormap.Palette, n int) *gg.Plot {
	if n < 2 {
		n = p.Len()
		if n < 2 {
			n = 2
		}
	}
	var xs, ys, ts []float64
	for row := 0; row < 2; row++ {
		for i := 0; i < n; i++ {
			xs = append(xs, float64(i))
			ys = append(ys, float64(row))
			ts = append(ts, float64(i)/float64(n-1))
		}
	}
	tab := new(table.Builder).Add("x", xs).Add("y", ys).Add("t", ts).Done()

	plot := gg.NewPlot(tab)
	fill := gg.NewLinearScaler().SetMin(0).SetMax(1)
	fill.Ranger(NewRanger(p))
	plot.SetScale("fill", fill)
	plot.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "t"})
	plot.Add(gg.Title(p.Name()))
	return plot
}
