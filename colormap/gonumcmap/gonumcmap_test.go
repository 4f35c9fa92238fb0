// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonumcmap

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-colormaps/colormap"
	"github.com/aclements/go-colormaps/xpm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
)

func testPalette(t *testing.T) *colormap.Palette {
	p, err := colormap.NewPalette("rgb", []xpm.RGB{{R: 1, G: 0, B: 0}, {R: 0, G: 1, B: 0}, {R: 0, G: 0, B: 1}})
	require.NoError(t, err)
	return p
}

func TestAt(t *testing.T) {
	p := testPalette(t)
	c := New(p)
	c.SetMin(10)
	c.SetMax(20)

	for _, test := range []struct {
		v    float64
		want colormap.RGBA
	}{
		{10, p.At(0)},
		{15, p.At(1)},
		{19.9, p.At(1)},
		{20, p.At(2)},
	} {
		got, err := c.At(test.v)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "At(%g)", test.v)
	}

	for _, test := range []struct {
		v    float64
		want error
	}{
		{9, palette.ErrUnderflow},
		{21, palette.ErrOverflow},
		{math.NaN(), palette.ErrNaN},
	} {
		_, err := c.At(test.v)
		assert.Equal(t, test.want, err, "At(%g)", test.v)
	}

	c.SetMax(10)
	_, err := c.At(10)
	assert.True(t, errors.Is(err, colormap.ErrDegenerateRange), "got %v", err)
}

func TestAlpha(t *testing.T) {
	c := New(testPalette(t))
	assert.Equal(t, 1.0, c.Alpha())
	c.SetAlpha(0.5)
	got, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, colormap.RGBA{R: 1, G: 0, B: 0, A: 0.5}, got)
	c.SetAlpha(3)
	assert.Equal(t, 1.0, c.Alpha())
}

func TestPalette(t *testing.T) {
	p := testPalette(t)
	c := New(p)
	c.SetMin(-1)
	c.SetMax(1)
	cs := c.Palette(5).Colors()
	require.Len(t, cs, 5)
	assert.Equal(t, p.At(0), cs[0])
	assert.Equal(t, p.At(2), cs[4])
	assert.Equal(t, p.At(1), cs[2])
	assert.Empty(t, c.Palette(0).Colors())
}

func TestRegister(t *testing.T) {
	reg, err := colormap.Default()
	require.NoError(t, err)
	cms, err := Register(reg, "x_")
	require.NoError(t, err)
	assert.Len(t, cms, reg.Len())
	cm, ok := cms["x_magma"]
	require.True(t, ok)
	assert.Equal(t, "magma", cm.Name())

	cms, err = Register(reg, "")
	require.NoError(t, err)
	_, ok = cms[DefaultPrefix+"magma"]
	assert.True(t, ok)
}
