// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/aclements/go-colormaps/xpm"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testXPM is a 4x2 palette whose colors are, in row-major order,
// red red blue blue blue red blue red.
const testXPM = `/* XPM */
static char *test[] = {
"4 2 2 1",
"a c #FF0000",
"b c #0000FF",
"aabb",
"baba"
};
`

const blueXPM = `"1 1 1 1",
"b c #0000FF",
"b",
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"Test.xpm":  {Data: []byte(testXPM)},
		"blue.xpm":  {Data: []byte(blueXPM)},
		"notes.txt": {Data: []byte("not a palette")},
		"sub/x.xpm": {Data: []byte(blueXPM)},
	}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	r, err := LoadFS(testFS(), ".", WithLogger(log))
	require.NoError(t, err)
	return r
}

func TestLoadFS(t *testing.T) {
	r := testRegistry(t)
	assert.Equal(t, []string{"blue", "test"}, r.Names())
	assert.Equal(t, 2, r.Len())

	p, err := r.Get("test")
	require.NoError(t, err)
	assert.Equal(t, "Test", p.Name())
	assert.Equal(t, 8, p.Len())

	red, blue := p.At(0), p.At(2)
	want := []RGBA{red, red, blue, blue, blue, red, blue, red}
	for i, c := range want {
		assert.Equal(t, c, p.At(i), "color %d", i)
	}
	assert.InDelta(t, 1, red.R, 1e-12)
	assert.InDelta(t, 1, blue.B, 1e-12)
}

func TestGetCaseInsensitive(t *testing.T) {
	r := testRegistry(t)
	a, err := r.Get("TEST")
	require.NoError(t, err)
	b, err := r.Get("test")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestGetReversed(t *testing.T) {
	r := testRegistry(t)
	p, err := r.Get("test")
	require.NoError(t, err)
	rev, err := r.Get("Test_R")
	require.NoError(t, err)
	assert.Equal(t, "Test_r", rev.Name())
	require.Equal(t, p.Len(), rev.Len())
	for i := 0; i < p.Len(); i++ {
		assert.Equal(t, p.At(i), rev.At(p.Len()-1-i))
	}
	assert.NotContains(t, r.Names(), "test_r")
}

func TestGetNotFound(t *testing.T) {
	r := testRegistry(t)
	_, err := r.Get("viridis")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf), "want *NotFoundError, got %v", err)
	assert.Equal(t, "viridis", nf.Name)
	assert.Equal(t, []string{"blue", "test"}, nf.Available)
	assert.Contains(t, err.Error(), "blue, test")
}

func TestLoadEmptyDir(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{"a.txt": {}}, ".")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf), "want *NotFoundError, got %v", err)

	_, err = Load(t.TempDir())
	require.True(t, errors.As(err, &nf), "want *NotFoundError, got %v", err)
	assert.Contains(t, err.Error(), nf.Dir)
}

func TestLoadBadFile(t *testing.T) {
	fsys := testFS()
	fsys["broken.xpm"] = &fstest.MapFile{Data: []byte(`"4 1 1"`)}
	_, err := LoadFS(fsys, ".")
	require.Error(t, err)
	assert.True(t, errors.Is(err, xpm.ErrBadHeader), "got %v", err)
	var ferr *xpm.FormatError
	assert.True(t, errors.As(err, &ferr))
	assert.Contains(t, err.Error(), "broken.xpm")
}

func TestLoadSubdir(t *testing.T) {
	r, err := LoadFS(testFS(), "sub")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, r.Names())
}

func TestLoadDuplicateNames(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	fsys := fstest.MapFS{
		"A.xpm": {Data: []byte(testXPM)},
		"a.xpm": {Data: []byte(blueXPM)},
	}
	r, err := LoadFS(fsys, ".", WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, r.Names())

	// "a.xpm" sorts after "A.xpm", so it wins.
	p, err := r.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name())
	assert.Equal(t, 1, p.Len())

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "a", hook.LastEntry().Data["palette"])
}

func TestLoadDuplicateSymbols(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	fsys := fstest.MapFS{"dup.xpm": {Data: []byte(`
"1 1 2 1",
"x c #FF0000",
"x c #0000FF",
"x",
`)}}
	_, err := LoadFS(fsys, ".", WithLogger(log))
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "x", hook.LastEntry().Data["symbol"])
}

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []string{"coolwarm", "greys", "inferno", "magma", "plasma", "viridis"}, r.Names())
	for _, name := range r.Names() {
		p, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, 32, p.Len(), name)
	}

	a, err := r.Get("Viridis")
	require.NoError(t, err)
	b, err := r.Get("viridis")
	require.NoError(t, err)
	assert.Same(t, a, b)

	r2, err := Default()
	require.NoError(t, err)
	assert.Same(t, r, r2)
}

func TestMapValues(t *testing.T) {
	r := testRegistry(t)
	p, err := r.Get("test")
	require.NoError(t, err)
	red, blue := p.At(0), p.At(2)

	for _, test := range []struct {
		name   string
		values []float64
		opts   MapOptions
		want   []RGBA
	}{
		{"endpoints", []float64{0, 1},
			MapOptions{VMin: Float(0), VMax: Float(1), NoAutorange: true},
			[]RGBA{p.At(0), p.At(7)}},
		{"endpoints shifted", []float64{-3, 5},
			MapOptions{VMin: Float(-3), VMax: Float(5), NoAutorange: true},
			[]RGBA{p.At(0), p.At(7)}},
		{"autorange", []float64{2, 4, 8},
			MapOptions{},
			[]RGBA{red, blue, red}},
		{"autorange vmax only", []float64{4, 8},
			MapOptions{VMin: Float(0)},
			[]RGBA{blue, red}},
		{"default bounds", []float64{0.5, 0.2},
			MapOptions{NoAutorange: true},
			[]RGBA{blue, red}},
		{"clipped", []float64{-10, 10},
			MapOptions{VMin: Float(0), VMax: Float(1)},
			[]RGBA{p.At(0), p.At(7)}},
		{"explicit bounds skip autorange", nil,
			MapOptions{VMin: Float(0), VMax: Float(1)},
			[]RGBA{}},
	} {
		got, err := r.MapValues(test.values, "test", test.opts)
		if !assert.NoError(t, err, test.name) {
			continue
		}
		assert.Equal(t, test.want, got, test.name)
		for _, c := range got {
			assert.Equal(t, 1.0, c.A, test.name)
		}
	}
}

func TestMapValuesErrors(t *testing.T) {
	r := testRegistry(t)

	_, err := r.MapValues([]float64{1}, "nope", MapOptions{})
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf), "got %v", err)

	_, err = r.MapValues(nil, "test", MapOptions{})
	assert.True(t, errors.Is(err, ErrEmptyData), "got %v", err)

	_, err = r.MapValues([]float64{3, 3}, "test", MapOptions{})
	assert.True(t, errors.Is(err, ErrDegenerateRange), "got %v", err)
}

func TestMapValuesMonotonic(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	p, err := r.Get("greys")
	require.NoError(t, err)
	n, err := NewNormalizer(NormOptions{VMin: Float(-1), VMax: Float(3)})
	require.NoError(t, err)

	last := -1
	for x := -1.0; x <= 3; x += 0.01 {
		i := p.Index(n.Map(x))
		if i < last {
			t.Fatalf("index decreased at %g: %d < %d", x, i, last)
		}
		last = i
	}
	assert.Equal(t, p.Len()-1, p.Index(n.Map(3)))
}

func TestSample(t *testing.T) {
	r := testRegistry(t)
	p, err := r.Get("test")
	require.NoError(t, err)

	got, err := r.Sample("test", 5, 0.1, 0.3)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, p.At(0), got[0])
	assert.Equal(t, p.At(p.Len()-1), got[4])

	got, err = r.Sample("test", 1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []RGBA{p.At(0)}, got)

	_, err = r.Sample("test", 0, 0, 1)
	assert.True(t, errors.Is(err, ErrSampleCount), "got %v", err)
	_, err = r.Sample("test", 4, 2, 2)
	assert.True(t, errors.Is(err, ErrDegenerateRange), "got %v", err)
}
