// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap maps numeric data to colors using palettes loaded
// from XPM files.
//
// A Registry holds every palette found in a directory, keyed by the
// lowercased file name without its extension. Registries are built
// once and are read-only afterwards, so a single Registry may be shared
// by any number of goroutines.
//
// Values are mapped to colors in two steps. A Normalizer maps a value
// affinely to [0, 1], using bounds given by the caller or derived from
// the data ("autorange"). The normalized value then selects one of
// the palette's N colors by uniform bucketing: index floor(t*(N-1)).
package colormap

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/aclements/go-colormaps/colormaps"
	"github.com/aclements/go-colormaps/xpm"
	"github.com/sirupsen/logrus"
)

const fileExt = ".xpm"

// Registry is an immutable, name-keyed collection of palettes.
type Registry struct {
	palettes map[string]*Palette
	reversed map[string]*Palette
	names    []string
}

// An Option configures Load and LoadFS.
type Option func(*loadConfig)

type loadConfig struct {
	log logrus.FieldLogger
}

// WithLogger directs load diagnostics to l. Duplicate palette names
// and duplicate color symbols are logged as warnings, and each loaded
// file at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *loadConfig) { c.log = l }
}

var defaultLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}()

// Load returns a Registry of every *.xpm file in dir.
func Load(dir string, opts ...Option) (*Registry, error) {
	r, err := LoadFS(os.DirFS(dir), ".", opts...)
	if nf, ok := err.(*NotFoundError); ok {
		nf.Dir = dir
	}
	return r, err
}

// LoadFS returns a Registry of every *.xpm file in directory dir of
// fsys.
//
// Files are parsed in lexicographic order. If two files have the same
// lowercased name, the later one wins. Any malformed file causes
// LoadFS to fail; the returned error wraps the *xpm.FormatError. If
// dir has no palette files, LoadFS returns a *NotFoundError.
func LoadFS(fsys fs.FS, dir string, opts ...Option) (*Registry, error) {
	cfg := loadConfig{log: defaultLogger}
	for _, o := range opts {
		o(&cfg)
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*"+fileExt))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &NotFoundError{Dir: dir}
	}
	sort.Strings(files)

	r := &Registry{
		palettes: make(map[string]*Palette, len(files)),
		reversed: make(map[string]*Palette, len(files)),
	}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), fileExt)
		key := strings.ToLower(name)
		log := cfg.log.WithFields(logrus.Fields{"palette": key, "file": file})

		p, err := loadFile(fsys, file, name, log)
		if err != nil {
			return nil, err
		}
		if _, ok := r.palettes[key]; ok {
			log.Warn("duplicate palette name; replacing earlier file")
		}
		r.palettes[key] = p
		r.reversed[key+reversedSuffix] = p.Reversed()
		log.WithField("colors", p.Len()).Debug("loaded palette")
	}

	r.names = make([]string, 0, len(r.palettes))
	for k := range r.palettes {
		r.names = append(r.names, k)
	}
	sort.Strings(r.names)
	return r, nil
}

func loadFile(fsys fs.FS, file, name string, log logrus.FieldLogger) (*Palette, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := xpm.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	for _, sym := range res.Duplicates {
		log.WithField("symbol", sym).Warn("duplicate color symbol; using last definition")
	}
	return NewPalette(name, res.Colors)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the Registry of palettes bundled with this module.
// It is loaded on first use and shared thereafter.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = LoadFS(colormaps.FS, ".")
	})
	return defaultReg, defaultErr
}

// Len returns the number of palettes in r.
func (r *Registry) Len() int { return len(r.names) }

// Names returns the registered palette names in ascending order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Get returns the palette called name, ignoring case. A name ending in
// "_r" that is not itself registered refers to the reverse of the
// palette without the suffix. If there is no such palette, Get returns
// a *NotFoundError listing the registered names.
func (r *Registry) Get(name string) (*Palette, error) {
	key := strings.ToLower(name)
	if p, ok := r.palettes[key]; ok {
		return p, nil
	}
	if p, ok := r.reversed[key]; ok {
		return p, nil
	}
	return nil, &NotFoundError{Name: name, Available: r.Names()}
}

// MapOptions configures Registry.MapValues.
type MapOptions struct {
	// VMin and VMax are explicit normalization bounds. A nil bound
	// is derived from the values being mapped, or defaults to 0
	// or 1 if NoAutorange is set.
	VMin, VMax *float64

	// NoAutorange disables deriving unset bounds from the values.
	NoAutorange bool
}

// MapValues maps each of values to a color of the named palette and
// returns the colors in input order. Values are clipped to the
// normalization range.
func (r *Registry) MapValues(values []float64, name string, o MapOptions) ([]RGBA, error) {
	p, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	nopts := NormOptions{VMin: o.VMin, VMax: o.VMax}
	if !o.NoAutorange && (o.VMin == nil || o.VMax == nil) {
		nopts.Data = values
		if nopts.Data == nil {
			nopts.Data = []float64{}
		}
	}
	n, err := NewNormalizer(nopts)
	if err != nil {
		return nil, err
	}
	return p.Map(n, values), nil
}

// Sample returns n colors of the named palette for values evenly
// spaced from vmin to vmax, inclusive.
func (r *Registry) Sample(name string, n int, vmin, vmax float64) ([]RGBA, error) {
	if n < 1 {
		return nil, valueErr(ErrSampleCount, "%d", n)
	}
	values := make([]float64, n)
	values[0] = vmin
	for i := 1; i < n; i++ {
		values[i] = vmin + (vmax-vmin)*float64(i)/float64(n-1)
	}
	if n > 1 {
		// Avoid rounding the last sample below vmax.
		values[n-1] = vmax
	}
	return r.MapValues(values, name, MapOptions{VMin: &vmin, VMax: &vmax, NoAutorange: true})
}
