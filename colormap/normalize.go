// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// NormOptions configures NewNormalizer.
type NormOptions struct {
	// VMin and VMax are the input values that map to 0 and 1. If
	// either is nil, it is taken from Data, or defaults to 0 and
	// 1 respectively if Data is nil.
	VMin, VMax *float64

	// Data, if non-nil, supplies the unset bounds: VMin defaults
	// to its minimum and VMax to its maximum. NaNs are ignored.
	// It is an error for Data to be non-nil but empty when a
	// bound is taken from it.
	Data []float64

	// NoClip disables clamping the normalized value to [0, 1].
	NoClip bool
}

// Float returns a pointer to v, for filling in optional bounds.
func Float(v float64) *float64 { return &v }

// Normalizer is an affine map from [VMin, VMax] to [0, 1]. The zero
// Normalizer is not valid; use NewNormalizer.
type Normalizer struct {
	s scale.Linear
}

// NewNormalizer returns a Normalizer for the bounds described by o.
// It returns a *ValueError if the bounds come from empty data or if
// they are equal.
func NewNormalizer(o NormOptions) (Normalizer, error) {
	lo, hi := 0.0, 1.0
	if o.VMin != nil {
		lo = *o.VMin
	}
	if o.VMax != nil {
		hi = *o.VMax
	}
	if o.Data != nil && (o.VMin == nil || o.VMax == nil) {
		dmin, dmax, ok := bounds(o.Data)
		if !ok {
			return Normalizer{}, valueErr(ErrEmptyData, "autorange requested with no values")
		}
		if o.VMin == nil {
			lo = dmin
		}
		if o.VMax == nil {
			hi = dmax
		}
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Normalizer{}, valueErr(ErrNaNRange, "[%g, %g]", lo, hi)
	}
	if lo == hi {
		return Normalizer{}, valueErr(ErrDegenerateRange, "vmin and vmax are both %g", lo)
	}
	return Normalizer{scale.Linear{Min: lo, Max: hi, Clamp: !o.NoClip}}, nil
}

// bounds returns the minimum and maximum of the non-NaN values in xs.
func bounds(xs []float64) (min, max float64, ok bool) {
	clean := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			clean = append(clean, x)
		}
	}
	if len(clean) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(clean)
	return min, max, true
}

// Map returns (x - VMin) / (VMax - VMin), clamped to [0, 1] if the
// Normalizer clips.
func (n Normalizer) Map(x float64) float64 {
	return n.s.Map(x)
}

// Unmap is the inverse of Map for t in [0, 1].
func (n Normalizer) Unmap(t float64) float64 {
	return n.s.Unmap(t)
}

func (n Normalizer) VMin() float64 { return n.s.Min }
func (n Normalizer) VMax() float64 { return n.s.Max }
func (n Normalizer) Clip() bool    { return n.s.Clamp }
