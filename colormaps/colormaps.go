// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormaps holds the palette files bundled with this module.
//
// Each file is a one-row XPM image whose pixels, left to right, are
// the palette colors. The bundled palettes are 32-color resamplings
// of the matplotlib colormaps of the same names.
package colormaps

import "embed"

// FS contains the bundled *.xpm palette files at its root.
//
//go:embed *.xpm
var FS embed.FS
