// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xpm

import (
	"errors"
	"fmt"
)

// Reasons a palette file can be rejected. A *FormatError matches its
// reason with errors.Is.
var (
	ErrNoData       = errors.New("no data")
	ErrBadHeader    = errors.New("bad header")
	ErrTruncated    = errors.New("truncated data")
	ErrBadColor     = errors.New("bad color")
	ErrRowLength    = errors.New("row length mismatch")
	ErrEmptyPalette = errors.New("empty palette")
	ErrRead         = errors.New("read error")
)

// FormatError reports a malformed palette file.
type FormatError struct {
	Reason error
	Detail string
}

func formatErr(reason error, format string, args ...interface{}) *FormatError {
	return &FormatError{reason, fmt.Sprintf(format, args...)}
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return "xpm: " + e.Reason.Error()
	}
	return "xpm: " + e.Reason.Error() + ": " + e.Detail
}

func (e *FormatError) Is(target error) bool {
	return e.Reason == target
}
