// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError is returned when a palette name is not registered or
// when a directory holds no palette files.
type NotFoundError struct {
	// Name is the requested palette. It is "" if the error is
	// about an empty directory.
	Name string

	// Available is the sorted list of registered names.
	Available []string

	// Dir is the directory that was searched, if Name is "".
	Dir string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("colormap: no %s files found in %s", fileExt, e.Dir)
	}
	return fmt.Sprintf("colormap: %q not found; available: %s", e.Name, strings.Join(e.Available, ", "))
}

// Reasons for a *ValueError. A *ValueError matches its reason with
// errors.Is.
var (
	ErrEmptyData       = errors.New("empty data")
	ErrDegenerateRange = errors.New("degenerate range")
	ErrNaNRange        = errors.New("NaN range bound")
	ErrSampleCount     = errors.New("bad sample count")
)

// ValueError reports an invalid normalization or sampling request.
type ValueError struct {
	Reason error
	Detail string
}

func valueErr(reason error, format string, args ...interface{}) *ValueError {
	return &ValueError{reason, fmt.Sprintf(format, args...)}
}

func (e *ValueError) Error() string {
	if e.Detail == "" {
		return "colormap: " + e.Reason.Error()
	}
	return "colormap: " + e.Reason.Error() + ": " + e.Detail
}

func (e *ValueError) Is(target error) bool {
	return e.Reason == target
}
