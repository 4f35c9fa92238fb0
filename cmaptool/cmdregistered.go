// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/aclements/go-colormaps/colormap"
	"github.com/aclements/go-colormaps/colormap/ggcmap"
	"github.com/aclements/go-colormaps/colormap/gonumcmap"
	"github.com/aclements/go-gg/table"
)

var cmdRegisteredFlags = flag.NewFlagSet(os.Args[0]+" registered", flag.ExitOnError)

var registered struct {
	prefix string
}

func init() {
	f := cmdRegisteredFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s registered [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&registered.prefix, "p", "", "name `prefix` (default: $CMAPTOOL_PREFIX, or "+ggcmap.DefaultPrefix+")")
	registerSubcommand("registered", "[-p prefix] - list names registered with go-gg and gonum plot", cmdRegistered, f)
}

func cmdRegistered() {
	if cmdRegisteredFlags.NArg() != 0 {
		cmdRegisteredFlags.Usage()
		os.Exit(2)
	}
	prefix := registered.prefix
	if prefix == "" {
		prefix = os.Getenv("CMAPTOOL_PREFIX")
	}

	names, palettes, err := registeredNames(loadRegistry(), prefix)
	if err != nil {
		log.Fatal(err)
	}
	tab := new(table.Builder).Add("registered", names).Add("palette", palettes).Done()
	table.Fprint(os.Stdout, tab)
}

// registeredNames registers every palette of reg with both plotting
// adapters under prefix and returns the sorted registered names along
// with the palette each one resolves to.
func registeredNames(reg *colormap.Registry, prefix string) (names, palettes []string, err error) {
	rangers, err := ggcmap.Register(reg, prefix)
	if err != nil {
		return nil, nil, err
	}
	cmaps, err := gonumcmap.Register(reg, prefix)
	if err != nil {
		return nil, nil, err
	}

	for name := range rangers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cm, ok := cmaps[name]
		if !ok {
			return nil, nil, fmt.Errorf("%s registered with go-gg but not gonum plot", name)
		}
		palettes = append(palettes, cm.Name())
	}
	return names, palettes, nil
}
