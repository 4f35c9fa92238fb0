// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
)

var cmdListFlags = flag.NewFlagSet(os.Args[0]+" list", flag.ExitOnError)

var list struct {
	long bool
}

func init() {
	f := cmdListFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.BoolVar(&list.long, "l", false, "also print color counts and fingerprints")
	registerSubcommand("list", "[-l] - list palette names", cmdList, f)
}

func cmdList() {
	if cmdListFlags.NArg() != 0 {
		cmdListFlags.Usage()
		os.Exit(2)
	}

	reg := loadRegistry()
	if !list.long {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	names := reg.Names()
	counts := make([]int, len(names))
	prints := make([]string, len(names))
	for i, name := range names {
		p, err := reg.Get(name)
		if err != nil {
			log.Fatal(err)
		}
		counts[i] = p.Len()
		prints[i] = fmt.Sprintf("%016x", p.Fingerprint())
	}
	tab := new(table.Builder).Add("name", names).Add("colors", counts).Add("fingerprint", prints).Done()
	table.Fprint(os.Stdout, tab)
}
