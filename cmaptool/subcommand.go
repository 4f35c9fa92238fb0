// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "flag"

type subcommand struct {
	name  string
	desc  string
	cmd   func()
	flags *flag.FlagSet
}

var subcommands []*subcommand

// registerSubcommand adds a subcommand. It is meant to be called from
// init functions, so subcommands are listed in file name order.
func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands = append(subcommands, &subcommand{name, desc, cmd, flags})
}

func lookupSubcommand(name string) *subcommand {
	for _, sc := range subcommands {
		if sc.name == name {
			return sc
		}
	}
	return nil
}
