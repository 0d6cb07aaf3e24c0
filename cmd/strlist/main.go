// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command strlist indexes, slices and iterates over delimiter separated
// lists such as paths, file extensions and PATH style option lists.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"github.com/spf13/afero"
)

const cmdSpec = `name: strlist
summary: index, slice and iterate over delimiter separated lists
commands:
  - name: len
    summary: print the number of elements in each list
    arguments:
      - ...
  - name: element
    summary: print the n'th element of each list
    arguments:
      - ...
  - name: range
    summary: print a range of elements of each list
    arguments:
      - ...
  - name: root
    summary: print all but the last element of each list
    arguments:
      - ...
  - name: base
    summary: print the last element of each list
    arguments:
      - ...
  - name: head
    summary: print the first element of each list
    arguments:
      - ...
  - name: tail
    summary: print all but the first element of each list
    arguments:
      - ...
  - name: iterate
    summary: print every element of each list, one per line
    arguments:
      - ...
  - name: separators
    summary: list the builtin and configured separators
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config    string `subcmd:"config,,'yaml file that defines named separators'"`
	Separator string `subcmd:"sep,unix-path,'separator: a builtin or configured name, or a literal'"`
	Input     string `subcmd:"input,,'file to read lists from, one per line, in addition to any command line arguments'"`
}

type elementFlags struct {
	CommonFlags
	Index int `subcmd:"n,0,'index of the element to print'"`
}

type rangeFlags struct {
	CommonFlags
	From  int `subcmd:"from,0,'index of the first element to print'"`
	Count int `subcmd:"count,0,'number of elements to print, 0 for all remaining elements'"`
}

func cli(l *lister) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("len").MustRunnerAndFlags(l.length,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("element").MustRunnerAndFlags(l.element,
		subcmd.MustRegisterFlagStruct(&elementFlags{}, nil, nil))
	cmdSet.Set("range").MustRunnerAndFlags(l.extractRange,
		subcmd.MustRegisterFlagStruct(&rangeFlags{}, nil, nil))
	for name, fn := range shorthands {
		cmdSet.Set(name).MustRunnerAndFlags(l.shorthand(name, fn),
			subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	}
	cmdSet.Set("iterate").MustRunnerAndFlags(l.iterate,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("separators").MustRunnerAndFlags(l.separators,
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli(&lister{fs: afero.NewOsFs(), out: os.Stdout}))
}
