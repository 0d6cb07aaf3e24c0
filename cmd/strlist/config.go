// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"slices"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/strlist"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Literals is a separator definition; in yaml it may be written as either
// a single string or a list of strings.
type Literals []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Literals) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = Literals{value.Value}
		return nil
	case yaml.SequenceNode:
		var lits []string
		if err := value.Decode(&lits); err != nil {
			return err
		}
		*l = lits
		return nil
	}
	return fmt.Errorf("line %v: a separator must be a string or a list of strings", value.Line)
}

// Config represents the optional yaml configuration file, eg:
//
//	separators:
//	  path: /
//	  cpp: ["::", ".", "->"]
type Config struct {
	Separators map[string]Literals `yaml:"separators"`
}

var builtinSeparators = map[string]strlist.Separator{
	"unix-path": strlist.UnixPath,
	"dos-path":  strlist.DOSPath,
	"unix-list": strlist.UnixList,
	"cpp":       strlist.CPP,
	"ext":       strlist.Ext,
}

// loadConfig reads and validates the config file, an empty filename
// results in an empty config.
func loadConfig(fs afero.Fs, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	spec, err := afero.ReadFile(fs, filename)
	if err != nil {
		return cfg, err
	}
	if err := cmdutil.ParseYAMLConfig(spec, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error for every configured separator that is
// not valid.
func (c Config) Validate() error {
	errs := &errors.M{}
	for _, name := range slices.Sorted(maps.Keys(c.Separators)) {
		if _, err := strlist.FromLiterals(c.Separators[name]...); err != nil {
			errs.Append(fmt.Errorf("separator %q: %w", name, err))
		}
	}
	return errs.Err()
}

// Separator returns the separator with the given name. Configured
// separators take precedence over the builtin ones and any other name
// is used as a literal separator.
func (c Config) Separator(name string) (strlist.Separator, error) {
	if lits, ok := c.Separators[name]; ok {
		return strlist.FromLiterals(lits...)
	}
	if sep, ok := builtinSeparators[name]; ok {
		return sep, nil
	}
	return strlist.FromLiterals(name)
}

// Named returns all of the builtin and configured separators, sorted
// by name.
func (c Config) Named() ([]string, []strlist.Separator) {
	all := maps.Clone(builtinSeparators)
	for name, lits := range c.Separators {
		if sep, err := strlist.FromLiterals(lits...); err == nil {
			all[name] = sep
		}
	}
	names := slices.Sorted(maps.Keys(all))
	seps := make([]strlist.Separator, len(names))
	for i, n := range names {
		seps[i] = all[n]
	}
	return names, seps
}
