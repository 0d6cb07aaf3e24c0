// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/strlist"
	"github.com/spf13/afero"
)

var shorthands = map[string]func([]byte, strlist.Separator) []byte{
	"root": strlist.Root,
	"base": strlist.Base,
	"head": strlist.Head,
	"tail": strlist.Tail,
}

type lister struct {
	fs  afero.Fs
	out io.Writer
}

type request struct {
	ctx   context.Context
	cfg   Config
	sep   strlist.Separator
	lists [][]byte
	close func() error
}

// setup creates the logger and loads the config file.
func (l *lister) setup(ctx context.Context, cf *CommonFlags) (*request, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	cfg, err := loadConfig(l.fs, cf.Config)
	if err != nil {
		logger.Close()
		return nil, err
	}
	return &request{ctx: ctx, cfg: cfg, close: logger.Close}, nil
}

// prepare is like setup but also determines the separator to use and
// reads the lists to operate on.
func (l *lister) prepare(ctx context.Context, cf *CommonFlags, args []string) (*request, error) {
	req, err := l.setup(ctx, cf)
	if err != nil {
		return nil, err
	}
	if req.sep, err = req.cfg.Separator(cf.Separator); err != nil {
		req.close()
		return nil, fmt.Errorf("separator %q: %w", cf.Separator, err)
	}
	if req.lists, err = l.readLists(cf.Input, args); err != nil {
		req.close()
		return nil, err
	}
	ctxlog.Logger(req.ctx).Debug("prepared", "separator", req.sep.String(), "lists", len(req.lists))
	return req, nil
}

func (l *lister) readLists(input string, args []string) ([][]byte, error) {
	lists := make([][]byte, 0, len(args))
	for _, a := range args {
		lists = append(lists, []byte(a))
	}
	if len(input) > 0 {
		data, err := afero.ReadFile(l.fs, input)
		if err != nil {
			return nil, err
		}
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			lists = append(lists, bytes.Clone(sc.Bytes()))
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", input, err)
		}
	}
	if len(lists) == 0 {
		return nil, fmt.Errorf("no lists specified")
	}
	return lists, nil
}

func (l *lister) length(ctx context.Context, values any, args []string) error {
	req, err := l.prepare(ctx, values.(*CommonFlags), args)
	if err != nil {
		return err
	}
	defer req.close()
	for _, list := range req.lists {
		fmt.Fprintln(l.out, strlist.Len(list, req.sep))
	}
	return nil
}

func (l *lister) element(ctx context.Context, values any, args []string) error {
	fv := values.(*elementFlags)
	if fv.Index < 0 {
		return fmt.Errorf("invalid element index: %v", fv.Index)
	}
	req, err := l.prepare(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	defer req.close()
	logger := ctxlog.Logger(req.ctx)
	for _, list := range req.lists {
		if n := strlist.Len(list, req.sep); fv.Index >= n {
			logger.Debug("element out of range", "list", string(list), "index", fv.Index, "len", n)
		}
		fmt.Fprintf(l.out, "%s\n", strlist.Element(list, fv.Index, req.sep))
	}
	return nil
}

func (l *lister) extractRange(ctx context.Context, values any, args []string) error {
	fv := values.(*rangeFlags)
	if fv.From < 0 || fv.Count < 0 {
		return fmt.Errorf("invalid range: from %v, count %v", fv.From, fv.Count)
	}
	req, err := l.prepare(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	defer req.close()
	for _, list := range req.lists {
		fmt.Fprintf(l.out, "%s\n", strlist.Range(list, fv.From, fv.Count, req.sep))
	}
	return nil
}

func (l *lister) shorthand(name string, fn func([]byte, strlist.Separator) []byte) func(context.Context, any, []string) error {
	return func(ctx context.Context, values any, args []string) error {
		req, err := l.prepare(ctx, values.(*CommonFlags), args)
		if err != nil {
			return err
		}
		defer req.close()
		logger := ctxlog.Logger(req.ctx).With("command", name)
		for _, list := range req.lists {
			logger.Debug("extracting", "list", string(list))
			fmt.Fprintf(l.out, "%s\n", fn(list, req.sep))
		}
		return nil
	}
}

func (l *lister) iterate(ctx context.Context, values any, args []string) error {
	req, err := l.prepare(ctx, values.(*CommonFlags), args)
	if err != nil {
		return err
	}
	defer req.close()
	for _, list := range req.lists {
		for i, elem := range strlist.All(list, req.sep) {
			fmt.Fprintf(l.out, "%v\t%s\n", i, elem)
		}
	}
	return nil
}

func (l *lister) separators(ctx context.Context, values any, _ []string) error {
	req, err := l.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer req.close()
	names, seps := req.cfg.Named()
	for i, name := range names {
		fmt.Fprintf(l.out, "%s\t%s\n", name, seps[i])
	}
	return nil
}
