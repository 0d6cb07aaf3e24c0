// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist_test

import (
	"slices"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/strlist"
)

func TestConstructors(t *testing.T) {
	if _, err := strlist.NewLiteral(""); !errors.Is(err, strlist.ErrEmptyLiteral) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := strlist.NewLiteralSet(); !errors.Is(err, strlist.ErrEmptySeparator) {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := strlist.NewLiteralSet("", "::", "")
	if !errors.Is(err, strlist.ErrEmptyLiteral) {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(err.(*errors.M).Unwrap()), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		lits []string
		kind strlist.Kind
	}{
		{[]string{"/"}, strlist.Char},
		{[]string{"::"}, strlist.Literal},
		{[]string{"::", ".", "->"}, strlist.LiteralSet},
	} {
		sep, err := strlist.FromLiterals(tc.lits...)
		if err != nil {
			t.Errorf("%v: %v", tc.lits, err)
			continue
		}
		if got, want := sep.Kind(), tc.kind; got != want {
			t.Errorf("%v: got %v, want %v", tc.lits, got, want)
		}
		if got, want := sep.Literals(), tc.lits; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.lits, got, want)
		}
	}

	if got, want := strlist.CPP.String(), `literal-set{"::", ".", "->"}`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := strlist.UnixPath.String(), `char{"/"}`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIndex(t *testing.T) {
	colons := strlist.MustLiteralSet("::", ":")
	colon := strlist.MustLiteralSet(":", "::")
	for i, tc := range []struct {
		sep           strlist.Separator
		input         string
		offset, width int
	}{
		{strlist.UnixPath, "", -1, 0},
		{strlist.UnixPath, "abc", -1, 0},
		{strlist.UnixPath, "a/b", 1, 1},
		{strlist.UnixPath, "/a", 0, 1},
		{strlist.MustLiteral("::"), "a::b", 1, 2},
		{strlist.MustLiteral("::"), "a:b", -1, 0},
		{strlist.MustLiteral("::"), ":::", 0, 2},
		{strlist.CPP, "a->b::c", 1, 2},
		{strlist.CPP, "a.b::c", 1, 1},
		{strlist.CPP, "a::b.c", 1, 2},
		{strlist.CPP, "abc", -1, 0},
		{colons, "a::b", 1, 2},
		{colon, "a::b", 1, 1},
		{colons, "a:b::c", 1, 1},
		{strlist.MustLiteralSet("->", "-"), "a-b->c", 1, 1},
		{strlist.MustLiteralSet("bc", "abcd"), "xabcd", 1, 4},
		{strlist.MustLiteralSet("cd", "abc"), "abcd", 0, 3},
	} {
		offset, width := tc.sep.Index([]byte(tc.input))
		if got, want := offset, tc.offset; got != want {
			t.Errorf("%v: %v: %q: offset: got %v, want %v", i, tc.sep, tc.input, got, want)
		}
		if got, want := width, tc.width; got != want {
			t.Errorf("%v: %v: %q: width: got %v, want %v", i, tc.sep, tc.input, got, want)
		}
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%v: expected a panic", name)
		}
	}()
	fn()
}

func TestPreconditions(t *testing.T) {
	var invalid strlist.Separator
	if invalid.IsValid() {
		t.Errorf("zero value separator should not be valid")
	}
	buf := []byte("a/b")
	expectPanic(t, "index", func() { invalid.Index(buf) })
	expectPanic(t, "len", func() { strlist.Len(buf, invalid) })
	expectPanic(t, "position", func() { strlist.Position(buf, 1, invalid) })
	expectPanic(t, "element", func() { strlist.Element(buf, 1, invalid) })
	expectPanic(t, "range", func() { strlist.Range(buf, 0, 1, invalid) })
	expectPanic(t, "base", func() { strlist.Base(buf, invalid) })
	expectPanic(t, "iterator", func() { strlist.NewIterator(buf, invalid) })
	expectPanic(t, "negative element", func() { strlist.Element(buf, -1, strlist.UnixPath) })
	expectPanic(t, "negative from", func() { strlist.Range(buf, -1, 1, strlist.UnixPath) })
	expectPanic(t, "negative count", func() { strlist.Range(buf, 0, -1, strlist.UnixPath) })
	expectPanic(t, "must literal", func() { strlist.MustLiteral("") })
	expectPanic(t, "must literal set", func() { strlist.MustLiteralSet("a", "") })
}
