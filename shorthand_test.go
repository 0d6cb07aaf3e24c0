// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist_test

import (
	"testing"

	"cloudeng.io/strlist"
)

func TestShorthands(t *testing.T) {
	for _, tc := range []struct {
		sep                    strlist.Separator
		input                  string
		root, base, head, tail string
	}{
		{strlist.UnixPath, "", "", "", "", ""},
		{strlist.CPP, "", "", "", "", ""},
		{strlist.UnixPath, "abc", "", "abc", "abc", ""},
		{strlist.CPP, "abc", "", "abc", "abc", ""},
		{strlist.UnixPath, homePath, "/home/anon/Swap/strlist", "strlist.h", "/home", "anon/Swap/strlist/strlist.h"},
		{strlist.UnixPath, "this/is/my/example/path", "this/is/my/example", "path", "this", "is/my/example/path"},
		{strlist.UnixPath, "a/b/", "a/b", "", "a", "b/"},
		{strlist.UnixPath, "a/b", "a", "b", "a", "b"},
		{strlist.UnixPath, "/usr", "", "usr", "/usr", ""},
		{strlist.UnixPath, "/", "", "", "/", ""},
		{strlist.UnixPath, "/usr/bin", "/usr", "bin", "/usr", "bin"},
		{strlist.CPP, "::a", "", "a", "::a", ""},
		{strlist.MustLiteral("::"), "::a", "", "a", "::a", ""},
		{strlist.DOSPath, `C:\Users\anon`, `C:\Users`, "anon", `C:`, `Users\anon`},
		{strlist.Ext, "archive.tar.gz", "archive.tar", "gz", "archive", "tar.gz"},
		{strlist.CPP, cppSym, "a::b.c->d", "e", "a", "b.c->d.e"},
		{strlist.UnixList, unixPATH, ".:/bin/:/usr/bin:/opt/bin", "/usr/sbin", ".", "/bin/:/usr/bin:/opt/bin:/usr/sbin"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			for _, op := range []struct {
				name string
				fn   func([]byte, strlist.Separator) []byte
				want string
			}{
				{"root", strlist.Root, tc.root},
				{"base", strlist.Base, tc.base},
				{"head", strlist.Head, tc.head},
				{"tail", strlist.Tail, tc.tail},
			} {
				buf := []byte(tc.input)
				result := op.fn(buf, tc.sep)
				if got, want := string(result), op.want; got != want {
					t.Errorf("%v(%q, %v): got %q, want %q", op.name, tc.input, tc.sep, got, want)
				}
				assertTerminated(t, op.name, buf, result)
			}
		})
	}
}

func TestChaining(t *testing.T) {
	name := []byte("this/is/my.file.example")
	got := strlist.Head(strlist.Base(name, strlist.UnixPath), strlist.Ext)
	if got, want := string(got), "my"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := string(name[:3]), "my\x00"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	sym := []byte("ns::outer.inner->field")
	got = strlist.Tail(strlist.Root(sym, strlist.CPP), strlist.CPP)
	if got, want := string(got), "outer.inner"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
