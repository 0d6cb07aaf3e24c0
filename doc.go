// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package strlist provides indexing, slicing and iteration over lists
// that are represented as delimiter separated text, such as file paths
// (a/b), file extensions (a.b), unix style option lists (a:b) and symbol
// hierarchies (a::b->c). No list is ever created, instead the operations
// rewrite the caller's buffer in place. The result of every operation is
// copied to the start of the buffer, NUL terminated if there is room,
// and returned as a slice that shares the buffer's storage. Since an
// element or range of elements can never be longer than the list that
// contains it the buffer never needs to grow.
//
// A buffer's contents end at its first NUL byte or at its length,
// whichever comes first. An empty buffer has zero elements, any other
// buffer has at least one. A separator at the very start of a buffer
// is treated as a boundary rather than as terminating an empty first
// element, so "/home/anon" contains two elements.
//
// Separators come in three forms, in decreasing order of speed:
//
//   - Char, a single byte, e.g. '/'
//   - Literal, a string matched verbatim, e.g. "::"
//   - LiteralSet, an ordered set of literals, e.g. {"::", ".", "->"}; the
//     earliest match wins and when several literals match at the same
//     offset the one listed first is used.
//
// Element and Range perform indexing; Root, Base, Head and Tail are
// shorthands for commonly used ranges. The basename of a file without
// its extensions can be obtained as follows:
//
//	name := []byte("this/is/my.file.example")
//	name = strlist.Head(strlist.Base(name, strlist.UnixPath), strlist.Ext)
//	// name is now "my"
//
// An Iterator, or All, returns each element in turn from a private copy
// of the list.
//
// None of the operations are safe for concurrent use on the same buffer.
package strlist
