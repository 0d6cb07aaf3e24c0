// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist

// The shorthands below are defined in terms of Range:
//
//	      this/is/my/example/path
//	Root  <---------------->
//	Base                     <-->
//	Head  <-->
//	Tail       <---------------->

// Root overwrites buf with all but its last element.
func Root(buf []byte, sep Separator) []byte {
	n := Len(buf, sep)
	if n <= 1 {
		return move(buf, 0, 0)
	}
	return Range(buf, 0, n-1, sep)
}

// Base overwrites buf with its last element. Unlike Head, any leading
// separator is never retained.
func Base(buf []byte, sep Separator) []byte {
	switch n := Len(buf, sep); n {
	case 0:
		return move(buf, 0, 0)
	case 1:
		return Element(buf, 0, sep)
	default:
		return Range(buf, n-1, 1, sep)
	}
}

// Head overwrites buf with its first element, retaining any leading
// separator.
func Head(buf []byte, sep Separator) []byte {
	if Len(buf, sep) == 0 {
		return move(buf, 0, 0)
	}
	return Range(buf, 0, 1, sep)
}

// Tail overwrites buf with all but its first element.
func Tail(buf []byte, sep Separator) []byte {
	if Len(buf, sep) <= 1 {
		return move(buf, 0, 0)
	}
	return Range(buf, 1, 0, sep)
}
