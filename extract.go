// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist

// Element overwrites buf with its n'th (0-based) element and returns it.
// The returned slice shares buf's storage. If n is out of range the
// result is empty. Element panics if n is negative.
func Element(buf []byte, n int, sep Separator) []byte {
	sep.mustBeValid()
	if n < 0 {
		panic("strlist: negative element index")
	}
	c := content(buf)
	start := elementStart(c, n, sep)
	if start == NotFound {
		return move(buf, 0, 0)
	}
	return move(buf, start, elementEnd(c, start, sep))
}

// Range overwrites buf with the count elements starting at element from,
// including the separators between them, and returns it. The returned
// slice shares buf's storage.
//
// A count of zero, or one that extends past the last element, selects all
// elements from 'from' through the end of buf. If from is out of range the
// result is empty. A range starting at element 0 retains any leading
// separator. Range panics if from or count is negative.
func Range(buf []byte, from, count int, sep Separator) []byte {
	sep.mustBeValid()
	if from < 0 || count < 0 {
		panic("strlist: negative range")
	}
	c := content(buf)
	start := 0
	if from > 0 {
		if start = elementStart(c, from, sep); start == NotFound {
			return move(buf, 0, 0)
		}
	}
	end := len(c)
	if last := from + count - 1; count > 0 && last >= from {
		if pos := elementStart(c, last, sep); pos != NotFound {
			end = elementEnd(c, pos, sep)
		}
	}
	return move(buf, start, end)
}

// move copies buf[start:end] to the start of buf and terminates it with
// a NUL byte if there is room to do so.
func move(buf []byte, start, end int) []byte {
	n := copy(buf, buf[start:end])
	if n < len(buf) {
		buf[n] = 0
	}
	return buf[:n]
}
