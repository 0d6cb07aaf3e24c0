// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist

// NotFound is returned by Position when the requested element does
// not exist.
const NotFound = -1

// Position returns the offset in buf of the start of the n'th (0-based)
// element, that is, the offset immediately following the n'th separator,
// or NotFound if buf contains fewer than n separators. Element 0 always
// starts at offset 0, including when buf starts with a separator.
func Position(buf []byte, n int, sep Separator) int {
	sep.mustBeValid()
	if n < 0 {
		return NotFound
	}
	return position(content(buf), n, sep)
}

func position(buf []byte, n int, sep Separator) int {
	pos := 0
	for ; n > 0; n-- {
		idx, width := sep.Index(buf[pos:])
		if idx < 0 {
			return NotFound
		}
		pos += idx + width
	}
	return pos
}

// elementStart is like position except that a leading separator is
// treated as a boundary rather than as terminating an empty element.
func elementStart(buf []byte, n int, sep Separator) int {
	lead := sep.leading(buf)
	pos := position(buf[lead:], n, sep)
	if pos == NotFound {
		return NotFound
	}
	return lead + pos
}

// elementEnd returns the offset of the first separator at or after start,
// or len(buf) if there is none.
func elementEnd(buf []byte, start int, sep Separator) int {
	if idx, _ := sep.Index(buf[start:]); idx >= 0 {
		return start + idx
	}
	return len(buf)
}

// Len returns the number of elements in buf. An empty buffer has no
// elements, any other buffer has at least one. A leading separator
// does not introduce an empty first element.
func Len(buf []byte, sep Separator) int {
	sep.mustBeValid()
	buf = content(buf)
	if len(buf) == 0 {
		return 0
	}
	buf = buf[sep.leading(buf):]
	n := 1
	for {
		idx, width := sep.Index(buf)
		if idx < 0 {
			return n
		}
		buf = buf[idx+width:]
		n++
	}
}
