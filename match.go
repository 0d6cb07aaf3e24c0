// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist

import "bytes"

// Index returns the offset of the earliest match of the separator in buf
// and the width of the matching literal, or -1, 0 if there is no match.
// For a LiteralSet the literal listed first wins when several literals
// match at the same offset.
func (s Separator) Index(buf []byte) (offset, width int) {
	switch s.kind {
	case Char:
		if idx := bytes.IndexByte(buf, s.char); idx >= 0 {
			return idx, 1
		}
		return -1, 0
	case Literal:
		if idx := bytes.Index(buf, s.literals[0]); idx >= 0 {
			return idx, len(s.literals[0])
		}
		return -1, 0
	case LiteralSet:
		return s.indexSet(buf)
	}
	s.mustBeValid()
	return -1, 0
}

func (s Separator) indexSet(buf []byte) (offset, width int) {
	offset = -1
	for _, lit := range s.literals {
		if offset == 0 {
			break
		}
		window := buf
		if offset > 0 {
			// Only a match that starts before offset can win.
			if limit := offset - 1 + len(lit); limit < len(buf) {
				window = buf[:limit]
			}
		}
		if idx := bytes.Index(window, lit); idx >= 0 && (offset < 0 || idx < offset) {
			offset, width = idx, len(lit)
		}
	}
	if offset < 0 {
		return -1, 0
	}
	return offset, width
}

// leading returns the width of a separator match at the start of buf,
// or 0 if buf does not start with a separator.
func (s Separator) leading(buf []byte) int {
	if off, w := s.Index(buf); off == 0 {
		return w
	}
	return 0
}

// content returns buf up to, but not including, the first NUL byte.
func content(buf []byte) []byte {
	if idx := bytes.IndexByte(buf, 0); idx >= 0 {
		return buf[:idx]
	}
	return buf
}
