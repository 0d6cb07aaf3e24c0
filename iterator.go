// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist

import (
	"iter"

	"cloudeng.io/text/textutil"
)

// Iterator returns the elements of a list in order. It operates on a
// private copy of the list and so never modifies the caller's buffer.
// Each element is located relative to the end of the previous one
// rather than by rescanning from the start of the list.
// An Iterator cannot be reset, create a new one instead.
type Iterator struct {
	buf  []byte
	sep  Separator
	len  int
	idx  int
	cur  int
	next int
}

// NewIterator returns an Iterator over the elements of buf.
func NewIterator(buf []byte, sep Separator) *Iterator {
	sep.mustBeValid()
	c := content(buf)
	it := &Iterator{
		buf: make([]byte, len(c)),
		sep: sep,
	}
	copy(it.buf, c)
	it.len = Len(it.buf, sep)
	it.next = sep.leading(it.buf)
	return it
}

// Next returns the next element and true, or "" and false once all
// elements have been returned. The returned string refers to the
// Iterator's copy of the list and does not allocate.
func (it *Iterator) Next() (string, bool) {
	if it.idx >= it.len {
		return "", false
	}
	it.cur = it.next
	end := len(it.buf)
	it.next = end
	if idx, width := it.sep.Index(it.buf[it.cur:]); idx >= 0 {
		end = it.cur + idx
		it.next = end + width
	}
	it.idx++
	return textutil.BytesToString(it.buf[it.cur:end:end]), true
}

// Len returns the total number of elements in the list.
func (it *Iterator) Len() int {
	return it.len
}

// Index returns the index of the element that the next call to Next
// will return.
func (it *Iterator) Index() int {
	return it.idx
}

// All returns an iterator that yields the 0-based index and contents of
// each element of buf.
//
//	for i, elem := range strlist.All([]byte("a:b:c"), strlist.UnixList) {
//	  fmt.Println(i, elem)
//	}
func All(buf []byte, sep Separator) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		it := NewIterator(buf, sep)
		for {
			i := it.Index()
			elem, ok := it.Next()
			if !ok || !yield(i, elem) {
				return
			}
		}
	}
}
