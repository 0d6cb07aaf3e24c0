// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strlist

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// Kind identifies the form of a Separator.
type Kind int

const (
	invalidKind Kind = iota
	// Char is a single byte separator, e.g. '/'.
	Char
	// Literal is a multi-byte separator matched verbatim, e.g. "::".
	Literal
	// LiteralSet is an ordered set of literals, e.g. {"::", ".", "->"}.
	// When more than one literal matches at the same offset the one
	// listed first is used.
	LiteralSet
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Literal:
		return "literal"
	case LiteralSet:
		return "literal-set"
	}
	return "invalid"
}

var (
	// ErrEmptySeparator is returned when a separator is created without
	// any literals.
	ErrEmptySeparator = errors.New("empty separator")
	// ErrEmptyLiteral is returned when a literal is the empty string.
	ErrEmptyLiteral = errors.New("empty literal")
)

// Separator describes the boundary between the elements of a list.
// The zero value is not a valid Separator and all of the operations
// in this package will panic if given one.
type Separator struct {
	kind     Kind
	char     byte
	literals [][]byte
}

// Predefined separators.
var (
	UnixPath = NewChar('/')
	DOSPath  = NewChar('\\')
	UnixList = NewChar(':')
	CPP      = MustLiteralSet("::", ".", "->")
	Ext      = NewChar('.')
)

// NewChar returns a Separator for the single byte c.
func NewChar(c byte) Separator {
	return Separator{kind: Char, char: c}
}

// NewLiteral returns a Separator for the literal lit.
func NewLiteral(lit string) (Separator, error) {
	if len(lit) == 0 {
		return Separator{}, ErrEmptyLiteral
	}
	return Separator{kind: Literal, literals: [][]byte{[]byte(lit)}}, nil
}

// MustLiteral is like NewLiteral but panics on error.
func MustLiteral(lit string) Separator {
	s, err := NewLiteral(lit)
	if err != nil {
		panic(fmt.Sprintf("strlist: %v", err))
	}
	return s
}

// NewLiteralSet returns a Separator that matches any of the supplied
// literals. The order of the literals determines which one is used when
// more than one matches at the same offset. All empty literals are
// reported.
func NewLiteralSet(lits ...string) (Separator, error) {
	if len(lits) == 0 {
		return Separator{}, ErrEmptySeparator
	}
	errs := &errors.M{}
	literals := make([][]byte, 0, len(lits))
	for i, l := range lits {
		if len(l) == 0 {
			errs.Append(fmt.Errorf("literal %v: %w", i, ErrEmptyLiteral))
			continue
		}
		literals = append(literals, []byte(l))
	}
	if err := errs.Err(); err != nil {
		return Separator{}, err
	}
	return Separator{kind: LiteralSet, literals: literals}, nil
}

// MustLiteralSet is like NewLiteralSet but panics on error.
func MustLiteralSet(lits ...string) Separator {
	s, err := NewLiteralSet(lits...)
	if err != nil {
		panic(fmt.Sprintf("strlist: %v", err))
	}
	return s
}

// FromLiterals returns the most specific Separator for lits: a Char for
// a single one byte literal, a Literal for any other single literal and
// a LiteralSet otherwise.
func FromLiterals(lits ...string) (Separator, error) {
	switch {
	case len(lits) == 1 && len(lits[0]) == 1:
		return NewChar(lits[0][0]), nil
	case len(lits) == 1:
		return NewLiteral(lits[0])
	}
	return NewLiteralSet(lits...)
}

// Kind returns the kind of the separator.
func (s Separator) Kind() Kind {
	return s.kind
}

// Literals returns the literals matched by the separator, in order of
// precedence.
func (s Separator) Literals() []string {
	if s.kind == Char {
		return []string{string([]byte{s.char})}
	}
	r := make([]string, len(s.literals))
	for i, l := range s.literals {
		r[i] = string(l)
	}
	return r
}

// IsValid returns true if s was created by one of the constructors in
// this package.
func (s Separator) IsValid() bool {
	switch s.kind {
	case Char:
		return true
	case Literal, LiteralSet:
		return len(s.literals) > 0
	}
	return false
}

func (s Separator) String() string {
	lits := s.Literals()
	for i, l := range lits {
		lits[i] = strconv.Quote(l)
	}
	return s.kind.String() + "{" + strings.Join(lits, ", ") + "}"
}

func (s Separator) mustBeValid() {
	if !s.IsValid() {
		panic("strlist: invalid separator")
	}
}
