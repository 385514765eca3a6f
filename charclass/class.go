// Package charclass implements the character-class predicates used inside
// bracket expressions: a literal rune and the seven named ASCII classes
// (alnum, alpha, digit, lower, upper, space, punct).
package charclass

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidClassName is returned by New when the class name is not one of
// the seven recognized names.
var ErrInvalidClassName = errors.New("charclass: invalid class name")

// kind tags the closed set of predicates a Class can hold.
type kind int

const (
	kindLiteral kind = iota
	kindAlnum
	kindAlpha
	kindDigit
	kindLower
	kindUpper
	kindSpace
	kindPunct
)

// Class is a single-character predicate: either a literal rune or one of
// the seven named ASCII classes.
type Class struct {
	kind    kind
	literal rune
}

var names = map[string]kind{
	"alnum": kindAlnum,
	"alpha": kindAlpha,
	"digit": kindDigit,
	"lower": kindLower,
	"upper": kindUpper,
	"space": kindSpace,
	"punct": kindPunct,
}

// New constructs a named character class (one of alnum, alpha, digit,
// lower, upper, space, punct). Any other name is ErrInvalidClassName.
func New(name string) (Class, error) {
	k, ok := names[name]
	if !ok {
		return Class{}, ErrInvalidClassName
	}
	return Class{kind: k}, nil
}

// NewLiteral constructs a class that matches exactly the rune r.
func NewLiteral(r rune) Class {
	return Class{kind: kindLiteral, literal: r}
}

// Match inspects the first rune of s and reports the number of UTF-8 bytes
// it consumes if the predicate holds, or 0 if s is empty or the first rune
// doesn't satisfy the predicate. All named classes are ASCII-only: a
// multi-byte rune never satisfies any of them.
func (c Class) Match(s string) int {
	if s == "" {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s)

	var ok bool
	switch c.kind {
	case kindLiteral:
		ok = r == c.literal
	case kindAlnum:
		ok = isASCIIAlnum(r)
	case kindAlpha:
		ok = isASCIIAlpha(r)
	case kindDigit:
		ok = isASCIIDigit(r)
	case kindLower:
		ok = r >= 'a' && r <= 'z'
	case kindUpper:
		ok = r >= 'A' && r <= 'Z'
	case kindSpace:
		ok = isASCIISpace(r)
	case kindPunct:
		ok = isASCIIPunct(r)
	}
	if !ok {
		return 0
	}
	return size
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlnum(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

// isASCIIPunct matches the POSIX [:punct:] class: printable ASCII,
// excluding space and alphanumerics.
func isASCIIPunct(r rune) bool {
	return r >= '!' && r <= '~' && !isASCIIAlnum(r)
}
