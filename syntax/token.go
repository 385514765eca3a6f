package syntax

import (
	"unicode/utf8"

	"github.com/coregx/litegrep/charclass"
)

// valueKind tags the closed set of shapes a TokenValue can take.
type valueKind int

const (
	valLiteral valueKind = iota
	valWildcard
	valStartAnchor
	valEndAnchor
	valBracket
)

// TokenValue is the payload half of a Token: what has to be true of the
// input for this token to consume a character (or, for the two anchors, a
// position).
type TokenValue struct {
	kind    valueKind
	literal rune
	classes []charclass.Class
	negated bool
}

// NewLiteral builds a value that matches exactly the rune r.
func NewLiteral(r rune) TokenValue {
	return TokenValue{kind: valLiteral, literal: r}
}

// NewWildcard builds a value that matches any single rune (`.`).
func NewWildcard() TokenValue {
	return TokenValue{kind: valWildcard}
}

// NewStartAnchor builds the `^` value: matches a position, not a rune.
func NewStartAnchor() TokenValue {
	return TokenValue{kind: valStartAnchor}
}

// NewEndAnchor builds the `$` value: matches a position, not a rune.
func NewEndAnchor() TokenValue {
	return TokenValue{kind: valEndAnchor}
}

// NewBracket builds a bracket-expression value: matches any rune accepted
// by one of classes, or (if negated) any rune accepted by none of them.
func NewBracket(classes []charclass.Class, negated bool) TokenValue {
	return TokenValue{kind: valBracket, classes: classes, negated: negated}
}

// IsAnchor reports whether this value matches a position rather than a
// rune.
func (v TokenValue) IsAnchor() bool {
	return v.kind == valStartAnchor || v.kind == valEndAnchor
}

// IsStartAnchor reports whether this value is `^`.
func (v TokenValue) IsStartAnchor() bool {
	return v.kind == valStartAnchor
}

// IsEndAnchor reports whether this value is `$`.
func (v TokenValue) IsEndAnchor() bool {
	return v.kind == valEndAnchor
}

// Literal returns the rune this value matches and true, if it is a plain
// literal (not a wildcard, anchor, or bracket expression).
func (v TokenValue) Literal() (rune, bool) {
	if v.kind != valLiteral {
		return 0, false
	}
	return v.literal, true
}

// Match inspects the first rune of s and reports how many bytes it
// consumes if this value accepts it, or 0 otherwise. Match must not be
// called on an anchor value; anchors are resolved against cursor position
// by the matcher, not against input bytes.
func (v TokenValue) Match(s string) int {
	switch v.kind {
	case valLiteral:
		r, size := utf8.DecodeRuneInString(s)
		if s == "" || r != v.literal {
			return 0
		}
		return size
	case valWildcard:
		if s == "" {
			return 0
		}
		_, size := utf8.DecodeRuneInString(s)
		return size
	case valBracket:
		return v.matchBracket(s)
	default:
		return 0
	}
}

func (v TokenValue) matchBracket(s string) int {
	if s == "" {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s)

	matched := false
	classSize := 0
	for _, c := range v.classes {
		if n := c.Match(s); n > 0 {
			matched = true
			classSize = n
			break
		}
	}

	if v.negated {
		if matched {
			return 0
		}
		return size
	}
	if matched {
		return classSize
	}
	return 0
}

// Token pairs a TokenValue with the repetition bound it must satisfy. The
// bound starts locked (0,0) for anchors, since `^` and `$` are positional
// assertions that can never be repeated; any later attempt to repeat an
// already-modified or anchor token is rejected by SetRep.
type Token struct {
	Value  TokenValue
	Rep    RepetitionBound
	locked bool
}

// NewToken builds a token with the default repetition (exactly once),
// except for anchors, which are born locked at (0,0) and cannot later
// take a repetition suffix.
func NewToken(v TokenValue) Token {
	if v.IsAnchor() {
		return Token{Value: v, Rep: Locked(), locked: true}
	}
	return Token{Value: v, Rep: Once()}
}

// SetRep applies a repetition suffix (`?`, `*`, `+`, `{...}`) parsed
// immediately after this token. It fails with ErrInvalidRepetition if the
// token has already taken a repetition suffix or is an anchor: a
// repetition suffix can modify the repetition of the token that precedes
// it exactly once.
func (t *Token) SetRep(rep RepetitionBound) error {
	if t.locked {
		return ErrInvalidRepetition
	}
	if !rep.valid() {
		return ErrInvalidRepetitionContent
	}
	t.Rep = rep
	t.locked = true
	return nil
}
