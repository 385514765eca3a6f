package syntax

import (
	"errors"
	"testing"

	"github.com/coregx/litegrep/charclass"
)

func TestTokenValueMatchLiteral(t *testing.T) {
	v := NewLiteral('a')
	if got := v.Match("abc"); got != 1 {
		t.Errorf("Match(%q) = %d, want 1", "abc", got)
	}
	if got := v.Match("bac"); got != 0 {
		t.Errorf("Match(%q) = %d, want 0", "bac", got)
	}
}

func TestTokenValueMatchWildcard(t *testing.T) {
	v := NewWildcard()
	if got := v.Match("x"); got != 1 {
		t.Errorf("Match(%q) = %d, want 1", "x", got)
	}
	if got := v.Match(""); got != 0 {
		t.Errorf("Match(\"\") = %d, want 0", got)
	}
}

func TestTokenValueMatchBracket(t *testing.T) {
	digit, _ := charclass.New("digit")
	bracket := NewBracket([]charclass.Class{charclass.NewLiteral('x'), digit}, false)

	if got := bracket.Match("x"); got != 1 {
		t.Errorf("Match(%q) = %d, want 1", "x", got)
	}
	if got := bracket.Match("5"); got != 1 {
		t.Errorf("Match(%q) = %d, want 1", "5", got)
	}
	if got := bracket.Match("y"); got != 0 {
		t.Errorf("Match(%q) = %d, want 0", "y", got)
	}
}

func TestTokenValueMatchNegatedBracket(t *testing.T) {
	bracket := NewBracket([]charclass.Class{charclass.NewLiteral('x')}, true)

	if got := bracket.Match("y"); got != 1 {
		t.Errorf("Match(%q) = %d, want 1", "y", got)
	}
	if got := bracket.Match("x"); got != 0 {
		t.Errorf("Match(%q) = %d, want 0", "x", got)
	}
	if got := bracket.Match(""); got != 0 {
		t.Errorf("Match(\"\") = %d, want 0", got)
	}
}

func TestNewTokenAnchorStartsLocked(t *testing.T) {
	tok := NewToken(NewStartAnchor())
	if tok.Rep != (RepetitionBound{Min: 0, Max: 0}) {
		t.Errorf("anchor token Rep = %+v, want (0,0)", tok.Rep)
	}
	if err := tok.SetRep(Optional()); !errors.Is(err, ErrInvalidRepetition) {
		t.Errorf("SetRep on anchor error = %v, want ErrInvalidRepetition", err)
	}
}

func TestTokenSetRepOnce(t *testing.T) {
	tok := NewToken(NewLiteral('a'))
	if err := tok.SetRep(ZeroOrMore()); err != nil {
		t.Fatalf("first SetRep error = %v", err)
	}
	if tok.Rep != (RepetitionBound{Min: 0, MaxUnbounded: true}) {
		t.Errorf("Rep = %+v, want ZeroOrMore", tok.Rep)
	}
	if err := tok.SetRep(Optional()); !errors.Is(err, ErrInvalidRepetition) {
		t.Errorf("second SetRep error = %v, want ErrInvalidRepetition", err)
	}
}

func TestTokenSetRepRejectsInvalidBound(t *testing.T) {
	tok := NewToken(NewLiteral('a'))
	if err := tok.SetRep(Between(5, 2)); !errors.Is(err, ErrInvalidRepetitionContent) {
		t.Errorf("SetRep(Between(5,2)) error = %v, want ErrInvalidRepetitionContent", err)
	}
}
