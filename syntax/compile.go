// Package syntax parses a pattern string into a Program: one or more
// alternative token sequences separated by `|`, each token carrying the
// repetition bound its trailing suffix (if any) specifies.
package syntax

import (
	"github.com/coregx/litegrep/internal/cursor"
)

// Alternative is one `|`-separated branch of a pattern: a sequence of
// tokens that must all match, in order, for the branch to match.
type Alternative struct {
	Tokens []Token
}

// Program is a fully compiled pattern: the input matches if any one of
// its Alternatives matches.
type Program struct {
	Alternatives []Alternative
}

// Compile parses pattern into a Program. It returns a *CompileError
// wrapping one of the sentinel errors in error.go when pattern is
// malformed.
func Compile(pattern string) (*Program, error) {
	it := cursor.New([]rune(pattern))
	var alternatives []Alternative
	var tokens []Token

	for {
		c, ok := it.Advance()
		if !ok {
			break
		}

		if isRepetitionMeta(c) {
			rep, found, err := ParseRepetitionSuffix(c, it)
			if err != nil {
				return nil, compileErr(pattern, it, err)
			}
			if found {
				if len(tokens) == 0 {
					return nil, compileErr(pattern, it, ErrInvalidRepetition)
				}
				if err := tokens[len(tokens)-1].SetRep(rep); err != nil {
					return nil, compileErr(pattern, it, err)
				}
				continue
			}
			// '{' without a valid range body falls through and is
			// compiled as an ordinary literal below.
		}

		if c == '|' {
			alternatives = append(alternatives, Alternative{Tokens: tokens})
			tokens = nil
			continue
		}

		tok, err := compileToken(c, it)
		if err != nil {
			return nil, compileErr(pattern, it, err)
		}
		if tok != nil {
			tokens = append(tokens, *tok)
		}
	}
	alternatives = append(alternatives, Alternative{Tokens: tokens})
	return &Program{Alternatives: alternatives}, nil
}

func compileErr(pattern string, it *cursor.Cursor[rune], err error) error {
	// The cursor indexes runes; CompileError.Pos is a byte offset.
	pos := 0
	runeIdx := 0
	for i := range pattern {
		if runeIdx == it.Pos() {
			pos = i
			break
		}
		runeIdx++
	}
	return &CompileError{Pattern: pattern, Pos: pos, Err: err}
}

func isRepetitionMeta(c rune) bool {
	return c == '?' || c == '*' || c == '+' || c == '{'
}

// compileToken builds the token for an ordinary (non-repetition, non-`|`)
// pattern character. A nil token with a nil error means the character
// was consumed but produced no token — currently only a redundant
// leading `^` takes that path.
func compileToken(c rune, it *cursor.Cursor[rune]) (*Token, error) {
	switch c {
	case '.':
		t := NewToken(NewWildcard())
		return &t, nil
	case '\\':
		r, ok := it.Advance()
		if !ok {
			return nil, ErrTrailingBackslash
		}
		t := NewToken(NewLiteral(r))
		return &t, nil
	case '^':
		return compileStartAnchor(it)
	case '$':
		t := NewToken(NewEndAnchor())
		return &t, nil
	case '[':
		t, err := ParseBracket(it)
		if err != nil {
			return nil, err
		}
		return &t, nil
	default:
		t := NewToken(NewLiteral(c))
		return &t, nil
	}
}

// compileStartAnchor decides what a `^` means from the character that
// precedes it in the raw pattern text: nothing or `|` make it a genuine
// anchor, another `^` is silently absorbed (a harmless duplicate), and
// anything else is a misplaced anchor.
func compileStartAnchor(it *cursor.Cursor[rune]) (*Token, error) {
	prev, ok := it.LookBack()
	if !ok {
		t := NewToken(NewStartAnchor())
		return &t, nil
	}
	switch prev {
	case '^':
		return nil, nil
	case '|':
		t := NewToken(NewStartAnchor())
		return &t, nil
	default:
		return nil, ErrMisplacedStartAnchor
	}
}
