package syntax

import (
	"strings"

	"github.com/coregx/litegrep/charclass"
	"github.com/coregx/litegrep/internal/cursor"
)

// ParseBracket builds a bracket-expression token. it must be positioned
// immediately after the opening `[`; on success it has consumed through
// the matching closing `]`.
//
// A bracket expression is a sequence of literal characters and
// `[:name:]` POSIX classes, optionally negated by a leading `^`:
// `[abc]`, `[^abc]`, `[[:alpha:][:digit:]_]`.
func ParseBracket(it *cursor.Cursor[rune]) (Token, error) {
	content, err := bracketContent(it)
	if err != nil {
		return Token{}, err
	}
	if hasClassSyntaxError(content) {
		return Token{}, ErrInvalidClassSyntax
	}

	inner := cursor.New([]rune(content))
	negated, classes, err := firstBracketChar(inner)
	if err != nil {
		return Token{}, err
	}
	if err := restBracketContent(inner, &classes); err != nil {
		return Token{}, err
	}

	return NewToken(NewBracket(classes, negated)), nil
}

// bracketContent reads raw bracket content up to (not including) the
// closing `]`, tracking whether a `[:` class has been opened so that the
// `]` immediately after that class's closing `:` is kept as content (it
// closes the class) rather than taken as the bracket's own close.
func bracketContent(it *cursor.Cursor[rune]) (string, error) {
	var sb strings.Builder
	classOpen := false
	for {
		c, ok := it.Advance()
		if !ok {
			return "", ErrUnmatchedBracket
		}
		switch c {
		case ']':
			if canCloseBracket(classOpen, sb.String()) {
				return sb.String(), nil
			}
			sb.WriteRune(c)
			classOpen = false
		case '[':
			if next, ok := it.Peek(); ok && next == ':' {
				classOpen = true
			}
			sb.WriteRune(c)
		default:
			sb.WriteRune(c)
		}
	}
}

// canCloseBracket reports whether a `]` just read ends the bracket
// expression. It does unless a `[:` class is open and the previous
// character is `:` — in that case the `]` closes the class, not the
// bracket expression.
func canCloseBracket(classOpen bool, content string) bool {
	if !classOpen {
		return true
	}
	runes := []rune(content)
	if len(runes) == 0 {
		return true
	}
	return runes[len(runes)-1] != ':'
}

// hasClassSyntaxError reports the "[:name:]" typo: bracket content that
// is itself wrapped in colons (the user forgot the outer bracket pair),
// unless the content is nothing but colons.
func hasClassSyntaxError(content string) bool {
	runes := []rune(content)
	if len(runes) == 0 {
		return false
	}
	if runes[0] != ':' || runes[len(runes)-1] != ':' {
		return false
	}
	for _, r := range runes {
		if r != ':' {
			return true
		}
	}
	return false
}

// firstBracketChar handles the leading character of bracket content: a
// `^` marks negation, a `[` may open a POSIX class, anything else is a
// literal.
func firstBracketChar(inner *cursor.Cursor[rune]) (negated bool, classes []charclass.Class, err error) {
	c, ok := inner.Advance()
	if !ok {
		return false, nil, ErrUnmatchedBracket
	}
	switch c {
	case '^':
		negated = true
	case '[':
		if err := maybeNamedClass(inner, &classes); err != nil {
			return false, nil, err
		}
	default:
		classes = append(classes, charclass.NewLiteral(c))
	}
	return negated, classes, nil
}

// restBracketContent handles every character after the first: same rules
// as firstBracketChar, minus negation.
func restBracketContent(inner *cursor.Cursor[rune], classes *[]charclass.Class) error {
	for {
		c, ok := inner.Advance()
		if !ok {
			return nil
		}
		if c == '[' {
			if err := maybeNamedClass(inner, classes); err != nil {
				return err
			}
			continue
		}
		*classes = append(*classes, charclass.NewLiteral(c))
	}
}

// maybeNamedClass is called with inner just past a `[`. If the next
// character is `:`, the rest up to `:]` is read as a class name;
// otherwise the `[` (and whatever followed it, if anything) are literals.
func maybeNamedClass(inner *cursor.Cursor[rune], classes *[]charclass.Class) error {
	next, ok := inner.Advance()
	if !ok {
		*classes = append(*classes, charclass.NewLiteral('['))
		return nil
	}
	if next != ':' {
		*classes = append(*classes, charclass.NewLiteral('['), charclass.NewLiteral(next))
		return nil
	}

	name, err := namedClassContent(inner)
	if err != nil {
		return err
	}
	c, err := charclass.New(name)
	if err != nil {
		return ErrInvalidClassName
	}
	*classes = append(*classes, c)
	return nil
}

// namedClassContent reads a class name up to its closing `:]`, returning
// the name with the trailing `:` stripped.
func namedClassContent(inner *cursor.Cursor[rune]) (string, error) {
	var sb strings.Builder
	valid := false
	for {
		c, ok := inner.Advance()
		if !ok {
			break
		}
		if c == ']' {
			s := []rune(sb.String())
			if len(s) > 0 && s[len(s)-1] == ':' {
				valid = true
			}
			break
		}
		sb.WriteRune(c)
	}
	if !valid {
		return "", ErrUnmatchedBracket
	}
	s := []rune(sb.String())
	return string(s[:len(s)-1]), nil
}
