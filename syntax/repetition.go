package syntax

import (
	"strconv"
	"strings"

	"github.com/coregx/litegrep/internal/cursor"
)

// ParseRepetitionSuffix inspects c, the character immediately following an
// atom, and reports the repetition it introduces. For `*`, `?`, and `+`
// the answer is immediate. For `{` it looks ahead in it for a `{n}`,
// `{n,}`, `{,m}`, or `{n,m}` range: on success it advances it past the
// closing `}`; if what follows `{` isn't a well-formed range it leaves it
// untouched and reports found=false, so the caller can fall back to
// treating `{` as a literal. A body of digits and commas that is empty,
// holds more than one comma, or has min > max is instead
// ErrInvalidRepetitionContent. Any other character reports found=false
// without touching it at all.
func ParseRepetitionSuffix(c rune, it *cursor.Cursor[rune]) (bound RepetitionBound, found bool, err error) {
	switch c {
	case '*':
		return ZeroOrMore(), true, nil
	case '?':
		return Optional(), true, nil
	case '+':
		return OneOrMore(), true, nil
	case '{':
		return parseBraceRange(it)
	default:
		return RepetitionBound{}, false, nil
	}
}

// parseBraceRange handles the content after an already-consumed `{`.
func parseBraceRange(it *cursor.Cursor[rune]) (RepetitionBound, bool, error) {
	content, ok, err := braceRangeContent(it)
	if err != nil {
		return RepetitionBound{}, false, err
	}
	if !ok {
		return RepetitionBound{}, false, nil
	}

	min, max, maxUnbounded := rangeValues(strings.Split(content, ","))
	if !maxUnbounded && min > max {
		return RepetitionBound{}, false, ErrInvalidRepetitionContent
	}
	return RepetitionBound{Min: min, Max: max, MaxUnbounded: maxUnbounded}, true, nil
}

// braceRangeContent scans forward from right after `{` looking for a
// well-formed `n`, `n,`, `,m`, or `n,m` body terminated by `}`: digits and
// at most one comma. If the scan runs off the end of it, or hits a
// character that can't belong to a range, it rewinds it back to exactly
// where it started and reports not-found (no error — `{` falls back to a
// literal). A range body with more than one comma, or with nothing
// between `{` and `}` at all, is ErrInvalidRepetitionContent.
func braceRangeContent(it *cursor.Cursor[rune]) (string, bool, error) {
	var sb strings.Builder
	steps := 0
	commas := 0
	for {
		if commas > 1 {
			return "", false, ErrInvalidRepetitionContent
		}
		c, ok := it.Advance()
		if !ok {
			rewindN(it, steps)
			return "", false, nil
		}
		steps++
		switch {
		case c >= '0' && c <= '9':
			sb.WriteRune(c)
		case c == ',':
			commas++
			sb.WriteRune(c)
		case c == '}':
			if commas >= 2 || steps == 1 {
				return "", false, ErrInvalidRepetitionContent
			}
			return sb.String(), true, nil
		default:
			rewindN(it, steps)
			return "", false, nil
		}
	}
}

func rewindN(it *cursor.Cursor[rune], n int) {
	for i := 0; i < n; i++ {
		it.Rewind()
	}
}

// rangeValues splits a validated "n", "n,", ",m", or "n,m" body (as
// produced by braceRangeContent, so always digits and commas) into its
// min and max. An absent min is 0; an absent max is unbounded.
func rangeValues(parts []string) (min, max int, maxUnbounded bool) {
	if len(parts) == 1 {
		n, _ := strconv.Atoi(parts[0])
		return n, n, false
	}
	if parts[0] != "" {
		min, _ = strconv.Atoi(parts[0])
	}
	if parts[1] == "" {
		maxUnbounded = true
	} else {
		max, _ = strconv.Atoi(parts[1])
	}
	return min, max, maxUnbounded
}
