// Package matcher implements backtracking search of a compiled
// syntax.Program against line input.
package matcher

import (
	"github.com/coregx/litegrep/internal/asciiscan"
	"github.com/coregx/litegrep/internal/cursor"
	"github.com/coregx/litegrep/syntax"
)

// Matcher evaluates a compiled pattern against input lines.
type Matcher struct {
	prog *syntax.Program
}

// New wraps a compiled program for repeated matching.
func New(prog *syntax.Program) *Matcher {
	return &Matcher{prog: prog}
}

// MatchString reports whether value matches any alternative of the
// compiled pattern.
func (m *Matcher) MatchString(value string) bool {
	for _, alt := range m.prog.Alternatives {
		if matchAlternative(alt, value) {
			return true
		}
	}
	return false
}

// matchAlternative reports whether one `|`-branch matches value anywhere
// within it, or — if the branch is anchored — at its very start.
//
// An empty branch (no tokens at all) matches everything, including the
// empty string.
func matchAlternative(alt syntax.Alternative, value string) bool {
	if len(alt.Tokens) == 0 {
		return true
	}
	if alt.Tokens[0].Value.IsStartAnchor() {
		return matchFromStart(alt.Tokens, value)
	}
	return matchFromAnywhere(alt.Tokens, value)
}

// matchFromAnywhere tries matchFromStart at every rune boundary in value,
// in order. It does not try the position past the last rune: a branch
// that only matches at the very end of value (e.g. a lone `$`, or `x*`
// against the empty string) is not found by this path.
//
// When value is pure ASCII every byte index is already a rune boundary,
// so the loop walks bytes directly instead of paying for `range`'s
// per-iteration UTF-8 decode.
func matchFromAnywhere(tokens []syntax.Token, value string) bool {
	if asciiscan.IsASCII([]byte(value)) {
		for i := 0; i < len(value); i++ {
			if matchFromStart(tokens, value[i:]) {
				return true
			}
		}
		return false
	}
	for i := range value {
		if matchFromStart(tokens, value[i:]) {
			return true
		}
	}
	return false
}

// frame records one already-consumed repetition of a token: how many
// bytes it consumed, and whether that repetition can be given back during
// backtracking. Mandatory (below-minimum) repetitions are not
// backtrackable; greedy (above-minimum) ones are.
type frame struct {
	size          int
	backtrackable bool
}

// matchFromStart runs the three-phase backtracking match of tokens
// against value, anchored at value's first byte.
func matchFromStart(tokens []syntax.Token, value string) bool {
	it := cursor.New(tokens)
	index := 0
	var stack []frame

	for {
		tok, ok := it.Advance()
		if !ok {
			break
		}

		if tok.Value.IsEndAnchor() {
			return len(value) == index
		}

		min := tok.Rep.Min
		matchSize, cont := matchMandatory(min, tok, value, &index, it, &stack)
		if cont {
			continue
		}
		if matchSize == 0 && min != 0 {
			return false
		}

		if tok.Rep.MaxUnbounded {
			matchGreedyUnbounded(tok, value, &index, &stack)
		} else {
			matchGreedyBounded(min, tok.Rep.Max, tok, value, &index, &stack)
		}
	}
	return true
}

// matchMandatory matches tok against value exactly n times (tok's
// repetition minimum), starting at *index. If a required repetition
// fails to match, it tries to backtrack an earlier token to free up room
// instead of failing immediately: cont reports whether the caller should
// retry with the (rewound) token iterator rather than proceed to the
// greedy phase.
func matchMandatory(n int, tok syntax.Token, value string, index *int, tokens *cursor.Cursor[syntax.Token], stack *[]frame) (matchSize int, cont bool) {
	for i := 0; i < n; i++ {
		s := tok.Value.Match(value[*index:])
		if s == 0 {
			if size, ok := backtrack(stack, tokens); ok {
				*index -= size + matchSize
				cont = true
			}
			matchSize = 0
			break
		}
		matchSize += s
		*index += s
	}
	if matchSize != 0 {
		*stack = append(*stack, frame{size: matchSize, backtrackable: false})
	}
	return matchSize, cont
}

// backtrack gives back previously matched repetitions, most recent
// first, until it finds one marked backtrackable (a repetition beyond a
// token's mandatory minimum) or runs out. It rewinds tokens one position
// for the failing token and one more for each non-backtrackable frame it
// pops; the backtrackable frame it stops at does not rewind tokens.
func backtrack(stack *[]frame, tokens *cursor.Cursor[syntax.Token]) (int, bool) {
	backSize := 0
	tokens.Rewind()

	for len(*stack) > 0 {
		f := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]
		backSize += f.size
		if f.backtrackable {
			return backSize, true
		}
		tokens.Rewind()
	}
	return 0, false
}

// matchGreedyBounded consumes up to max total repetitions of tok
// (counting the n already matched in the mandatory phase), stopping the
// first time tok fails to match.
func matchGreedyBounded(n, max int, tok syntax.Token, value string, index *int, stack *[]frame) {
	matchSize := tok.Value.Match(value[*index:])
	evaluated := n
	for matchSize != 0 && evaluated < max {
		*index += matchSize
		*stack = append(*stack, frame{size: matchSize, backtrackable: true})
		matchSize = tok.Value.Match(value[*index:])
		evaluated++
	}
}

// matchGreedyUnbounded consumes tok repeatedly until it fails to match.
func matchGreedyUnbounded(tok syntax.Token, value string, index *int, stack *[]frame) {
	matchSize := tok.Value.Match(value[*index:])
	for matchSize != 0 {
		*index += matchSize
		*stack = append(*stack, frame{size: matchSize, backtrackable: true})
		matchSize = tok.Value.Match(value[*index:])
	}
}
