// Package prefilter accelerates matching by ruling out lines that cannot
// possibly match before handing them to the backtracking matcher.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/litegrep/syntax"
)

// LiteralPrefilter rejects lines that contain none of a compiled
// pattern's required leading literals. Every alternative of the pattern
// must open with at least one un-repeated literal character (a start
// anchor is transparent to this: `^cat` contributes "cat") for a prefilter to be
// buildable at all — a branch that opens with `.`, a bracket expression,
// or a repeated atom makes no byte-level guarantee, so Build reports
// ok=false and the caller falls back to matching every line directly.
type LiteralPrefilter struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a LiteralPrefilter for prog, or reports ok=false if
// prog has a branch with no usable leading literal.
func Build(prog *syntax.Program) (pf *LiteralPrefilter, ok bool) {
	builder := ahocorasick.NewBuilder()
	for _, alt := range prog.Alternatives {
		lit := leadingLiteral(alt.Tokens)
		if len(lit) == 0 {
			return nil, false
		}
		builder.AddPattern(lit)
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &LiteralPrefilter{automaton: automaton}, true
}

// CouldMatch reports whether line might match the pattern this prefilter
// was built from. A false result is definitive — the pattern cannot
// match line — but a true result only means the matcher still has to be
// run; it is not itself a match.
func (pf *LiteralPrefilter) CouldMatch(line []byte) bool {
	return pf.automaton.IsMatch(line)
}

// leadingLiteral collects the run of un-repeated literal characters at
// the start of an alternative, skipping over a start anchor (which
// constrains position, not bytes) and stopping at the first end anchor,
// wildcard, bracket expression, or repeated token. The matcher accepts a
// branch as soon as it reaches `$`, so literals after it are not required.
func leadingLiteral(tokens []syntax.Token) []byte {
	var buf []byte
	for _, tok := range tokens {
		if tok.Value.IsEndAnchor() {
			break
		}
		if tok.Value.IsAnchor() {
			continue
		}
		if tok.Rep != syntax.Once() {
			break
		}
		r, ok := tok.Value.Literal()
		if !ok {
			break
		}
		buf = append(buf, []byte(string(r))...)
	}
	return buf
}
