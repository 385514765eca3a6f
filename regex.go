// Package litegrep implements an extended-grep-style pattern matcher: a
// small regular expression dialect (literals, `.`, `^`/`$` anchors,
// bracket expressions with POSIX named classes, and `?`/`*`/`+`/`{n,m}`
// repetition) compiled to a backtracking matcher, plus line-oriented
// search over files.
//
// Basic usage:
//
//	re, err := litegrep.Compile(`^errors?:`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("error: disk full") {
//	    fmt.Println("matched!")
//	}
//
// Unlike coregex (the engine litegrep's plumbing is adapted from),
// litegrep has no capture groups, no Unicode character properties, and no
// Find/Replace API — egrep only ever asks "does this line match", so
// Regex exposes exactly that.
package litegrep

import (
	"github.com/coregx/litegrep/matcher"
	"github.com/coregx/litegrep/prefilter"
	"github.com/coregx/litegrep/syntax"
)

// Regex is a compiled pattern, safe for concurrent use by multiple
// goroutines.
type Regex struct {
	pattern string
	matcher *matcher.Matcher
	pre     *prefilter.LiteralPrefilter
	hasPre  bool
}

// Compile parses and compiles pattern. It returns a *syntax.CompileError
// if pattern is malformed.
func Compile(pattern string) (*Regex, error) {
	prog, err := syntax.Compile(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		pattern: pattern,
		matcher: matcher.New(prog),
	}
	re.pre, re.hasPre = prefilter.Build(prog)
	return re, nil
}

// MustCompile is like Compile but panics if pattern is invalid. It is
// intended for patterns known to be valid, such as those fixed at
// compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("litegrep: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// MatchString reports whether s contains a match of the pattern
// anywhere within it (or, for an anchored pattern, at the position the
// anchors require).
func (re *Regex) MatchString(s string) bool {
	if re.hasPre && !re.pre.CouldMatch([]byte(s)) {
		return false
	}
	return re.matcher.MatchString(s)
}

// Match is the []byte equivalent of MatchString.
func (re *Regex) Match(b []byte) bool {
	if re.hasPre && !re.pre.CouldMatch(b) {
		return false
	}
	return re.matcher.MatchString(string(b))
}

// String returns the source pattern used to compile re.
func (re *Regex) String() string {
	return re.pattern
}
