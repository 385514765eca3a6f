package syntax

// RepetitionBound is an immutable (min, max) repetition range. Min is
// always a concrete non-negative count — an unbounded lower bound (as in
// {,m}) collapses to 0, since "at least nothing" and "no lower limit" are
// the same constraint. Max is either a concrete count or unbounded (no
// upper limit), tracked by MaxUnbounded.
type RepetitionBound struct {
	Min          int
	Max          int
	MaxUnbounded bool
}

// Once is the default repetition of a freshly emitted atom: exactly one
// occurrence.
func Once() RepetitionBound {
	return RepetitionBound{Min: 1, Max: 1}
}

// Locked is the repetition anchors are born with: zero occurrences,
// immutable (the matcher treats it as a positional no-op rather than an
// atom to repeat).
func Locked() RepetitionBound {
	return RepetitionBound{Min: 0, Max: 0}
}

// Optional is `?`: zero or one occurrence.
func Optional() RepetitionBound {
	return RepetitionBound{Min: 0, Max: 1}
}

// ZeroOrMore is `*`: zero or unbounded occurrences.
func ZeroOrMore() RepetitionBound {
	return RepetitionBound{Min: 0, MaxUnbounded: true}
}

// OneOrMore is `+`: one or unbounded occurrences.
func OneOrMore() RepetitionBound {
	return RepetitionBound{Min: 1, MaxUnbounded: true}
}

// Exactly is `{n}`: exactly n occurrences.
func Exactly(n int) RepetitionBound {
	return RepetitionBound{Min: n, Max: n}
}

// AtLeast is `{n,}`: n or more occurrences.
func AtLeast(n int) RepetitionBound {
	return RepetitionBound{Min: n, MaxUnbounded: true}
}

// AtMost is `{,m}`: zero to m occurrences.
func AtMost(m int) RepetitionBound {
	return RepetitionBound{Min: 0, Max: m}
}

// Between is `{n,m}`: n to m occurrences.
func Between(n, m int) RepetitionBound {
	return RepetitionBound{Min: n, Max: m}
}

// valid reports whether the bound is internally consistent: when both
// sides are finite, min must not exceed max.
func (b RepetitionBound) valid() bool {
	return b.MaxUnbounded || b.Min <= b.Max
}
