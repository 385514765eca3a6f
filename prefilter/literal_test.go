package prefilter

import (
	"testing"

	"github.com/coregx/litegrep/syntax"
)

func mustCompile(t *testing.T, pattern string) *syntax.Program {
	t.Helper()
	prog, err := syntax.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return prog
}

func TestBuildSimpleLiteral(t *testing.T) {
	pf, ok := Build(mustCompile(t, "cat"))
	if !ok {
		t.Fatal("Build() ok = false, want true")
	}
	if !pf.CouldMatch([]byte("a cat sat")) {
		t.Errorf("CouldMatch(%q) = false, want true", "a cat sat")
	}
	if pf.CouldMatch([]byte("a dog sat")) {
		t.Errorf("CouldMatch(%q) = true, want false", "a dog sat")
	}
}

func TestBuildAnchoredLiteralIsTransparent(t *testing.T) {
	pf, ok := Build(mustCompile(t, "^cat"))
	if !ok {
		t.Fatal("Build() ok = false, want true")
	}
	if !pf.CouldMatch([]byte("catfish")) {
		t.Errorf("CouldMatch(catfish) = false, want true")
	}
}

func TestBuildAlternation(t *testing.T) {
	pf, ok := Build(mustCompile(t, "cat|dog"))
	if !ok {
		t.Fatal("Build() ok = false, want true")
	}
	if !pf.CouldMatch([]byte("my dog")) {
		t.Errorf("CouldMatch(my dog) = false, want true")
	}
	if pf.CouldMatch([]byte("my fish")) {
		t.Errorf("CouldMatch(my fish) = true, want false")
	}
}

func TestBuildRejectsWildcardLeadBranch(t *testing.T) {
	if _, ok := Build(mustCompile(t, "cat|.og")); ok {
		t.Error("Build() ok = true, want false (second branch has no literal lead)")
	}
}

func TestBuildRejectsRepeatedLeadToken(t *testing.T) {
	if _, ok := Build(mustCompile(t, "a*bc")); ok {
		t.Error("Build() ok = true, want false (leading token is repeated)")
	}
}
