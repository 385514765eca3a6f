package diagnostics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFailWritesGrepPrefixedMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Fail(errors.New("no such file or directory"))

	got := buf.String()
	if !strings.Contains(got, "grep:") || !strings.Contains(got, "no such file or directory") {
		t.Errorf("Fail output = %q, want it to mention %q and %q", got, "grep:", "no such file or directory")
	}
}

func TestPrintMatchesWritesOneLinePerMatch(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintMatches(&buf, []string{"first", "second"}); err != nil {
		t.Fatalf("PrintMatches error = %v", err)
	}
	want := "first\nsecond\n"
	if buf.String() != want {
		t.Errorf("PrintMatches wrote %q, want %q", buf.String(), want)
	}
}

func TestPrintMatchesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintMatches(&buf, nil); err != nil {
		t.Fatalf("PrintMatches error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("PrintMatches of no lines wrote %q, want empty", buf.String())
	}
}
