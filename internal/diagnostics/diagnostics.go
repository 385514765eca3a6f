// Package diagnostics separates the two things egrep writes: matched
// lines go to stdout, everything about why a run failed goes to
// stderr as a structured log event.
package diagnostics

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger configured to write human-readable
// diagnostics to stderr, in the style of `grep: <message>`.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w in a compact console format.
func New(w io.Writer) Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return Logger{zl: zerolog.New(cw).With().Logger()}
}

// Stderr is the default Logger, writing to os.Stderr.
var Stderr = New(os.Stderr)

// Fail logs err as a "grep: <err>" diagnostic, mirroring the plain
// eprintln! egrep uses for its own error reporting.
func (l Logger) Fail(err error) {
	l.zl.Error().Msg("grep: " + err.Error())
}

// PrintMatches writes each matched line to w, one per line, with no
// further formatting — the match output itself is never a log event.
func PrintMatches(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
