// Package lineio reads a file into its constituent lines, reporting
// precisely which stage of the read failed: the file could not be
// opened at all, or a specific line within it could not be read.
package lineio

import (
	"bufio"
	"fmt"
	"os"
)

// PathError indicates the named file could not be opened.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: no such file or directory", e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// LineError indicates line Line (1-based) of Path could not be read,
// for example because reading the file failed part-way, or because the
// line exceeds the scanner's buffer. Lines are not checked for valid
// UTF-8.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("cannot read file '%s' at line %d", e.Path, e.Line)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadLines returns every line of the file at path, in order. It
// returns a *PathError if the file cannot be opened, or a *LineError
// naming the first line that could not be read.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &LineError{Path: path, Line: lineNo + 1, Err: err}
	}
	return lines, nil
}
