package main

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// openScript opens a file of calculator lines.
func openScript(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// newLineScanner splits r into lines. Input is UTF-8 unless it starts with
// a byte order mark, which is honoured (UTF-8 or UTF-16) and dropped.
func newLineScanner(r io.Reader) *bufio.Scanner {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return sc
}
