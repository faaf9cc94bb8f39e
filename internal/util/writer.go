package util

import (
	"fmt"
	"io"
	"strings"
)

// Writer emits indented lines of generated text to an underlying io.Writer.
// The first write error is kept and every later call becomes a no-op, so
// callers only need to check Err once at the end.
type Writer struct {
	w      io.Writer
	unit   string
	indent int
	err    error
}

// NewWriter returns a Writer that writes to w and uses unit as one level of
// indentation.
func NewWriter(w io.Writer, unit string) *Writer {
	return &Writer{w: w, unit: unit}
}

// In increases the indentation level by one.
func (w *Writer) In() {
	w.indent++
}

// Out decreases the indentation level by one. It has no effect at level zero.
func (w *Writer) Out() {
	if w.indent > 0 {
		w.indent--
	}
}

// Level returns the current indentation level.
func (w *Writer) Level() int {
	return w.indent
}

// Indent returns the indentation prefix for the current level.
func (w *Writer) Indent() string {
	return strings.Repeat(w.unit, w.indent)
}

// Line emits a line of text at the current indentation. An empty text emits
// an empty line with no indentation.
func (w *Writer) Line(text string) {
	if text == "" {
		w.Raw("\n")
		return
	}
	w.Raw(w.Indent() + text + "\n")
}

// Linef emits a line of text via a fmt format string.
func (w *Writer) Linef(format string, a ...interface{}) {
	w.Line(fmt.Sprintf(format, a...))
}

// Raw emits text exactly as given.
func (w *Writer) Raw(text string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, text)
}

// Err returns the first error encountered while writing, if any.
func (w *Writer) Err() error {
	return w.err
}
