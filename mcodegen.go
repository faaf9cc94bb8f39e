// Package mcodegen generates artifacts describing the HP-41 MCODE instruction
// set from the compiled-in instruction catalog: a syntax-highlighting grammar in
// one of several notations, and a report of mnemonics grouped by opcode and
// operand type.
//
// Generation is a single pass. The catalog is classified by operand type, each
// group of mnemonics becomes a longest-first alternation pattern, the patterns
// and the fixed lexical rules are assembled into a context graph, and the graph
// is serialized.
package mcodegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/mcodegen/internal/catalog"
	"github.com/dekarrin/mcodegen/internal/grammar"
	"github.com/dekarrin/mcodegen/internal/iro"
	"github.com/dekarrin/mcodegen/internal/mcerrors"
	"github.com/dekarrin/mcodegen/internal/pygments"
	"github.com/dekarrin/mcodegen/internal/report"
)

// Format is a notation a grammar can be written in.
type Format int

const (
	// FormatIro is the notation of the Iro highlighter designer.
	FormatIro Format = iota

	// FormatPygments is a Python module holding a Pygments RegexLexer.
	FormatPygments
)

func (f Format) String() string {
	switch f {
	case FormatIro:
		return "iro"
	case FormatPygments:
		return "pygments"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Formats returns every supported Format.
func Formats() []Format {
	return []Format{FormatIro, FormatPygments}
}

// ParseFormat parses a Format from its name. Case is ignored. If s does not
// name a supported format, the returned error matches mcerrors.ErrUnknownFormat.
func ParseFormat(s string) (Format, error) {
	check := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats() {
		if check == f.String() {
			return f, nil
		}
	}

	names := make([]string, len(Formats()))
	for i, f := range Formats() {
		names[i] = f.String()
	}
	return FormatIro, mcerrors.Userf(mcerrors.ErrUnknownFormat, "%q is not a grammar format; must be one of %s", s, strings.Join(names, ", "))
}

// BuildGrammar builds the grammar for the built-in instruction catalog with the
// given header metadata.
func BuildGrammar(hdr grammar.Header) (*grammar.Grammar, error) {
	cat := catalog.Builtin()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("instruction catalog: %w", err)
	}
	return grammar.Build(cat, hdr)
}

// WriteGrammar writes g to w in the given format.
func WriteGrammar(w io.Writer, g *grammar.Grammar, f Format) error {
	switch f {
	case FormatIro:
		return iro.Write(w, g)
	case FormatPygments:
		return pygments.Write(w, g)
	default:
		return mcerrors.Userf(mcerrors.ErrUnknownFormat, "%s is not a grammar format", f)
	}
}

// WriteReport writes the opcode report of the built-in instruction catalog to
// w, either as semicolon-separated CSV or, if table is set, as a bordered text
// table.
func WriteReport(w io.Writer, table bool) error {
	rows := report.Build(catalog.Builtin())
	if table {
		return report.WriteTable(w, rows)
	}
	return report.WriteCSV(w, rows)
}
