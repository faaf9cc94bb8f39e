// Package pygments writes a grammar as a Python module holding a Pygments
// RegexLexer.
//
// Pygments has no notion of included contexts, so each push context reachable
// from the entry becomes its own lexer state with the contexts it includes
// flattened into it. The entry context becomes the "root" state.
package pygments

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/mcodegen/internal/grammar"
	"github.com/dekarrin/mcodegen/internal/util"
)

const (
	// Indent is one level of indentation.
	Indent = "    "

	// StateSuffix is appended to the name of a push context to give the name
	// of its lexer state.
	StateSuffix = "__1"

	eolRegex      = `(\n|\r|\r\n)`
	fallbackToken = "String"
	popToken      = "Comment"
)

// rule is one entry of a lexer state.
type rule struct {
	regex  string
	tokens []string
	next   string

	// verbatim rules are written without escaping, which lets Python
	// interpret the escapes in regex.
	verbatim bool
}

// Write renders g to w as a Python module defining a Pygments RegexLexer
// subclass. The lexer is named after the grammar header and matches files
// with the header's extensions. The only errors returned are ones from
// writing to w.
func Write(w io.Writer, g *grammar.Grammar) error {
	pw := util.NewWriter(w, Indent)

	className := LexerName(g.Header.Name) + "Lexer"

	pw.Line("from pygments.lexer import RegexLexer, bygroups")
	pw.Line("from pygments.token import *")
	pw.Line("")
	pw.Line("import re")
	pw.Line("")
	pw.Linef("__all__=['%s']", className)
	pw.Line("")
	pw.Linef("class %s(RegexLexer):", className)
	pw.In()
	pw.Linef("name = '%s'", LexerName(g.Header.Name))
	pw.Linef("aliases = ['%s']", g.Header.Name)
	pw.Linef("filenames = [%s]", filenameList(g.Header.FileExtensions))
	pw.Line("flags = re.MULTILINE | re.UNICODE")
	pw.Line("")
	pw.Line("tokens = {")
	pw.In()

	stateNames := []string{"root"}
	states := map[string][]rule{
		"root": flatten(g, []string{g.Entry}),
	}
	for _, name := range g.Reachable() {
		ctx, ok := g.Context(name)
		if !ok || ctx.Kind != grammar.Push {
			continue
		}
		stateName := name + StateSuffix
		stateNames = append(stateNames, stateName)
		states[stateName] = pushedState(g, ctx)
	}

	for i, stateName := range stateNames {
		pw.Linef("'%s' : [", stateName)
		pw.In()
		for _, r := range states[stateName] {
			pw.Line(r.String())
		}
		pw.Linef("('%s', %s),", eolRegex, fallbackToken)
		pw.Linef("('.', %s),", fallbackToken)
		pw.Out()
		if i+1 < len(stateNames) {
			pw.Line("], ")
		} else {
			pw.Line("]")
		}
	}

	pw.Out()
	pw.Line("}")
	pw.Line("")

	if err := pw.Err(); err != nil {
		return fmt.Errorf("write pygments lexer: %w", err)
	}
	return nil
}

// LexerName gives the Python-facing name of a lexer for the grammar with the
// given name: the name with its first letter upper-cased.
func LexerName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// pushedState gives the rules of the lexer state entered by ctx: the rule
// that pops it, then the rules of everything it includes.
func pushedState(g *grammar.Grammar, ctx grammar.Context) []rule {
	pop := rule{regex: eolRegex, tokens: []string{popToken}, next: "#pop", verbatim: true}
	if !ctx.EndsAtEOL() {
		pop = rule{regex: ctx.End, tokens: tokensFor(g, ctx.Styles), next: "#pop"}
	}
	return append([]rule{pop}, flatten(g, ctx.Includes)...)
}

// flatten gives the rules that match the named contexts. Containers are
// replaced by what they include and each context is used only once, so
// include cycles end.
func flatten(g *grammar.Grammar, names []string) []rule {
	visited := util.NewStringSet()
	var rules []rule

	var visit func(name string)
	visit = func(name string) {
		if visited.Has(name) {
			return
		}
		visited.Add(name)

		ctx, ok := g.Context(name)
		if !ok {
			return
		}

		switch ctx.Kind {
		case grammar.Pattern:
			rules = append(rules, rule{regex: ctx.Regex, tokens: tokensFor(g, ctx.Styles)})
		case grammar.Push:
			rules = append(rules, rule{regex: ctx.Regex, tokens: tokensFor(g, ctx.Styles), next: ctx.Name + StateSuffix})
		case grammar.Container:
			for _, inc := range ctx.Includes {
				visit(inc)
			}
		}
	}

	for _, name := range names {
		visit(name)
	}
	return rules
}

func tokensFor(g *grammar.Grammar, styleIDs []string) []string {
	toks := make([]string, len(styleIDs))
	for i, id := range styleIDs {
		toks[i] = "Text"
		if st, ok := g.Style(id); ok && st.PygmentsScope != "" {
			toks[i] = st.PygmentsScope
		}
	}
	return toks
}

func (r rule) String() string {
	regex := r.regex
	if !r.verbatim {
		regex = pyString(singleLine(regex))
	}
	s := fmt.Sprintf("(u'%s', bygroups(%s)", regex, strings.Join(r.tokens, ", "))
	if r.next != "" {
		s += fmt.Sprintf(", '%s'", r.next)
	}
	return s + "),"
}

// singleLine keeps negated character classes of re from matching a line
// break. Pygments lexes the whole text at once, so without this a class such
// as [^)] runs on into the next line.
func singleLine(re string) string {
	var sb strings.Builder

	inClass := false
	negated := false
	classStart := 0
	for i := 0; i < len(re); i++ {
		ch := re[i]

		if ch == '\\' && i+1 < len(re) {
			sb.WriteByte(ch)
			sb.WriteByte(re[i+1])
			i++
			continue
		}

		if !inClass {
			if ch == '[' {
				inClass = true
				negated = i+1 < len(re) && re[i+1] == '^'
				classStart = i + 1
				if negated {
					classStart++
				}
			}
			sb.WriteByte(ch)
			continue
		}

		// a ']' first in the class is a literal
		if ch == ']' && i > classStart {
			if negated {
				sb.WriteString(`\n\r`)
			}
			inClass = false
		}
		sb.WriteByte(ch)
	}

	return sb.String()
}

// pyString escapes s for use between single quotes in Python source.
func pyString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`)
	return r.Replace(s)
}

func filenameList(exts []string) string {
	quoted := make([]string, len(exts))
	for i := range exts {
		quoted[i] = fmt.Sprintf("'*.%s'", exts[i])
	}
	return strings.Join(quoted, ", ")
}
