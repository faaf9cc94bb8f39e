// Package iro writes a grammar in the notation of the Iro syntax highlighter
// designer (https://eeyo.io/iro/), which in turn exports highlighters for a
// number of editors.
package iro

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/mcodegen/internal/grammar"
	"github.com/dekarrin/mcodegen/internal/util"
	"github.com/dekarrin/rosed"
)

const (
	// Indent is one level of indentation.
	Indent = "   "

	// EqualPos is the width of the key column at the top level. Each level of
	// indentation takes 4 off of it.
	EqualPos = 30

	bannerRule  = "#-------------------------------------------------"
	bannerWidth = len(bannerRule) - 2
)

type iroWriter struct {
	*util.Writer
}

// Write renders g to w as an Iro grammar: a header, the styles block and the
// contexts block holding the entry context followed by the basic, directive
// and instruction contexts. The only errors returned are ones from writing
// to w.
func Write(w io.Writer, g *grammar.Grammar) error {
	iw := iroWriter{util.NewWriter(w, Indent)}

	iw.banner(wrapBanner(g.Header.Description)...)
	iw.header(g.Header)

	iw.banner("Styles")
	iw.Line("styles [] {")
	iw.In()
	for _, st := range g.Styles {
		iw.style(st)
	}
	iw.Out()
	iw.Line("}")
	iw.Line("")

	iw.banner("Main Context")
	iw.Line("contexts [] {")
	iw.In()
	for _, ctx := range g.Section(grammar.SectionEntry) {
		iw.context(ctx)
	}
	iw.Out()

	iw.banner("Auxiliary Contexts")
	iw.In()
	for _, s := range []grammar.Section{grammar.SectionBasic, grammar.SectionDirective, grammar.SectionInstruction} {
		for _, ctx := range g.Section(s) {
			iw.context(ctx)
		}
	}
	iw.Out()
	iw.Line("}")

	if err := iw.Err(); err != nil {
		return fmt.Errorf("write iro grammar: %w", err)
	}
	return nil
}

// wrapBanner splits text into lines that fit in a banner.
func wrapBanner(text string) []string {
	if text == "" {
		return nil
	}
	wrapped := rosed.Edit(text).Wrap(bannerWidth).String()
	return strings.Split(strings.TrimRight(wrapped, "\n"), "\n")
}

func (iw iroWriter) banner(lines ...string) {
	iw.Line(bannerRule)
	for _, l := range lines {
		iw.Line("# " + l)
	}
	iw.Line(bannerRule)
	iw.Line("")
}

// assign emits a "key = value" line with the key padded to the column of the
// current indentation level. op is "=" or `\=`.
func (iw iroWriter) assign(key, op, value string) {
	width := EqualPos - 4*iw.Level()
	if op == "=" {
		op = " ="
	}
	iw.Linef("%-*s %s %s", width, key, op, value)
}

func (iw iroWriter) header(hdr grammar.Header) {
	iw.assign("name", "=", hdr.Name)
	iw.assign("file_extensions []", "=", strings.Join(hdr.FileExtensions, ", ")+";")
	iw.assign("description", "=", fmt.Sprintf("\"%s\";", hdr.Description))
	iw.assign("textmate_uuid", "=", fmt.Sprintf("\"%s\";", hdr.TextMateUUID))
	iw.Line("")
}

func (iw iroWriter) style(st grammar.Style) {
	iw.Linef(".%s : style {", st.ID)
	iw.In()
	iw.assign("color", "=", st.Color)
	iw.assign("ace_scope", "=", st.TextMateScope)
	iw.assign("textmate_scope", "=", st.TextMateScope)
	iw.assign("pygments_scope", "=", st.PygmentsScope)
	iw.Out()
	iw.Line("}")
	iw.Line("")
}

func (iw iroWriter) context(ctx grammar.Context) {
	iw.Linef("%s : context {", ctx.Name)
	iw.In()

	switch ctx.Kind {
	case grammar.Pattern:
		iw.Line(": pattern {")
		iw.In()
		iw.assign("regex", `\=`, ctx.Regex)
		iw.assign("styles []", "=", styleList(ctx.Styles))
		iw.Out()
		iw.Line("}")
	case grammar.Push:
		iw.Line(": inline_push {")
		iw.In()
		iw.assign("regex", `\=`, ctx.Regex)
		iw.assign("styles []", "=", styleList(ctx.Styles))
		if ctx.EndsAtEOL() {
			iw.Line(": eol_pop {}")
		} else {
			iw.assign("default_style", "=", "."+ctx.Styles[0])
			iw.Line(": pop {")
			iw.In()
			iw.assign("regex", `\=`, ctx.End)
			iw.assign("styles []", "=", styleList(ctx.Styles))
			iw.Out()
			iw.Line("}")
		}
		iw.includes(ctx.Includes)
		iw.Out()
		iw.Line("}")
	case grammar.Container:
		iw.includes(ctx.Includes)
	}

	iw.Out()
	iw.Line("}")
	iw.Line("")
}

func (iw iroWriter) includes(names []string) {
	for _, name := range names {
		iw.Linef(": include \"%s\";", name)
	}
}

func styleList(ids []string) string {
	dotted := make([]string, len(ids))
	for i := range ids {
		dotted[i] = "." + ids[i]
	}
	return strings.Join(dotted, ", ") + ";"
}
