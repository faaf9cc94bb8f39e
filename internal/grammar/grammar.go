// Package grammar builds the syntax-highlighting model for HP-41 MCODE source:
// a fixed style table and a graph of named contexts with a single entry.
//
// The model is independent of any output notation. Serializers walk a built
// Grammar in the order its contexts were emitted; they do not need to know
// anything about the instruction catalog.
package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dekarrin/mcodegen/internal/mcerrors"
	"github.com/dekarrin/mcodegen/internal/util"
)

// Kind is the variant of a Context.
type Kind int

const (
	// Pattern is a context that matches a single regex and colors its groups.
	Pattern Kind = iota

	// Push is a context entered on a start regex that stays active until an
	// end regex or the end of the line.
	Push

	// Container is a context that only includes others.
	Container
)

func (k Kind) String() string {
	switch k {
	case Pattern:
		return "pattern"
	case Push:
		return "push"
	case Container:
		return "container"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Section is the part of the grammar a context is emitted in.
type Section int

const (
	SectionEntry Section = iota
	SectionBasic
	SectionDirective
	SectionInstruction
)

func (s Section) String() string {
	switch s {
	case SectionEntry:
		return "entry"
	case SectionBasic:
		return "basic"
	case SectionDirective:
		return "directive"
	case SectionInstruction:
		return "instruction"
	default:
		return fmt.Sprintf("Section(%d)", int(s))
	}
}

// Style is one entry of the style table.
type Style struct {
	ID            string
	Color         string
	TextMateScope string
	PygmentsScope string
}

// Context is a named lexical state.
//
// For a Pattern, Regex is the regex and Styles holds one style ID per group.
// For a Push, Regex is the start regex, Styles holds exactly one style ID, End
// is the end regex or empty for end of line, and Includes names the contexts
// active while pushed. A Container only has Includes.
type Context struct {
	Name     string
	Kind     Kind
	Section  Section
	Regex    string
	Styles   []string
	End      string
	Includes []string
}

// EndsAtEOL returns whether a push context is popped at the end of the line.
func (ctx Context) EndsAtEOL() bool {
	return ctx.Kind == Push && ctx.End == ""
}

// Header is the metadata written at the top of a grammar.
type Header struct {
	Name           string
	FileExtensions []string
	Description    string
	TextMateUUID   string
}

// Grammar is a complete highlighting definition.
type Grammar struct {
	Header   Header
	Styles   []Style
	Contexts []Context
	Entry    string
}

// Context returns the context with the given name.
func (g *Grammar) Context(name string) (Context, bool) {
	for i := range g.Contexts {
		if g.Contexts[i].Name == name {
			return g.Contexts[i], true
		}
	}
	return Context{}, false
}

// Section returns every context of the given section, in emission order.
func (g *Grammar) Section(s Section) []Context {
	var ctxs []Context
	for i := range g.Contexts {
		if g.Contexts[i].Section == s {
			ctxs = append(ctxs, g.Contexts[i])
		}
	}
	return ctxs
}

// Style returns the style with the given ID.
func (g *Grammar) Style(id string) (Style, bool) {
	for i := range g.Styles {
		if g.Styles[i].ID == id {
			return g.Styles[i], true
		}
	}
	return Style{}, false
}

// Reachable returns the names of every context that can be reached from the
// entry by following includes, the entry included, in alphabetical order.
// Include cycles are followed only once.
func (g *Grammar) Reachable() []string {
	visited := util.NewStringSet()
	if g.Entry == "" {
		return visited.Elements()
	}

	queue := []string{g.Entry}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if visited.Has(name) {
			continue
		}
		visited.Add(name)

		ctx, ok := g.Context(name)
		if !ok {
			continue
		}
		for _, inc := range ctx.Includes {
			if !visited.Has(inc) {
				queue = append(queue, inc)
			}
		}
	}

	return visited.Elements()
}

// Validate checks that g is a well-formed context graph: names are unique,
// exactly one container exists and it is the entry, every include and style
// reference resolves, every regex compiles, pattern contexts have at least one
// style and push contexts have exactly one. All violations are reported in a
// single error that matches mcerrors.ErrInvalidGraph.
func (g *Grammar) Validate() error {
	var errStr string

	styleIDs := util.NewStringSet()
	for _, st := range g.Styles {
		if st.ID == "" {
			errStr += "style with empty ID\n"
			continue
		}
		if styleIDs.Has(st.ID) {
			errStr += fmt.Sprintf("style %q defined more than once\n", st.ID)
		}
		styleIDs.Add(st.ID)
	}

	names := util.NewStringSet()
	for _, ctx := range g.Contexts {
		if ctx.Name == "" {
			errStr += "context with empty name\n"
			continue
		}
		if names.Has(ctx.Name) {
			errStr += fmt.Sprintf("context %q defined more than once\n", ctx.Name)
		}
		names.Add(ctx.Name)
	}

	if g.Entry == "" {
		errStr += "no entry context set\n"
	} else if !names.Has(g.Entry) {
		errStr += fmt.Sprintf("entry context %q is not defined\n", g.Entry)
	}

	var containers []string
	for _, ctx := range g.Contexts {
		for _, inc := range ctx.Includes {
			if !names.Has(inc) {
				errStr += fmt.Sprintf("context %q includes undefined context %q\n", ctx.Name, inc)
			}
		}
		for _, id := range ctx.Styles {
			if !styleIDs.Has(id) {
				errStr += fmt.Sprintf("context %q references undefined style %q\n", ctx.Name, id)
			}
		}

		switch ctx.Kind {
		case Pattern:
			if len(ctx.Styles) < 1 {
				errStr += fmt.Sprintf("pattern context %q has no styles\n", ctx.Name)
			}
			if len(ctx.Includes) > 0 {
				errStr += fmt.Sprintf("pattern context %q has includes\n", ctx.Name)
			}
			errStr += checkRegex(ctx.Name, "regex", ctx.Regex)
		case Push:
			if len(ctx.Styles) != 1 {
				errStr += fmt.Sprintf("push context %q has %d styles; must have exactly 1\n", ctx.Name, len(ctx.Styles))
			}
			errStr += checkRegex(ctx.Name, "regex", ctx.Regex)
			if ctx.End != "" {
				errStr += checkRegex(ctx.Name, "end regex", ctx.End)
			}
		case Container:
			containers = append(containers, ctx.Name)
			if ctx.Regex != "" || len(ctx.Styles) > 0 {
				errStr += fmt.Sprintf("container context %q has a regex or styles\n", ctx.Name)
			}
		default:
			errStr += fmt.Sprintf("context %q has unknown kind %s\n", ctx.Name, ctx.Kind)
		}
	}

	if len(containers) != 1 {
		errStr += fmt.Sprintf("found %d container contexts; must have exactly 1\n", len(containers))
	} else if containers[0] != g.Entry {
		errStr += fmt.Sprintf("container context %q is not the entry context\n", containers[0])
	}

	if len(errStr) > 0 {
		return fmt.Errorf("%w:\n%s", mcerrors.ErrInvalidGraph, strings.TrimSuffix(errStr, "\n"))
	}
	return nil
}

func checkRegex(ctxName, what, re string) string {
	if re == "" {
		return fmt.Sprintf("context %q has an empty %s\n", ctxName, what)
	}
	if _, err := regexp.Compile(re); err != nil {
		return fmt.Sprintf("context %q has a bad %s: %s\n", ctxName, what, err)
	}
	return ""
}
