package pygments

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dekarrin/mcodegen/internal/catalog"
	"github.com/dekarrin/mcodegen/internal/grammar"
	"github.com/stretchr/testify/assert"
)

const smallGrammarLexer = `from pygments.lexer import RegexLexer, bygroups
from pygments.token import *

import re

__all__=['Hp41mcodeLexer']

class Hp41mcodeLexer(RegexLexer):
    name = 'Hp41mcode'
    aliases = ['hp41mcode']
    filenames = ['*.src']
    flags = re.MULTILINE | re.UNICODE

    tokens = {
        'root' : [
            (u'(;.*)', bygroups(Comment)),
            (u'(\\.(HP|JDA|ZENCODE))', bygroups(Name.Builtin), 'simple_directive__1'),
            (u'(\\{)', bygroups(Name.Builtin), 'block__1'),
            (u'(\\([^\\)\\n\\r]+\\))', bygroups(Name.Label)),
            ('(\n|\r|\r\n)', String),
            ('.', String),
        ], 
        'block__1' : [
            (u'(\\})', bygroups(Name.Builtin), '#pop'),
            (u'(;.*)', bygroups(Comment)),
            (u'(\\.(HP|JDA|ZENCODE))', bygroups(Name.Builtin), 'simple_directive__1'),
            ('(\n|\r|\r\n)', String),
            ('.', String),
        ], 
        'simple_directive__1' : [
            (u'(\n|\r|\r\n)', bygroups(Comment), '#pop'),
            (u'(;.*)', bygroups(Comment)),
            (u'(\\.(HP|JDA|ZENCODE))', bygroups(Name.Builtin), 'simple_directive__1'),
            (u'(\\{)', bygroups(Name.Builtin), 'block__1'),
            ('(\n|\r|\r\n)', String),
            ('.', String),
        ]
    }

`

func smallGrammar() *grammar.Grammar {
	return &grammar.Grammar{
		Header: grammar.DefaultHeader(),
		Styles: []grammar.Style{
			{ID: "comment", Color: "grey", TextMateScope: "comment", PygmentsScope: "Comment"},
			{ID: "directive", Color: "violet", TextMateScope: "keyword.other", PygmentsScope: "Name.Builtin"},
			{ID: "label", Color: "green", TextMateScope: "variable.other", PygmentsScope: "Name.Label"},
		},
		Entry: grammar.CtxMain,
		Contexts: []grammar.Context{
			{
				Name:     grammar.CtxMain,
				Kind:     grammar.Container,
				Includes: []string{"comment", "simple_directive", "block", "label"},
			},
			{Name: "comment", Kind: grammar.Pattern, Regex: `(;.*)`, Styles: []string{"comment"}},
			{Name: "label", Kind: grammar.Pattern, Regex: `(\([^\)]+\))`, Styles: []string{"label"}},
			{
				Name:     "simple_directive",
				Kind:     grammar.Push,
				Regex:    `(\.(HP|JDA|ZENCODE))`,
				Styles:   []string{"directive"},
				Includes: []string{"comment", "simple_directive", "block"},
			},
			{
				Name:     "block",
				Kind:     grammar.Push,
				Regex:    `(\{)`,
				End:      `(\})`,
				Styles:   []string{"directive"},
				Includes: []string{"comment", "simple_directive"},
			},
			{Name: "unused", Kind: grammar.Push, Regex: `(U)`, Styles: []string{"directive"}},
		},
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func Test_Write(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := Write(&buf, smallGrammar())

	assert.NoError(err)
	assert.Equal(smallGrammarLexer, buf.String())
}

func Test_Write_Builtin(t *testing.T) {
	assert := assert.New(t)

	g, err := grammar.Build(catalog.Builtin(), grammar.DefaultHeader())
	if !assert.NoError(err) {
		return
	}

	var first, second bytes.Buffer
	assert.NoError(Write(&first, g))
	assert.NoError(Write(&second, g))

	out := first.String()
	assert.Equal(out, second.String())

	// root plus one state per directive and instruction context
	assert.Equal(15, strings.Count(out, "' : [\n"))
	assert.Contains(out, `            (u'(\\\"[^\\\"\\n\\r]*\\\")', bygroups(String)),`+"\n")
	assert.Contains(out, `            (u'(\\*\\*\\* ERROR.*)|(\\*.*)', bygroups(Generic.Error, Comment.Preproc)),`+"\n")
	assert.Contains(out, `            (u'(CON)', bygroups(Keyword), 'instruction_special2__1'),`+"\n")
	assert.Contains(out, `            (u'(GONC|GOTO|GOC|JNC|JC)', bygroups(Keyword), 'instruction_class3__1'),`+"\n")
}

func Test_Write_Error(t *testing.T) {
	assert := assert.New(t)

	err := Write(errWriter{}, smallGrammar())

	assert.EqualError(err, "write pygments lexer: pipe closed")
}

func Test_singleLine(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "no class", input: `(;.*)`, expect: `(;.*)`},
		{name: "plain class untouched", input: `([0-9A-F]{4}\b)`, expect: `([0-9A-F]{4}\b)`},
		{name: "negated class", input: `(\([^\)]+\))`, expect: `(\([^\)\n\r]+\))`},
		{name: "escaped bracket in class", input: `(\[[^\]]+\])`, expect: `(\[[^\]\n\r]+\])`},
		{name: "leading bracket is literal", input: `[^]a]`, expect: `[^]a\n\r]`},
		{name: "bracket inside class", input: `([P[QT^-]|XS?)`, expect: `([P[QT^-]|XS?)`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := singleLine(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_LexerName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Hp41mcode", LexerName("hp41mcode"))
	assert.Equal("", LexerName(""))
}
