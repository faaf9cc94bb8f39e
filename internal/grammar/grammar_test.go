package grammar

import (
	"regexp"
	"strings"
	"testing"

	"github.com/dekarrin/mcodegen/internal/catalog"
	"github.com/dekarrin/mcodegen/internal/mcerrors"
	"github.com/stretchr/testify/assert"
)

func scenarioCatalog() catalog.Catalog {
	return catalog.Catalog{
		{Opcode: 0x123, Mnemonic: "ASTO", Type: catalog.Op0ToFHex, Dialects: catalog.HP},
		{Opcode: 0x456, Mnemonic: "AD", Type: catalog.Op0ToFHex, Dialects: catalog.HP | catalog.JDA},
	}
}

func names(ctxs []Context) []string {
	var ns []string
	for _, ctx := range ctxs {
		ns = append(ns, ctx.Name)
	}
	return ns
}

func Test_Build_Builtin(t *testing.T) {
	assert := assert.New(t)

	g, err := Build(catalog.Builtin(), DefaultHeader())
	if !assert.NoError(err) {
		return
	}

	assert.Equal(CtxMain, g.Entry)
	assert.Len(g.Styles, 11)
	assert.Equal([]string{
		CtxComment, CtxAnnotation, CtxData,
		CtxSimpleDirective, CtxStringDirective, CtxNumberDirective, CtxAddressDirective, CtxSymbolDirective, CtxCodeLiteral,
		CtxInstructionNone, CtxInstructionNumber, CtxInstructionAddress, CtxInstructionRegister,
		CtxInstructionClass2, CtxInstructionClass3, CtxInstructionSpecial1, CtxInstructionSpecial2,
		CtxLocalLabel, CtxGlobalLabel,
	}, g.Contexts[0].Includes)

	assert.Equal([]string{
		CtxComment, CtxAnnotation, CtxData, CtxString, CtxDecNumber, CtxHexNumber, CtxAddress, CtxCode,
		CtxLocalLabel, CtxGlobalLabel, CtxTEF, CtxRegister, CtxPosDisplacement, CtxNegDisplacement,
	}, names(g.Section(SectionBasic)))
	assert.Equal([]string{
		CtxSimpleDirective, CtxStringDirective, CtxNumberDirective, CtxAddressDirective, CtxSymbolDirective, CtxCodeLiteral,
	}, names(g.Section(SectionDirective)))
	assert.Equal([]string{
		CtxInstructionNone, CtxInstructionNumber, CtxInstructionAddress, CtxInstructionClass2,
		CtxInstructionClass3, CtxInstructionRegister, CtxInstructionSpecial1, CtxInstructionSpecial2,
	}, names(g.Section(SectionInstruction)))
}

func Test_Build_GraphIsComplete(t *testing.T) {
	assert := assert.New(t)

	g, err := Build(catalog.Builtin(), DefaultHeader())
	if !assert.NoError(err) {
		return
	}

	defined := map[string]int{}
	for _, ctx := range g.Contexts {
		defined[ctx.Name]++
	}
	for _, ctx := range g.Contexts {
		for _, inc := range ctx.Includes {
			assert.Equal(1, defined[inc], "context %q includes %q", ctx.Name, inc)
		}
	}
	for name, n := range defined {
		assert.Equal(1, n, "context %q", name)
	}

	// every emitted context is used from the entry
	assert.Len(g.Reachable(), len(g.Contexts))
}

func Test_Build_Scenario(t *testing.T) {
	assert := assert.New(t)

	g, err := Build(scenarioCatalog(), DefaultHeader())
	if !assert.NoError(err) {
		return
	}

	reg, ok := g.Context(CtxInstructionRegister)
	if !assert.True(ok) {
		return
	}
	assert.Equal(Push, reg.Kind)
	assert.Equal("(ASTO|AD)", reg.Regex)
	assert.Equal([]string{StyleMnemonic}, reg.Styles)
	assert.Equal([]string{CtxRegister, CtxComment}, reg.Includes)
	assert.True(reg.EndsAtEOL())

	unescaped := regexp.MustCompile(`(^|[^\\])[?+\-.]`)
	assert.False(unescaped.MatchString(reg.Regex))

	assert.Equal([]string{CtxInstructionRegister}, names(g.Section(SectionInstruction)))
}

func Test_Build_Builtin_Class2Alternation(t *testing.T) {
	assert := assert.New(t)

	expect := `(` +
		`C=\-C\-1|A=A\+1|A=A\+B|A=A\+C|A=A\-1|A=A\-B|A=A\-C|C=0\-C|C=A\+C|C=A\-C|C=C\+1|C=C\+A|C=C\+C|C=C\-1|` +
		`LSHFA|RSHFA|RSHFB|RSHFC|\?A#0|\?A#C|\?A<B|\?A<C|\?B#0|\?C#0|A#0\?|A#C\?|A<>B|A<>C|A<B\?|A<C\?|` +
		`ABEX|ACEX|B#0\?|B<>A|B<>C|BAEX|BCEX|C#0\?|C<>A|C<>B|C=\-C|CAEX|CBEX|` +
		`A=0|A=B|A=C|ASL|ASR|B=0|B=A|B=C|BSR|C=0|C=A|C=B|CSR` +
		`)`

	g, err := Build(catalog.Builtin(), DefaultHeader())
	if !assert.NoError(err) {
		return
	}
	ctx, ok := g.Context(CtxInstructionClass2)
	if !assert.True(ok) {
		return
	}

	assert.Equal(expect, ctx.Regex)
	for _, m := range []string{"A=B", "B=C", "C=A"} {
		assert.Regexp("^"+ctx.Regex+"$", m)
	}

	tef, ok := g.Context(CtxTEF)
	if !assert.True(ok) {
		return
	}
	assert.Equal(`([P[QT^-]|XS?|W(PT)?|MS?|S(&X)?|ALL|@R|R<|P-Q)`, tef.Regex)
}

func Test_Build_PrunesEmptyGroups(t *testing.T) {
	testCases := []struct {
		name          string
		cat           catalog.Catalog
		expectPresent []string
	}{
		{
			name:          "only register class",
			cat:           scenarioCatalog(),
			expectPresent: []string{CtxInstructionRegister},
		},
		{
			name: "class2 and class3",
			cat: catalog.Catalog{
				{Opcode: 0x002, Mnemonic: "A=0", Type: catalog.OpTEF1, Dialects: catalog.AllDialects},
				{Opcode: 0x003, Mnemonic: "JNC", Type: catalog.OpDisplacement, Dialects: catalog.HP},
			},
			expectPresent: []string{CtxInstructionClass2, CtxInstructionClass3},
		},
		{
			name: "address tag T is in no group",
			cat: catalog.Catalog{
				{Opcode: 0x000, Mnemonic: "NOP", Type: catalog.OpNone1, Dialects: catalog.AllDialects},
				{Opcode: 0x001, Mnemonic: "ODD", Type: catalog.OpAddress5, Dialects: catalog.HP},
			},
			expectPresent: []string{CtxInstructionNone},
		},
		{
			name:          "empty catalog",
			cat:           catalog.Catalog{},
			expectPresent: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g, err := Build(tc.cat, DefaultHeader())
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expectPresent, names(g.Section(SectionInstruction)))

			var entryInstr []string
			for _, inc := range g.Contexts[0].Includes {
				if strings.HasPrefix(inc, "instruction_") {
					entryInstr = append(entryInstr, inc)
				}
			}
			assert.ElementsMatch(tc.expectPresent, entryInstr)
		})
	}
}

func Test_Build_IsDeterministic(t *testing.T) {
	assert := assert.New(t)

	first, err := Build(catalog.Builtin(), DefaultHeader())
	if !assert.NoError(err) {
		return
	}
	second, err := Build(catalog.Builtin(), DefaultHeader())
	if !assert.NoError(err) {
		return
	}

	assert.Equal(first, second)
}

func Test_Build_DoesNotShareState(t *testing.T) {
	assert := assert.New(t)

	hdr := DefaultHeader()
	g, err := Build(scenarioCatalog(), hdr)
	if !assert.NoError(err) {
		return
	}
	hdr.FileExtensions[0] = "asm"
	g.Contexts[1].Styles[0] = StyleError
	g.Styles[0].Color = "pink"

	again, err := Build(scenarioCatalog(), DefaultHeader())
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]string{"src"}, g.Header.FileExtensions)
	assert.Equal([]string{StyleComment}, again.Contexts[1].Styles)
	assert.Equal("grey", again.Styles[0].Color)
}

func Test_Grammar_Validate(t *testing.T) {
	validEntry := Context{Name: CtxMain, Kind: Container, Includes: []string{CtxComment}}
	comment := Context{Name: CtxComment, Kind: Pattern, Regex: `(;.*)`, Styles: []string{StyleComment}}

	testCases := []struct {
		name      string
		g         Grammar
		expectErr []string
	}{
		{
			name: "valid",
			g:    Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{validEntry, comment}},
		},
		{
			name:      "no entry",
			g:         Grammar{Styles: Styles(), Contexts: []Context{validEntry, comment}},
			expectErr: []string{"no entry context set"},
		},
		{
			name: "duplicate name",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				validEntry, comment, comment,
			}},
			expectErr: []string{`context "comment" defined more than once`},
		},
		{
			name: "dangling include",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				{Name: CtxMain, Kind: Container, Includes: []string{CtxComment, "nowhere"}},
				comment,
			}},
			expectErr: []string{`includes undefined context "nowhere"`},
		},
		{
			name: "undefined style",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				validEntry,
				{Name: CtxComment, Kind: Pattern, Regex: `(;.*)`, Styles: []string{"blinking"}},
			}},
			expectErr: []string{`undefined style "blinking"`},
		},
		{
			name: "pattern without styles",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				validEntry,
				{Name: CtxComment, Kind: Pattern, Regex: `(;.*)`},
			}},
			expectErr: []string{`pattern context "comment" has no styles`},
		},
		{
			name: "push with two styles",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				{Name: CtxMain, Kind: Container, Includes: []string{"p"}},
				{Name: "p", Kind: Push, Regex: `(X)`, Styles: []string{StyleMnemonic, StyleOperand}},
			}},
			expectErr: []string{`push context "p" has 2 styles`},
		},
		{
			name: "bad regex",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				validEntry,
				{Name: CtxComment, Kind: Pattern, Regex: `(;.*`, Styles: []string{StyleComment}},
			}},
			expectErr: []string{`context "comment" has a bad regex`},
		},
		{
			name: "two containers",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				validEntry, comment,
				{Name: "other", Kind: Container},
			}},
			expectErr: []string{"found 2 container contexts"},
		},
		{
			name: "entry is not the container",
			g: Grammar{Styles: Styles(), Entry: CtxComment, Contexts: []Context{
				validEntry, comment,
			}},
			expectErr: []string{`container context "main" is not the entry context`},
		},
		{
			name: "reports every problem",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				{Name: CtxMain, Kind: Container, Includes: []string{"a", "b"}},
			}},
			expectErr: []string{`undefined context "a"`, `undefined context "b"`},
		},
		{
			name: "include cycles are allowed",
			g: Grammar{Styles: Styles(), Entry: CtxMain, Contexts: []Context{
				{Name: CtxMain, Kind: Container, Includes: []string{"a"}},
				{Name: "a", Kind: Push, Regex: `(A)`, Styles: []string{StyleMnemonic}, Includes: []string{"b"}},
				{Name: "b", Kind: Push, Regex: `(B)`, End: `(;)`, Styles: []string{StyleMnemonic}, Includes: []string{"a"}},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := tc.g.Validate()

			if len(tc.expectErr) == 0 {
				assert.NoError(err)
				return
			}
			if !assert.Error(err) {
				return
			}
			assert.ErrorIs(err, mcerrors.ErrInvalidGraph)
			for _, msg := range tc.expectErr {
				assert.Contains(err.Error(), msg)
			}
		})
	}
}

func Test_Grammar_Reachable(t *testing.T) {
	testCases := []struct {
		name   string
		g      Grammar
		expect []string
	}{
		{
			name: "cycle",
			g: Grammar{Entry: CtxMain, Contexts: []Context{
				{Name: CtxMain, Kind: Container, Includes: []string{"b"}},
				{Name: "a", Kind: Push, Includes: []string{"b"}},
				{Name: "b", Kind: Push, Includes: []string{"a", "c"}},
				{Name: "c", Kind: Pattern},
				{Name: "orphan", Kind: Pattern},
			}},
			expect: []string{"a", "b", "c", CtxMain},
		},
		{
			name: "self include",
			g: Grammar{Entry: CtxMain, Contexts: []Context{
				{Name: CtxMain, Kind: Container, Includes: []string{CtxMain}},
			}},
			expect: []string{CtxMain},
		},
		{
			name:   "no entry",
			g:      Grammar{},
			expect: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := tc.g.Reachable()

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Kind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("pattern", Pattern.String())
	assert.Equal("push", Push.String())
	assert.Equal("container", Container.String())
	assert.Equal("Kind(9)", Kind(9).String())
}
