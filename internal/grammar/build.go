package grammar

import (
	"fmt"

	"github.com/dekarrin/mcodegen/internal/catalog"
	"github.com/dekarrin/mcodegen/internal/pattern"
)

// Style IDs.
const (
	StyleComment     = "comment"
	StyleAnnotation  = "annotation"
	StyleError       = "error"
	StyleDirective   = "directive"
	StyleLabel       = "label"
	StyleMnemonic    = "mnemonic"
	StyleOperand     = "operand"
	StyleString      = "string"
	StyleDecimal     = "decimal"
	StyleHexadecimal = "hexadecimal"
	StyleCode        = "code"
)

// Context names.
const (
	CtxMain                = "main"
	CtxComment             = "comment"
	CtxAnnotation          = "annotation"
	CtxData                = "data"
	CtxString              = "string"
	CtxDecNumber           = "dec_number"
	CtxHexNumber           = "hex_number"
	CtxAddress             = "address"
	CtxCode                = "code"
	CtxLocalLabel          = "local_label"
	CtxGlobalLabel         = "global_label"
	CtxTEF                 = "tef"
	CtxRegister            = "register"
	CtxPosDisplacement     = "positive_displacement"
	CtxNegDisplacement     = "negative_displacement"
	CtxSimpleDirective     = "simple_directive"
	CtxStringDirective     = "string_directive"
	CtxNumberDirective     = "number_directive"
	CtxAddressDirective    = "address_directive"
	CtxSymbolDirective     = "symbol_directive"
	CtxCodeLiteral         = "code_literal"
	CtxInstructionNone     = "instruction_none"
	CtxInstructionNumber   = "instruction_number"
	CtxInstructionAddress  = "instruction_address"
	CtxInstructionRegister = "instruction_register"
	CtxInstructionClass2   = "instruction_class2"
	CtxInstructionClass3   = "instruction_class3"
	CtxInstructionSpecial1 = "instruction_special1"
	CtxInstructionSpecial2 = "instruction_special2"
)

var styleTable = []Style{
	{StyleComment, "grey", "comment", "Comment"},
	{StyleAnnotation, "brown", "comment.block.preprocessor", "Comment.Preproc"},
	{StyleError, "red", "message.error", "Generic.Error"},
	{StyleDirective, "violet", "keyword.other", "Name.Builtin"},
	{StyleLabel, "green", "variable.other", "Name.Label"},
	{StyleMnemonic, "purple", "keyword", "Keyword"},
	{StyleOperand, "gold", "variable.language", "Keyword.Pseudo"},
	{StyleString, "yellow", "string", "String"},
	{StyleDecimal, "cyan", "constant.numeric.decimal", "Number.Integer"},
	{StyleHexadecimal, "light_blue", "constant.numeric.hexadecimal", "Number.Hex"},
	{StyleCode, "orange", "constant.numeric.code", "Number.Bin"},
}

// basic lexical contexts, in emission order.
var basicContexts = []Context{
	{Name: CtxComment, Regex: `(;.*)`, Styles: []string{StyleComment}},
	{Name: CtxAnnotation, Regex: `(\*\*\* ERROR.*)|(\*.*)`, Styles: []string{StyleError, StyleAnnotation}},
	{Name: CtxData, Regex: `([0-9A-F]{4}\s+)((?:[0-3][0-9A-F]{2}){1,3})`, Styles: []string{StyleHexadecimal, StyleCode}},
	{Name: CtxString, Regex: `(\"[^\"]*\")`, Styles: []string{StyleString}},
	{Name: CtxDecNumber, Regex: `(\d+\b)`, Styles: []string{StyleDecimal}},
	{Name: CtxHexNumber, Regex: `([0-9A-F]+\b)`, Styles: []string{StyleHexadecimal}},
	{Name: CtxAddress, Regex: `([0-9A-F]{4}\b)`, Styles: []string{StyleHexadecimal}},
	{Name: CtxCode, Regex: `([0-3][0-9A-F]{2}\b)`, Styles: []string{StyleCode}},
	{Name: CtxLocalLabel, Regex: `(\([^\)]+\))`, Styles: []string{StyleLabel}},
	{Name: CtxGlobalLabel, Regex: `(\[[^\]]+\])`, Styles: []string{StyleLabel}},
	{Name: CtxTEF, Regex: `([P[QT^-]|XS?|W(PT)?|MS?|S(&X)?|ALL|@R|R<|P-Q)`, Styles: []string{StyleOperand}},
	{Name: CtxRegister, Regex: `((\d{1,2}|[0-9A-F])(\([TZYXLMNOPQabcde]\))?(/[TZYXLMNOPQabcde])?)`, Styles: []string{StyleOperand}},
	{Name: CtxPosDisplacement, Regex: `(\+(?:(?:[1-5]\d)|(?:6[0-3])|\d))`, Styles: []string{StyleOperand}},
	{Name: CtxNegDisplacement, Regex: `(\-(?:(?:[1-5]\d)|(?:6[0-4])|[1-9]))`, Styles: []string{StyleOperand}},
}

// directive contexts, in emission order. Regex is the bare keyword regex.
var directiveContexts = []Context{
	{Name: CtxSimpleDirective, Regex: `\.(HP|JDA|ZENCODE)`, Includes: []string{CtxComment}},
	{Name: CtxStringDirective, Regex: `\.(TITLE|TEXT|NAME|MESSL)`, Includes: []string{CtxString, CtxComment}},
	{Name: CtxNumberDirective, Regex: `\.BSS`, Includes: []string{CtxDecNumber, CtxComment}},
	{Name: CtxAddressDirective, Regex: `\.(FILLTO|ORG)`, Includes: []string{CtxAddress, CtxComment}},
	{Name: CtxSymbolDirective, Regex: `\.EQU`, Includes: []string{CtxLocalLabel, CtxGlobalLabel, CtxAddress, CtxComment}},
	{Name: CtxCodeLiteral, Regex: `#`, Includes: []string{CtxCode, CtxComment}},
}

// instructionGroup is one operand-type group of instructions. Every mnemonic
// of the catalog with one of the tags is matched by the group's context.
type instructionGroup struct {
	name     string
	tags     []catalog.OperandType
	includes []string
}

// instruction groups, in emission order.
var instructionGroups = []instructionGroup{
	{
		name:     CtxInstructionNone,
		tags:     []catalog.OperandType{catalog.OpNone1, catalog.OpNone2, catalog.OpNone3},
		includes: []string{CtxComment},
	},
	{
		name:     CtxInstructionNumber,
		tags:     []catalog.OperandType{catalog.Op0To7, catalog.Op0To13Dec, catalog.Op1To31Dec, catalog.Op0To64Dec},
		includes: []string{CtxDecNumber, CtxComment},
	},
	{
		name:     CtxInstructionAddress,
		tags:     []catalog.OperandType{catalog.OpAddress1, catalog.OpAddress2, catalog.OpAddress3, catalog.OpAddress4},
		includes: []string{CtxAddress, CtxLocalLabel, CtxGlobalLabel, CtxComment},
	},
	{
		name:     CtxInstructionClass2,
		tags:     []catalog.OperandType{catalog.OpTEF1, catalog.OpTEF2},
		includes: []string{CtxTEF, CtxComment},
	},
	{
		name:     CtxInstructionClass3,
		tags:     []catalog.OperandType{catalog.OpDisplacement},
		includes: []string{CtxPosDisplacement, CtxNegDisplacement, CtxLocalLabel, CtxGlobalLabel, CtxAddress, CtxComment},
	},
	{
		name:     CtxInstructionRegister,
		tags:     []catalog.OperandType{catalog.Op0ToFHex},
		includes: []string{CtxRegister, CtxComment},
	},
	{
		name:     CtxInstructionSpecial1,
		tags:     []catalog.OperandType{catalog.Op000ToFFFHex, catalog.Op000To3FFHex},
		includes: []string{CtxHexNumber, CtxComment},
	},
	{
		// CON is the only R-type entry and is not really an instruction.
		name:     CtxInstructionSpecial2,
		tags:     []catalog.OperandType{catalog.OpUnknown},
		includes: []string{CtxCode, CtxLocalLabel, CtxGlobalLabel, CtxComment},
	},
}

// entryIncludes is the dispatch order of the entry context. Instruction
// contexts that were not produced are dropped from it.
var entryIncludes = []string{
	CtxComment,
	CtxAnnotation,
	CtxData,
	CtxSimpleDirective,
	CtxStringDirective,
	CtxNumberDirective,
	CtxAddressDirective,
	CtxSymbolDirective,
	CtxCodeLiteral,
	CtxInstructionNone,
	CtxInstructionNumber,
	CtxInstructionAddress,
	CtxInstructionRegister,
	CtxInstructionClass2,
	CtxInstructionClass3,
	CtxInstructionSpecial1,
	CtxInstructionSpecial2,
	CtxLocalLabel,
	CtxGlobalLabel,
}

// Styles returns a copy of the fixed style table.
func Styles() []Style {
	styles := make([]Style, len(styleTable))
	copy(styles, styleTable)
	return styles
}

// DefaultHeader returns the header metadata of the HP-41 MCODE grammar.
func DefaultHeader() Header {
	return Header{
		Name:           "hp41mcode",
		FileExtensions: []string{"src"},
		Description:    "HP-41 MCODE Syntax Highlighter",
		TextMateUUID:   "ec78fc6d-d744-485c-b450-ad86e83e4405",
	}
}

// Build creates the grammar for the instructions in cat. Instruction groups
// that match no mnemonic in cat produce no context and are left out of the
// entry context. The result is validated before it is returned; a validation
// failure matches mcerrors.ErrInvalidGraph.
func Build(cat catalog.Catalog, hdr Header) (*Grammar, error) {
	g := &Grammar{
		Header: copyHeader(hdr),
		Styles: Styles(),
		Entry:  CtxMain,
	}

	var basic []Context
	for _, ctx := range basicContexts {
		ctx.Kind = Pattern
		ctx.Section = SectionBasic
		ctx.Styles = copyStrings(ctx.Styles)
		basic = append(basic, ctx)
	}

	var directives []Context
	for _, ctx := range directiveContexts {
		ctx.Kind = Push
		ctx.Section = SectionDirective
		ctx.Regex = "(" + ctx.Regex + ")"
		ctx.Styles = []string{StyleDirective}
		ctx.Includes = copyStrings(ctx.Includes)
		directives = append(directives, ctx)
	}

	produced := map[string]bool{}
	var instructions []Context
	for _, grp := range instructionGroups {
		alt, ok := pattern.Alternation(cat, grp.tags...)
		if !ok {
			continue
		}
		produced[grp.name] = true
		instructions = append(instructions, Context{
			Name:     grp.name,
			Kind:     Push,
			Section:  SectionInstruction,
			Regex:    "(" + alt + ")",
			Styles:   []string{StyleMnemonic},
			Includes: copyStrings(grp.includes),
		})
	}

	entry := Context{Name: CtxMain, Kind: Container, Section: SectionEntry}
	for _, name := range entryIncludes {
		if isInstructionGroup(name) && !produced[name] {
			continue
		}
		entry.Includes = append(entry.Includes, name)
	}

	g.Contexts = append(g.Contexts, entry)
	g.Contexts = append(g.Contexts, basic...)
	g.Contexts = append(g.Contexts, directives...)
	g.Contexts = append(g.Contexts, instructions...)

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("build grammar: %w", err)
	}

	return g, nil
}

func isInstructionGroup(name string) bool {
	for _, grp := range instructionGroups {
		if grp.name == name {
			return true
		}
	}
	return false
}

func copyHeader(hdr Header) Header {
	hdr.FileExtensions = copyStrings(hdr.FileExtensions)
	return hdr
}

func copyStrings(sl []string) []string {
	if sl == nil {
		return nil
	}
	cp := make([]string, len(sl))
	copy(cp, sl)
	return cp
}
