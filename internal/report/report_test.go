package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dekarrin/mcodegen/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func scenarioCatalog() catalog.Catalog {
	return catalog.Catalog{
		{Opcode: 0x456, Mnemonic: "AD", Type: catalog.Op0ToFHex, Dialects: catalog.HP | catalog.JDA},
		{Opcode: 0x123, Mnemonic: "ASTO", Type: catalog.Op0ToFHex, Dialects: catalog.HP},
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func Test_Build(t *testing.T) {
	testCases := []struct {
		name   string
		cat    catalog.Catalog
		expect []Row
	}{
		{
			name: "scenario",
			cat:  scenarioCatalog(),
			expect: []Row{
				{Opcode: 0x123, Type: catalog.Op0ToFHex, HP: []string{"ASTO"}},
				{Opcode: 0x456, Type: catalog.Op0ToFHex, HP: []string{"AD"}, JDA: []string{"AD"}},
			},
		},
		{
			name: "variants of one opcode follow tag order",
			cat: catalog.Catalog{
				{Opcode: 0x028, Mnemonic: "WRTIME", Type: catalog.OpNone3, Dialects: catalog.HP},
				{Opcode: 0x028, Mnemonic: "WRIT", Type: catalog.Op0ToFHex, Dialects: catalog.HP},
				{Opcode: 0x028, Mnemonic: "SRLDA", Type: catalog.OpNone2, Dialects: catalog.HP},
				{Opcode: 0x028, Mnemonic: "REGN=C", Type: catalog.Op0ToFHex, Dialects: catalog.JDA},
			},
			expect: []Row{
				{Opcode: 0x028, Type: catalog.Op0ToFHex, HP: []string{"WRIT"}, JDA: []string{"REGN=C"}},
				{Opcode: 0x028, Type: catalog.OpNone2, HP: []string{"SRLDA"}},
				{Opcode: 0x028, Type: catalog.OpNone3, HP: []string{"WRTIME"}},
			},
		},
		{
			name: "mnemonics of one dialect keep catalog order",
			cat: catalog.Catalog{
				{Opcode: 0x1D8, Mnemonic: "M<>C", Type: catalog.OpNone1, Dialects: catalog.ZENCODE},
				{Opcode: 0x1D8, Mnemonic: "MCEX", Type: catalog.OpNone1, Dialects: catalog.ZENCODE},
			},
			expect: []Row{
				{Opcode: 0x1D8, Type: catalog.OpNone1, ZENCODE: []string{"M<>C", "MCEX"}},
			},
		},
		{
			name: "tags outside alphabet and records with no dialect are skipped",
			cat: catalog.Catalog{
				{Opcode: 0x001, Mnemonic: "X", Type: 'Z', Dialects: catalog.HP},
				{Opcode: 0x002, Mnemonic: "Y", Type: catalog.OpNone1},
			},
			expect: []Row{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Build(tc.cat)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_WriteCSV(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := WriteCSV(&buf, Build(scenarioCatalog()))

	assert.NoError(err)
	assert.Equal(
		"code;hp;jda;zencode;typ;operand\n"+
			"0x123;ASTO;;;F;0 to F (hex)\n"+
			"0x456;AD;AD;;F;0 to F (hex)\n",
		buf.String(),
	)
}

func Test_WriteCSV_Builtin(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := WriteCSV(&buf, Build(catalog.Builtin()))
	if !assert.NoError(err) {
		return
	}

	out := buf.String()
	assert.True(strings.HasPrefix(out, "code;hp;jda;zencode;typ;operand\n0x000;"))
	assert.Contains(out, "0x004;CLRF;CF;;E;0 to 13 (dec)\n")
	assert.Contains(out, "0x003;JNC;GONC|GOTO;JNC;G;+0 to +63 and -1 to -64 (dec)\n")
	assert.Contains(out, "0x028;WRIT;REGN=C|HPL=CH;REG=C;F;0 to F (hex)\n")
	assert.Contains(out, "0x082;B=A;B=A;B=A;D;TEF\n0x082;;;A=B;N;TEF\n")
	assert.Contains(out, "0x0C2;C=B;C=B;C=B;D;TEF\n0x0C2;;;B=C;N;TEF\n")
	assert.Contains(out, "0x102;A=C;A=C;A=C;D;TEF\n0x102;;;C=A;N;TEF\n")
	assert.NotContains(out, "\"")
}

func Test_WriteCSV_Error(t *testing.T) {
	assert := assert.New(t)

	err := WriteCSV(errWriter{}, Build(scenarioCatalog()))

	assert.Error(err)
}

func Test_WriteTable(t *testing.T) {
	assert := assert.New(t)

	cat := append(scenarioCatalog(), catalog.Record{Opcode: 0x456, Mnemonic: "ADD", Type: catalog.Op0ToFHex, Dialects: catalog.JDA})

	var buf bytes.Buffer
	err := WriteTable(&buf, Build(cat))

	assert.NoError(err)
	out := buf.String()
	assert.Contains(out, "zencode")
	assert.Contains(out, "0x123")
	assert.Contains(out, "AD, ADD")
	assert.Contains(out, "0 to F (hex)")
	assert.True(strings.HasSuffix(out, "\n"))
}
