// Package catalog holds the compiled-in inventory of HP-41 MCODE instructions
// along with the operand-type and dialect vocabulary used to classify them.
//
// The inventory is read-only. Builtin returns a fresh copy on every call so
// that no caller can observe changes made by another.
package catalog

import (
	"fmt"
	"strings"
)

// MaxOpcode is the largest opcode an HP-41 instruction word can hold.
const MaxOpcode = 0x3FF

// OperandType is the single-character tag that selects the operand syntax and
// range of an instruction. The tags are the ones used by the A41 assembler.
type OperandType byte

const (
	OpNone1         OperandType = 'A'
	OpTEF1          OperandType = 'D'
	Op0To13Dec      OperandType = 'E'
	Op0ToFHex       OperandType = 'F'
	OpDisplacement  OperandType = 'G'
	OpAddress1      OperandType = 'H'
	OpAddress2      OperandType = 'I'
	Op1To31Dec      OperandType = 'J'
	OpNone2         OperandType = 'K'
	Op0To7          OperandType = 'L'
	Op000ToFFFHex   OperandType = 'M'
	OpTEF2          OperandType = 'N'
	OpAddress3      OperandType = 'O'
	Op0To64Dec      OperandType = 'P'
	Op000To3FFHex   OperandType = 'Q'
	OpUnknown       OperandType = 'R'
	OpAddress4      OperandType = 'S'
	OpAddress5      OperandType = 'T'
	OpNone3         OperandType = 'U'
	OpNone4         OperandType = '?'
	operandAlphabet             = "ADEFGHIJKLMNOPQRSTU?"
)

// OperandTypes returns every valid operand type in alphabet order. The
// returned slice is newly allocated on each call.
func OperandTypes() []OperandType {
	types := make([]OperandType, len(operandAlphabet))
	for i := range operandAlphabet {
		types[i] = OperandType(operandAlphabet[i])
	}
	return types
}

// Index returns the position of the operand type within the fixed alphabet,
// or -1 if it is not part of it.
func (t OperandType) Index() int {
	return strings.IndexByte(operandAlphabet, byte(t))
}

// Valid returns whether t is one of the tags of the fixed alphabet.
func (t OperandType) Valid() bool {
	return t.Index() >= 0
}

func (t OperandType) String() string {
	return string(rune(t))
}

// Describe gives the human-readable operand format for the operand type. It
// never returns an empty string; tags outside of the alphabet are described as
// "unknown".
func Describe(t OperandType) string {
	switch t {
	case OpNone1, OpNone2, OpNone3, OpNone4:
		return "none"
	case OpTEF1, OpTEF2:
		return "TEF"
	case Op0To13Dec:
		return "0 to 13 (dec)"
	case Op0ToFHex:
		return "0 to F (hex)"
	case OpDisplacement:
		return "+0 to +63 and -1 to -64 (dec)"
	case OpAddress1, OpAddress2, OpAddress3, OpAddress4, OpAddress5:
		return "0000 to FFFF (hex)"
	case Op1To31Dec:
		return "1 to 31 (dec)"
	case Op0To7:
		return "0 to 7"
	case Op000ToFFFHex:
		return "000 to FFF (hex)"
	case Op0To64Dec:
		return "0 to 64 (dec)"
	case Op000To3FFHex:
		return "000 to 3FF (hex)"
	case OpUnknown:
		return "???"
	default:
		return "unknown"
	}
}

// Dialects is the set of assembler conventions a mnemonic spelling is valid
// under.
type Dialects uint8

const (
	HP Dialects = 1 << iota
	JDA
	ZENCODE

	AllDialects = HP | JDA | ZENCODE
)

// Has returns whether every dialect in d2 is also in d.
func (d Dialects) Has(d2 Dialects) bool {
	return d2 != 0 && d&d2 == d2
}

func (d Dialects) String() string {
	var names []string
	if d.Has(HP) {
		names = append(names, "HP")
	}
	if d.Has(JDA) {
		names = append(names, "JDA")
	}
	if d.Has(ZENCODE) {
		names = append(names, "ZENCODE")
	}
	return strings.Join(names, ", ")
}

// Record is a single instruction entry: one mnemonic spelling of an opcode
// under one operand type, valid in one or more dialects.
type Record struct {
	Opcode   uint16
	Mnemonic string
	Type     OperandType
	Dialects Dialects
}

func (r Record) String() string {
	return fmt.Sprintf("0x%03X %s (%s) [%s]", r.Opcode, r.Mnemonic, r.Type, r.Dialects)
}

// Catalog is an ordered list of instruction records.
type Catalog []Record

// Builtin returns a copy of the compiled-in HP-41 instruction inventory.
func Builtin() Catalog {
	cat := make(Catalog, len(inventory))
	copy(cat, inventory)
	return cat
}

// Validate checks that every record has an opcode in range, a non-empty
// mnemonic, an operand type from the alphabet and at least one dialect. All
// problems found are reported together.
func (cat Catalog) Validate() error {
	var errStr string
	for i, r := range cat {
		if r.Opcode > MaxOpcode {
			errStr += fmt.Sprintf("record %d: opcode 0x%X out of range\n", i, r.Opcode)
		}
		if r.Mnemonic == "" {
			errStr += fmt.Sprintf("record %d: empty mnemonic\n", i)
		}
		if !r.Type.Valid() {
			errStr += fmt.Sprintf("record %d (%s): operand type %q not in alphabet\n", i, r.Mnemonic, byte(r.Type))
		}
		if r.Dialects&AllDialects == 0 {
			errStr += fmt.Sprintf("record %d (%s): no dialect\n", i, r.Mnemonic)
		}
	}

	if len(errStr) > 0 {
		return fmt.Errorf("%s", errStr[:len(errStr)-1])
	}
	return nil
}
