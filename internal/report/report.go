// Package report lists the instruction catalog grouped by opcode and operand
// type, one row per pair, with the mnemonic spelling of each dialect.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dekarrin/mcodegen/internal/catalog"
	"github.com/dekarrin/rosed"
)

// Separator joins the mnemonics of one dialect within a field.
const Separator = "|"

// Header is the column header of the report.
var Header = []string{"code", "hp", "jda", "zencode", "typ", "operand"}

// Row is one (opcode, operand type) pair of the report.
type Row struct {
	Opcode  uint16
	Type    catalog.OperandType
	HP      []string
	JDA     []string
	ZENCODE []string
}

// Operand gives the human-readable operand format of the row.
func (r Row) Operand() string {
	return catalog.Describe(r.Type)
}

// Fields gives the row as report columns.
func (r Row) Fields() []string {
	return []string{
		fmt.Sprintf("0x%03X", r.Opcode),
		strings.Join(r.HP, Separator),
		strings.Join(r.JDA, Separator),
		strings.Join(r.ZENCODE, Separator),
		r.Type.String(),
		r.Operand(),
	}
}

// Build groups the records of cat into rows ordered by opcode and then by the
// position of the operand type in the operand alphabet. Mnemonics keep catalog
// order within a dialect. Records whose operand type is outside the alphabet
// or that belong to no dialect do not make rows.
func Build(cat catalog.Catalog) []Row {
	type key struct {
		opcode  uint16
		variant int
	}

	// (opcode, operand type) -> row
	variants := map[key]*Row{}

	for _, r := range cat {
		v := r.Type.Index()
		if v < 0 || r.Dialects&catalog.AllDialects == 0 {
			continue
		}

		k := key{opcode: r.Opcode, variant: v}
		row, ok := variants[k]
		if !ok {
			row = &Row{Opcode: r.Opcode, Type: r.Type}
			variants[k] = row
		}

		if r.Dialects.Has(catalog.HP) {
			row.HP = append(row.HP, r.Mnemonic)
		}
		if r.Dialects.Has(catalog.JDA) {
			row.JDA = append(row.JDA, r.Mnemonic)
		}
		if r.Dialects.Has(catalog.ZENCODE) {
			row.ZENCODE = append(row.ZENCODE, r.Mnemonic)
		}
	}

	keys := make([]key, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].opcode != keys[j].opcode {
			return keys[i].opcode < keys[j].opcode
		}
		return keys[i].variant < keys[j].variant
	})

	rows := make([]Row, len(keys))
	for i, k := range keys {
		rows[i] = *variants[k]
	}
	return rows
}

// WriteCSV writes the header and then every row to w, with fields separated
// by semicolons.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("write csv row for 0x%03X: %w", r.Opcode, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteTable writes the rows to w as a bordered text table meant for reading
// in a terminal. Mnemonic lists are shown comma-separated.
func WriteTable(w io.Writer, rows []Row) error {
	data := [][]string{Header}
	for _, r := range rows {
		f := r.Fields()
		for i := 1; i <= 3; i++ {
			f[i] = strings.ReplaceAll(f[i], Separator, ", ")
		}
		data = append(data, f)
	}

	tableOpts := rosed.Options{
		TableHeaders: true,
		TableBorders: true,
	}

	output := rosed.Edit("").
		InsertTableOpts(0, data, 120, tableOpts).
		String()
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}

	if _, err := io.WriteString(w, output); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
