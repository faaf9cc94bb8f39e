package catalog

// Cursor walks the mnemonics of a Catalog that have one particular operand
// type, in catalog order. A Cursor is created by Catalog.Mnemonics and is not
// shared; ask for a new one to start over.
type Cursor struct {
	cat Catalog
	typ OperandType
	idx int
}

// Mnemonics returns a new Cursor over every mnemonic in cat whose operand type
// is t. If t is not part of the operand alphabet the Cursor is already
// exhausted.
func (cat Catalog) Mnemonics(t OperandType) *Cursor {
	c := &Cursor{cat: cat, typ: t, idx: -1}
	if !t.Valid() {
		c.idx = len(cat)
	}
	return c
}

// Next advances to the next matching record and returns its mnemonic. The
// second return value is false once the catalog has been exhausted.
func (c *Cursor) Next() (string, bool) {
	for c.idx < len(c.cat) {
		c.idx++
		if c.idx < len(c.cat) && c.cat[c.idx].Type == c.typ {
			return c.cat[c.idx].Mnemonic, true
		}
	}
	return "", false
}

// All drains the Cursor and returns every remaining mnemonic.
func (c *Cursor) All() []string {
	var ms []string
	for m, ok := c.Next(); ok; m, ok = c.Next() {
		ms = append(ms, m)
	}
	return ms
}
