// Package pattern turns groups of instruction mnemonics into regular
// expression alternations that are safe to hand to a first-match-wins regex
// engine.
//
// Mnemonics are ordered longest first so that a mnemonic that is a prefix of
// another, such as "A" and "ASL", can never shadow the longer one. Ties are
// broken byte-wise so that output is stable between runs.
package pattern

import (
	"sort"
	"strings"

	"github.com/dekarrin/mcodegen/internal/catalog"
	"github.com/dekarrin/mcodegen/internal/util"
)

// Separator joins the branches of an alternation.
const Separator = "|"

// metachars are the characters given a leading backslash by Escape.
const metachars = `\?+-.*()[]{}|^$`

// Collect gathers every mnemonic in cat whose operand type is one of tags. A
// mnemonic is kept only once even when several records, under the same tag or
// different ones, carry it. The result is sorted by Less.
func Collect(cat catalog.Catalog, tags ...catalog.OperandType) []string {
	seen := util.NewStringSet()
	var group []string

	for _, t := range tags {
		cur := cat.Mnemonics(t)
		for m, ok := cur.Next(); ok; m, ok = cur.Next() {
			if seen.Has(m) {
				continue
			}
			seen.Add(m)
			group = append(group, m)
		}
	}

	sort.Slice(group, func(i, j int) bool {
		return Less(group[i], group[j])
	})
	return group
}

// Less reports whether mnemonic a goes before b in an alternation: longer
// mnemonics first, then ascending byte order.
func Less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

// Escape returns m with a backslash in front of every regular expression
// metacharacter. All other characters are kept as they are.
func Escape(m string) string {
	var sb strings.Builder
	sb.Grow(len(m) * 2)

	for _, ch := range m {
		if strings.ContainsRune(metachars, ch) {
			sb.WriteRune('\\')
		}
		sb.WriteRune(ch)
	}

	return sb.String()
}

// Join escapes each of ms and joins them into one alternation, keeping the
// order they are given in.
func Join(ms []string) string {
	escaped := make([]string, len(ms))
	for i := range ms {
		escaped[i] = Escape(ms[i])
	}
	return strings.Join(escaped, Separator)
}

// Alternation builds the alternation for every mnemonic in cat with one of the
// given operand types. If no mnemonic matches, it returns "" and false, and
// the caller is expected to leave out whatever would have used the pattern.
func Alternation(cat catalog.Catalog, tags ...catalog.OperandType) (string, bool) {
	group := Collect(cat, tags...)
	if len(group) == 0 {
		return "", false
	}
	return Join(group), true
}
