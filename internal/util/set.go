// Package util holds small helpers shared by the generator packages.
package util

import (
	"sort"
)

// StringSet is a map[string]bool used as a set of names.
type StringSet map[string]bool

// NewStringSet returns an empty StringSet.
func NewStringSet() StringSet {
	return StringSet{}
}

func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

func (s StringSet) Add(value string) {
	s[value] = true
}

func (s StringSet) Len() int {
	return len(s)
}

// Elements returns the elements of s as a slice, ordered alphabetically.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}

	sl := make([]string, 0, len(s))

	for item := range s {
		sl = append(sl, item)
	}

	sort.Strings(sl)
	return sl
}
