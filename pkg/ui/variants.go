package ui

import (
	"fmt"
	"strings"
)

// Entry is one variant of a closed enumeration and the class token it maps to.
// Token may be empty for "no modifier" variants.
type Entry struct {
	Name  string
	Token string
}

// Variants maps an int-backed enumeration to its names and tokens. Entries are
// positional: entry i belongs to the constant with value i, and the zero value
// is the default every unknown value resolves to.
type Variants[E ~int] struct {
	entries []Entry
}

// NewVariants builds a table for count constants. It panics when the number of
// entries does not match count, so a constant added without a mapping fails at init.
func NewVariants[E ~int](count E, entries ...Entry) Variants[E] {
	if int(count) != len(entries) || len(entries) == 0 {
		panic(fmt.Sprintf("ui: %d variants declared but %d mapped", count, len(entries)))
	}
	return Variants[E]{entries: entries}
}

func (v Variants[E]) entry(e E) Entry {
	if e < 0 || int(e) >= len(v.entries) {
		return v.entries[0]
	}
	return v.entries[e]
}

// Class returns the class token for e.
func (v Variants[E]) Class(e E) string {
	return v.entry(e).Token
}

// Name returns the variant name for e.
func (v Variants[E]) Name(e E) string {
	return v.entry(e).Name
}

// Parse looks a variant up by name, case-insensitively. Unknown names resolve to the default.
func (v Variants[E]) Parse(name string) E {
	for i, entry := range v.entries {
		if strings.EqualFold(entry.Name, name) {
			return E(i)
		}
	}
	return 0
}

// Entries returns a copy of the table in declaration order.
func (v Variants[E]) Entries() []Entry {
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}
