package generator

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var LeetMap = map[rune][]string{
	'a': {"a", "@", "4"},
	'e': {"e", "3"},
	'i': {"i", "1", "!"},
	'o': {"o", "0"},
	's': {"s", "$", "5"},
	't': {"t", "7"},
	'b': {"b", "8"},
}

// Casers are stateful, so each expansion builds its own set.
type casers struct {
	lower cases.Caser
	upper cases.Caser
	title cases.Caser
}

func newCasers() casers {
	return casers{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
		title: cases.Title(language.Und),
	}
}

// ExpandVariants returns the case and leetspeak variants of word. Case
// mapping is the full Unicode mapping, so "ß" uppercases to "SS".
func ExpandVariants(word string) Pool {
	variants := make(Pool)
	if word == "" {
		return variants
	}

	c := newCasers()
	for _, v := range c.caseVariants(word) {
		variants.Add(v)
	}
	for _, v := range c.leetVariants(word) {
		variants.Add(v)
	}

	return variants
}

func (c casers) caseVariants(word string) []string {
	return []string{
		c.lower.String(word),
		c.upper.String(word),
		c.capitalize(word),
	}
}

// capitalize title-cases the first rune and lowercases the rest.
func (c casers) capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return c.lower.String(word)
	}
	return c.title.String(word[:size]) + c.lower.String(word[size:])
}

// leetChoices looks r up by its lowercase form. A rune whose lowercase is
// more than one rune, like "İ", has no entry.
func (c casers) leetChoices(r rune) ([]string, bool) {
	lower := c.lower.String(string(r))
	lr, size := utf8.DecodeRuneInString(lower)
	if size != len(lower) {
		return nil, false
	}
	choices, ok := LeetMap[lr]
	return choices, ok
}

// leetVariants folds the per-rune substitution choices left to right,
// building the full Cartesian product without recursion.
func (c casers) leetVariants(word string) []string {
	prefixes := []string{""}

	for _, r := range word {
		choices, ok := c.leetChoices(r)
		if !ok {
			choices = []string{string(r)}
		}

		next := make([]string, 0, len(prefixes)*len(choices))
		for _, prefix := range prefixes {
			for _, ch := range choices {
				next = append(next, prefix+ch)
			}
		}
		prefixes = next
	}

	return prefixes
}

// leetCount is the number of leetspeak variants word expands to, saturating
// at the maximum uint64.
func leetCount(word string) uint64 {
	c := newCasers()
	count := uint64(1)
	for _, r := range word {
		n := uint64(1)
		if choices, ok := c.leetChoices(r); ok {
			n = uint64(len(choices))
		}
		count = mulSat(count, n)
	}
	return count
}
