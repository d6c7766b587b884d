package generator

import (
	"sort"
	"unicode/utf8"
)

// Finalize keeps words whose rune count lies in [minLength, maxLength] and
// returns them sorted. An inverted range yields an empty list.
func Finalize(pool Pool, minLength, maxLength int) []string {
	if minLength > maxLength {
		return []string{}
	}

	words := make([]string, 0, len(pool))
	for w := range pool {
		n := utf8.RuneCountInString(w)
		if n < minLength || n > maxLength {
			continue
		}
		words = append(words, w)
	}

	sort.Strings(words)
	return words
}
