package generator

import "sort"

// Pool is a set of candidate strings.
type Pool map[string]struct{}

func (p Pool) Add(word string) {
	p[word] = struct{}{}
}

func (p Pool) Has(word string) bool {
	_, ok := p[word]
	return ok
}

func (p Pool) Merge(other Pool) {
	for w := range other {
		p[w] = struct{}{}
	}
}

// Sorted returns the members in ascending byte order.
func (p Pool) Sorted() []string {
	words := make([]string, 0, len(p))
	for w := range p {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
