package generator

var (
	CommonSuffixes = []string{"123", "1234", "@123", "007", "!", "2024"}
	SpecialSymbols = []string{"!", "@", "#", "$", "%", "&"}
)

// Decorations is the full catalog applied by Decorate. "!" appears twice;
// the pool collapses the duplicate.
func Decorations() []string {
	catalog := make([]string, 0, len(CommonSuffixes)+len(SpecialSymbols))
	catalog = append(catalog, CommonSuffixes...)
	return append(catalog, SpecialSymbols...)
}

// Decorate keeps every word and adds each catalog entry as a suffix and a
// prefix. Only the words present on entry are decorated.
func Decorate(pool Pool) Pool {
	catalog := Decorations()
	out := make(Pool, len(pool)*(1+2*len(catalog)))

	for w := range pool {
		out.Add(w)
		for _, s := range catalog {
			out.Add(w + s)
			out.Add(s + w)
		}
	}

	return out
}
