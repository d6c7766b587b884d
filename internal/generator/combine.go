package generator

// Seeds are the raw tokens the combinator works from.
type Seeds struct {
	FirstName string
	LastName  string
	Nickname  string
	DOB       string
	Mobile    string
	Keywords  []string
	Date      DateFragments
}

func (s Seeds) tokens() []string {
	tokens := []string{s.FirstName, s.LastName, s.Nickname, s.Date.Year, s.DOB, s.Mobile}
	return append(tokens, s.Keywords...)
}

func (s Seeds) names() []string {
	return []string{s.FirstName, s.LastName, s.Nickname}
}

// Parts is the union of the variants of every seed token.
func Parts(s Seeds) Pool {
	parts := make(Pool)
	for _, tok := range s.tokens() {
		parts.Merge(ExpandVariants(tok))
	}
	return parts
}

// Combine builds the undecorated candidate pool.
func Combine(s Seeds) Pool {
	parts := Parts(s)
	pool := make(Pool, len(parts)*len(parts))
	pool.Merge(parts)

	// ordered pairs: (a, b) and (b, a) are both kept
	ordered := parts.Sorted()
	for _, a := range ordered {
		for _, b := range ordered {
			if a == b {
				continue
			}
			pool.Add(a + b)
		}
	}

	for _, name := range s.names() {
		if name == "" {
			continue
		}
		for v := range ExpandVariants(name) {
			addTemplates(pool, v, s)
		}
	}

	if s.Mobile != "" {
		pool.Add(s.Mobile)
		for w := range parts {
			pool.Add(w + s.Mobile)
			pool.Add(s.Mobile + w)
		}
	}

	return pool
}

func addTemplates(pool Pool, v string, s Seeds) {
	dob, d, mobile := s.DOB, s.Date, s.Mobile

	if dob != "" {
		pool.Add(v + "@" + dob)
		pool.Add(v + dob)
	}
	if d.Year != "" {
		pool.Add(v + d.Year)
		pool.Add(v + "@" + d.Year)
		pool.Add(v + "_" + d.Year)
		pool.Add(v + d.Year + "!")
		pool.Add(v + "@" + d.Year + "!")
	}
	if d.Day != "" && d.Month != "" {
		pool.Add(v + d.Day + d.Month)
		pool.Add(v + "@" + d.Day + d.Month)
	}
	if mobile != "" {
		pool.Add(v + mobile)
		pool.Add(v + "@" + mobile)
		pool.Add(mobile + v)
		pool.Add(mobile + "@" + v)
	}
}
