package generator

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Estimate holds upper bounds for each stage of a generation run.
type Estimate struct {
	Parts     uint64
	Pairs     uint64
	Templates uint64
	Pool      uint64
	Decorated uint64
}

// EstimateInput bounds the pool sizes for in without generating anything.
// Counts saturate at math.MaxUint64.
func EstimateInput(in PersonalInput) Estimate {
	s := in.seeds()

	var e Estimate
	for _, tok := range s.tokens() {
		e.Parts = addSat(e.Parts, variantBound(tok))
	}
	if e.Parts > 1 {
		e.Pairs = mulSat(e.Parts, e.Parts-1)
	}

	perVariant := uint64(0)
	if s.DOB != "" {
		perVariant += 2
	}
	if s.Date.Year != "" {
		perVariant += 5
	}
	if s.Date.Day != "" && s.Date.Month != "" {
		perVariant += 2
	}
	if s.Mobile != "" {
		perVariant += 4
	}
	for _, name := range s.names() {
		e.Templates = addSat(e.Templates, mulSat(variantBound(name), perVariant))
	}

	e.Pool = addSat(e.Parts, e.Pairs)
	e.Pool = addSat(e.Pool, e.Templates)
	if s.Mobile != "" {
		e.Pool = addSat(e.Pool, addSat(1, mulSat(2, e.Parts)))
	}

	e.Decorated = mulSat(e.Pool, uint64(1+2*len(Decorations())))
	return e
}

func variantBound(tok string) uint64 {
	if tok == "" {
		return 0
	}
	return addSat(3, leetCount(tok))
}

// Limits caps the input accepted at the command boundary. A zero field
// disables that cap.
type Limits struct {
	MaxWordLength int
	MaxKeywords   int
	MaxCandidates uint64
}

func DefaultLimits() Limits {
	return Limits{
		MaxWordLength: 32,
		MaxKeywords:   64,
		MaxCandidates: 20_000_000,
	}
}

// Caps named by LimitError.
const (
	CapWordLength = "word-length"
	CapKeywords   = "keywords"
	CapCandidates = "candidates"
)

// LimitError reports which cap an input exceeded. It unwraps to
// ErrInputTooLarge.
type LimitError struct {
	Cap    string
	Detail string
}

func (e *LimitError) Error() string {
	return ErrInputTooLarge.Error() + ": " + e.Detail
}

func (e *LimitError) Unwrap() error {
	return ErrInputTooLarge
}

// Check fails with a *LimitError when in would exceed l.
func (l Limits) Check(in PersonalInput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"first name", in.FirstName},
		{"last name", in.LastName},
		{"date of birth", in.DateOfBirth},
		{"nickname", in.Nickname},
		{"mobile number", in.MobileNumber},
	}
	for i, k := range in.ExtraKeywords {
		fields = append(fields, struct {
			name  string
			value string
		}{fmt.Sprintf("keyword %d", i+1), k})
	}

	if l.MaxWordLength > 0 {
		for _, f := range fields {
			if n := utf8.RuneCountInString(f.value); n > l.MaxWordLength {
				return &LimitError{
					Cap:    CapWordLength,
					Detail: fmt.Sprintf("%s is %d characters, limit %d", f.name, n, l.MaxWordLength),
				}
			}
		}
	}

	if l.MaxKeywords > 0 && len(in.ExtraKeywords) > l.MaxKeywords {
		return &LimitError{
			Cap:    CapKeywords,
			Detail: fmt.Sprintf("%d keywords, limit %d", len(in.ExtraKeywords), l.MaxKeywords),
		}
	}

	if l.MaxCandidates > 0 {
		if est := EstimateInput(in); est.Decorated > l.MaxCandidates {
			return &LimitError{
				Cap:    CapCandidates,
				Detail: fmt.Sprintf("up to %s candidates, limit %d", formatCount(est.Decorated), l.MaxCandidates),
			}
		}
	}

	return nil
}

func formatCount(n uint64) string {
	if n == math.MaxUint64 {
		return "overflow"
	}
	return fmt.Sprintf("%d", n)
}

func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func mulSat(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}
