// Package generator derives candidate passwords from personal data.
//
// The pipeline is ExtractDateFragments, ExpandVariants, Combine, Decorate
// and Finalize. Every stage is a pure function over in-memory sets.
package generator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("invalid length bounds")
	ErrInputTooLarge = errors.New("input too large")
)

type PersonalInput struct {
	FirstName     string
	LastName      string
	DateOfBirth   string
	Nickname      string
	MobileNumber  string
	ExtraKeywords []string
	MinLength     int
	MaxLength     int
}

// Empty reports whether no field can seed a candidate.
func (in PersonalInput) Empty() bool {
	if in.FirstName != "" || in.LastName != "" || in.Nickname != "" ||
		in.MobileNumber != "" || in.DateOfBirth != "" {
		return false
	}
	for _, k := range in.ExtraKeywords {
		if k != "" {
			return false
		}
	}
	return true
}

func (in PersonalInput) seeds() Seeds {
	keywords := make([]string, len(in.ExtraKeywords))
	copy(keywords, in.ExtraKeywords)

	return Seeds{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Nickname:  in.Nickname,
		DOB:       in.DateOfBirth,
		Mobile:    in.MobileNumber,
		Keywords:  keywords,
		Date:      ExtractDateFragments(in.DateOfBirth),
	}
}

// Generate runs the whole pipeline. The only error is a negative bound.
func Generate(in PersonalInput) ([]string, error) {
	if in.MinLength < 0 || in.MaxLength < 0 {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrInvalidLength, in.MinLength, in.MaxLength)
	}

	pool := Combine(in.seeds())
	pool = Decorate(pool)

	return Finalize(pool, in.MinLength, in.MaxLength), nil
}
