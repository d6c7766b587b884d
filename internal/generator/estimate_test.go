package generator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateInput(t *testing.T) {
	tests := []struct {
		in       PersonalInput
		expected Estimate
	}{
		{PersonalInput{}, Estimate{}},
		{PersonalInput{FirstName: "cat"}, Estimate{Parts: 9, Pairs: 72, Pool: 81, Decorated: 2025}},
		{PersonalInput{Nickname: "zz", MobileNumber: "555"}, Estimate{Parts: 8, Pairs: 56, Templates: 16, Pool: 97, Decorated: 2425}},
	}

	for _, tt := range tests {
		result := EstimateInput(tt.in)
		if result != tt.expected {
			t.Errorf("EstimateInput(%+v) = %+v, want %+v", tt.in, result, tt.expected)
		}
	}
}

func TestEstimateIsUpperBound(t *testing.T) {
	inputs := []PersonalInput{
		johnInput(),
		{FirstName: "Alice", LastName: "Stone", DateOfBirth: "15031990", Nickname: "al", ExtraKeywords: []string{"tobi"}},
		{MobileNumber: "555", ExtraKeywords: []string{"a", "b"}},
	}

	for _, in := range inputs {
		est := EstimateInput(in)
		pool := Combine(in.seeds())

		assert.LessOrEqual(t, uint64(len(Parts(in.seeds()))), est.Parts)
		assert.LessOrEqual(t, uint64(len(pool)), est.Pool)
		assert.LessOrEqual(t, uint64(len(Decorate(pool))), est.Decorated)
	}
}

func TestEstimateSaturates(t *testing.T) {
	est := EstimateInput(PersonalInput{FirstName: strings.Repeat("a", 100)})
	assert.Equal(t, uint64(math.MaxUint64), est.Parts)
	assert.Equal(t, uint64(math.MaxUint64), est.Decorated)
}

func TestLimitsCheck(t *testing.T) {
	l := Limits{MaxWordLength: 12, MaxKeywords: 2, MaxCandidates: 1_000_000}

	require.NoError(t, l.Check(johnInput()))

	err := l.Check(PersonalInput{LastName: "Wolfeschlegel"})
	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.Contains(t, err.Error(), "last name")

	err = l.Check(PersonalInput{ExtraKeywords: []string{"a", "b", "c"}})
	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.Contains(t, err.Error(), "3 keywords")

	err = l.Check(PersonalInput{ExtraKeywords: []string{"x", "verylongkeyword"}})
	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.Contains(t, err.Error(), "keyword 2")

	err = l.Check(PersonalInput{FirstName: "aaaaaaaa", LastName: "ssssssss"})
	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.Contains(t, err.Error(), "candidates")

	assert.NoError(t, Limits{}.Check(PersonalInput{FirstName: strings.Repeat("x", 500)}))
}

func TestLimitsCheckNamesCap(t *testing.T) {
	l := Limits{MaxWordLength: 12, MaxKeywords: 2, MaxCandidates: 1_000_000}

	tests := []struct {
		name string
		in   PersonalInput
		cap  string
	}{
		{"word length", PersonalInput{LastName: "Wolfeschlegel"}, CapWordLength},
		{"keywords", PersonalInput{ExtraKeywords: []string{"a", "b", "c"}}, CapKeywords},
		{"candidates", PersonalInput{FirstName: "aaaaaaaa", LastName: "ssssssss"}, CapCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var le *LimitError
			require.ErrorAs(t, l.Check(tt.in), &le)
			assert.Equal(t, tt.cap, le.Cap)
		})
	}
}

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	assert.Greater(t, l.MaxWordLength, 0)
	assert.Greater(t, l.MaxKeywords, 0)
	assert.Greater(t, l.MaxCandidates, uint64(0))
	assert.NoError(t, l.Check(johnInput()))
}

func BenchmarkExpandVariants(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExpandVariants("basketballs")
	}
}
