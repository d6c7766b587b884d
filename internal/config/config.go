// Package config holds build information and command defaults.
package config

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Version is injected via -ldflags.
var (
	Version = "1.0.0"
	Commit  = "none"
)

const AppName = "wordgen"

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// Generation Defaults
// -----------------------------------------------------------------------------

const (
	DefaultMinLength = 6
	DefaultMaxLength = 16
	DefaultOutput    = "wordlist.txt"

	// Boundary caps. Leetspeak expansion is exponential in word length and
	// combination is quadratic in the number of variants.
	DefaultMaxWordLength = 32
	DefaultMaxKeywords   = 64
	DefaultMaxCandidates = 20_000_000
)

// ProgressThreshold is the smallest wordlist that gets a progress bar.
const ProgressThreshold = 100_000
