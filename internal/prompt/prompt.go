// Package prompt collects personal details line by line on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lth/wordgen/internal/generator"
	"github.com/lth/wordgen/internal/wordlist"
	"golang.org/x/term"
)

const maxAttempts = 3

var ErrInvalidNumber = errors.New("invalid number")

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints label and returns the trimmed answer. An empty answer, or
// end of input, yields def.
func (p *Prompter) Ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}

	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return def, nil
}

// AskInt asks for a positive integer, re-prompting on bad answers.
func (p *Prompter) AskInt(label string, def int) (int, error) {
	for attempt := 1; ; attempt++ {
		answer, err := p.Ask(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n > 0 {
			return n, nil
		}
		if attempt >= maxAttempts {
			return 0, fmt.Errorf("%w for %s: %q", ErrInvalidNumber, strings.ToLower(label), answer)
		}
		fmt.Fprintln(p.out, "Please enter a positive whole number.")
	}
}

// Form asks for every field of in, keeping the values already set as
// defaults.
func (p *Prompter) Form(in generator.PersonalInput) (generator.PersonalInput, error) {
	text := []struct {
		label string
		field *string
	}{
		{"First Name", &in.FirstName},
		{"Last Name", &in.LastName},
		{"Date of Birth (DDMMYYYY or YYYY)", &in.DateOfBirth},
		{"Nickname", &in.Nickname},
		{"Mobile Number", &in.MobileNumber},
	}

	for _, q := range text {
		answer, err := p.Ask(q.label, *q.field)
		if err != nil {
			return in, err
		}
		*q.field = answer
	}

	special, err := p.Ask("Special Words (comma separated)", strings.Join(in.ExtraKeywords, ","))
	if err != nil {
		return in, err
	}
	in.ExtraKeywords = wordlist.SplitKeywords(special)

	if in.MinLength, err = p.AskInt("Min Password Length", in.MinLength); err != nil {
		return in, err
	}
	if in.MaxLength, err = p.AskInt("Max Password Length", in.MaxLength); err != nil {
		return in, err
	}

	return in, nil
}
