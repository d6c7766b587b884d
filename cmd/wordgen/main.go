package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/lth/wordgen/internal/config"
	"github.com/lth/wordgen/internal/generator"
	"github.com/lth/wordgen/internal/prompt"
	"github.com/lth/wordgen/internal/wordlist"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	firstName    string
	lastName     string
	dateOfBirth  string
	nickname     string
	mobile       string
	keywords     []string
	keywordsFile string
	minLength    int
	maxLength    int

	output        string
	interactive   bool
	noProgress    bool
	verbose       bool
	maxWordLength int
	maxKeywords   int
	maxCandidates uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Personal-data wordlist generator for password recovery",
		Long: `wordgen v` + config.Version + `
Builds candidate password wordlists from a person's name, date of birth,
nickname, mobile number and custom keywords, using case variants,
leetspeak, pairwise combinations and common suffixes.

Run without any personal field on a terminal to fill in a prompt form.`,
		PersistentPreRun: setupLogging,
		Run:              runGenerate,
	}

	addInputFlags(rootCmd)
	rootCmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "Output file, or - for stdout")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the personal fields")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the candidate count without generating",
		Run:   runEstimate,
	}
	addInputFlags(estimateCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s (%s, %s/%s)\n", config.AppName, config.Version, config.Commit, runtime.GOOS, runtime.GOARCH)
		},
	}

	rootCmd.AddCommand(estimateCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(config.ExitCodeError)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&firstName, "first", "f", "", "First name")
	cmd.Flags().StringVarP(&lastName, "last", "l", "", "Last name")
	cmd.Flags().StringVarP(&dateOfBirth, "dob", "d", "", "Date of birth (DDMMYYYY or YYYY)")
	cmd.Flags().StringVarP(&nickname, "nickname", "n", "", "Nickname")
	cmd.Flags().StringVarP(&mobile, "mobile", "p", "", "Mobile number")
	cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "Special words (comma separated, repeatable)")
	cmd.Flags().StringVarP(&keywordsFile, "keywords-file", "K", "", "File with one special word per line")
	cmd.Flags().IntVarP(&minLength, "min", "m", config.DefaultMinLength, "Minimum password length")
	cmd.Flags().IntVarP(&maxLength, "max", "M", config.DefaultMaxLength, "Maximum password length")
	cmd.Flags().IntVar(&maxWordLength, "max-word-length", config.DefaultMaxWordLength, "Reject fields longer than this (0 disables)")
	cmd.Flags().IntVar(&maxKeywords, "max-keywords", config.DefaultMaxKeywords, "Reject more special words than this (0 disables)")
	cmd.Flags().Uint64Var(&maxCandidates, "max-candidates", config.DefaultMaxCandidates, "Reject inputs estimated above this many candidates (0 disables)")
}

func setupLogging(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(config.ExitCodeError)
}

func buildInput() (generator.PersonalInput, error) {
	in := generator.PersonalInput{
		FirstName:     strings.TrimSpace(firstName),
		LastName:      strings.TrimSpace(lastName),
		DateOfBirth:   strings.TrimSpace(dateOfBirth),
		Nickname:      strings.TrimSpace(nickname),
		MobileNumber:  strings.TrimSpace(mobile),
		ExtraKeywords: wordlist.SplitKeywords(strings.Join(keywords, ",")),
		MinLength:     minLength,
		MaxLength:     maxLength,
	}

	if keywordsFile != "" {
		extra, err := wordlist.ReadKeywords(keywordsFile)
		if err != nil {
			return in, err
		}
		slog.Debug("loaded keywords", "file", keywordsFile, "count", len(extra))
		in.ExtraKeywords = append(in.ExtraKeywords, extra...)
	}

	return in, nil
}

func limits() generator.Limits {
	return generator.Limits{
		MaxWordLength: maxWordLength,
		MaxKeywords:   maxKeywords,
		MaxCandidates: maxCandidates,
	}
}

// checkLimits points the user at the flag that raises the exceeded cap.
func checkLimits(in generator.PersonalInput) error {
	err := limits().Check(in)

	var le *generator.LimitError
	if errors.As(err, &le) {
		return fmt.Errorf("%w (raise --max-%s, or set it to 0 to disable the cap)", err, le.Cap)
	}
	return err
}

func validateBounds(in generator.PersonalInput) error {
	if in.MinLength <= 0 || in.MaxLength <= 0 {
		return fmt.Errorf("%w: min and max must be positive (got %d, %d)", generator.ErrInvalidLength, in.MinLength, in.MaxLength)
	}
	if in.MinLength > in.MaxLength {
		slog.Warn("min length exceeds max length, the wordlist will be empty", "min", in.MinLength, "max", in.MaxLength)
	}
	return nil
}

func runEstimate(cmd *cobra.Command, args []string) {
	in, err := buildInput()
	if err != nil {
		fatal(err)
	}

	est := generator.EstimateInput(in)

	fmt.Println("Candidate Estimate (upper bounds)")
	fmt.Println("=================================")
	fmt.Printf("Variants:    %d\n", est.Parts)
	fmt.Printf("Pairs:       %d\n", est.Pairs)
	fmt.Printf("Templates:   %d\n", est.Templates)
	fmt.Printf("Pool:        %d\n", est.Pool)
	fmt.Printf("Decorated:   %d\n", est.Decorated)

	if err := checkLimits(in); err != nil {
		fmt.Printf("Limits:      exceeded (%v)\n", err)
		return
	}
	fmt.Println("Limits:      ok")
}

func runGenerate(cmd *cobra.Command, args []string) {
	in, err := buildInput()
	if err != nil {
		fatal(err)
	}

	if interactive || (in.Empty() && prompt.IsInteractive(os.Stdin)) {
		fmt.Fprintf(os.Stderr, "%s v%s\n", config.AppName, config.Version)
		in, err = prompt.New(os.Stdin, os.Stderr).Form(in)
		if err != nil {
			fatal(err)
		}
	}

	if in.Empty() {
		cmd.Help()
		return
	}

	if err := validateBounds(in); err != nil {
		fatal(err)
	}
	if err := checkLimits(in); err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted - stopping...")
		cancel()
	}()

	start := time.Now()
	words, err := generator.Generate(in)
	if err != nil {
		fatal(err)
	}
	slog.Debug("generated", "candidates", len(words), "elapsed", formatDuration(time.Since(start)))

	sink := wordlist.New(output)

	// the summary must not mix with the wordlist on stdout
	var status io.Writer = os.Stdout
	if sink.IsStdout() {
		status = os.Stderr
	}

	var bar *progressbar.ProgressBar
	if !noProgress && !sink.IsStdout() && len(words) >= config.ProgressThreshold {
		bar = progressbar.NewOptions64(int64(len(words)),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("writing"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		sink.SetProgressCallback(func(p wordlist.Progress) {
			bar.Set64(int64(p.Written))
			bar.Describe("writing " + truncate(p.Current, 20))
		})
	}

	result, err := sink.Write(ctx, words)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fatal(err)
	}

	if len(words) == 0 {
		slog.Warn("no candidates matched the length bounds", "min", in.MinLength, "max", in.MaxLength)
	}

	if result.Interrupted {
		fmt.Fprintf(status, "Interrupted: %d of %d passwords written to %s\n", result.Written, len(words), result.Path)
		os.Exit(config.ExitCodeError)
	}

	fmt.Fprintf(status, "Wordlist saved to: %s\n", result.Path)
	fmt.Fprintf(status, "Total: %d passwords\n", result.Written)
	fmt.Fprintf(status, "Time: %s\n", formatDuration(time.Since(start)))
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
