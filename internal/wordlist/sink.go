package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Stdout is the path that makes a Sink write to standard output.
const Stdout = "-"

const reportEvery = 1000

type Result struct {
	Written     uint64
	Path        string
	Duration    time.Duration
	Interrupted bool
}

type Progress struct {
	Written     uint64
	Total       uint64
	Rate        float64
	Current     string
	ElapsedTime time.Duration
}

// Sink writes a finished wordlist one word per line.
type Sink struct {
	path       string
	stdout     io.Writer
	create     func(name string) (io.WriteCloser, error)
	startTime  time.Time
	progressCb func(Progress)
}

func New(path string) *Sink {
	if path == "" {
		path = Stdout
	}
	return &Sink{
		path:   path,
		stdout: os.Stdout,
		create: createFile,
	}
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func (s *Sink) SetProgressCallback(cb func(Progress)) {
	s.progressCb = cb
}

func (s *Sink) Path() string {
	return s.path
}

func (s *Sink) IsStdout() bool {
	return s.path == Stdout
}

func (s *Sink) reportProgress(written, total uint64, current string) {
	if s.progressCb == nil {
		return
	}

	elapsed := time.Since(s.startTime)
	rate := float64(written) / elapsed.Seconds()

	s.progressCb(Progress{
		Written:     written,
		Total:       total,
		Rate:        rate,
		Current:     current,
		ElapsedTime: elapsed,
	})
}

// Write stores words at the sink path. On cancellation it stops early and
// returns the partial count with Interrupted set.
func (s *Sink) Write(ctx context.Context, words []string) (Result, error) {
	s.startTime = time.Now()
	result := Result{Path: s.path}

	var written uint64
	var err error
	if s.IsStdout() {
		written, err = s.writeTo(ctx, s.stdout, words)
	} else {
		if abs, absErr := filepath.Abs(s.path); absErr == nil {
			result.Path = abs
		}

		f, createErr := s.create(s.path)
		if createErr != nil {
			return result, fmt.Errorf("failed to create output file: %w", createErr)
		}

		written, err = s.writeTo(ctx, f, words)
		// close errors fail the write
		if closeErr := f.Close(); closeErr != nil && (err == nil || isCancel(err)) {
			err = closeErr
		}
	}

	result.Written = written
	result.Duration = time.Since(s.startTime)

	if isCancel(err) {
		result.Interrupted = true
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("failed to write wordlist: %w", err)
	}

	return result, nil
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *Sink) writeTo(ctx context.Context, w io.Writer, words []string) (uint64, error) {
	bw := bufio.NewWriterSize(w, 64*1024)
	total := uint64(len(words))
	var written uint64

	for _, word := range words {
		if written%reportEvery == 0 {
			select {
			case <-ctx.Done():
				if err := bw.Flush(); err != nil {
					return written, err
				}
				return written, ctx.Err()
			default:
			}
		}

		if _, err := bw.WriteString(word); err != nil {
			return written, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return written, err
		}
		written++

		if written%reportEvery == 0 {
			s.reportProgress(written, total, word)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, err
	}
	if len(words) > 0 {
		s.reportProgress(written, total, words[len(words)-1])
	}

	return written, nil
}
