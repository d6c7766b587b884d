package wordlist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkCreation(t *testing.T) {
	s := New("out.txt")
	assert.Equal(t, "out.txt", s.Path())
	assert.False(t, s.IsStdout())

	s = New("")
	assert.True(t, s.IsStdout(), "empty path should mean stdout")
}

func TestSinkWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	words := []string{"John1990", "John@1990", "john_1990"}

	res, err := New(path).Write(context.Background(), words)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), res.Written)
	assert.Equal(t, path, res.Path)
	assert.False(t, res.Interrupted)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John1990\nJohn@1990\njohn_1990\n", string(data))
}

func TestSinkWriteStdout(t *testing.T) {
	var buf bytes.Buffer
	s := New(Stdout)
	s.stdout = &buf

	res, err := s.Write(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, Stdout, res.Path)
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestSinkWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	res, err := New(path).Write(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, res.Written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSinkProgress(t *testing.T) {
	var buf bytes.Buffer
	s := New(Stdout)
	s.stdout = &buf

	words := make([]string, 2500)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}

	var calls []Progress
	s.SetProgressCallback(func(p Progress) {
		calls = append(calls, p)
	})

	_, err := s.Write(context.Background(), words)
	require.NoError(t, err)

	require.Len(t, calls, 3)
	assert.Equal(t, uint64(1000), calls[0].Written)
	assert.Equal(t, uint64(2500), calls[2].Written)
	assert.Equal(t, uint64(2500), calls[2].Total)
	assert.Equal(t, "word2499", calls[2].Current)
}

func TestSinkCancelled(t *testing.T) {
	var buf bytes.Buffer
	s := New(Stdout)
	s.stdout = &buf

	ctx, cancel := context.WithCancel(context.Background())
	words := make([]string, 5000)
	for i := range words {
		words[i] = "x"
	}

	s.SetProgressCallback(func(p Progress) {
		if p.Written == 2000 {
			cancel()
		}
	})

	res, err := s.Write(ctx, words)
	require.NoError(t, err)
	assert.True(t, res.Interrupted)
	assert.Equal(t, uint64(2000), res.Written)
	assert.Equal(t, 2000, strings.Count(buf.String(), "\n"))
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error {
	return f.closeErr
}

func TestSinkCloseError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	fc := &failingCloser{closeErr: diskFull}

	s := New(filepath.Join(t.TempDir(), "out.txt"))
	s.create = func(string) (io.WriteCloser, error) { return fc, nil }

	_, err := s.Write(context.Background(), []string{"John1990"})
	assert.ErrorIs(t, err, diskFull)
	assert.Equal(t, "John1990\n", fc.String())
}

func TestSinkCloseErrorAfterCancel(t *testing.T) {
	diskFull := errors.New("no space left on device")
	s := New(filepath.Join(t.TempDir(), "out.txt"))
	s.create = func(string) (io.WriteCloser, error) { return &failingCloser{closeErr: diskFull}, nil }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Write(ctx, []string{"a"})
	assert.ErrorIs(t, err, diskFull)
	assert.False(t, res.Interrupted)
}

func TestSinkBadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "out.txt")).Write(context.Background(), []string{"a"})
	assert.Error(t, err)
}

func BenchmarkSink(b *testing.B) {
	words := make([]string, 100000)
	for i := range words {
		words[i] = fmt.Sprintf("test%d", i)
	}

	var buf bytes.Buffer
	s := New(Stdout)
	s.stdout = &buf

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		s.Write(context.Background(), words)
	}
}
