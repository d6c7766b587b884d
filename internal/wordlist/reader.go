package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadKeywords loads one keyword per line, skipping blank lines.
func ReadKeywords(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var keywords []string
	for scanner.Scan() {
		if k := strings.TrimSpace(scanner.Text()); k != "" {
			keywords = append(keywords, k)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}

	return keywords, nil
}

// SplitKeywords splits a comma separated list, dropping empty entries.
func SplitKeywords(s string) []string {
	var keywords []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
