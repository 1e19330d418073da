package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"textanalyzer/internal/config"
)

// maxInputBytes bounds text read from files or stdin.
const maxInputBytes = 64 << 20

// readTextFile loads path after ~ expansion.
func readTextFile(path string) (string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	file, err := os.Open(expanded)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return readLimited(file, expanded)
}

func readLimited(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) > maxInputBytes {
		return "", fmt.Errorf("%s exceeds %d bytes", name, maxInputBytes)
	}
	return string(data), nil
}

// resolveText picks the text from a file flag, positional words, or stdin, in
// that order. Supplying both a file and positional words is an error.
func resolveText(filePath string, args []string, stdin io.Reader) (string, error) {
	filePath = strings.TrimSpace(filePath)
	switch {
	case filePath != "" && len(args) > 0:
		return "", errors.New("provide text as arguments or --file, not both")
	case filePath != "":
		return readTextFile(filePath)
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case stdin != nil:
		return readLimited(stdin, "stdin")
	default:
		return "", nil
	}
}
