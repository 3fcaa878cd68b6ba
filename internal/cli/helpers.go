package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ParseModulesList turns comma or whitespace separated input into
// individual module names.
func ParseModulesList(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	var out []string
	for _, part := range parts {
		candidate := strings.TrimSpace(part)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

// readBatchFile loads one phone number per line, skipping blanks and
// # comments.
func readBatchFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var numbers []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numbers = append(numbers, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return numbers, nil
}
