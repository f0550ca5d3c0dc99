// Package parse turns free-form pasted statement text into normalized
// candidate transactions. It is pure: no I/O, no shared state.
package parse

import "strings"

// Tokenize splits raw pasted text into candidate lines. Whitespace-only lines
// are dropped; surviving lines keep their original text and order. Empty
// input yields an empty result, never an error.
func Tokenize(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
