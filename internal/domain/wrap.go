package domain

import (
	"strings"
	"unicode"
)

// fillComment wraps text greedily at width columns. Lines after the first are
// prefixed with indent, which counts toward the width. Whitespace at line
// breaks is dropped; leading whitespace of the first line is kept.
func fillComment(text string, width int, indent string) string {
	chunks := splitChunks(text)
	lines := make([]string, 0, 2)

	for i := 0; i < len(chunks); {
		prefix := ""
		if len(lines) > 0 {
			prefix = indent

			if isBlank(chunks[i]) {
				i++
				continue
			}
		}

		limit := width - len(prefix)
		line := make([]string, 0, len(chunks)-i)
		size := 0

		for i < len(chunks) && (size+len(chunks[i]) <= limit || len(line) == 0) {
			size += len(chunks[i])
			line = append(line, chunks[i])
			i++
		}

		if isBlank(line[len(line)-1]) {
			line = line[:len(line)-1]
		}

		if len(line) > 0 {
			lines = append(lines, prefix+strings.Join(line, ""))
		}
	}

	return strings.Join(lines, "\n")
}

// splitChunks cuts text into alternating runs of whitespace and non-whitespace.
func splitChunks(text string) []string {
	var chunks []string

	start := 0

	for i, r := range text {
		if i > start && unicode.IsSpace(r) != unicode.IsSpace(rune(text[start])) {
			chunks = append(chunks, text[start:i])
			start = i
		}
	}

	if start < len(text) {
		chunks = append(chunks, text[start:])
	}

	return chunks
}

func isBlank(chunk string) bool {
	return strings.TrimSpace(chunk) == ""
}
