package chunker

import (
	"strings"
	"unicode/utf8"
)

// recursiveSeparators is the priority-ordered separator list for recursive
// splitting. The empty string is the unconditional character-slicing
// fallback.
var recursiveSeparators = []string{"\n\n", "\n", ". ", "! ", "? ", "; ", ", ", " ", ""}

// chunkRecursive splits text into chunks of at most chunkSize characters by
// recursively descending the separator priority list. Consecutive pieces are
// greedily merged; when a finished chunk still exceeds chunkSize it is
// re-split with the remaining lower-priority separators. New buffers are
// seeded with the trailing chunkOverlap characters of the previous finished
// buffer for continuity.
func chunkRecursive(text string, chunkSize, chunkOverlap int) []string {
	return splitRecursive(text, recursiveSeparators, chunkSize, chunkOverlap)
}

func splitRecursive(text string, separators []string, chunkSize, chunkOverlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= chunkSize {
		return []string{text}
	}

	sep := separators[0]
	if sep == "" {
		return sliceByRunes(text, chunkSize, chunkOverlap)
	}

	parts := strings.Split(text, sep)
	if len(parts) == 1 {
		// Separator absent; descend to the next priority level.
		return splitRecursive(text, separators[1:], chunkSize, chunkOverlap)
	}

	var chunks []string
	emit := func(buf string) {
		if strings.TrimSpace(buf) == "" {
			return
		}
		if utf8.RuneCountInString(buf) > chunkSize {
			chunks = append(chunks, splitRecursive(buf, separators[1:], chunkSize, chunkOverlap)...)
		} else {
			chunks = append(chunks, buf)
		}
	}

	buf := ""
	for i, part := range parts {
		piece := part
		if i < len(parts)-1 {
			// Re-append the separator so chunks remain reconstructible.
			piece += sep
		}
		if buf != "" && utf8.RuneCountInString(buf)+utf8.RuneCountInString(piece) > chunkSize {
			emit(buf)
			buf = tailRunes(buf, chunkOverlap) + piece
			continue
		}
		buf += piece
	}
	emit(buf)
	return chunks
}

// sliceByRunes is the character-slicing fallback, advancing by
// chunkSize-chunkOverlap characters per slice.
func sliceByRunes(text string, chunkSize, chunkOverlap int) []string {
	runes := []rune(text)
	step := chunkSize - chunkOverlap
	if step <= 0 {
		step = chunkSize
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// tailRunes returns the last n characters of s.
func tailRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
