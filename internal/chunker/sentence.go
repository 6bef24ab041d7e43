package chunker

import (
	"regexp"
	"strings"
)

// sentenceBoundaryRegex marks whitespace that follows sentence-ending
// punctuation. The punctuation itself is kept with the preceding sentence.
var sentenceBoundaryRegex = regexp.MustCompile(`([.!?])\s+`)

// paragraphSplitRegex matches one-or-more blank lines between paragraphs.
var paragraphSplitRegex = regexp.MustCompile(`\n\s*\n`)

// chunkSentenceRegex splits text into sentences at whitespace following
// '.', '!' or '?'. Deterministic, no external tokenizer involved.
func chunkSentenceRegex(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	// Go's regexp has no lookbehind, so mark boundaries with NUL (which
	// cannot survive in normalized document text) and split on the marker.
	marked := sentenceBoundaryRegex.ReplaceAllString(trimmed, "${1}\x00")
	parts := strings.Split(marked, "\x00")

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// chunkParagraph splits text on blank lines, trimming and dropping empty
// paragraphs.
func chunkParagraph(text string) []string {
	parts := paragraphSplitRegex.Split(strings.TrimSpace(text), -1)

	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	return paragraphs
}
