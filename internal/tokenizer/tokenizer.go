package tokenizer

import (
	"regexp"
	"strings"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Tokenize converts a string into a slice of lowercase tokens, splitting on
// non-alphanumeric characters and dropping empties. Stop words are kept; use
// TokenizeFiltered for vector-space tokenization.
func Tokenize(text string) []string {
	lowerText := strings.ToLower(text)
	split := nonAlphanumericRegex.Split(lowerText, -1)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" { // Filter out empty strings
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// TokenizeFiltered tokenizes and removes English stop words. This is the
// tokenization used when fitting and querying the TF-IDF vector space.
func TokenizeFiltered(text string) []string {
	tokens := Tokenize(text)

	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsStopWord(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// IsStopWord reports whether the (already lowercased) token is an English
// stop word.
func IsStopWord(token string) bool {
	_, ok := englishStopWords[token]
	return ok
}
