package chunker

import (
	"strings"
	"unicode"
)

// sentenceAbbreviations lists common abbreviations that end with a period but
// do not terminate a sentence.
var sentenceAbbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "fig": {}, "vol": {}, "no": {}, "inc": {},
	"ltd": {}, "co": {}, "approx": {}, "dept": {}, "est": {}, "mt": {},
}

// ProbeSentenceTokenizer reports whether the abbreviation-aware sentence
// tokenizer is usable. Callers probe once at startup and pass the result down
// as the SentenceTokenizerAvailable capability flag.
func ProbeSentenceTokenizer() bool {
	sentences := tokenizeSentences("Dr. Smith arrived. He sat down.")
	return len(sentences) == 2
}

// chunkSentenceTokenizer uses the abbreviation-aware tokenizer when the
// capability flag is set, and degrades silently to regex sentence splitting
// otherwise or when the tokenizer produces nothing usable.
func chunkSentenceTokenizer(text string, available bool) []string {
	if !available {
		return chunkSentenceRegex(text)
	}
	sentences := tokenizeSentences(text)
	if len(sentences) == 0 {
		return chunkSentenceRegex(text)
	}
	return sentences
}

// tokenizeSentences splits text into sentences, keeping abbreviations such as
// "Dr." and single-letter initials attached to their sentence. A boundary
// requires terminal punctuation, following whitespace, and a next character
// that plausibly starts a sentence.
func tokenizeSentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	runes := []rune(trimmed)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Absorb runs of terminators and trailing closers ("...", '?!', '.")').
		j := i
		for j+1 < len(runes) && isSentenceCloser(runes[j+1]) {
			j++
		}
		if j+1 >= len(runes) {
			break
		}
		if !unicode.IsSpace(runes[j+1]) {
			i = j
			continue
		}
		if r == '.' && endsWithAbbreviation(runes[start:i]) {
			i = j
			continue
		}

		// The next non-space character must plausibly open a sentence.
		k := j + 1
		for k < len(runes) && unicode.IsSpace(runes[k]) {
			k++
		}
		if k >= len(runes) {
			break
		}
		next := runes[k]
		if !unicode.IsUpper(next) && !unicode.IsDigit(next) && next != '"' && next != '\'' {
			i = j
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : j+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = k
		i = k - 1
	}

	if start < len(runes) {
		tail := strings.TrimSpace(string(runes[start:]))
		if tail != "" {
			sentences = append(sentences, tail)
		}
	}
	return sentences
}

func isSentenceCloser(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '"' || r == '\'' || r == ')'
}

// endsWithAbbreviation reports whether the text immediately before a period
// is a known abbreviation or a single-letter initial.
func endsWithAbbreviation(prefix []rune) bool {
	end := len(prefix)
	i := end
	for i > 0 && unicode.IsLetter(prefix[i-1]) {
		i--
	}
	word := strings.ToLower(string(prefix[i:end]))
	if len(word) == 0 {
		return false
	}
	if len(word) == 1 {
		return true // initials like "J. Smith"
	}
	_, ok := sentenceAbbreviations[word]
	return ok
}
