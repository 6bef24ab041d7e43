package chunker

import (
	"regexp"
	"strings"
	"unicode"
)

type elementKind int

const (
	elemParagraph elementKind = iota
	elemHeading
	elemList
)

// element is one typed structural unit of the document: a heading with a
// level, a run of list items, or a paragraph.
type element struct {
	kind  elementKind
	level int
	text  string
}

var (
	markdownHeadingRegex = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	numberedListRegex    = regexp.MustCompile(`^\d+[.)]\s+`)
	letteredListRegex    = regexp.MustCompile(`^[a-zA-Z][.)]\s+`)
)

// chunkHierarchical splits a document along its structure: headings, lists
// and paragraphs are parsed first, then assembled into chunks of at most
// maxChunkSize characters. A heading always starts a fresh chunk; when
// preserveStructure is set, continuation chunks carry the active heading as
// a "[Continued from: ...]" marker.
func chunkHierarchical(text string, maxChunkSize int, preserveStructure bool, headingMaxLength int, headingUppercaseRatio float64) []string {
	elements := parseStructure(text, headingMaxLength, headingUppercaseRatio)
	return assembleChunks(elements, maxChunkSize, preserveStructure)
}

// parseStructure classifies the document line by line into typed elements.
// Consecutive list items form one list element; consecutive plain lines form
// one paragraph element, joined with spaces.
func parseStructure(text string, headingMaxLength int, headingUppercaseRatio float64) []element {
	lines := strings.Split(text, "\n")

	var elements []element
	var paragraph []string
	var listItems []string

	flushParagraph := func() {
		if len(paragraph) > 0 {
			elements = append(elements, element{kind: elemParagraph, text: strings.Join(paragraph, " ")})
			paragraph = nil
		}
	}
	flushList := func() {
		if len(listItems) > 0 {
			elements = append(elements, element{kind: elemList, text: strings.Join(listItems, "\n")})
			listItems = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			flushList()
			flushParagraph()
			continue
		}

		if m := markdownHeadingRegex.FindStringSubmatch(trimmed); m != nil {
			flushList()
			flushParagraph()
			elements = append(elements, element{kind: elemHeading, level: len(m[1]), text: strings.TrimSpace(m[2])})
			continue
		}

		// Setext-style heading: underlined by a run of '=' (level 1) or
		// '-' (level 2) on the following line.
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if level := underlineLevel(next); level > 0 {
				flushList()
				flushParagraph()
				elements = append(elements, element{kind: elemHeading, level: level, text: trimmed})
				i++ // consume the underline
				continue
			}
		}

		if isListItem(trimmed) {
			flushParagraph()
			listItems = append(listItems, trimmed)
			continue
		}

		if isHeuristicHeading(trimmed, headingMaxLength, headingUppercaseRatio) {
			flushList()
			flushParagraph()
			elements = append(elements, element{kind: elemHeading, level: 3, text: trimmed})
			continue
		}

		flushList()
		paragraph = append(paragraph, trimmed)
	}

	flushList()
	flushParagraph()
	return elements
}

// underlineLevel returns 1 for a run of '=', 2 for a run of '-', 0 otherwise.
func underlineLevel(line string) int {
	if len(line) < 2 {
		return 0
	}
	for _, c := range []struct {
		char  rune
		level int
	}{{'=', 1}, {'-', 2}} {
		all := true
		for _, r := range line {
			if r != c.char {
				all = false
				break
			}
		}
		if all {
			return c.level
		}
	}
	return 0
}

func isListItem(line string) bool {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "• ") {
		return true
	}
	return numberedListRegex.MatchString(line) || letteredListRegex.MatchString(line)
}

// isHeuristicHeading detects headings that carry no markup: a short line
// without trailing sentence punctuation that is all-uppercase, or mostly
// uppercase with a capitalized first letter.
func isHeuristicHeading(line string, maxLength int, uppercaseRatio float64) bool {
	if len(line) >= maxLength {
		return false
	}
	if strings.ContainsAny(line[len(line)-1:], ".!?,;:") {
		return false
	}

	letters, upper := 0, 0
	var firstLetter rune
	for _, r := range line {
		if unicode.IsLetter(r) {
			if letters == 0 {
				firstLetter = r
			}
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	if upper == letters {
		return true
	}
	return float64(upper)/float64(letters) > uppercaseRatio && unicode.IsUpper(firstLetter)
}

// assembleChunks merges elements into chunks. Headings flush the running
// chunk; any other element that would push the running size past
// maxChunkSize starts a new chunk, seeded with a continuation marker when
// preserveStructure is set and a heading is in effect.
func assembleChunks(elements []element, maxChunkSize int, preserveStructure bool) []string {
	var chunks []string
	var current []string
	currentLen := 0
	var activeHeading *element

	appendPart := func(text string) {
		if len(current) > 0 {
			currentLen += 2 // blank-line separator
		}
		current = append(current, text)
		currentLen += len(text)
	}
	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(current, "\n\n"))
		current = nil
		currentLen = 0
	}

	for _, el := range elements {
		if el.kind == elemHeading {
			flush()
			heading := el
			activeHeading = &heading

			text := el.text
			if preserveStructure {
				text = strings.Repeat("#", el.level) + " " + el.text
			}
			appendPart(text)
			continue
		}

		if currentLen > 0 && currentLen+2+len(el.text) > maxChunkSize {
			flush()
			if preserveStructure && activeHeading != nil {
				appendPart("[Continued from: " + activeHeading.text + "]")
			}
		}
		appendPart(el.text)
	}

	flush()
	return chunks
}
