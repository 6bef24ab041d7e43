package chunker

import "strings"

// chunkFixedSize produces sliding windows of size words, advancing by
// size-overlap words per step. Overlap is clamped to [0, size-1]; iteration
// stops once the window start passes the last word.
func chunkFixedSize(text string, size, overlap int) []string {
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}

	words := strings.Fields(text)
	step := size - overlap

	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// chunkSlidingWindow produces windowSize-word windows at offsets
// 0, stepSize, 2*stepSize, ... and halts once a window reaches the end of
// the document.
func chunkSlidingWindow(text string, windowSize, stepSize int) []string {
	words := strings.Fields(text)

	var chunks []string
	for i := 0; i < len(words); i += stepSize {
		end := i + windowSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
		if i+windowSize >= len(words) {
			break
		}
	}
	return chunks
}
