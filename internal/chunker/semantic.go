package chunker

import (
	"strings"

	"github.com/docquery/go-retrieval-engine/index"
	"github.com/docquery/go-retrieval-engine/internal/search"
)

// chunkSemantic groups sentences into chunks by TF-IDF similarity: a new
// chunk opens wherever the similarity between a sentence buffer and the
// following buffer drops below the threshold. Falls back to the raw sentence
// list when there is at most one sentence or vectorization degenerates.
func chunkSemantic(text string, bufferSize int, threshold float64) []string {
	sentences := chunkSentenceRegex(text)
	if len(sentences) <= 1 {
		return sentences
	}

	vi := index.NewVectorIndex()
	if err := vi.Fit(sentences); err != nil {
		// Degenerate vocabulary (e.g. stop words only): keep the sentences.
		return sentences
	}
	vectors := vi.Vectors()
	n := len(sentences)

	// boundaries[j] opens a new chunk before sentence j. The last bufferSize
	// sentences have no forward window and stay with the current chunk.
	boundaries := make(map[int]bool)
	for i := 0; i+bufferSize < n; i++ {
		left := meanVector(vectors[i : i+bufferSize])
		rightEnd := i + 2*bufferSize
		if rightEnd > n {
			rightEnd = n
		}
		right := meanVector(vectors[i+bufferSize : rightEnd])
		if search.CosineSimilarity(left, right) < threshold {
			boundaries[i+bufferSize] = true
		}
	}

	var chunks []string
	var current []string
	for j, s := range sentences {
		if j > 0 && boundaries[j] {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
		}
		current = append(current, s)
	}
	chunks = append(chunks, strings.Join(current, " "))
	return chunks
}

// meanVector averages a group of equal-dimension vectors component-wise.
func meanVector(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	mean := make([]float64, len(vectors[0]))
	for _, vec := range vectors {
		for i, v := range vec {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}
	return mean
}
