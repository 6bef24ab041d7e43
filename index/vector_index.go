// Package index implements the TF-IDF term-vector space built over a chunk
// sequence. The fitted state (vocabulary, IDF weights, chunk vectors) is
// immutable after Fit; a new document requires a full new fit.
package index

import (
	"math"
	"sort"

	"github.com/docquery/go-retrieval-engine/internal/errors"
	"github.com/docquery/go-retrieval-engine/internal/tokenizer"
)

// VectorIndex maps vocabulary terms to learned IDF weights and holds one
// L2-normalized TF-IDF vector per fitted chunk.
type VectorIndex struct {
	vocabulary map[string]int
	idf        []float64
	vectors    [][]float64
	fitted     bool
}

// NewVectorIndex creates an unfitted vector index.
func NewVectorIndex() *VectorIndex {
	return &VectorIndex{
		vocabulary: make(map[string]int),
	}
}

// Fit builds the vocabulary and IDF weights from the chunk sequence and
// computes one normalized vector per chunk. It returns a degenerate-input
// error (matching errors.ErrDegenerateInput) when the chunk list is empty or
// no terms survive stop-word removal.
func (vi *VectorIndex) Fit(chunks []string) error {
	if len(chunks) == 0 {
		return errors.NewDegenerateInputError("vectorization", "no chunks to fit")
	}

	// Document frequencies over stop-word-filtered tokens.
	df := make(map[string]int)
	for _, chunk := range chunks {
		seen := make(map[string]struct{})
		for _, tok := range tokenizer.TokenizeFiltered(chunk) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	if len(df) == 0 {
		return errors.NewDegenerateInputError("vectorization", "no vocabulary terms survived stop-word removal")
	}

	// Stable vocabulary ordering so repeated fits are byte-identical.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vi.vocabulary = make(map[string]int, len(terms))
	vi.idf = make([]float64, len(terms))
	n := float64(len(chunks))
	for i, term := range terms {
		vi.vocabulary[term] = i
		// Smoothed IDF: log((1+N)/(1+df)) + 1
		vi.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vi.vectors = make([][]float64, len(chunks))
	for i, chunk := range chunks {
		vi.vectors[i] = vi.vectorize(chunk)
	}
	vi.fitted = true
	return nil
}

// Transform projects a query string into the fitted space without altering
// the fitted state. Terms absent from the vocabulary are ignored. Returns the
// zero vector when the index is unfit or no query term is in the vocabulary.
func (vi *VectorIndex) Transform(text string) []float64 {
	if !vi.fitted {
		return nil
	}
	return vi.vectorize(text)
}

// Fitted reports whether Fit has completed successfully.
func (vi *VectorIndex) Fitted() bool { return vi.fitted }

// Dimension returns the vocabulary size of the fitted space.
func (vi *VectorIndex) Dimension() int { return len(vi.idf) }

// Vectors returns the per-chunk vectors in chunk order. The slice is owned by
// the index and must not be mutated.
func (vi *VectorIndex) Vectors() [][]float64 { return vi.vectors }

// vectorize computes the L2-normalized TF-IDF vector for a single text.
func (vi *VectorIndex) vectorize(text string) []float64 {
	vec := make([]float64, len(vi.idf))

	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenizer.TokenizeFiltered(text) {
		if idx, ok := vi.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}

	for idx, count := range tf {
		vec[idx] = (float64(count) / float64(total)) * vi.idf[idx]
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
