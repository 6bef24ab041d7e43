package search

import (
	"math"
	"sort"
)

// RankedChunk pairs a chunk's original index with its similarity score.
type RankedChunk struct {
	Index int
	Score float64
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Mismatched or zero vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankTopK scores every chunk vector against the query vector and returns at
// most k results ordered by descending similarity. Ties rank the lower chunk
// index (earlier in the document) first, so repeated searches are
// deterministic regardless of sort internals.
func RankTopK(query []float64, vectors [][]float64, k int) []RankedChunk {
	if k <= 0 || len(vectors) == 0 {
		return nil
	}

	ranked := make([]RankedChunk, len(vectors))
	for i, vec := range vectors {
		ranked[i] = RankedChunk{Index: i, Score: CosineSimilarity(query, vec)}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}
