package search

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical vectors", []float64{1, 0}, []float64{1, 0}, 1.0},
		{"orthogonal vectors", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0.0},
		{"scaled vectors keep similarity", []float64{2, 0}, []float64{5, 0}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRankTopK_OrderAndBound(t *testing.T) {
	query := []float64{1, 0, 0}
	vectors := [][]float64{
		{0, 1, 0},             // orthogonal, score 0
		{1, 0, 0},             // identical, score 1
		{0.707, 0.707, 0},     // diagonal, score ~0.707
	}

	ranked := RankTopK(query, vectors, 2)
	if len(ranked) != 2 {
		t.Fatalf("RankTopK returned %d results, want 2", len(ranked))
	}
	if ranked[0].Index != 1 {
		t.Errorf("Best match index = %d, want 1", ranked[0].Index)
	}
	if ranked[1].Index != 2 {
		t.Errorf("Second match index = %d, want 2", ranked[1].Index)
	}
	if ranked[0].Score < ranked[1].Score {
		t.Error("Results must be sorted by non-increasing score")
	}
}

func TestRankTopK_TieBreaksByLowerIndex(t *testing.T) {
	query := []float64{1, 0}
	// Chunks 0, 1, 2 all score identically; chunk order must decide.
	vectors := [][]float64{
		{1, 0},
		{1, 0},
		{1, 0},
	}

	ranked := RankTopK(query, vectors, 3)
	for want, rc := range ranked {
		if rc.Index != want {
			t.Errorf("Tied result at position %d has index %d, want %d", want, rc.Index, want)
		}
	}
}

func TestRankTopK_KExceedsChunkCount(t *testing.T) {
	query := []float64{1}
	vectors := [][]float64{{1}, {0.5}}

	ranked := RankTopK(query, vectors, 10)
	if len(ranked) != 2 {
		t.Errorf("RankTopK returned %d results, want all 2", len(ranked))
	}
}

func TestRankTopK_EmptyVectors(t *testing.T) {
	if got := RankTopK([]float64{1}, nil, 3); got != nil {
		t.Errorf("RankTopK with no vectors = %v, want nil", got)
	}
}

func TestRankTopK_ZeroScoresStillReturned(t *testing.T) {
	// A query matching nothing still ranks chunks (all at score 0), ordered
	// by ascending index.
	query := []float64{0, 0}
	vectors := [][]float64{{1, 0}, {0, 1}}

	ranked := RankTopK(query, vectors, 2)
	if len(ranked) != 2 {
		t.Fatalf("RankTopK returned %d results, want 2", len(ranked))
	}
	for i, rc := range ranked {
		if rc.Score != 0 {
			t.Errorf("Result %d score = %f, want 0", i, rc.Score)
		}
		if rc.Index != i {
			t.Errorf("Result %d index = %d, want %d", i, rc.Index, i)
		}
	}
}
