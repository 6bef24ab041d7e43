package index

import (
	"errors"
	"math"
	"reflect"
	"testing"

	engineerrors "github.com/docquery/go-retrieval-engine/internal/errors"
)

func TestFit_EmptyChunks(t *testing.T) {
	vi := NewVectorIndex()
	err := vi.Fit(nil)
	if err == nil {
		t.Fatal("Fit(nil) expected error")
	}
	if !errors.Is(err, engineerrors.ErrDegenerateInput) {
		t.Errorf("Expected ErrDegenerateInput, got %v", err)
	}
	if vi.Fitted() {
		t.Error("Index should not be fitted after a failed Fit")
	}
}

func TestFit_DegenerateVocabulary(t *testing.T) {
	vi := NewVectorIndex()
	// Every token is a stop word, so nothing survives.
	err := vi.Fit([]string{"the and of", "a was been"})
	if err == nil {
		t.Fatal("Expected error for stop-word-only chunks")
	}
	if !errors.Is(err, engineerrors.ErrDegenerateInput) {
		t.Errorf("Expected ErrDegenerateInput, got %v", err)
	}
}

func TestFit_BuildsNormalizedVectors(t *testing.T) {
	vi := NewVectorIndex()
	chunks := []string{"cat dog", "cat bird", "fish whale"}
	if err := vi.Fit(chunks); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	if !vi.Fitted() {
		t.Error("Fitted() should be true after Fit")
	}
	if vi.Dimension() != 5 { // bird, cat, dog, fish, whale
		t.Errorf("Dimension() = %d, want 5", vi.Dimension())
	}
	if len(vi.Vectors()) != len(chunks) {
		t.Fatalf("Expected %d vectors, got %d", len(chunks), len(vi.Vectors()))
	}

	for i, vec := range vi.Vectors() {
		norm := 0.0
		for _, v := range vec {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if math.Abs(norm-1.0) > 1e-9 {
			t.Errorf("Chunk %d vector norm = %f, want 1.0", i, norm)
		}
	}
}

func TestTransform_UnknownTermsIgnored(t *testing.T) {
	vi := NewVectorIndex()
	if err := vi.Fit([]string{"cat dog", "fish whale"}); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	vec := vi.Transform("cat zeppelin")
	if len(vec) != vi.Dimension() {
		t.Fatalf("Transform() dimension = %d, want %d", len(vec), vi.Dimension())
	}

	// "zeppelin" is out of vocabulary, so the vector is the pure "cat" direction.
	nonZero := 0
	for _, v := range vec {
		if v != 0 {
			nonZero++
		}
	}
	if nonZero != 1 {
		t.Errorf("Expected exactly 1 non-zero component, got %d", nonZero)
	}
}

func TestTransform_AllUnknownGivesZeroVector(t *testing.T) {
	vi := NewVectorIndex()
	if err := vi.Fit([]string{"cat dog"}); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	vec := vi.Transform("zeppelin airship")
	for i, v := range vec {
		if v != 0 {
			t.Errorf("Component %d = %f, want 0", i, v)
		}
	}
}

func TestTransform_Unfitted(t *testing.T) {
	vi := NewVectorIndex()
	if vec := vi.Transform("cat"); vec != nil {
		t.Errorf("Transform() on unfitted index = %v, want nil", vec)
	}
}

func TestFit_Deterministic(t *testing.T) {
	chunks := []string{"gamma beta alpha", "delta beta", "alpha epsilon"}

	first := NewVectorIndex()
	second := NewVectorIndex()
	if err := first.Fit(chunks); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}
	if err := second.Fit(chunks); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Vectors(), second.Vectors()) {
		t.Error("Two fits over the same chunks should produce identical vectors")
	}
	if !reflect.DeepEqual(first.Transform("alpha delta"), second.Transform("alpha delta")) {
		t.Error("Two fits over the same chunks should transform queries identically")
	}
}

func TestFit_FrozenAfterTransform(t *testing.T) {
	vi := NewVectorIndex()
	if err := vi.Fit([]string{"cat dog", "fish whale"}); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	before := vi.Transform("cat")
	vi.Transform("completely unrelated query terms")
	after := vi.Transform("cat")

	if !reflect.DeepEqual(before, after) {
		t.Error("Transform must not alter the fitted state")
	}
}
