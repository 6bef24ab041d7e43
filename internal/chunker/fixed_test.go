package chunker

import (
	"reflect"
	"strings"
	"testing"
)

func TestChunkFixedSize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		size     int
		overlap  int
		expected []string
	}{
		{
			name:     "eight words size 3 overlap 1",
			text:     "a b c d e f g h",
			size:     3,
			overlap:  1,
			expected: []string{"a b c", "c d e", "e f g", "g h"},
		},
		{
			name:     "no overlap",
			text:     "a b c d e f",
			size:     2,
			overlap:  0,
			expected: []string{"a b", "c d", "e f"},
		},
		{
			name:     "document shorter than size",
			text:     "a b",
			size:     5,
			overlap:  0,
			expected: []string{"a b"},
		},
		{
			name:     "negative overlap clamped to zero",
			text:     "a b c d",
			size:     2,
			overlap:  -3,
			expected: []string{"a b", "c d"},
		},
		{
			name:     "overlap clamped below size",
			text:     "a b c d",
			size:     2,
			overlap:  5,
			expected: []string{"a b", "b c", "c d", "d"},
		},
		{
			name:     "empty text",
			text:     "",
			size:     3,
			overlap:  0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkFixedSize(tt.text, tt.size, tt.overlap)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("chunkFixedSize() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestChunkFixedSizeCoversEveryWord(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog near the river bank today"
	chunks := chunkFixedSize(text, 4, 1)

	joined := " " + strings.Join(chunks, " ") + " "
	for _, word := range strings.Fields(text) {
		if !strings.Contains(joined, " "+word+" ") {
			t.Errorf("word %q missing from chunks %v", word, chunks)
		}
	}
}

func TestChunkFixedSizeOverlapInvariant(t *testing.T) {
	words := make([]string, 20)
	for i := range words {
		words[i] = string(rune('a' + i))
	}
	size, overlap := 5, 2
	chunks := chunkFixedSize(strings.Join(words, " "), size, overlap)

	for i := 0; i+1 < len(chunks); i++ {
		left := strings.Fields(chunks[i])
		right := strings.Fields(chunks[i+1])
		if len(left) < size || len(right) < overlap {
			continue // partial trailing window
		}
		tail := left[len(left)-overlap:]
		head := right[:overlap]
		if !reflect.DeepEqual(tail, head) {
			t.Errorf("chunks %d and %d share %v / %v, want %d identical words", i, i+1, tail, head, overlap)
		}
	}
}

func TestChunkSlidingWindowCoversEveryWord(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog near the river bank today"
	chunks := chunkSlidingWindow(text, 5, 3)

	joined := " " + strings.Join(chunks, " ") + " "
	for _, word := range strings.Fields(text) {
		if !strings.Contains(joined, " "+word+" ") {
			t.Errorf("word %q missing from chunks %v", word, chunks)
		}
	}
}

func TestChunkSlidingWindow(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		windowSize int
		stepSize   int
		expected   []string
	}{
		{
			name:       "window 4 step 2",
			text:       "a b c d e f",
			windowSize: 4,
			stepSize:   2,
			expected:   []string{"a b c d", "c d e f"},
		},
		{
			name:       "step equals window",
			text:       "a b c d e f",
			windowSize: 3,
			stepSize:   3,
			expected:   []string{"a b c", "d e f"},
		},
		{
			name:       "halts once window reaches end",
			text:       "a b c d e",
			windowSize: 3,
			stepSize:   1,
			expected:   []string{"a b c", "b c d", "c d e"},
		},
		{
			name:       "document shorter than window",
			text:       "a b",
			windowSize: 10,
			stepSize:   5,
			expected:   []string{"a b"},
		},
		{
			name:       "empty text",
			text:       "",
			windowSize: 3,
			stepSize:   2,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkSlidingWindow(tt.text, tt.windowSize, tt.stepSize)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("chunkSlidingWindow() = %v, want %v", got, tt.expected)
			}
		})
	}
}
