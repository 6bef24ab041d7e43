// Package chunker converts a document string into an ordered sequence of
// retrievable text fragments. Eight interchangeable strategies are dispatched
// through a single entry point, selected by the configuration discriminant.
package chunker

import (
	"strings"

	"github.com/docquery/go-retrieval-engine/config"
	"github.com/docquery/go-retrieval-engine/internal/errors"
)

// Chunk splits text according to the configured strategy. The configuration
// is validated first; strategy parameters are used as given (the fixed-size
// overlap clamping rules are applied inside the strategy). Every returned
// chunk is non-empty and whitespace-trimmed.
func Chunk(text string, cfg config.ChunkingConfig) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var chunks []string
	switch cfg.Strategy {
	case config.StrategyFixed:
		chunks = chunkFixedSize(text, cfg.Size, cfg.Overlap)
	case config.StrategySentence:
		chunks = chunkSentenceRegex(text)
	case config.StrategySentenceTokenizer:
		chunks = chunkSentenceTokenizer(text, cfg.SentenceTokenizerAvailable)
	case config.StrategyParagraph:
		chunks = chunkParagraph(text)
	case config.StrategySlidingWindow:
		chunks = chunkSlidingWindow(text, cfg.WindowSize, cfg.StepSize)
	case config.StrategyRecursive:
		chunks = chunkRecursive(text, cfg.ChunkSize, cfg.ChunkOverlap)
	case config.StrategySemantic:
		chunks = chunkSemantic(text, cfg.BufferSize, cfg.Threshold)
	case config.StrategyHierarchical:
		chunks = chunkHierarchical(text, cfg.MaxChunkSize, cfg.PreserveStructure,
			cfg.HeadingMaxLength, cfg.HeadingUppercaseRatio)
	default:
		return nil, errors.NewConfigError("strategy", "unknown strategy '"+cfg.Strategy+"'")
	}

	return clean(chunks), nil
}

// clean enforces the non-empty chunk invariant: every chunk is trimmed and
// whitespace-only chunks are dropped.
func clean(chunks []string) []string {
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
