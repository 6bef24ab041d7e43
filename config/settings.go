// Package config provides configuration structures for the retrieval engine.
// It defines the chunking strategy selection, per-strategy parameters, and
// validation rules applied before an index build.
package config

import (
	"fmt"

	"github.com/docquery/go-retrieval-engine/internal/errors"
)

// Chunking strategy names. Exactly one strategy is active per index build.
const (
	StrategyFixed             = "fixed"              // fixed-size word windows with overlap
	StrategySentence          = "sentence"           // regex sentence splitting
	StrategySentenceTokenizer = "sentence_tokenizer" // tokenizer-based sentence splitting, falls back to "sentence"
	StrategyParagraph         = "paragraph"          // blank-line paragraph splitting
	StrategySlidingWindow     = "sliding_window"     // word windows with an independent step
	StrategyRecursive         = "recursive"          // recursive separator-priority splitting
	StrategySemantic          = "semantic"           // TF-IDF similarity boundary detection
	StrategyHierarchical      = "hierarchical"       // structure-aware (headings/lists/paragraphs)
)

// Default parameter values applied when a field is left at its zero value.
const (
	DefaultFixedSize    = 15
	DefaultFixedOverlap = 0

	DefaultWindowSize = 20
	DefaultStepSize   = 10

	DefaultRecursiveChunkSize    = 512
	DefaultRecursiveChunkOverlap = 50

	DefaultSemanticBufferSize = 1
	DefaultSemanticThreshold  = 0.3

	DefaultMaxChunkSize = 500

	// Heading detection heuristics. These mirror observed document conventions
	// rather than any formal rule, so they stay configurable.
	DefaultHeadingMaxLength      = 50
	DefaultHeadingUppercaseRatio = 0.3
)

// ChunkingConfig selects one of the eight chunking strategies and carries the
// parameters for it. Fields belonging to inactive strategies are ignored.
type ChunkingConfig struct {
	Strategy string `json:"strategy" yaml:"strategy"` // One of the Strategy* constants

	// Fixed-size strategy (word granularity)
	Size    int `json:"size,omitempty" yaml:"size,omitempty"`       // Words per chunk (> 0)
	Overlap int `json:"overlap,omitempty" yaml:"overlap,omitempty"` // Overlapping words; clamped to [0, size-1]

	// Sliding-window strategy (word granularity)
	WindowSize int `json:"window_size,omitempty" yaml:"window_size,omitempty"` // Words per window (> 0)
	StepSize   int `json:"step_size,omitempty" yaml:"step_size,omitempty"`     // Window advance (> 0, <= window_size)

	// Recursive strategy (character granularity)
	ChunkSize    int `json:"chunk_size,omitempty" yaml:"chunk_size,omitempty"`       // Characters per chunk (> 0)
	ChunkOverlap int `json:"chunk_overlap,omitempty" yaml:"chunk_overlap,omitempty"` // Overlap characters (0 <= overlap < chunk_size)

	// Semantic strategy
	BufferSize int     `json:"buffer_size,omitempty" yaml:"buffer_size,omitempty"` // Sentence-group size (>= 1)
	Threshold  float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`     // Similarity cutoff in [0, 1]

	// Hierarchical strategy
	MaxChunkSize      int  `json:"max_chunk_size,omitempty" yaml:"max_chunk_size,omitempty"` // Characters per chunk (> 0)
	PreserveStructure bool `json:"preserve_structure,omitempty" yaml:"preserve_structure,omitempty"`

	// Heading detection heuristics for the hierarchical strategy
	HeadingMaxLength      int     `json:"heading_max_length,omitempty" yaml:"heading_max_length,omitempty"`
	HeadingUppercaseRatio float64 `json:"heading_uppercase_ratio,omitempty" yaml:"heading_uppercase_ratio,omitempty"`

	// SentenceTokenizerAvailable is a capability flag probed by the caller at
	// startup. When false, the sentence_tokenizer strategy silently degrades
	// to regex sentence splitting. Not part of the serialized configuration.
	SentenceTokenizerAvailable bool `json:"-" yaml:"-"`
}

// DefaultChunkingConfig returns the configuration used when none is supplied.
func DefaultChunkingConfig() ChunkingConfig {
	cfg := ChunkingConfig{Strategy: StrategyFixed}
	cfg.ApplyDefaults()
	return cfg
}

// knownStrategies lists every valid strategy discriminant.
var knownStrategies = map[string]bool{
	StrategyFixed:             true,
	StrategySentence:          true,
	StrategySentenceTokenizer: true,
	StrategyParagraph:         true,
	StrategySlidingWindow:     true,
	StrategyRecursive:         true,
	StrategySemantic:          true,
	StrategyHierarchical:      true,
}

// ApplyDefaults fills zero-valued parameters with their defaults and applies
// the documented clamping rules (fixed-size overlap is clamped to [0, size-1];
// everything else is validated, never silently corrected).
func (cfg *ChunkingConfig) ApplyDefaults() {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyFixed
	}
	if cfg.Size == 0 {
		cfg.Size = DefaultFixedSize
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.StepSize == 0 {
		cfg.StepSize = DefaultStepSize
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultRecursiveChunkSize
	}
	if cfg.ChunkOverlap == 0 {
		cfg.ChunkOverlap = DefaultRecursiveChunkOverlap
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultSemanticBufferSize
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultSemanticThreshold
	}
	if cfg.MaxChunkSize == 0 {
		cfg.MaxChunkSize = DefaultMaxChunkSize
	}
	if cfg.HeadingMaxLength == 0 {
		cfg.HeadingMaxLength = DefaultHeadingMaxLength
	}
	if cfg.HeadingUppercaseRatio == 0 {
		cfg.HeadingUppercaseRatio = DefaultHeadingUppercaseRatio
	}

	// Clamping is specified for the fixed-size strategy only.
	if cfg.Overlap < 0 {
		cfg.Overlap = 0
	}
	if cfg.Size > 0 && cfg.Overlap >= cfg.Size {
		cfg.Overlap = cfg.Size - 1
	}
}

// Validate checks the configuration for the active strategy. It returns a
// *errors.ConfigError (matching errors.ErrInvalidConfig) on the first
// violation found, or nil when the configuration is usable.
func (cfg *ChunkingConfig) Validate() error {
	if !knownStrategies[cfg.Strategy] {
		return errors.NewConfigError("strategy", fmt.Sprintf("unknown strategy '%s'", cfg.Strategy))
	}

	switch cfg.Strategy {
	case StrategyFixed:
		if cfg.Size <= 0 {
			return errors.NewConfigError("size", "must be > 0")
		}
	case StrategySlidingWindow:
		if cfg.WindowSize <= 0 {
			return errors.NewConfigError("window_size", "must be > 0")
		}
		if cfg.StepSize <= 0 {
			return errors.NewConfigError("step_size", "must be > 0")
		}
		if cfg.StepSize > cfg.WindowSize {
			return errors.NewConfigError("step_size", "must not exceed window_size")
		}
	case StrategyRecursive:
		if cfg.ChunkSize <= 0 {
			return errors.NewConfigError("chunk_size", "must be > 0")
		}
		if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
			return errors.NewConfigError("chunk_overlap", "must be in [0, chunk_size)")
		}
	case StrategySemantic:
		if cfg.BufferSize < 1 {
			return errors.NewConfigError("buffer_size", "must be >= 1")
		}
		if cfg.Threshold < 0 || cfg.Threshold > 1 {
			return errors.NewConfigError("threshold", "must be in [0, 1]")
		}
	case StrategyHierarchical:
		if cfg.MaxChunkSize <= 0 {
			return errors.NewConfigError("max_chunk_size", "must be > 0")
		}
	}

	return nil
}
