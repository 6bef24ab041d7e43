package services

import (
	"github.com/docquery/go-retrieval-engine/config"
	"github.com/docquery/go-retrieval-engine/model"
)

// Hit represents a single chunk in the search results, with the cosine
// similarity score against the query and the chunk's original position.
type Hit struct {
	Chunk string  `json:"chunk"`
	Score float64 `json:"score"`
	Index int     `json:"index"`
}

// SearchResult is the ranked outcome of one query. An empty Hits slice is a
// valid outcome (unindexed engine or no chunks), distinct from an error.
type SearchResult struct {
	Hits    []Hit  `json:"hits"`
	Total   int    `json:"total"`
	Took    int64  `json:"took"`     // milliseconds
	QueryID string `json:"query_id"` // unique UUID for this search query
}

// Chunker converts a document string into an ordered sequence of non-empty
// text fragments according to the active strategy.
type Chunker interface {
	Chunk(text string, cfg config.ChunkingConfig) ([]string, error)
}

// Vectorizer fits a term-weighted vector space over a chunk sequence and
// projects query strings into the fitted space.
type Vectorizer interface {
	Fit(chunks []string) error
	Transform(text string) []float64
	Fitted() bool
}

// Searcher defines query-time operations against a fitted index.
type Searcher interface {
	Search(query string, topK int) SearchResult
}

// RetrievalEngine is the public contract of the orchestrator: configuration,
// index building, and query-time retrieval/answer synthesis.
type RetrievalEngine interface {
	Configure(cfg config.ChunkingConfig) error
	IndexDocument(name, text string) (int, error) // returns the chunk count
	Search(query string, topK int) SearchResult
	Answer(query string, topK int) (string, SearchResult)
	Stats() (model.DocumentStats, bool)
}
