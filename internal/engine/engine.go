// Package engine orchestrates the retrieval pipeline: chunking, vector-index
// fitting, and query-time search/answer synthesis over a single document.
package engine

import (
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/docquery/go-retrieval-engine/config"
	"github.com/docquery/go-retrieval-engine/index"
	"github.com/docquery/go-retrieval-engine/internal/chunker"
	"github.com/docquery/go-retrieval-engine/internal/errors"
	"github.com/docquery/go-retrieval-engine/internal/search"
	"github.com/docquery/go-retrieval-engine/model"
	"github.com/docquery/go-retrieval-engine/services"
)

// Fixed response strings for extractive answer synthesis.
const (
	fallbackAnswer = "I don't have enough information to answer that question."
	answerLeadIn   = "Based on the information: "
)

// indexedDocument is the immutable product of one successful IndexDocument
// call. A rebuild publishes a new instance atomically and retires the old
// one, so concurrent searches always see a consistent index.
type indexedDocument struct {
	name     string
	length   int
	strategy string
	chunks   []string
	searcher *search.Service
}

// Engine owns the chunking configuration and the currently indexed document.
// It implements the services.RetrievalEngine interface. Reads (Search,
// Answer, Stats) may proceed concurrently; IndexDocument and Configure take
// the write lock.
type Engine struct {
	mu  sync.RWMutex
	cfg config.ChunkingConfig
	doc *indexedDocument
}

// NewEngine creates an engine with the given chunking configuration. The
// configuration is defaulted and validated; no document is indexed yet.
func NewEngine(cfg config.ChunkingConfig) (*Engine, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Configure validates and stores a new chunking configuration. It does not
// trigger a rebuild by itself; the next IndexDocument call uses it.
func (e *Engine) Configure(cfg config.ChunkingConfig) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
	return nil
}

// IndexDocument chunks the document with the current configuration and fits
// a fresh TF-IDF index over the chunks. It returns the chunk count on
// success. On any error (zero chunks, degenerate vocabulary) the engine
// keeps its prior state. This is the single point where a bad configuration
// or bad document surfaces to the caller.
func (e *Engine) IndexDocument(name, text string) (int, error) {
	e.mu.RLock()
	cfg := e.cfg
	e.mu.RUnlock()

	chunks, err := chunker.Chunk(text, cfg)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		return 0, errors.NewDegenerateInputError("chunking", "no chunks extracted from document")
	}

	vi := index.NewVectorIndex()
	if err := vi.Fit(chunks); err != nil {
		return 0, err
	}

	searcher, err := search.NewService(vi, chunks)
	if err != nil {
		return 0, err
	}

	doc := &indexedDocument{
		name:     name,
		length:   len(text),
		strategy: cfg.Strategy,
		chunks:   chunks,
		searcher: searcher,
	}

	e.mu.Lock()
	e.doc = doc
	e.mu.Unlock()

	log.Printf("Indexed document %q: %d chunks using %s strategy", name, len(chunks), cfg.Strategy)
	return len(chunks), nil
}

// Search returns the top-k chunks for the query, ranked by cosine
// similarity. Before any document is indexed it returns an empty result set,
// never an error.
func (e *Engine) Search(query string, topK int) services.SearchResult {
	e.mu.RLock()
	doc := e.doc
	e.mu.RUnlock()

	if doc == nil {
		return services.SearchResult{Hits: []services.Hit{}, QueryID: uuid.New().String()}
	}
	return doc.searcher.Search(query, topK)
}

// Answer synthesizes a purely extractive response: the retrieved chunk texts
// in ranked order, space-separated, behind a fixed lead-in. With no results
// it returns the fixed fallback string.
func (e *Engine) Answer(query string, topK int) (string, services.SearchResult) {
	result := e.Search(query, topK)
	if len(result.Hits) == 0 {
		return fallbackAnswer, result
	}

	texts := make([]string, len(result.Hits))
	for i, hit := range result.Hits {
		texts[i] = hit.Chunk
	}
	return answerLeadIn + strings.Join(texts, " "), result
}

// Stats describes the currently indexed document. The second return value is
// false when nothing has been indexed yet.
func (e *Engine) Stats() (model.DocumentStats, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.doc == nil {
		return model.DocumentStats{}, false
	}
	return model.DocumentStats{
		Name:       e.doc.name,
		Length:     e.doc.length,
		ChunkCount: len(e.doc.chunks),
		Strategy:   e.doc.strategy,
	}, true
}

// Config returns a copy of the active chunking configuration.
func (e *Engine) Config() config.ChunkingConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}
