package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docquery/go-retrieval-engine/index"
	"github.com/docquery/go-retrieval-engine/services"
)

// DefaultTopK is the number of results returned when the caller does not ask
// for a specific count.
const DefaultTopK = 3

// Service implements query-time retrieval against one fitted vector index
// and its chunk sequence. It fulfills the services.Searcher interface.
type Service struct {
	vectorIndex *index.VectorIndex
	chunks      []string
}

// NewService creates a search Service over a fitted index.
func NewService(vi *index.VectorIndex, chunks []string) (*Service, error) {
	if vi == nil {
		return nil, fmt.Errorf("vector index cannot be nil")
	}
	if !vi.Fitted() {
		return nil, fmt.Errorf("vector index must be fitted before searching")
	}
	if len(chunks) != len(vi.Vectors()) {
		return nil, fmt.Errorf("chunk count (%d) does not match vector count (%d)", len(chunks), len(vi.Vectors()))
	}
	return &Service{vectorIndex: vi, chunks: chunks}, nil
}

// Search projects the query into the fitted space and returns the top-k
// chunks by cosine similarity. An empty result set is a valid outcome, not
// an error.
func (s *Service) Search(query string, topK int) services.SearchResult {
	startTime := time.Now()
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryVec := s.vectorIndex.Transform(query)
	ranked := RankTopK(queryVec, s.vectorIndex.Vectors(), topK)

	hits := make([]services.Hit, 0, len(ranked))
	for _, rc := range ranked {
		hits = append(hits, services.Hit{
			Chunk: s.chunks[rc.Index],
			Score: rc.Score,
			Index: rc.Index,
		})
	}

	return services.SearchResult{
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}
}
