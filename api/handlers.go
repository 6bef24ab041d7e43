package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docquery/go-retrieval-engine/config"
	internalErrors "github.com/docquery/go-retrieval-engine/internal/errors"
	"github.com/docquery/go-retrieval-engine/services"
)

// API holds dependencies for API handlers, primarily the retrieval engine.
type API struct {
	engine services.RetrievalEngine
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.RetrievalEngine) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the retrieval engine.
func SetupRoutes(router *gin.Engine, engine services.RetrievalEngine) {
	apiHandler := NewAPI(engine)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Document routes: index/replace the single document, inspect its stats
	router.PUT("/document", apiHandler.IndexDocumentHandler)
	router.GET("/document", apiHandler.GetDocumentHandler)

	// Query routes
	router.POST("/search", apiHandler.SearchHandler)
	router.POST("/answer", apiHandler.AnswerHandler)
}

// IndexDocumentRequest defines the body for indexing a document. The chunking
// configuration is optional; when present it replaces the active one before
// the index is rebuilt.
type IndexDocumentRequest struct {
	Name     string                 `json:"name"`
	Text     string                 `json:"text"`
	Chunking *config.ChunkingConfig `json:"chunking,omitempty"`
}

// QueryRequest defines the body for search and answer requests. An empty
// query is valid and simply scores every chunk at zero.
type QueryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// HealthCheckHandler returns the health status of the service
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-retrieval-engine",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// IndexDocumentHandler replaces the indexed document. An optional chunking
// configuration in the body is applied first; a bad configuration leaves the
// previous document untouched.
func (api *API) IndexDocumentHandler(c *gin.Context) {
	var req IndexDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if req.Chunking != nil {
		if err := api.engine.Configure(*req.Chunking); err != nil {
			SendInvalidConfigError(c, err)
			return
		}
	}

	name := req.Name
	if name == "" {
		name = "document"
	}

	chunkCount, err := api.engine.IndexDocument(name, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrInvalidConfig):
			SendInvalidConfigError(c, err)
		case errors.Is(err, internalErrors.ErrDegenerateInput):
			SendDegenerateInputError(c, err)
		default:
			SendInternalError(c, "indexing", err)
		}
		return
	}

	stats, _ := api.engine.Stats()
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Processed into %d chunks using %s strategy", chunkCount, stats.Strategy),
		"name":        name,
		"chunk_count": chunkCount,
		"strategy":    stats.Strategy,
	})
}

// GetDocumentHandler returns statistics for the currently indexed document.
func (api *API) GetDocumentHandler(c *gin.Context) {
	stats, ok := api.engine.Stats()
	if !ok {
		SendNoDocumentError(c)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SearchHandler runs a ranked top-k search against the indexed document.
func (api *API) SearchHandler(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result := api.engine.Search(req.Query, req.TopK)
	c.JSON(http.StatusOK, result)
}

// AnswerHandler returns the extractive answer for a query together with the
// hits that back it.
func (api *API) AnswerHandler(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	answer, result := api.engine.Answer(req.Query, req.TopK)
	c.JSON(http.StatusOK, gin.H{
		"answer":   answer,
		"hits":     result.Hits,
		"total":    result.Total,
		"took":     result.Took,
		"query_id": result.QueryID,
	})
}
