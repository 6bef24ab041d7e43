// Package model defines the core data types shared across the retrieval engine.
package model

// Chunk is an atomic retrievable text fragment produced by a chunking
// strategy. Chunks are immutable once produced; Index is the 0-based position
// in the chunking pass.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// DocumentStats describes the currently indexed document.
type DocumentStats struct {
	Name       string `json:"name"`
	Length     int    `json:"length"` // characters in the raw document
	ChunkCount int    `json:"chunk_count"`
	Strategy   string `json:"strategy"`
}
