// Package embedding provides sentence embeddings and text similarity for the
// content analyzer. When no embedder is configured (or a call fails) the
// similarity computation degrades to Jaccard word overlap.
package embedding

import "context"

// Embedder produces a vector embedding for a text snippet. A nil Embedder is
// a valid state and means similarity falls back to word overlap.
type Embedder interface {
	// Embed returns the embedding vector for the given text
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the embedder
	Close() error
}
