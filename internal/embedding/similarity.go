package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// defaultCacheSize bounds the embedding cache (entries, not bytes)
const defaultCacheSize = 1024

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Similarity computes semantic similarity between text snippets. Embeddings
// are cached in a bounded LRU keyed by content hash; the cache is safe for
// concurrent use.
type Similarity struct {
	embedder Embedder // nil means Jaccard-only mode
	cache    *lru.Cache[string, []float32]
	logger   *zap.Logger
}

// NewSimilarity creates a similarity engine. embedder may be nil, in which
// case every score is computed via Jaccard word overlap. cacheSize <= 0 uses
// the default bound.
func NewSimilarity(embedder Embedder, cacheSize int, log *zap.Logger) *Similarity {
	if log == nil {
		log = zap.NewNop()
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	// lru.New only fails on a non-positive size, which is excluded above
	cache, _ := lru.New[string, []float32](cacheSize)

	return &Similarity{
		embedder: embedder,
		cache:    cache,
		logger:   log,
	}
}

// Score returns the similarity of a and b in [0,1]: cosine similarity of the
// cached embeddings when an embedder is available, Jaccard word overlap
// otherwise. An embedding failure for either side degrades this single call
// to the Jaccard fallback.
func (s *Similarity) Score(ctx context.Context, a, b string) float64 {
	if s.embedder == nil {
		return Jaccard(a, b)
	}

	va, err := s.embed(ctx, a)
	if err != nil {
		s.logger.Debug("embedding failed, falling back to word overlap", zap.Error(err))
		return Jaccard(a, b)
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		s.logger.Debug("embedding failed, falling back to word overlap", zap.Error(err))
		return Jaccard(a, b)
	}

	return Cosine(va, vb)
}

// embed returns the cached embedding for text, computing it on miss
func (s *Similarity) embed(ctx context.Context, text string) ([]float32, error) {
	key := contentHash(text)
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	v, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, v)
	return v, nil
}

// contentHash returns the cache key for a text snippet
func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Cosine returns the cosine similarity of two vectors, clamped to [0,1].
// Mismatched or empty vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// Jaccard returns the word-set overlap of two texts in [0,1]
func Jaccard(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection

	return float64(intersection) / float64(union)
}

// wordSet tokenizes text into a lowercase word set
func wordSet(text string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
