package memstore

import (
	"fmt"
	"math"
	"sort"

	"docassist/internal/domain"
)

// VectorIndex holds one document's chunks and their embedding vectors in
// parallel order (vectors[i] embeds chunks[i]). It is immutable after
// Build, so concurrent searches need no locking; brute-force cosine
// search is sufficient for a per-document index.
type VectorIndex struct {
	chunks     []domain.Chunk
	vectors    [][]float32
	totalWords int
}

// Build creates an index over chunks and their vectors. Zero chunks is
// reported as domain.ErrEmptyDocument; a length mismatch between the two
// slices is a programming error and fails hard.
func Build(chunks []domain.Chunk, vectors [][]float32) (*VectorIndex, error) {
	if len(chunks) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("chunk/vector count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}

	totalWords := 0
	for _, c := range chunks {
		totalWords += c.WordCount
	}

	return &VectorIndex{
		chunks:     chunks,
		vectors:    vectors,
		totalWords: totalWords,
	}, nil
}

// Search ranks every chunk by cosine similarity to the query vector,
// descending, ties broken by ascending position. Iteration stops at the
// first score below minSimilarity (everything after it in sorted order
// is no better) and once topK results are collected. Returns an empty
// slice when nothing clears the floor.
func (ix *VectorIndex) Search(query []float32, topK int, minSimilarity float64) []domain.SearchResult {
	if topK <= 0 {
		return nil
	}

	type scored struct {
		position int
		score    float64
	}

	scores := make([]scored, len(ix.vectors))
	for i, vec := range ix.vectors {
		scores[i] = scored{position: i, score: cosineSimilarity(query, vec)}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].position < scores[j].position
	})

	results := make([]domain.SearchResult, 0, topK)
	for _, s := range scores {
		if s.score < minSimilarity {
			break
		}

		chunk := ix.chunks[s.position]
		results = append(results, domain.SearchResult{
			Text:      chunk.Text,
			Relevance: clamp01(s.score),
			Position:  chunk.Position,
			WordCount: chunk.WordCount,
		})

		if len(results) >= topK {
			break
		}
	}

	return results
}

// Len returns the number of indexed chunks.
func (ix *VectorIndex) Len() int {
	return len(ix.chunks)
}

// TotalWords returns the summed word count of all indexed chunks.
func (ix *VectorIndex) TotalWords() int {
	return ix.totalWords
}

// cosineSimilarity calculates the cosine similarity between two vectors.
// Returns 0 when the lengths differ or either norm is zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
