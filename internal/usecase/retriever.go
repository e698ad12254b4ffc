package usecase

import (
	"errors"
	"fmt"
	"sync/atomic"

	"docassist/internal/adapter/memstore"
	"docassist/internal/domain"
	"docassist/internal/port"
)

// Retriever owns the in-memory index for the current document and
// orchestrates chunking, embedding and similarity search. Indexing a new
// document replaces the previous index wholesale; the swap is a single
// atomic pointer store, so in-flight searches never observe a partially
// built index.
type Retriever struct {
	chunker  port.Chunker
	embedder port.Embedder
	index    atomic.Pointer[memstore.VectorIndex]
}

func NewRetriever(chunker port.Chunker, embedder port.Embedder) *Retriever {
	return &Retriever{
		chunker:  chunker,
		embedder: embedder,
	}
}

// IndexDocument splits text into chunks, embeds all chunk texts in one
// batched provider call and publishes a freshly built index. Returns
// false with no error when the text yields nothing to index; provider
// failures are propagated.
func (r *Retriever) IndexDocument(text string) (bool, error) {
	chunks, err := r.chunker.Split(text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			return false, nil
		}
		return false, err
	}
	if len(chunks) == 0 {
		return false, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := r.embedder.Embed(texts)
	if err != nil {
		return false, fmt.Errorf("failed to embed chunks: %w", err)
	}

	index, err := memstore.Build(chunks, vectors)
	if err != nil {
		return false, err
	}

	r.index.Store(index)
	return true, nil
}

// Search embeds the query in one provider call and ranks indexed chunks
// against it. Without an indexed document it returns no results; "no
// index yet" and "no matches" look the same to the caller.
func (r *Retriever) Search(query string, topK int, minSimilarity float64) ([]domain.SearchResult, error) {
	index := r.index.Load()
	if index == nil {
		return nil, nil
	}

	vectors, err := r.embedder.Embed([]string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedding returned empty result")
	}

	return index.Search(vectors[0], topK, minSimilarity), nil
}

// Summary reports the state of the current index without side effects.
func (r *Retriever) Summary() domain.Summary {
	index := r.index.Load()
	if index == nil {
		return domain.Summary{}
	}
	return domain.Summary{
		ChunkCount: index.Len(),
		TotalWords: index.TotalWords(),
		Indexed:    true,
	}
}
