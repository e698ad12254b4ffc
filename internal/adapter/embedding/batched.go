package embedding

import (
	"docassist/internal/port"
)

// BatchedEmbedder splits large embed requests into provider-sized
// batches and reports progress between them. It remains a single call
// at the Embedder boundary; only the wire traffic is split.
type BatchedEmbedder struct {
	inner     port.Embedder
	batchSize int
	progress  func(done, total int)
}

// NewBatchedEmbedder wraps inner. progress may be nil.
func NewBatchedEmbedder(inner port.Embedder, batchSize int, progress func(done, total int)) *BatchedEmbedder {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &BatchedEmbedder{
		inner:     inner,
		batchSize: batchSize,
		progress:  progress,
	}
}

func (e *BatchedEmbedder) Embed(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	all := make([][]float32, 0, len(texts))
	for i := 0; i < len(texts); i += e.batchSize {
		end := i + e.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := e.inner.Embed(texts[i:end])
		if err != nil {
			return nil, err
		}
		all = append(all, vectors...)

		if e.progress != nil {
			e.progress(end, len(texts))
		}
	}

	return all, nil
}

func (e *BatchedEmbedder) Dimension() int {
	return e.inner.Dimension()
}

func (e *BatchedEmbedder) ModelName() string {
	return e.inner.ModelName()
}
