package port

import "docassist/internal/domain"

type Chunker interface {
	Split(text string) ([]domain.Chunk, error)
}
