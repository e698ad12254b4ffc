package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"docassist/internal/domain"
)

// minInputChars is the smallest trimmed input considered indexable.
const minInputChars = 10

// SentenceChunker splits text into overlapping, sentence-aligned chunks
// bounded by a word budget. Sentences are never split mid-way, so a
// single sentence longer than the budget becomes its own chunk.
type SentenceChunker struct {
	chunkSize int
	overlap   int
}

// NewSentenceChunker creates a chunker with the given word budget and
// overlap. chunkSize must be positive and overlap non-negative.
func NewSentenceChunker(chunkSize, overlap int) (*SentenceChunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidChunkConfig, chunkSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must be non-negative, got %d", domain.ErrInvalidChunkConfig, overlap)
	}
	return &SentenceChunker{chunkSize: chunkSize, overlap: overlap}, nil
}

// Split segments text into sentences and accumulates them into chunks.
// When closing a chunk, the last overlap/10 sentences are carried into
// the next one. Counting the overlap in sentences approximates the
// overlap word budget at roughly ten words per sentence; it is a
// heuristic, not an exact word-count overlap.
func (c *SentenceChunker) Split(text string) ([]domain.Chunk, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minInputChars {
		return nil, domain.ErrEmptyInput
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil, domain.ErrEmptyInput
	}

	var chunks []domain.Chunk
	var current []string
	currentWords := 0

	closeChunk := func() {
		joined := strings.Join(current, " ")
		chunks = append(chunks, domain.Chunk{
			Text:      joined,
			Position:  len(chunks),
			WordCount: len(strings.Fields(joined)),
		})
	}

	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))

		if currentWords+words > c.chunkSize && len(current) > 0 {
			closeChunk()

			tail := c.overlap / 10
			if tail > len(current) {
				tail = len(current)
			}
			seed := current[len(current)-tail:]
			current = append([]string(nil), seed...)
			currentWords = 0
			for _, s := range current {
				currentWords += len(strings.Fields(s))
			}
		}

		current = append(current, sentence)
		currentWords += words
	}

	if len(current) > 0 {
		closeChunk()
	}

	return chunks, nil
}
