package domain

import "errors"

var (
	// ErrInvalidChunkConfig reports a non-positive chunk size or a
	// negative overlap. Rejected before any processing happens.
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")

	// ErrEmptyInput reports input text with nothing to segment. Callers
	// should treat it as "nothing to index", not a hard failure.
	ErrEmptyInput = errors.New("input text is empty or too short")

	// ErrEmptyDocument reports an index build over zero chunks.
	ErrEmptyDocument = errors.New("document produced no chunks")
)
