package domain

import "time"

// Chunk is a contiguous, sentence-aligned slice of document text used as
// the unit of retrieval. Position is assigned in creation order starting
// at zero; WordCount is the whitespace-delimited token count of Text.
type Chunk struct {
	Text      string
	Position  int
	WordCount int
}

// SearchResult is a ranked, read-only view of a chunk produced by a
// similarity query. Relevance is a cosine similarity clamped to [0,1].
type SearchResult struct {
	Text      string  `json:"text"`
	Relevance float64 `json:"relevance"`
	Position  int     `json:"position"`
	WordCount int     `json:"word_count"`
}

// Summary describes the state of the currently indexed document.
type Summary struct {
	ChunkCount int  `json:"chunk_count"`
	TotalWords int  `json:"total_words"`
	Indexed    bool `json:"indexed"`
}

// Document is a stored source text, already extracted from whatever file
// format it came in. The retrieval core never parses file formats.
type Document struct {
	Name    string
	Text    string
	SavedAt time.Time
}
