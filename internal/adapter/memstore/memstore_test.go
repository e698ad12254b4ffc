package memstore

import (
	"errors"
	"math"
	"testing"

	"docassist/internal/domain"
)

func testChunks(n int) []domain.Chunk {
	chunks := make([]domain.Chunk, n)
	for i := range chunks {
		chunks[i] = domain.Chunk{
			Text:      "chunk",
			Position:  i,
			WordCount: 1,
		}
	}
	return chunks
}

func TestBuildEmptyDocument(t *testing.T) {
	_, err := Build(nil, nil)
	if !errors.Is(err, domain.ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestBuildLengthMismatch(t *testing.T) {
	_, err := Build(testChunks(2), [][]float32{{1, 0}})
	if err == nil {
		t.Error("expected error for chunk/vector mismatch")
	}
}

func TestSearchRanking(t *testing.T) {
	vectors := [][]float32{
		{0, 1},     // orthogonal to query
		{1, 0},     // identical to query
		{0.7, 0.7}, // ~0.707 similarity
	}
	index, err := Build(testChunks(3), vectors)
	if err != nil {
		t.Fatal(err)
	}

	results := index.Search([]float32{1, 0}, 3, 0.5)

	if len(results) != 2 {
		t.Fatalf("expected 2 results above the floor, got %d", len(results))
	}
	if results[0].Position != 1 {
		t.Errorf("best result position = %d, want 1", results[0].Position)
	}
	if results[1].Position != 2 {
		t.Errorf("second result position = %d, want 2", results[1].Position)
	}
	if results[0].Relevance < results[1].Relevance {
		t.Error("results not sorted by descending relevance")
	}
}

func TestSearchTieBreaksByPosition(t *testing.T) {
	same := []float32{1, 0}
	vectors := [][]float32{{0, 1}, same, {0, 1}, same}
	index, err := Build(testChunks(4), vectors)
	if err != nil {
		t.Fatal(err)
	}

	results := index.Search([]float32{1, 0}, 4, 0.5)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Position != 1 || results[1].Position != 3 {
		t.Errorf("tie broken wrong: positions %d, %d; want 1, 3", results[0].Position, results[1].Position)
	}
}

func TestSearchTopKLimit(t *testing.T) {
	vectors := [][]float32{{1, 0}, {0.9, 0.1}, {0.8, 0.2}}
	index, err := Build(testChunks(3), vectors)
	if err != nil {
		t.Fatal(err)
	}

	results := index.Search([]float32{1, 0}, 1, 0)
	if len(results) != 1 {
		t.Fatalf("expected 1 result with topK=1, got %d", len(results))
	}
	if results[0].Position != 0 {
		t.Errorf("expected best match at position 0, got %d", results[0].Position)
	}
}

func TestSearchFloorExcludesEverything(t *testing.T) {
	vectors := [][]float32{{0.7, 0.7}, {0.6, 0.8}}
	index, err := Build(testChunks(2), vectors)
	if err != nil {
		t.Fatal(err)
	}

	results := index.Search([]float32{1, 0}, 3, 0.9)
	if len(results) != 0 {
		t.Errorf("expected no results below the floor, got %d", len(results))
	}
}

func TestSearchZeroNormVector(t *testing.T) {
	vectors := [][]float32{{0, 0}, {1, 0}}
	index, err := Build(testChunks(2), vectors)
	if err != nil {
		t.Fatal(err)
	}

	// Zero query: every similarity is 0, nothing clears a 0.3 floor.
	results := index.Search([]float32{0, 0}, 3, 0.3)
	if len(results) != 0 {
		t.Errorf("expected no results for zero query, got %d", len(results))
	}
}

func TestSearchRelevanceClamped(t *testing.T) {
	vectors := [][]float32{{-1, 0}}
	index, err := Build(testChunks(1), vectors)
	if err != nil {
		t.Fatal(err)
	}

	// Negative floor lets the anti-correlated vector through; its
	// relevance must still be reported within [0,1].
	results := index.Search([]float32{1, 0}, 1, -2)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Relevance != 0 {
		t.Errorf("relevance = %f, want 0", results[0].Relevance)
	}
}

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero norm", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("cosineSimilarity = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestLenAndTotalWords(t *testing.T) {
	chunks := []domain.Chunk{
		{Text: "a b c", Position: 0, WordCount: 3},
		{Text: "d e", Position: 1, WordCount: 2},
	}
	index, err := Build(chunks, [][]float32{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatal(err)
	}

	if index.Len() != 2 {
		t.Errorf("Len = %d, want 2", index.Len())
	}
	if index.TotalWords() != 5 {
		t.Errorf("TotalWords = %d, want 5", index.TotalWords())
	}
}
