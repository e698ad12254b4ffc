package usecase

import (
	"fmt"
	"math"
	"strings"

	"docassist/internal/domain"
)

const (
	contextHeader = "DOCUMENT FRAGMENTS:"
	ruleWidth     = 50
)

// AssembleContext renders ranked results into the context block a caller
// forwards to the language model. Each result becomes a numbered block
// with its relevance as a whole percent, the chunk text verbatim and its
// position/word-count metadata, separated by a fixed-width rule.
//
// Ordering and filtering are the index's job; the assembler renders
// exactly what it is given. An empty input yields an empty string, which
// callers must treat as "no usable context" rather than an empty prompt.
func AssembleContext(results []domain.SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(contextHeader)
	b.WriteString("\n\n")

	for i, res := range results {
		fmt.Fprintf(&b, "Fragment %d (relevance: %d%%):\n", i+1, int(math.Round(res.Relevance*100)))
		b.WriteString(res.Text)
		b.WriteString("\n")
		fmt.Fprintf(&b, "[Position: %d, Words: %d]\n", res.Position, res.WordCount)
		b.WriteString(strings.Repeat("-", ruleWidth))
		b.WriteString("\n\n")
	}

	return strings.TrimSpace(b.String())
}
