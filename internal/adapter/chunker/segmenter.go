package chunker

import (
	"strings"
	"unicode"
)

// abbreviations end with a period without terminating a sentence.
var abbreviations = map[string]struct{}{
	"mr.": {}, "mrs.": {}, "ms.": {}, "dr.": {}, "prof.": {},
	"sr.": {}, "jr.": {}, "st.": {}, "vs.": {}, "etc.": {},
	"e.g.": {}, "i.e.": {}, "cf.": {}, "inc.": {}, "ltd.": {},
	"co.": {}, "no.": {}, "vol.": {}, "fig.": {}, "approx.": {},
}

// splitSentences segments text at sentence-ending punctuation ('.', '!',
// '?'), keeping common abbreviations, single-letter initials and dotted
// acronyms attached to their sentence. Returned sentences are trimmed of
// surrounding whitespace; empty segments are dropped.
func splitSentences(text string) []string {
	var sentences []string
	var buf strings.Builder

	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			sentences = append(sentences, s)
		}
		buf.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		buf.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Absorb runs like "?!" or "..." and trailing closing quotes.
		for i+1 < len(runes) && isSentenceTail(runes[i+1]) {
			i++
			buf.WriteRune(runes[i])
		}

		// A boundary needs whitespace (or end of text) after it;
		// "3.14" and "v2.go" stay intact.
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}

		if r == '.' && !endsSentence(buf.String()) {
			continue
		}

		flush()
	}

	flush()
	return sentences
}

func isSentenceTail(r rune) bool {
	switch r {
	case '.', '!', '?', '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}

// endsSentence reports whether the final dotted word of s is a real
// sentence end rather than an abbreviation, an initial like "J." or a
// dotted acronym like "U.S.".
func endsSentence(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return true
	}
	word := strings.ToLower(strings.TrimRight(fields[len(fields)-1], "\"')]»”’"))
	if !strings.HasSuffix(word, ".") {
		return true
	}
	if _, ok := abbreviations[word]; ok {
		return false
	}
	trimmed := strings.TrimSuffix(word, ".")
	if len(trimmed) == 1 && trimmed != "i" && unicode.IsLetter(rune(trimmed[0])) {
		return false
	}
	if strings.Contains(trimmed, ".") && !strings.ContainsAny(trimmed, "0123456789") {
		return false
	}
	return true
}
