package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldText lower-cases s, strips diacritics and collapses whitespace.
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(folded), " ")
}

// extractDigits keeps ASCII digits only.
func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// keywordSet matches folded keywords as substrings of folded utterances.
type keywordSet []string

func newKeywordSet(words []string) keywordSet {
	set := make(keywordSet, 0, len(words))
	for _, w := range words {
		if f := foldText(w); f != "" {
			set = append(set, f)
		}
	}
	return set
}

func (k keywordSet) matches(folded string) bool {
	for _, w := range k {
		if strings.Contains(folded, w) {
			return true
		}
	}
	return false
}

// firstLine returns the first non-empty trimmed line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
