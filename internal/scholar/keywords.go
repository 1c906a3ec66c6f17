package scholar

import (
	"strings"
	"unicode"
)

const minKeywordLen = 4

// ExtractKeywords splits content on anything that is not an ASCII letter or
// digit and keeps the unique lowercased words of at least four characters,
// in first-seen order.
func ExtractKeywords(content string) []string {
	words := strings.FieldsFunc(content, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})

	seen := make(map[string]bool, len(words))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if len(w) < minKeywordLen || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
	}
	return keywords
}
