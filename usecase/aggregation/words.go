package aggregation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"receipt/domain"
)

const (
	maxTopWords   = 20
	minWordLength = 3
)

// punctuation matches everything except ASCII word characters and Unicode
// spaces.
var punctuation = regexp.MustCompile(`[^\w\s\v\p{Z}\x{FEFF}]`)

func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

var stopWords = toSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of",
	"with", "by", "from", "as", "is", "was", "are", "were", "been", "be",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "shall", "can", "need", "dare", "ought",
	"used", "i", "you", "he", "she", "it", "we", "they", "what", "which",
	"who", "whom", "this", "that", "these", "those", "am", "being", "having",
	"doing", "my", "your", "his", "her", "its", "our", "their", "me", "him",
	"us", "them", "just", "so", "than", "too", "very", "now", "here", "there",
	"when", "where", "why", "how", "all", "each", "every", "both", "few",
	"more", "most", "other", "some", "such", "no", "not", "only", "same",
	"then", "also", "back", "after", "before", "because",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopWord reports whether word is excluded from word frequencies.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// TopWords lowercases text, strips punctuation and counts the remaining
// words longer than two characters that are not stop words.
func TopWords(entries []domain.Entry) []domain.WordCount {
	lower := cases.Lower(language.Und)
	counter := newRankedCounter[string]()

	for _, e := range entries {
		if e.Text == "" {
			continue
		}
		cleaned := punctuation.ReplaceAllString(lower.String(e.Text), "")
		for _, w := range strings.FieldsFunc(cleaned, isWordSeparator) {
			if utf8.RuneCountInString(w) < minWordLength || IsStopWord(w) {
				continue
			}
			counter.add(w)
		}
	}

	top := counter.top(maxTopWords)
	out := make([]domain.WordCount, 0, len(top))
	for _, r := range top {
		out = append(out, domain.WordCount{Word: r.key, Count: r.count})
	}
	return out
}
