package aggregation

import (
	"slices"
	"unicode/utf8"

	"receipt/domain"
)

const (
	maxHighlights       = 5
	mediaPreviewLength  = 100
	textPreviewLength   = 200
	mediaHighlightBoost = 2.0
)

type scoredEntry struct {
	entry domain.Entry
	score float64
}

// SelectHighlights ranks entries by highlight score and turns the best five
// into highlights. Entries without media and text are dropped after ranking,
// so fewer than five highlights may come back.
func SelectHighlights(entries []domain.Entry) []domain.Highlight {
	scored := make([]scoredEntry, 0, len(entries))
	for _, e := range entries {
		scored = append(scored, scoredEntry{entry: e, score: highlightScore(e)})
	}

	slices.SortStableFunc(scored, func(a, b scoredEntry) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})
	if len(scored) > maxHighlights {
		scored = scored[:maxHighlights]
	}

	out := make([]domain.Highlight, 0, len(scored))
	for _, s := range scored {
		e := s.entry
		switch {
		case len(e.Media) > 0:
			first := e.Media[0]
			url := first.URL
			out = append(out, domain.Highlight{
				SourceEntryID: e.ID,
				Type:          highlightType(first.Type),
				Preview:       preview(e.Text, mediaPreviewLength),
				MediaURL:      &url,
			})
		case e.Text != "":
			out = append(out, domain.Highlight{
				SourceEntryID: e.ID,
				Type:          domain.HighlightText,
				Preview:       preview(e.Text, textPreviewLength),
			})
		}
	}
	return out
}

func highlightScore(e domain.Entry) float64 {
	return e.HighlightScore +
		mediaHighlightBoost*float64(len(e.Media)) +
		float64(utf8.RuneCountInString(e.Text))/100
}

func highlightType(t domain.MediaType) domain.HighlightType {
	switch t {
	case domain.MediaTypeImage:
		return domain.HighlightPhoto
	case domain.MediaTypeVideo:
		return domain.HighlightVideo
	case domain.MediaTypeMusic:
		return domain.HighlightMusic
	default:
		return domain.HighlightType(t)
	}
}

// preview returns the first n runes of text, or nil for empty text.
func preview(text string, n int) *string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) > n {
		runes = runes[:n]
	}
	p := string(runes)
	return &p
}
