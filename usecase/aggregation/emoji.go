package aggregation

import (
	"strings"

	"github.com/rivo/uniseg"

	"receipt/domain"
)

const maxTopEmojis = 5

// TopEmojis splits every emoji field into grapheme clusters so that a
// multi-codepoint emoji counts once.
func TopEmojis(entries []domain.Entry) []domain.EmojiCount {
	counter := newRankedCounter[string]()
	for _, e := range entries {
		if e.Emoji == "" {
			continue
		}
		g := uniseg.NewGraphemes(e.Emoji)
		for g.Next() {
			cluster := g.Str()
			if strings.TrimSpace(cluster) == "" {
				continue
			}
			counter.add(cluster)
		}
	}

	top := counter.top(maxTopEmojis)
	out := make([]domain.EmojiCount, 0, len(top))
	for _, r := range top {
		out = append(out, domain.EmojiCount{Emoji: r.key, Count: r.count})
	}
	return out
}
