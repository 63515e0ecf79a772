package aggregation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"receipt/domain"
	"receipt/utils/errors"
)

// Facets holds every independently computed part of a weekly report.
type Facets struct {
	Stats       domain.ReportStats
	MoodSummary domain.MoodSummary
	TopEmojis   []domain.EmojiCount
	Highlights  []domain.Highlight
	TopSongs    []domain.SongPlay
	TopWords    []domain.WordCount
	TopTags     []domain.TagCount
	Locations   []domain.LocationVisit
}

// extractor computes one facet into its own field of Facets.
type extractor struct {
	name string
	run  func(entries []domain.Entry, f *Facets)
}

func defaultExtractors() []extractor {
	return []extractor{
		{"stats", func(e []domain.Entry, f *Facets) { f.Stats = ComputeStats(e) }},
		{"moods", func(e []domain.Entry, f *Facets) { f.MoodSummary = AnalyzeMoods(e) }},
		{"emojis", func(e []domain.Entry, f *Facets) { f.TopEmojis = TopEmojis(e) }},
		{"highlights", func(e []domain.Entry, f *Facets) { f.Highlights = SelectHighlights(e) }},
		{"songs", func(e []domain.Entry, f *Facets) { f.TopSongs = TopSongs(e) }},
		{"words", func(e []domain.Entry, f *Facets) { f.TopWords = TopWords(e) }},
		{"tags", func(e []domain.Entry, f *Facets) { f.TopTags = TopTags(e) }},
		{"locations", func(e []domain.Entry, f *Facets) { f.Locations = TopLocations(e) }},
	}
}

// Extract runs all extractors concurrently over the same entries. The entry
// slice is only read. A panicking extractor fails the whole extraction with
// an aggregation error and no facets are returned.
func Extract(ctx context.Context, entries []domain.Entry) (*Facets, error) {
	return runExtractors(ctx, entries, defaultExtractors())
}

func runExtractors(ctx context.Context, entries []domain.Entry, extractors []extractor) (*Facets, error) {
	facets := &Facets{}
	g, gctx := errgroup.WithContext(ctx)

	for _, ex := range extractors {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.AggregationError(
						fmt.Sprintf("extractor %s panicked", ex.name),
						fmt.Errorf("%v", r),
						map[string]interface{}{"extractor": ex.name},
					)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			ex.run(entries, facets)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return facets, nil
}
