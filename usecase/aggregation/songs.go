package aggregation

import "receipt/domain"

const (
	maxTopSongs  = 5
	unknownTrack = "Unknown"
)

type songKey struct {
	title  string
	artist string
}

// TopSongs counts one play per music attachment, keyed by title and artist.
// Missing metadata counts as "Unknown"; album art comes from the first play.
func TopSongs(entries []domain.Entry) []domain.SongPlay {
	counter := newRankedCounter[songKey]()
	albumArt := make(map[songKey]string)

	for _, e := range entries {
		for _, m := range e.Media {
			if m.Type != domain.MediaTypeMusic {
				continue
			}
			key := songKey{title: unknownTrack, artist: unknownTrack}
			if m.Metadata != nil {
				if m.Metadata.Title != "" {
					key.title = m.Metadata.Title
				}
				if m.Metadata.Artist != "" {
					key.artist = m.Metadata.Artist
				}
			}
			if _, seen := albumArt[key]; !seen {
				albumArt[key] = m.Thumbnail
			}
			counter.add(key)
		}
	}

	top := counter.top(maxTopSongs)
	out := make([]domain.SongPlay, 0, len(top))
	for _, r := range top {
		song := domain.SongPlay{Title: r.key.title, Artist: r.key.artist, PlayCount: r.count}
		if art := albumArt[r.key]; art != "" {
			song.AlbumArt = &art
		}
		out = append(out, song)
	}
	return out
}
