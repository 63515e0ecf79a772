package aggregation

import (
	"strings"

	"receipt/domain"
)

// ComputeStats counts entries, media by type, words and active days.
func ComputeStats(entries []domain.Entry) domain.ReportStats {
	var stats domain.ReportStats
	days := make(map[string]struct{})

	for _, e := range entries {
		stats.TotalEntries++
		stats.TotalWords += len(strings.Fields(e.Text))

		for _, m := range e.Media {
			switch m.Type {
			case domain.MediaTypeImage:
				stats.TotalPhotos++
			case domain.MediaTypeVideo:
				stats.TotalVideos++
			case domain.MediaTypeMusic:
				stats.TotalSongs++
			}
		}

		days[e.Timestamp.UTC().Format("2006-01-02")] = struct{}{}
	}

	stats.DaysActive = len(days)
	stats.StreakMaintained = stats.DaysActive == 7
	return stats
}
