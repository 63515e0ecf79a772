package aggregation

import (
	"fmt"

	"receipt/domain"
)

const (
	photoMilestone = 10
	wordMilestone  = 500
	songMilestone  = 5
)

// GenerateInsights evaluates the insight rules in their fixed order. previous
// is the report of the week before, or nil.
func GenerateInsights(stats domain.ReportStats, previous *domain.WeeklyReport) []domain.Insight {
	insights := make([]domain.Insight, 0, 5)

	if stats.DaysActive == 7 {
		insights = append(insights, domain.Insight{
			Type:        domain.InsightAchievement,
			Title:       "Perfect Week! 🌟",
			Description: "You documented every single day this week!",
			Icon:        "star",
		})
	}

	if stats.TotalPhotos >= photoMilestone {
		insights = append(insights, domain.Insight{
			Type:        domain.InsightMilestone,
			Title:       "Shutterbug 📸",
			Description: fmt.Sprintf("You captured %d photos this week!", stats.TotalPhotos),
			Icon:        "camera",
		})
	}

	if stats.TotalWords >= wordMilestone {
		insights = append(insights, domain.Insight{
			Type:        domain.InsightPattern,
			Title:       "Wordsmith ✍️",
			Description: fmt.Sprintf("You wrote %d words this week. That's a lot of thoughts!", stats.TotalWords),
			Icon:        "pencil",
		})
	}

	if stats.TotalSongs >= songMilestone {
		insights = append(insights, domain.Insight{
			Type:        domain.InsightPattern,
			Title:       "Music Lover 🎵",
			Description: fmt.Sprintf("%d songs made it into your memories this week", stats.TotalSongs),
			Icon:        "music",
		})
	}

	if previous != nil {
		if diff := stats.TotalEntries - previous.Stats.TotalEntries; diff > 0 {
			insights = append(insights, domain.Insight{
				Type:        domain.InsightComparison,
				Title:       "More Active! 📈",
				Description: fmt.Sprintf("%d more entries than last week!", diff),
				Icon:        "trending-up",
			})
		}
	}

	return insights
}
