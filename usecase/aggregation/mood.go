package aggregation

import (
	"math"

	"receipt/domain"
)

// AnalyzeMoods builds the mood distribution of the week.
//
// The dominant mood is the most frequent one, ties going to the earlier mood
// in domain.MoodOrder. Without any mood the dominant mood is "okay" and the
// average is nil.
func AnalyzeMoods(entries []domain.Entry) domain.MoodSummary {
	summary := domain.MoodSummary{DominantMood: domain.MoodOkay}

	total, rated := 0, 0
	for _, e := range entries {
		if !e.HasMood() {
			continue
		}
		summary.MoodDistribution.Add(e.Mood)
		total += e.Mood.Score()
		rated++
	}

	if rated == 0 {
		return summary
	}

	best := 0
	for _, m := range domain.MoodOrder {
		if c := summary.MoodDistribution.Count(m); c > best {
			best = c
			summary.DominantMood = m
		}
	}

	avg := math.Round(float64(total)/float64(rated)*100) / 100
	summary.AverageMoodScore = &avg
	return summary
}
