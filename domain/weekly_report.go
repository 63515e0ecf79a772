package domain

import (
	"fmt"
	"time"
)

// ReportKey identifies a weekly report. At most one report exists per key.
type ReportKey struct {
	UserID     string
	Year       int
	WeekNumber int
}

func (k ReportKey) String() string {
	return fmt.Sprintf("%s:%d:%02d", k.UserID, k.Year, k.WeekNumber)
}

// ReportStats holds the raw counters of a week.
type ReportStats struct {
	TotalEntries     int  `json:"totalEntries"`
	TotalPhotos      int  `json:"totalPhotos"`
	TotalVideos      int  `json:"totalVideos"`
	TotalSongs       int  `json:"totalSongs"`
	TotalWords       int  `json:"totalWords"`
	DaysActive       int  `json:"daysActive"`
	StreakMaintained bool `json:"streakMaintained"`
}

// MoodDistribution counts entries per mood. A struct keeps the wire field
// order stable.
type MoodDistribution struct {
	Amazing  int `json:"amazing"`
	Good     int `json:"good"`
	Okay     int `json:"okay"`
	Bad      int `json:"bad"`
	Terrible int `json:"terrible"`
}

// Count returns the counter for a mood.
func (d MoodDistribution) Count(m Mood) int {
	switch m {
	case MoodAmazing:
		return d.Amazing
	case MoodGood:
		return d.Good
	case MoodOkay:
		return d.Okay
	case MoodBad:
		return d.Bad
	case MoodTerrible:
		return d.Terrible
	default:
		return 0
	}
}

// Add increments the counter for a mood. Unknown moods are ignored.
func (d *MoodDistribution) Add(m Mood) {
	switch m {
	case MoodAmazing:
		d.Amazing++
	case MoodGood:
		d.Good++
	case MoodOkay:
		d.Okay++
	case MoodBad:
		d.Bad++
	case MoodTerrible:
		d.Terrible++
	}
}

type MoodSummary struct {
	DominantMood     Mood             `json:"dominantMood"`
	MoodDistribution MoodDistribution `json:"moodDistribution"`
	// AverageMoodScore is nil when no entry of the week has a mood.
	AverageMoodScore *float64 `json:"averageMoodScore"`
}

type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// HighlightType is the wire value of a highlight kind.
type HighlightType string

const (
	HighlightPhoto HighlightType = "photo"
	HighlightVideo HighlightType = "video"
	HighlightMusic HighlightType = "music"
	HighlightText  HighlightType = "text"
)

type Highlight struct {
	SourceEntryID string        `json:"sourceEntryId"`
	Type          HighlightType `json:"type"`
	Preview       *string       `json:"preview"`
	MediaURL      *string       `json:"mediaUrl"`
}

type SongPlay struct {
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	PlayCount int     `json:"playCount"`
	AlbumArt  *string `json:"albumArt"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type LocationVisit struct {
	Name       string `json:"name"`
	VisitCount int    `json:"visitCount"`
}

// InsightType classifies a generated observation.
type InsightType string

const (
	InsightAchievement InsightType = "achievement"
	InsightMilestone   InsightType = "milestone"
	InsightPattern     InsightType = "pattern"
	InsightComparison  InsightType = "comparison"
)

type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}

// WeeklyReport is the computed digest ("Weekly Receipt") of one user's week.
//
// The computed body (window, stats and every facet) is replaced as a whole on
// regeneration. ViewedAt and the sharing fields are written by separate
// actions and survive regeneration.
type WeeklyReport struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Year       int       `json:"year"`
	WeekNumber int       `json:"weekNumber"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`

	Stats       ReportStats     `json:"stats"`
	MoodSummary MoodSummary     `json:"moodSummary"`
	TopEmojis   []EmojiCount    `json:"topEmojis"`
	Highlights  []Highlight     `json:"highlights"`
	TopSongs    []SongPlay      `json:"topSongs"`
	TopWords    []WordCount     `json:"topWords"`
	TopTags     []TagCount      `json:"topTags"`
	Locations   []LocationVisit `json:"locations"`
	Insights    []Insight       `json:"insights"`

	ViewedAt   *time.Time `json:"viewedAt"`
	IsShared   bool       `json:"isShared"`
	ShareToken string     `json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Key returns the unique key of the report.
func (r *WeeklyReport) Key() ReportKey {
	return ReportKey{UserID: r.UserID, Year: r.Year, WeekNumber: r.WeekNumber}
}

// SharedReportView is the limited projection exposed through a share link.
type SharedReportView struct {
	WeekNumber  int          `json:"weekNumber"`
	Year        int          `json:"year"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Stats       ReportStats  `json:"stats"`
	MoodSummary MoodSummary  `json:"moodSummary"`
	TopEmojis   []EmojiCount `json:"topEmojis"`
	Highlights  []Highlight  `json:"highlights"`
	TopSongs    []SongPlay   `json:"topSongs"`
	Insights    []Insight    `json:"insights"`
}

// SharedView projects the report onto the fields a share link may expose.
func (r *WeeklyReport) SharedView() SharedReportView {
	return SharedReportView{
		WeekNumber:  r.WeekNumber,
		Year:        r.Year,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Stats:       r.Stats,
		MoodSummary: r.MoodSummary,
		TopEmojis:   r.TopEmojis,
		Highlights:  r.Highlights,
		TopSongs:    r.TopSongs,
		Insights:    r.Insights,
	}
}

// EligibleUser is a user opted in to scheduled weekly reports.
type EligibleUser struct {
	ID string
}
