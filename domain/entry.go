package domain

import "time"

// Mood is the self-reported mood attached to a daily entry.
type Mood string

const (
	MoodAmazing  Mood = "amazing"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

// MoodOrder is the fixed enum order used for tie-breaking.
var MoodOrder = []Mood{MoodAmazing, MoodGood, MoodOkay, MoodBad, MoodTerrible}

// Score returns the 1-5 score of the mood, or 0 for an unknown value.
func (m Mood) Score() int {
	switch m {
	case MoodAmazing:
		return 5
	case MoodGood:
		return 4
	case MoodOkay:
		return 3
	case MoodBad:
		return 2
	case MoodTerrible:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether the mood is one of the five known values.
func (m Mood) IsValid() bool {
	return m.Score() > 0
}

// MediaType is the kind of an entry attachment.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeMusic MediaType = "music"
)

// MusicMetadata carries track information for music attachments.
type MusicMetadata struct {
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	Album  string `json:"album,omitempty"`
}

// Media is a single attachment on an entry. Binary payloads live in external
// storage; only references are kept here.
type Media struct {
	Type      MediaType      `json:"type"`
	URL       string         `json:"url"`
	Thumbnail string         `json:"thumbnail,omitempty"`
	Metadata  *MusicMetadata `json:"metadata,omitempty"`
}

// Location is an optional place attached to an entry.
type Location struct {
	Name string `json:"name"`
}

// Entry is one user-authored daily journal record. Entries are owned by the
// external entry store and are read-only here.
type Entry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Timestamp      time.Time `json:"timestamp"`
	Text           string    `json:"text,omitempty"`
	Emoji          string    `json:"emoji,omitempty"`
	Mood           Mood      `json:"mood,omitempty"`
	Tags           []string  `json:"tags"`
	Location       *Location `json:"location,omitempty"`
	Media          []Media   `json:"media"`
	HighlightScore float64   `json:"highlightScore"`
}

// HasMood reports whether the entry carries a known mood.
func (e Entry) HasMood() bool {
	return e.Mood.IsValid()
}

// LocationName returns the location display name or "" when absent.
func (e Entry) LocationName() string {
	if e.Location == nil {
		return ""
	}
	return e.Location.Name
}
