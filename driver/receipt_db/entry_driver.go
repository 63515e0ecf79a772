package receipt_db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"receipt/domain"
	"receipt/utils/logger"
)

const findEntriesQuery = `
	SELECT id::text, user_id, entry_date, text, emoji, mood, tags, location_name, media, highlight_score
	FROM entries
	WHERE user_id = $1
	  AND entry_date >= $2
	  AND entry_date <= $3
	ORDER BY entry_date ASC, id ASC
`

// FindEntries returns the user's entries within [start, end] in timestamp order.
func (r *ReceiptDBRepository) FindEntries(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error) {
	rows, err := r.pool.Query(ctx, findEntriesQuery, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0, 7)
	for rows.Next() {
		var (
			e            domain.Entry
			text, emoji  *string
			mood         *string
			locationName *string
			mediaJSON    []byte
		)
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Timestamp,
			&text,
			&emoji,
			&mood,
			&e.Tags,
			&locationName,
			&mediaJSON,
			&e.HighlightScore,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		if text != nil {
			e.Text = *text
		}
		if emoji != nil {
			e.Emoji = *emoji
		}
		if mood != nil {
			e.Mood = domain.Mood(*mood)
		}
		if locationName != nil && *locationName != "" {
			e.Location = &domain.Location{Name: *locationName}
		}
		e.Timestamp = e.Timestamp.UTC()
		e.Media = decodeMedia(e.ID, mediaJSON)

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// decodeMedia treats an unreadable media column as "no media".
func decodeMedia(entryID string, raw []byte) []domain.Media {
	if len(raw) == 0 {
		return nil
	}
	var media []domain.Media
	if err := json.Unmarshal(raw, &media); err != nil {
		logger.Logger.Warn("Ignoring malformed entry media", "entry_id", entryID, "error", err)
		return nil
	}
	return media
}
