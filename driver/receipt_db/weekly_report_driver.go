package receipt_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"receipt/domain"
)

const reportColumns = `id::text, user_id, year, week_number, start_date, end_date,
	stats, mood_summary, top_emojis, highlights, top_songs, top_words, top_tags, locations, insights,
	viewed_at, is_shared, share_token, created_at, updated_at`

// upsertReportQuery replaces every computed column of an existing report and
// leaves id, created_at, viewed_at and the sharing columns untouched.
const upsertReportQuery = `
	INSERT INTO weekly_reports (
		id, user_id, year, week_number, start_date, end_date,
		stats, mood_summary, top_emojis, highlights, top_songs, top_words, top_tags, locations, insights,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
	ON CONFLICT (user_id, year, week_number) DO UPDATE SET
		start_date   = EXCLUDED.start_date,
		end_date     = EXCLUDED.end_date,
		stats        = EXCLUDED.stats,
		mood_summary = EXCLUDED.mood_summary,
		top_emojis   = EXCLUDED.top_emojis,
		highlights   = EXCLUDED.highlights,
		top_songs    = EXCLUDED.top_songs,
		top_words    = EXCLUDED.top_words,
		top_tags     = EXCLUDED.top_tags,
		locations    = EXCLUDED.locations,
		insights     = EXCLUDED.insights,
		updated_at   = EXCLUDED.updated_at
	RETURNING ` + reportColumns

const getReportQuery = `SELECT ` + reportColumns + `
	FROM weekly_reports
	WHERE user_id = $1 AND year = $2 AND week_number = $3`

const listReportsQuery = `SELECT ` + reportColumns + `
	FROM weekly_reports
	WHERE user_id = $1
	ORDER BY year DESC, week_number DESC
	LIMIT $2`

const markViewedQuery = `
	UPDATE weekly_reports
	SET viewed_at = COALESCE(viewed_at, $2)
	WHERE id = $1`

const setSharedQuery = `
	UPDATE weekly_reports
	SET is_shared   = $3,
	    share_token = COALESCE(share_token, $4)
	WHERE id = $1 AND user_id = $2
	RETURNING COALESCE(share_token, '')`

const getSharedReportQuery = `SELECT ` + reportColumns + `
	FROM weekly_reports
	WHERE share_token = $1 AND is_shared = TRUE`

type rowScanner interface {
	Scan(dest ...any) error
}

// UpsertReport atomically creates or replaces the report for its key.
func (r *ReceiptDBRepository) UpsertReport(ctx context.Context, report *domain.WeeklyReport) (*domain.WeeklyReport, error) {
	id := report.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := report.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	body, err := encodeReportBody(report)
	if err != nil {
		return nil, err
	}

	args := []any{id, report.UserID, report.Year, report.WeekNumber, report.StartDate, report.EndDate}
	args = append(args, body...)
	args = append(args, now)

	saved, err := scanReport(r.pool.QueryRow(ctx, upsertReportQuery, args...))
	if err != nil {
		return nil, fmt.Errorf("upsert weekly report %s: %w", report.Key(), err)
	}
	return saved, nil
}

// GetReport returns nil, nil when no report exists for the key.
func (r *ReceiptDBRepository) GetReport(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	report, err := scanReport(r.pool.QueryRow(ctx, getReportQuery, userID, year, weekNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get weekly report: %w", err)
	}
	return report, nil
}

// ListReports returns the user's reports, most recent week first.
func (r *ReceiptDBRepository) ListReports(ctx context.Context, userID string, limit int) ([]*domain.WeeklyReport, error) {
	rows, err := r.pool.Query(ctx, listReportsQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list weekly reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.WeeklyReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weekly report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly reports: %w", err)
	}
	return reports, nil
}

// MarkViewed records the first time a report was read.
func (r *ReceiptDBRepository) MarkViewed(ctx context.Context, reportID string, viewedAt time.Time) error {
	if _, err := r.pool.Exec(ctx, markViewedQuery, reportID, viewedAt); err != nil {
		return fmt.Errorf("mark weekly report viewed: %w", err)
	}
	return nil
}

func (r *ReceiptDBRepository) SetShared(ctx context.Context, userID, reportID, shareToken string, shared bool) (string, error) {
	var token *string
	if shareToken != "" {
		token = &shareToken
	}

	var current string
	err := r.pool.QueryRow(ctx, setSharedQuery, reportID, userID, shared, token).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrReportNotFound
	}
	if err != nil {
		return "", fmt.Errorf("set weekly report shared: %w", err)
	}
	return current, nil
}

// GetSharedReport returns nil, nil when no shared report carries the token.
func (r *ReceiptDBRepository) GetSharedReport(ctx context.Context, token string) (*domain.WeeklyReport, error) {
	report, err := scanReport(r.pool.QueryRow(ctx, getSharedReportQuery, token))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shared weekly report: %w", err)
	}
	return report, nil
}

// encodeReportBody marshals the nine JSONB facet columns in column order.
// Nil lists are stored as empty arrays.
func encodeReportBody(r *domain.WeeklyReport) ([]any, error) {
	values := []any{
		r.Stats,
		r.MoodSummary,
		nonNil(r.TopEmojis),
		nonNil(r.Highlights),
		nonNil(r.TopSongs),
		nonNil(r.TopWords),
		nonNil(r.TopTags),
		nonNil(r.Locations),
		nonNil(r.Insights),
	}

	out := make([]any, 0, len(values))
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode weekly report: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func scanReport(row rowScanner) (*domain.WeeklyReport, error) {
	var (
		r          domain.WeeklyReport
		stats      []byte
		mood       []byte
		emojis     []byte
		highlights []byte
		songs      []byte
		words      []byte
		tags       []byte
		locations  []byte
		insights   []byte
		viewedAt   *time.Time
		shareToken *string
	)

	if err := row.Scan(
		&r.ID, &r.UserID, &r.Year, &r.WeekNumber, &r.StartDate, &r.EndDate,
		&stats, &mood, &emojis, &highlights, &songs, &words, &tags, &locations, &insights,
		&viewedAt, &r.IsShared, &shareToken, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	columns := []struct {
		raw  []byte
		dest any
	}{
		{stats, &r.Stats},
		{mood, &r.MoodSummary},
		{emojis, &r.TopEmojis},
		{highlights, &r.Highlights},
		{songs, &r.TopSongs},
		{words, &r.TopWords},
		{tags, &r.TopTags},
		{locations, &r.Locations},
		{insights, &r.Insights},
	}
	for _, c := range columns {
		if len(c.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(c.raw, c.dest); err != nil {
			return nil, fmt.Errorf("decode weekly report %s: %w", r.ID, err)
		}
	}

	if viewedAt != nil {
		t := viewedAt.UTC()
		r.ViewedAt = &t
	}
	if shareToken != nil {
		r.ShareToken = *shareToken
	}
	r.StartDate = r.StartDate.UTC()
	r.EndDate = r.EndDate.UTC()
	r.TopEmojis = nonNil(r.TopEmojis)
	r.Highlights = nonNil(r.Highlights)
	r.TopSongs = nonNil(r.TopSongs)
	r.TopWords = nonNil(r.TopWords)
	r.TopTags = nonNil(r.TopTags)
	r.Locations = nonNil(r.Locations)
	r.Insights = nonNil(r.Insights)
	return &r, nil
}
