package receipt_db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receipt/domain"
	"receipt/utils/logger"
)

var reportColumnNames = []string{
	"id", "user_id", "year", "week_number", "start_date", "end_date",
	"stats", "mood_summary", "top_emojis", "highlights", "top_songs", "top_words", "top_tags", "locations", "insights",
	"viewed_at", "is_shared", "share_token", "created_at", "updated_at",
}

func strPtr(s string) *string { return &s }

func setupLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.Logger
	logger.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { logger.Logger = prev })
	return &buf
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *ReceiptDBRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewReceiptDBRepository(mock)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func sampleReportRow(t *testing.T, viewedAt *time.Time, token *string) []any {
	start, end := domain.WeekWindow(2024, 10)
	created := time.Date(2024, 3, 10, 0, 5, 0, 0, time.UTC)
	avg := 4.0
	return []any{
		"6f1c2f4e-8f0b-4b36-9d59-0c8f0d1e2a3b", "user-1", 2024, 10, start, end,
		mustJSON(t, domain.ReportStats{TotalEntries: 3, DaysActive: 3}),
		mustJSON(t, domain.MoodSummary{DominantMood: domain.MoodGood, AverageMoodScore: &avg}),
		mustJSON(t, []domain.EmojiCount{{Emoji: "😀", Count: 2}}),
		[]byte(`[]`), []byte(`[]`),
		mustJSON(t, []domain.WordCount{{Word: "coffee", Count: 3}}),
		[]byte(`[]`), []byte(`[]`),
		mustJSON(t, []domain.Insight{{Type: domain.InsightComparison, Title: "More Active! 📈", Description: "1 more entries than last week!", Icon: "trending-up"}}),
		viewedAt, false, token, created, created,
	}
}

func TestFindEntries(t *testing.T) {
	buf := setupLogger(t)
	mock, repo := newMockRepo(t)
	start, end := domain.WeekWindow(2024, 10)
	ts := start.Add(10 * time.Hour)

	media := `[{"type":"image","url":"https://img/1"},{"type":"music","url":"m","thumbnail":"art","metadata":{"title":"X","artist":"Y"}}]`
	mock.ExpectQuery("SELECT (.+) FROM entries WHERE user_id = \\$1").
		WithArgs("user-1", start, end).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "entry_date", "text", "emoji", "mood", "tags", "location_name", "media", "highlight_score"}).
			AddRow("e1", "user-1", ts, strPtr("hello there"), strPtr("😀"), strPtr("good"), []string{"work"}, strPtr("Cafe"), []byte(media), 1.5).
			AddRow("e2", "user-1", ts.Add(24*time.Hour), (*string)(nil), (*string)(nil), (*string)(nil), []string{}, (*string)(nil), []byte(`{broken`), 0.0))

	entries, err := repo.FindEntries(context.Background(), "user-1", start, end)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "hello there", entries[0].Text)
	assert.Equal(t, domain.MoodGood, entries[0].Mood)
	assert.Equal(t, "Cafe", entries[0].LocationName())
	require.Len(t, entries[0].Media, 2)
	assert.Equal(t, domain.MediaTypeMusic, entries[0].Media[1].Type)
	assert.Equal(t, "X", entries[0].Media[1].Metadata.Title)
	assert.Equal(t, 1.5, entries[0].HighlightScore)

	assert.Empty(t, entries[1].Text)
	assert.False(t, entries[1].HasMood())
	assert.Nil(t, entries[1].Location)
	assert.Nil(t, entries[1].Media)
	assert.Contains(t, buf.String(), "Ignoring malformed entry media")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEntries_QueryError(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM entries").WillReturnError(errors.New("connection refused"))

	_, err := repo.FindEntries(context.Background(), "user-1", time.Now(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUpsertReport(t *testing.T) {
	mock, repo := newMockRepo(t)
	start, end := domain.WeekWindow(2024, 10)
	report := &domain.WeeklyReport{
		UserID:     "user-1",
		Year:       2024,
		WeekNumber: 10,
		StartDate:  start,
		EndDate:    end,
		Stats:      domain.ReportStats{TotalEntries: 3, DaysActive: 3},
	}

	viewed := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO weekly_reports (.+) ON CONFLICT \\(user_id, year, week_number\\) DO UPDATE SET").
		WithArgs(
			pgxmock.AnyArg(), "user-1", 2024, 10, start, end,
			mustJSON(t, report.Stats), pgxmock.AnyArg(),
			[]byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`),
			pgxmock.AnyArg(),
		).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(sampleReportRow(t, &viewed, strPtr("tok"))...))

	saved, err := repo.UpsertReport(context.Background(), report)

	require.NoError(t, err)
	assert.Equal(t, "6f1c2f4e-8f0b-4b36-9d59-0c8f0d1e2a3b", saved.ID)
	assert.Equal(t, 3, saved.Stats.TotalEntries)
	require.NotNil(t, saved.ViewedAt)
	assert.Equal(t, viewed, *saved.ViewedAt)
	assert.Equal(t, "tok", saved.ShareToken)
	assert.Equal(t, domain.MoodGood, saved.MoodSummary.DominantMood)
	assert.Equal(t, []domain.WordCount{{Word: "coffee", Count: 3}}, saved.TopWords)
	assert.NotNil(t, saved.Highlights)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertReport_Error(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO weekly_reports").WillReturnError(errors.New("deadlock detected"))

	_, err := repo.UpsertReport(context.Background(), &domain.WeeklyReport{UserID: "u", Year: 2024, WeekNumber: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "u:2024:01")
}

func TestGetReport(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM weekly_reports WHERE user_id = \\$1 AND year = \\$2 AND week_number = \\$3").
			WithArgs("user-1", 2024, 10).
			WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(sampleReportRow(t, nil, nil)...))

		report, err := repo.GetReport(context.Background(), "user-1", 2024, 10)

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Nil(t, report.ViewedAt)
		assert.Empty(t, report.ShareToken)
		assert.Equal(t, 10, report.WeekNumber)
	})

	t.Run("absent", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
			WithArgs("user-1", 2024, 11).
			WillReturnError(pgx.ErrNoRows)

		report, err := repo.GetReport(context.Background(), "user-1", 2024, 11)

		require.NoError(t, err)
		assert.Nil(t, report)
	})
}

func TestListReports(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM weekly_reports WHERE user_id = \\$1 ORDER BY year DESC, week_number DESC LIMIT \\$2").
		WithArgs("user-1", 52).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).
			AddRow(sampleReportRow(t, nil, nil)...).
			AddRow(sampleReportRow(t, nil, nil)...))

	reports, err := repo.ListReports(context.Background(), "user-1", 52)

	require.NoError(t, err)
	assert.Len(t, reports, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkViewed(t *testing.T) {
	mock, repo := newMockRepo(t)
	at := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE weekly_reports SET viewed_at = COALESCE\\(viewed_at, \\$2\\)").
		WithArgs("r1", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkViewed(context.Background(), "r1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetShared(t *testing.T) {
	t.Run("returns the stored token", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("UPDATE weekly_reports SET is_shared").
			WithArgs("r1", "user-1", true, strPtr("new-token")).
			WillReturnRows(pgxmock.NewRows([]string{"share_token"}).AddRow("old-token"))

		token, err := repo.SetShared(context.Background(), "user-1", "r1", "new-token", true)

		require.NoError(t, err)
		assert.Equal(t, "old-token", token)
	})

	t.Run("unknown report", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("UPDATE weekly_reports SET is_shared").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.SetShared(context.Background(), "user-1", "r1", "", false)

		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})
}

func TestGetSharedReport(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM weekly_reports WHERE share_token = \\$1 AND is_shared = TRUE").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	report, err := repo.GetSharedReport(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestListEligibleUsers(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("SELECT id FROM users WHERE weekly_receipt_enabled = TRUE AND is_active = TRUE").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

	users, err := repo.ListEligibleUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.EligibleUser{{ID: "a"}, {ID: "b"}}, users)
}

func TestApplySchema(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, repo.ApplySchema(context.Background()))
}

func TestPing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewReceiptDBRepository(mock)

	mock.ExpectPing()
	require.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, repo.Ping(context.Background()))

	require.NoError(t, mock.ExpectationsWereMet())
}
