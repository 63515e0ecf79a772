package weekly_report_gateway

import (
	"context"
	stdErrors "errors"
	"strconv"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receipt/domain"
	"receipt/driver/receipt_db"
	"receipt/utils/errors"
)

var reportColumnNames = []string{
	"id", "user_id", "year", "week_number", "start_date", "end_date",
	"stats", "mood_summary", "top_emojis", "highlights", "top_songs", "top_words", "top_tags", "locations", "insights",
	"viewed_at", "is_shared", "share_token", "created_at", "updated_at",
}

func reportRow(year, week, totalEntries int) []any {
	start, end := domain.WeekWindow(year, week)
	created := end.Add(time.Hour)
	stats := []byte(`{"totalEntries":` + strconv.Itoa(totalEntries) + `}`)
	return []any{
		"6f1c2f4e-8f0b-4b36-9d59-0c8f0d1e2a3b", "user-1", year, week, start, end,
		stats, []byte(`{"dominantMood":"okay","moodDistribution":{},"averageMoodScore":null}`),
		[]byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`),
		(*time.Time)(nil), false, (*string)(nil), created, created,
	}
}

func newGateway(t *testing.T, cacheSize int) (pgxmock.PgxPoolIface, *WeeklyReportGateway) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewWeeklyReportGateway(receipt_db.NewReceiptDBRepository(mock), cacheSize, time.Minute)
}

func TestGetPreviousReport_CachesHits(t *testing.T) {
	mock, g := newGateway(t, 16)

	mock.ExpectQuery("SELECT (.+) FROM weekly_reports WHERE user_id = \\$1 AND year = \\$2 AND week_number = \\$3").
		WithArgs("user-1", 2024, 9).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(reportRow(2024, 9, 4)...))

	first, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 4, first.Stats.TotalEntries)

	second, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)
	assert.Same(t, first, second)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPreviousReport_WeekOneRollsBack(t *testing.T) {
	mock, g := newGateway(t, 0)

	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
		WithArgs("user-1", 2023, 52).
		WillReturnRows(pgxmock.NewRows(reportColumnNames))

	prev, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 1)
	require.NoError(t, err)
	assert.Nil(t, prev)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPreviousReport_MissIsNotCached(t *testing.T) {
	mock, g := newGateway(t, 16)

	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
		WithArgs("user-1", 2024, 9).
		WillReturnRows(pgxmock.NewRows(reportColumnNames))
	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
		WithArgs("user-1", 2024, 9).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(reportRow(2024, 9, 2)...))

	prev, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)
	assert.Nil(t, prev)

	prev, err = g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, 2, prev.Stats.TotalEntries)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPreviousReport_UncachedSeesOtherWriters(t *testing.T) {
	mock, g := newGateway(t, 0)
	assert.False(t, g.CachesPreviousReports())

	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
		WithArgs("user-1", 2024, 9).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(reportRow(2024, 9, 3)...))
	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
		WithArgs("user-1", 2024, 9).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(reportRow(2024, 9, 4)...))

	first, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Stats.TotalEntries)

	second, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, second.Stats.TotalEntries)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertReport_EvictsCachedKey(t *testing.T) {
	mock, g := newGateway(t, 16)

	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
		WithArgs("user-1", 2024, 9).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(reportRow(2024, 9, 2)...))
	_, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)

	start, end := domain.WeekWindow(2024, 9)
	mock.ExpectQuery("INSERT INTO weekly_reports").
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(reportRow(2024, 9, 5)...))
	_, err = g.UpsertReport(context.Background(), &domain.WeeklyReport{
		UserID: "user-1", Year: 2024, WeekNumber: 9, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").
		WithArgs("user-1", 2024, 9).
		WillReturnRows(pgxmock.NewRows(reportColumnNames).AddRow(reportRow(2024, 9, 5)...))
	prev, err := g.GetPreviousReport(context.Background(), "user-1", 2024, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, prev.Stats.TotalEntries)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReport_QueryErrorIsDatabaseError(t *testing.T) {
	mock, g := newGateway(t, 0)
	mock.ExpectQuery("SELECT (.+) FROM weekly_reports").WillReturnError(stdErrors.New("connection reset"))

	_, err := g.GetReport(context.Background(), "user-1", 2024, 10)

	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
	assert.True(t, errors.IsRetryableError(err))
}

func TestSetShared_NotFoundPassesThrough(t *testing.T) {
	mock, g := newGateway(t, 0)
	mock.ExpectQuery("UPDATE weekly_reports").WillReturnRows(pgxmock.NewRows([]string{"share_token"}))

	_, err := g.SetShared(context.Background(), "user-1", "6f1c2f4e-8f0b-4b36-9d59-0c8f0d1e2a3b", "tok", true)

	assert.ErrorIs(t, err, domain.ErrReportNotFound)
	assert.False(t, errors.IsDatabaseError(err))
}

func TestNilRepository(t *testing.T) {
	g := NewWeeklyReportGateway(nil, 0, 0)

	_, err := g.GetReport(context.Background(), "user-1", 2024, 10)
	assert.True(t, errors.IsDatabaseError(err))

	_, err = g.ListReports(context.Background(), "user-1", 10)
	assert.True(t, errors.IsDatabaseError(err))

	err = g.MarkViewed(context.Background(), "id", time.Now())
	assert.True(t, errors.IsDatabaseError(err))
}
