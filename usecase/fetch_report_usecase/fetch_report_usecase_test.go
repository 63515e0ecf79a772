package fetch_report_usecase

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"receipt/domain"
	"receipt/mocks"
	"receipt/utils/errors"
)

type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) Execute(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	args := m.Called(ctx, userID, year, weekNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReport), args.Error(1)
}

var fixedNow = time.Date(2024, time.March, 6, 15, 0, 0, 0, time.UTC)

func newUsecase(t *testing.T) (*FetchReportUsecase, *mocks.MockWeeklyReportPort, *MockReportGenerator) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockWeeklyReportPort(ctrl)
	gen := new(MockReportGenerator)
	uc := NewFetchReportUsecase(port, gen, 52, 104)
	uc.now = func() time.Time { return fixedNow }
	return uc, port, gen
}

func TestFetchReportUsecase_List(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default when zero", limit: 0, wantLimit: 52},
		{name: "default when negative", limit: -3, wantLimit: 52},
		{name: "explicit", limit: 10, wantLimit: 10},
		{name: "capped", limit: 500, wantLimit: 104},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, port, _ := newUsecase(t)
			port.EXPECT().ListReports(gomock.Any(), "user-1", tt.wantLimit).Return(nil, nil)

			reports, err := uc.List(context.Background(), "user-1", tt.limit)

			require.NoError(t, err)
			assert.NotNil(t, reports)
			assert.Empty(t, reports)
		})
	}
}

func TestFetchReportUsecase_Get_ExistingMarksViewed(t *testing.T) {
	uc, port, gen := newUsecase(t)
	existing := &domain.WeeklyReport{ID: "r1", UserID: "user-1", Year: 2024, WeekNumber: 9}

	port.EXPECT().GetReport(gomock.Any(), "user-1", 2024, 9).Return(existing, nil)
	port.EXPECT().MarkViewed(gomock.Any(), "r1", fixedNow).Return(nil)

	report, err := uc.Get(context.Background(), "user-1", 2024, 9)

	require.NoError(t, err)
	require.NotNil(t, report.ViewedAt)
	assert.Equal(t, fixedNow, *report.ViewedAt)
	gen.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchReportUsecase_Get_AlreadyViewed(t *testing.T) {
	uc, port, _ := newUsecase(t)
	viewed := fixedNow.Add(-48 * time.Hour)
	existing := &domain.WeeklyReport{ID: "r1", ViewedAt: &viewed}

	port.EXPECT().GetReport(gomock.Any(), "user-1", 2024, 9).Return(existing, nil)

	report, err := uc.Get(context.Background(), "user-1", 2024, 9)

	require.NoError(t, err)
	assert.Equal(t, viewed, *report.ViewedAt)
}

func TestFetchReportUsecase_Get_GeneratesMissing(t *testing.T) {
	uc, port, gen := newUsecase(t)
	generated := &domain.WeeklyReport{ID: "r2", UserID: "user-1", Year: 2024, WeekNumber: 9}

	port.EXPECT().GetReport(gomock.Any(), "user-1", 2024, 9).Return(nil, nil)
	gen.On("Execute", mock.Anything, "user-1", 2024, 9).Return(generated, nil)
	port.EXPECT().MarkViewed(gomock.Any(), "r2", fixedNow).Return(nil)

	report, err := uc.Get(context.Background(), "user-1", 2024, 9)

	require.NoError(t, err)
	assert.Equal(t, "r2", report.ID)
	gen.AssertExpectations(t)
}

func TestFetchReportUsecase_Get_NoEntries(t *testing.T) {
	uc, port, gen := newUsecase(t)

	port.EXPECT().GetReport(gomock.Any(), "user-1", 2024, 9).Return(nil, nil)
	gen.On("Execute", mock.Anything, "user-1", 2024, 9).Return(nil, domain.ErrNoEntriesInWindow)

	_, err := uc.Get(context.Background(), "user-1", 2024, 9)

	assert.ErrorIs(t, err, domain.ErrNoEntriesInWindow)
}

func TestFetchReportUsecase_Get_MarkViewedFailureIsTolerated(t *testing.T) {
	uc, port, _ := newUsecase(t)

	port.EXPECT().GetReport(gomock.Any(), "user-1", 2024, 9).Return(&domain.WeeklyReport{ID: "r1"}, nil)
	port.EXPECT().MarkViewed(gomock.Any(), "r1", fixedNow).Return(stdErrors.New("connection reset"))

	report, err := uc.Get(context.Background(), "user-1", 2024, 9)

	require.NoError(t, err)
	assert.Nil(t, report.ViewedAt)
}

func TestFetchReportUsecase_Current(t *testing.T) {
	uc, port, _ := newUsecase(t)
	viewed := fixedNow

	port.EXPECT().GetReport(gomock.Any(), "user-1", 2024, 10).Return(&domain.WeeklyReport{ID: "r3", ViewedAt: &viewed}, nil)

	report, err := uc.Current(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "r3", report.ID)
}

func TestFetchReportUsecase_CurrentWindowContainsNow(t *testing.T) {
	uc, port, _ := newUsecase(t)
	now := time.Date(2022, time.March, 9, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	viewed := now

	port.EXPECT().GetReport(gomock.Any(), "user-1", 2022, 11).Return(&domain.WeeklyReport{ID: "r4", ViewedAt: &viewed}, nil)

	report, err := uc.Current(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "r4", report.ID)

	start, end := domain.WeekWindow(2022, 11)
	assert.False(t, now.Before(start))
	assert.False(t, now.After(end))
}

func TestFetchReportUsecase_RequiresUser(t *testing.T) {
	uc, _, _ := newUsecase(t)

	_, err := uc.List(context.Background(), "", 0)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Get(context.Background(), "", 2024, 1)
	assert.True(t, errors.IsValidationError(err))
}
