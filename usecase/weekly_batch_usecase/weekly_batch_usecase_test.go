package weekly_batch_usecase

import (
	"context"
	stdErrors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"receipt/domain"
	"receipt/mocks"
	"receipt/utils/errors"
	"receipt/utils/metrics"
)

type fakeGenerator struct {
	mu       sync.Mutex
	calls    []string
	results  map[string]error
	inFlight int32
	maxSeen  int32
	delay    time.Duration
}

func (f *fakeGenerator) ExecuteWithTrigger(ctx context.Context, trigger, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		m := atomic.LoadInt32(&f.maxSeen)
		if n <= m || atomic.CompareAndSwapInt32(&f.maxSeen, m, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.calls = append(f.calls, userID)
	f.mu.Unlock()

	if err := f.results[userID]; err != nil {
		return nil, err
	}
	return &domain.WeeklyReport{UserID: userID, Year: year, WeekNumber: weekNumber}, nil
}

func TestWeeklyBatchUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockEligibleUserPort(ctrl)
	users.EXPECT().ListEligibleUsers(gomock.Any()).Return([]domain.EligibleUser{
		{ID: "u1"}, {ID: "u2"}, {ID: "u3"}, {ID: "u4"},
	}, nil)

	gen := &fakeGenerator{results: map[string]error{
		"u2": domain.ErrNoEntriesInWindow,
		"u3": errors.DatabaseError("failed to fetch entries", stdErrors.New("timeout"), nil),
	}}
	uc := NewWeeklyBatchUsecase(users, gen, BatchOptions{Concurrency: 2})

	summary, err := uc.Execute(context.Background(), metrics.TriggerScheduled, 2024, 9)

	require.NoError(t, err)
	assert.Equal(t, &BatchSummary{Year: 2024, WeekNumber: 9, Users: 4, Generated: 2, Skipped: 1, Failed: 1}, summary)
	assert.ElementsMatch(t, []string{"u1", "u2", "u3", "u4"}, gen.calls)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.BatchUsers.WithLabelValues(metrics.OutcomeFailed)))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.BatchUsers.WithLabelValues(metrics.OutcomeGenerated)))
}

func TestWeeklyBatchUsecase_RespectsConcurrency(t *testing.T) {
	gen := &fakeGenerator{delay: 5 * time.Millisecond}
	uc := NewWeeklyBatchUsecase(nil, gen, BatchOptions{Concurrency: 3})

	ids := make([]string, 12)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	summary, err := uc.ExecuteForUsers(context.Background(), metrics.TriggerBackfill, 2024, 9, ids)

	require.NoError(t, err)
	assert.Equal(t, 12, summary.Generated)
	assert.LessOrEqual(t, gen.maxSeen, int32(3))
}

func TestWeeklyBatchUsecase_EligibleUsersError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockEligibleUserPort(ctrl)
	users.EXPECT().ListEligibleUsers(gomock.Any()).
		Return(nil, errors.DatabaseError("failed to list eligible users", stdErrors.New("down"), nil))

	uc := NewWeeklyBatchUsecase(users, &fakeGenerator{}, BatchOptions{Concurrency: 1})
	_, err := uc.Execute(context.Background(), metrics.TriggerScheduled, 2024, 9)

	assert.True(t, errors.IsDatabaseError(err))
}

func TestWeeklyBatchUsecase_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &fakeGenerator{}
	uc := NewWeeklyBatchUsecase(nil, gen, BatchOptions{Concurrency: 1, RateLimit: 1, RateBurst: 1})
	summary, err := uc.ExecuteForUsers(ctx, metrics.TriggerScheduled, 2024, 9, []string{"u1", "u2"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, summary.Failed)
	assert.Empty(t, gen.calls)
}
