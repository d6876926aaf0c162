package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// --- Mocks ---

type mockLedgerRepo struct {
	blockFn     func(ctx context.Context, date time.Time) error
	unblockFn   func(ctx context.Context, date time.Time) error
	isBlockedFn func(ctx context.Context, date time.Time) (bool, error)
	listRangeFn func(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error)
}

func (m *mockLedgerRepo) Block(ctx context.Context, date time.Time) error {
	return m.blockFn(ctx, date)
}

func (m *mockLedgerRepo) Unblock(ctx context.Context, date time.Time) error {
	return m.unblockFn(ctx, date)
}

func (m *mockLedgerRepo) IsBlocked(ctx context.Context, date time.Time) (bool, error) {
	return m.isBlockedFn(ctx, date)
}

func (m *mockLedgerRepo) ListRange(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error) {
	return m.listRangeFn(ctx, dateRange)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func TestBlock_TruncatesToDay(t *testing.T) {
	var captured time.Time
	repo := &mockLedgerRepo{
		blockFn: func(ctx context.Context, date time.Time) error {
			captured = date
			return nil
		},
	}

	svc := NewService(repo, noopLogger{})
	err := svc.Block(context.Background(), time.Date(2026, 10, 3, 18, 45, 12, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), captured)
}

func TestBlock_RepositoryError(t *testing.T) {
	repo := &mockLedgerRepo{
		blockFn: func(ctx context.Context, date time.Time) error {
			return errors.New("db connection failed")
		},
	}

	svc := NewService(repo, noopLogger{})
	err := svc.Block(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUnblock_TruncatesToDay(t *testing.T) {
	var captured time.Time
	repo := &mockLedgerRepo{
		unblockFn: func(ctx context.Context, date time.Time) error {
			captured = date
			return nil
		},
	}

	svc := NewService(repo, noopLogger{})
	err := svc.Unblock(context.Background(), time.Date(2026, 10, 3, 23, 59, 59, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), captured)
}

func TestIsBlocked_ReflectsStore(t *testing.T) {
	repo := &mockLedgerRepo{
		isBlockedFn: func(ctx context.Context, date time.Time) (bool, error) {
			return true, nil
		},
	}

	svc := NewService(repo, noopLogger{})
	blocked, err := svc.IsBlocked(context.Background(), time.Now())

	assert.NoError(t, err)
	assert.True(t, blocked)
}

func TestListBlocked_InvalidRange(t *testing.T) {
	svc := NewService(&mockLedgerRepo{}, noopLogger{})

	_, err := svc.ListBlocked(context.Background(), domain.DateRange{
		From: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestListBlocked_Success(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
	}
	repo := &mockLedgerRepo{
		listRangeFn: func(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error) {
			return dates, nil
		},
	}

	svc := NewService(repo, noopLogger{})
	got, err := svc.ListBlocked(context.Background(), domain.DateRange{
		From: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, dates, got)
}

func TestListBlocked_SingleDayRange(t *testing.T) {
	day := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	repo := &mockLedgerRepo{
		listRangeFn: func(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error) {
			assert.Equal(t, dateRange.From, dateRange.To)
			return []time.Time{day}, nil
		},
	}

	svc := NewService(repo, noopLogger{})
	got, err := svc.ListBlocked(context.Background(), domain.DateRange{From: day, To: day})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
