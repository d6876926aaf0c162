package availability

import (
	"context"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// LedgerRepository persistence contract for the unavailable-dates ledger
type LedgerRepository interface {
	Block(ctx context.Context, date time.Time) error
	Unblock(ctx context.Context, date time.Time) error
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
	ListRange(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
