package list_blocked_dates

import (
	"context"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

type AvailabilityService interface {
	ListBlocked(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
