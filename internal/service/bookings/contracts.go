package bookings

import (
	"context"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// BookingRepository persistence contract for bookings
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (time.Time, error)
}

// Notifier publishes customer notifications; delivery is out of process.
type Notifier interface {
	Send(ctx context.Context, template, recipient string, variables map[string]string) error
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
