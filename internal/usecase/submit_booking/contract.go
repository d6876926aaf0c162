package submit_booking

import (
	"context"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// BookingRepository persistence contract for booking submissions
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// OfferingRepository reads the requested package offering
type OfferingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PackageOffering, error)
}

// AvailabilityChecker answers whether a date is blocked
type AvailabilityChecker interface {
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
}

// RateGuard limits repeat submissions per client
type RateGuard interface {
	Allow(ctx context.Context, clientKey string) error
}

// Notifier publishes customer notifications
type Notifier interface {
	Send(ctx context.Context, template string, recipient string, variables map[string]string) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
