package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// Service availability ledger: which calendar dates are blocked.
// Blocking is whole-day; booking start times never participate here.
type Service struct {
	ledgerRepo LedgerRepository
	logger     Logger
}

// NewService creates the availability service.
func NewService(ledgerRepo LedgerRepository, logger Logger) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Block marks a date as unavailable. Idempotent.
func (s *Service) Block(ctx context.Context, date time.Time) error {
	day := domain.DayOnly(date)
	s.logger.Info("Block: date=%s", day.Format(domain.DateFormat))

	if err := s.ledgerRepo.Block(ctx, day); err != nil {
		s.logger.Error("Block: repository error for date=%s: %v", day.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Unblock clears a date. Idempotent.
func (s *Service) Unblock(ctx context.Context, date time.Time) error {
	day := domain.DayOnly(date)
	s.logger.Info("Unblock: date=%s", day.Format(domain.DateFormat))

	if err := s.ledgerRepo.Unblock(ctx, day); err != nil {
		s.logger.Error("Unblock: repository error for date=%s: %v", day.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	return nil
}

// IsBlocked reports whether a date is bookable. Reflects the store at
// call time; no caching.
func (s *Service) IsBlocked(ctx context.Context, date time.Time) (bool, error) {
	blocked, err := s.ledgerRepo.IsBlocked(ctx, domain.DayOnly(date))
	if err != nil {
		s.logger.Error("IsBlocked: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: IsBlocked - repository error: %v", ErrInternal, err)
	}

	return blocked, nil
}

// ListBlocked returns the blocked dates in the inclusive range, used to
// render the customer calendar.
func (s *Service) ListBlocked(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error) {
	if !dateRange.IsValid() {
		s.logger.Warn("ListBlocked: invalid range %v..%v", dateRange.From, dateRange.To)
		return nil, ErrInvalidRange
	}

	dates, err := s.ledgerRepo.ListRange(ctx, dateRange)
	if err != nil {
		s.logger.Error("ListBlocked: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocked - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlocked: %d blocked dates in %s..%s", len(dates),
		dateRange.From.Format(domain.DateFormat), dateRange.To.Format(domain.DateFormat))
	return dates, nil
}
