package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	"github.com/broomaam/BAAM-BookingService/internal/infra/ratelimit"
	catalogRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/catalog"
	"github.com/broomaam/BAAM-BookingService/internal/integrations/notify"
)

// UseCase handles public booking submissions
type UseCase struct {
	bookingRepo  BookingRepository
	offeringRepo OfferingRepository
	availability AvailabilityChecker
	rateGuard    RateGuard
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
// rateGuard and notifier may be nil, disabling the respective concern.
func NewUseCase(
	bookingRepo BookingRepository,
	offeringRepo OfferingRepository,
	availability AvailabilityChecker,
	rateGuard RateGuard,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		offeringRepo: offeringRepo,
		availability: availability,
		rateGuard:    rateGuard,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute accepts a customer submission and records it as a pending
// booking. Submissions never auto-accept; an admin decision moves the
// booking further along the lifecycle.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: email=%s, date=%s, package=%d",
		req.Email, req.EventDate.Format(domain.DateFormat), req.PackageID)

	// 1. Validate the submission before touching any backend.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Past dates can never be booked.
	today := domain.DayOnly(uc.timeProvider.Now())
	if domain.DayOnly(req.EventDate).Before(today) {
		uc.logger.Warn("SubmitBooking: date %s is in the past", req.EventDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: event date is in the past", ErrInvalidInput)
	}

	// 3. Submission-rate guard. Redis being down must not take the
	// booking form down with it, so store errors degrade to allow.
	if err := uc.checkRateGuard(ctx, req.ClientKey); err != nil {
		return nil, err
	}

	// 4. Reject submissions for blocked dates.
	blocked, err := uc.availability.IsBlocked(ctx, req.EventDate)
	if err != nil {
		uc.logger.Error("SubmitBooking: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("SubmitBooking: date %s is blocked", req.EventDate.Format(domain.DateFormat))
		return nil, ErrDateUnavailable
	}

	// 5. Resolve the package; its name is denormalized onto the booking
	// so later catalog edits never rewrite history.
	offering, err := uc.offeringRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			uc.logger.Warn("SubmitBooking: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		Reference:   uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventDate:   domain.DayOnly(req.EventDate),
		StartTime:   req.StartTime,
		EventType:   req.EventType,
		Venue:       req.Venue,
		Guests:      req.Guests,
		PackageID:   offering.ID,
		PackageName: offering.Name,
		Status:      domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitBooking: booking id=%d reference=%s created", created.ID, created.Reference)

	uc.notifyReceived(ctx, created)

	return toResponse(created), nil
}

// checkRateGuard enforces the submission quota. A guard outage is logged
// and ignored: the guard is advisory, the booking form is not.
func (uc *UseCase) checkRateGuard(ctx context.Context, clientKey string) error {
	if uc.rateGuard == nil || clientKey == "" {
		return nil
	}

	err := uc.rateGuard.Allow(ctx, clientKey)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ratelimit.ErrLimitExceeded):
		uc.logger.Warn("SubmitBooking: rate limit exceeded for client=%s", clientKey)
		return ErrRateLimited
	case errors.Is(err, ratelimit.ErrStore):
		uc.logger.Error("SubmitBooking: rate guard unavailable, allowing submission: %v", err)
		return nil
	default:
		uc.logger.Error("SubmitBooking: rate guard error, allowing submission: %v", err)
		return nil
	}
}

// notifyReceived confirms the submission to the customer. Non-fatal.
func (uc *UseCase) notifyReceived(ctx context.Context, booking *domain.Booking) {
	if uc.notifier == nil {
		return
	}

	variables := map[string]string{
		"name":      booking.Name,
		"reference": booking.Reference,
		"package":   booking.PackageName,
		"eventDate": booking.EventDate.Format(domain.DateFormat),
	}

	if err := uc.notifier.Send(ctx, notify.TemplateBookingReceived, booking.Email, variables); err != nil {
		uc.logger.Error("SubmitBooking: failed to notify booking id=%d: %v", booking.ID, err)
	}
}
