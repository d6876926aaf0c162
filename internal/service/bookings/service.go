package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	bookingRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/booking"
	"github.com/broomaam/BAAM-BookingService/internal/integrations/notify"
	"github.com/broomaam/BAAM-BookingService/internal/service/bookings/models"
)

// statusTemplates maps lifecycle targets to notification templates.
var statusTemplates = map[domain.BookingStatus]string{
	domain.StatusAccepted:  notify.TemplateBookingAccepted,
	domain.StatusRejected:  notify.TemplateBookingRejected,
	domain.StatusCompleted: notify.TemplateBookingCompleted,
	domain.StatusCancelled: notify.TemplateBookingCancelled,
}

// Service booking lifecycle manager
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService creates the bookings service.
// notifier may be nil, in which case no notifications are published.
func NewService(bookingRepo BookingRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings filtered by status set, optional search text and
// the upcoming flag. The store is re-queried on every call; there is no
// cached iterator state.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: statuses=%v, search=%v, upcoming=%v", req.Statuses, req.Search, req.Upcoming)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Transition moves a booking along the lifecycle state machine.
// Only edges defined on the current status are allowed; everything else
// fails with ErrInvalidTransition and leaves the stored status untouched.
func (s *Service) Transition(ctx context.Context, id int64, req *models.TransitionRequest) (*models.BookingResponse, error) {
	s.logger.Info("Transition: booking id=%d -> status=%s", id, req.Status)

	target, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%q for booking id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Transition: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Transition: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	if !booking.Status.CanTransitionTo(target) {
		s.logger.Warn("Transition: illegal edge %s -> %s for booking id=%d", booking.Status, target, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	// Guarded by the status we just read, so a concurrent admin action
	// surfaces as a conflict instead of silently overwriting it.
	updatedAt, err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status, target)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Transition: booking id=%d disappeared during update", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			s.logger.Warn("Transition: concurrent status change for booking id=%d", id)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		default:
			s.logger.Error("Transition: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
		}
	}

	booking.Status = target
	booking.UpdatedAt = updatedAt
	s.logger.Info("Transition: booking id=%d is now %s", id, target)

	s.notifyStatusChange(ctx, booking)

	return models.FromDomainBooking(booking), nil
}

// notifyStatusChange publishes a customer notification after a successful
// store write. Failures are logged and swallowed: the persisted status
// must never depend on notification delivery.
func (s *Service) notifyStatusChange(ctx context.Context, booking *domain.Booking) {
	if s.notifier == nil {
		return
	}

	template, ok := statusTemplates[booking.Status]
	if !ok {
		return
	}

	variables := map[string]string{
		"name":      booking.Name,
		"reference": booking.Reference,
		"package":   booking.PackageName,
		"eventDate": booking.EventDate.Format(domain.DateFormat),
		"status":    string(booking.Status),
	}

	if err := s.notifier.Send(ctx, template, booking.Email, variables); err != nil {
		s.logger.Error("notifyStatusChange: failed to notify booking id=%d: %v", booking.ID, err)
	}
}
