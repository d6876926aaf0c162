package models

import (
	"errors"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for a status string outside the known set
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// TransitionRequest asks to move a booking to a new lifecycle status
type TransitionRequest struct {
	Status string `json:"status"`
}

// ListBookingsRequest filters the admin booking listing
type ListBookingsRequest struct {
	Statuses []string `json:"statuses,omitempty"` // empty means all
	Search   *string  `json:"search,omitempty"`   // substring over name/email/phone
	Upcoming bool     `json:"upcoming,omitempty"` // accepted bookings from today on
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Search:   r.Search,
		Upcoming: r.Upcoming,
	}

	for _, s := range r.Statuses {
		status, err := ToDomainBookingStatus(s)
		if err != nil {
			return filter, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	return filter, nil
}

// Response models

// BookingResponse booking data returned to callers
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	EventDate string  `json:"eventDate"`           // "2025-09-15"
	StartTime *string `json:"startTime,omitempty"` // "18:00"
	EventType *string `json:"eventType,omitempty"`
	Venue     *string `json:"venue,omitempty"`
	Guests    int     `json:"guests"`

	PackageID   int64  `json:"packageId"`
	PackageName string `json:"packageName"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts the domain model into a DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		EventDate:   b.EventDate.Format(domain.DateFormat),
		EventType:   b.EventType,
		Venue:       b.Venue,
		Guests:      b.Guests,
		PackageID:   b.PackageID,
		PackageName: b.PackageName,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}

	return resp
}

// FromDomainBookingList converts a list of domain models into DTOs.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp.Bookings = append(resp.Bookings, *r)
		}
	}

	return resp
}

// ToDomainBookingStatus converts a string into a validated status.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
