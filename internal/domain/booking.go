package domain

import (
	"time"

	"github.com/broomaam/BAAM-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// statusTransitions defines the legal lifecycle edges.
// pending -> accepted | rejected
// accepted -> completed | cancelled
// rejected, completed and cancelled are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted, StatusCancelled},
}

// TerminalStatuses are statuses with no outgoing transitions.
// Booking history is derived by filtering on them.
var TerminalStatuses = []BookingStatus{
	StatusRejected,
	StatusCompleted,
	StatusCancelled,
}

// AllStatuses lists every valid booking status.
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
	StatusRejected,
	StatusCompleted,
	StatusCancelled,
}

// IsValid reports whether s is a known booking status.
func (s BookingStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s BookingStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Booking represents a customer booking request for a rental package
type Booking struct {
	ID        int64
	Reference string // public reference code handed to the customer

	Name  string
	Email string
	Phone string

	EventDate time.Time
	StartTime *types.TimeString // display only, never part of conflict detection
	EventType *string
	Venue     *string
	Guests    int

	// Denormalized package data for history
	PackageID   int64
	PackageName string

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the booking reached a terminal status.
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// BookingsFilter filters booking listings for the admin console
type BookingsFilter struct {
	Statuses []BookingStatus // empty means all statuses
	Search   *string         // case-insensitive substring over name/email/phone
	Upcoming bool            // only accepted bookings with event_date >= today, ascending
}
