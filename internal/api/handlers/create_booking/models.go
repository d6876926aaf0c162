package create_booking

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	submitBooking "github.com/broomaam/BAAM-BookingService/internal/usecase/submit_booking"
	"github.com/broomaam/BAAM-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	EventDate string  `json:"eventDate"`           // "2025-10-15"
	StartTime *string `json:"startTime,omitempty"` // "18:00"
	EventType *string `json:"eventType,omitempty"`
	Venue     *string `json:"venue,omitempty"`
	Guests    int     `json:"guests"`

	PackageID int64 `json:"packageId"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest(clientKey string) (*submitBooking.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	req := &submitBooking.Request{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		EventDate: eventDate,
		EventType: r.EventType,
		Venue:     r.Venue,
		Guests:    r.Guests,
		PackageID: r.PackageID,
		ClientKey: clientKey,
	}

	if r.StartTime != nil && *r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// clientKeyFromRequest extracts the caller identity used by the rate
// guard. Trusts the first X-Forwarded-For hop when present, since the
// service normally runs behind a reverse proxy.
func clientKeyFromRequest(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
