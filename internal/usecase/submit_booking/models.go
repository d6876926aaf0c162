package submit_booking

import (
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	"github.com/broomaam/BAAM-BookingService/pkg/types"
)

// Request booking submission data
type Request struct {
	Name  string
	Email string
	Phone string

	EventDate time.Time
	StartTime *types.TimeString
	EventType *string
	Venue     *string
	Guests    int

	PackageID int64

	// ClientKey identifies the submitting client for the rate guard,
	// usually the remote IP.
	ClientKey string
}

// Response created booking data
type Response struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	EventDate string  `json:"eventDate"`
	StartTime *string `json:"startTime,omitempty"`
	EventType *string `json:"eventType,omitempty"`
	Venue     *string `json:"venue,omitempty"`
	Guests    int     `json:"guests"`

	PackageID   int64  `json:"packageId"`
	PackageName string `json:"packageName"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// toResponse converts the stored booking into the use case response.
func toResponse(b *domain.Booking) *Response {
	resp := &Response{
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
	}

	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}

	return resp
}
