package domain

import "time"

// Submission-rate guard defaults: a client may submit at most
// MaxSubmissionsPerWindow bookings within the trailing SubmissionWindow.
const (
	DefaultMaxSubmissionsPerWindow = 5
	DefaultSubmissionWindow        = 4 * time.Hour
)

// Business validation constants
const (
	MaxNameLength      = 120
	MaxEmailLength     = 254
	MaxPhoneLength     = 32
	MaxEventTypeLength = 120
	MaxVenueLength     = 300
	MaxGuests          = 100000
	MaxCapacity        = 1000000
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02" // YYYY-MM-DD
