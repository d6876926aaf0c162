package domain

import "time"

// PackageOffering represents a rentable sound-system package
type PackageOffering struct {
	ID       int64
	Name     string
	Capacity int // max guest count; 0 means not set, treated as unbounded
	Price    float64
	Power    int // total power rating in watts

	Inclusions        []string
	AddOns            []string
	RecommendedEvents []string

	DurationHours int
	ImageURL      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FitsGuests reports whether the offering can serve the given guest count.
// An offering without a capacity value is never excluded (fail open).
func (p *PackageOffering) FitsGuests(guests int) bool {
	if p.Capacity <= 0 {
		return true
	}
	return guests <= p.Capacity
}

// HasUnboundedCapacity reports whether the capacity is unknown/not set.
func (p *PackageOffering) HasUnboundedCapacity() bool {
	return p.Capacity <= 0
}
