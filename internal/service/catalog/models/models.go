package models

import (
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// Request models

// PackageRequest carries the writable fields of a package offering
type PackageRequest struct {
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"` // 0 means unbounded
	Price    float64 `json:"price"`
	Power    int     `json:"power"`

	Inclusions        []string `json:"inclusions,omitempty"`
	AddOns            []string `json:"addOns,omitempty"`
	RecommendedEvents []string `json:"recommendedEvents,omitempty"`

	DurationHours int `json:"durationHours"`
}

// ToDomainOffering converts the request into a domain model.
func (r *PackageRequest) ToDomainOffering() *domain.PackageOffering {
	return &domain.PackageOffering{
		Name:              r.Name,
		Capacity:          r.Capacity,
		Price:             r.Price,
		Power:             r.Power,
		Inclusions:        r.Inclusions,
		AddOns:            r.AddOns,
		RecommendedEvents: r.RecommendedEvents,
		DurationHours:     r.DurationHours,
	}
}

// Response models

// PackageResponse package offering data returned to callers
type PackageResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
	Power    int     `json:"power"`

	Inclusions        []string `json:"inclusions"`
	AddOns            []string `json:"addOns"`
	RecommendedEvents []string `json:"recommendedEvents"`

	DurationHours int     `json:"durationHours"`
	ImageURL      *string `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PackageListResponse list of package offerings
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// Conversion helpers

// FromDomainOffering converts the domain model into a DTO.
func FromDomainOffering(p *domain.PackageOffering) *PackageResponse {
	if p == nil {
		return nil
	}

	return &PackageResponse{
		ID:                p.ID,
		Name:              p.Name,
		Capacity:          p.Capacity,
		Price:             p.Price,
		Power:             p.Power,
		Inclusions:        emptyIfNil(p.Inclusions),
		AddOns:            emptyIfNil(p.AddOns),
		RecommendedEvents: emptyIfNil(p.RecommendedEvents),
		DurationHours:     p.DurationHours,
		ImageURL:          p.ImageURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// FromDomainOfferingList converts a list of domain models into DTOs.
func FromDomainOfferingList(offerings []*domain.PackageOffering) *PackageListResponse {
	resp := &PackageListResponse{
		Packages: make([]PackageResponse, 0, len(offerings)),
	}

	for _, p := range offerings {
		if r := FromDomainOffering(p); r != nil {
			resp.Packages = append(resp.Packages, *r)
		}
	}

	return resp
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
