package recommend_packages

import (
	"github.com/broomaam/BAAM-BookingService/internal/domain"
	catalogModels "github.com/broomaam/BAAM-BookingService/internal/service/catalog/models"
)

// Request recommendation query
type Request struct {
	Guests int
}

// Response recommended packages, best fit first
type Response struct {
	Packages []catalogModels.PackageResponse `json:"packages"`
}

// toResponse converts the filtered offerings into the response DTO.
func toResponse(offerings []*domain.PackageOffering) *Response {
	resp := &Response{
		Packages: make([]catalogModels.PackageResponse, 0, len(offerings)),
	}

	for _, p := range offerings {
		if r := catalogModels.FromDomainOffering(p); r != nil {
			resp.Packages = append(resp.Packages, *r)
		}
	}

	return resp
}
