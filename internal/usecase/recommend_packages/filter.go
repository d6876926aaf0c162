package recommend_packages

import (
	"sort"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// filterByGuests keeps offerings that can serve the guest count and
// orders them smallest capacity first, so the tightest fit leads.
// Offerings without a capacity value are always kept and sink to the
// end. Ties keep catalog insertion order (the sort is stable).
func filterByGuests(offerings []*domain.PackageOffering, guests int) []*domain.PackageOffering {
	fitting := make([]*domain.PackageOffering, 0, len(offerings))
	for _, p := range offerings {
		if p.FitsGuests(guests) {
			fitting = append(fitting, p)
		}
	}

	sort.SliceStable(fitting, func(i, j int) bool {
		a, b := fitting[i], fitting[j]
		if a.HasUnboundedCapacity() != b.HasUnboundedCapacity() {
			return !a.HasUnboundedCapacity()
		}
		if a.HasUnboundedCapacity() {
			return false
		}
		return a.Capacity < b.Capacity
	})

	return fitting
}
