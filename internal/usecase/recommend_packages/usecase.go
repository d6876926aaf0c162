package recommend_packages

import (
	"context"
	"fmt"
)

// UseCase recommends packages for a guest count
type UseCase struct {
	offeringRepo OfferingRepository
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(offeringRepo OfferingRepository, logger Logger) *UseCase {
	return &UseCase{
		offeringRepo: offeringRepo,
		logger:       logger,
	}
}

// Execute returns the packages able to serve the guest count, tightest
// capacity first. A non-positive guest count yields an empty result
// rather than an error: the caller simply has nothing to recommend yet.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Guests <= 0 {
		uc.logger.Info("RecommendPackages: guests=%d, nothing to recommend", req.Guests)
		return toResponse(nil), nil
	}

	offerings, err := uc.offeringRepo.ListByInsertionOrder(ctx)
	if err != nil {
		uc.logger.Error("RecommendPackages: failed to list packages: %v", err)
		return nil, fmt.Errorf("%w: failed to list packages: %v", ErrInternal, err)
	}

	fitting := filterByGuests(offerings, req.Guests)

	uc.logger.Info("RecommendPackages: guests=%d, %d of %d packages fit", req.Guests, len(fitting), len(offerings))
	return toResponse(fitting), nil
}
