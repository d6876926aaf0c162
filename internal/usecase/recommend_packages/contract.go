package recommend_packages

import (
	"context"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// OfferingRepository reads the catalog in stable insertion order
type OfferingRepository interface {
	ListByInsertionOrder(ctx context.Context) ([]*domain.PackageOffering, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
