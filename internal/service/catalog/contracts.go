package catalog

import (
	"context"
	"io"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// OfferingRepository persistence contract for package offerings
type OfferingRepository interface {
	Create(ctx context.Context, offering *domain.PackageOffering) (*domain.PackageOffering, error)
	GetByID(ctx context.Context, id int64) (*domain.PackageOffering, error)
	List(ctx context.Context) ([]*domain.PackageOffering, error)
	Update(ctx context.Context, id int64, offering *domain.PackageOffering) (*domain.PackageOffering, error)
	SetImageURL(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
}

// MediaStore contract for uploading package imagery
type MediaStore interface {
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
