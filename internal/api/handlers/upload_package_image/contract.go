package upload_package_image

import (
	"context"
	"io"

	"github.com/broomaam/BAAM-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	UploadImage(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
