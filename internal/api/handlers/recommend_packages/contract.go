package recommend_packages

import (
	"context"

	recommendPackages "github.com/broomaam/BAAM-BookingService/internal/usecase/recommend_packages"
)

type RecommendPackagesUseCase interface {
	Execute(ctx context.Context, req *recommendPackages.Request) (*recommendPackages.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
