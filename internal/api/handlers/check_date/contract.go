package check_date

import (
	"context"
	"time"
)

type AvailabilityService interface {
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
