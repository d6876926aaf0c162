package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	submitBooking "github.com/broomaam/BAAM-BookingService/internal/usecase/submit_booking"
)

// --- Mocks ---

type mockUseCase struct {
	executeFn func(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	return m.executeFn(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"name": "Jamie Smith",
	"email": "jamie@example.com",
	"phone": "+27 82 000 0000",
	"eventDate": "2026-10-03",
	"startTime": "18:00",
	"guests": 120,
	"packageId": 3
}`

// --- Tests ---

func TestHandle_Created(t *testing.T) {
	var captured *submitBooking.Request
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
			captured = req
			return &submitBooking.Response{ID: 101, Reference: "ref-1", Status: "pending"}, nil
		},
	}

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	req.RemoteAddr = "203.0.113.7:54321"
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference":"ref-1"`)
	assert.Equal(t, "203.0.113.7", captured.ClientKey)
	assert.Equal(t, "18:00", captured.StartTime.String())
}

func TestHandle_ForwardedForWins(t *testing.T) {
	var captured *submitBooking.Request
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
			captured = req
			return &submitBooking.Response{ID: 1, Status: "pending"}, nil
		},
	}

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	req.RemoteAddr = "10.0.0.1:80"
	req.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "198.51.100.9", captured.ClientKey)
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDate(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})
	body := strings.Replace(validBody, "2026-10-03", "03/10/2026", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"validation":   {submitBooking.ErrInvalidInput, http.StatusBadRequest},
		"blocked date": {submitBooking.ErrDateUnavailable, http.StatusConflict},
		"no package":   {submitBooking.ErrPackageNotFound, http.StatusNotFound},
		"rate limited": {submitBooking.ErrRateLimited, http.StatusTooManyRequests},
		"internal":     {submitBooking.ErrInternal, http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{
				executeFn: func(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
					return nil, tc.err
				},
			}

			h := NewHandler(uc, noopLogger{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
