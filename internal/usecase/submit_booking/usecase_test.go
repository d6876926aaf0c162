package submit_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	"github.com/broomaam/BAAM-BookingService/internal/infra/ratelimit"
	catalogRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/catalog"
	"github.com/broomaam/BAAM-BookingService/pkg/ptr"
)

// --- Mocks ---

type mockBookingRepo struct {
	createFn func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, b)
}

type mockOfferingRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.PackageOffering, error)
}

func (m *mockOfferingRepo) GetByID(ctx context.Context, id int64) (*domain.PackageOffering, error) {
	return m.getByIDFn(ctx, id)
}

type mockAvailability struct {
	blocked bool
	err     error
}

func (m *mockAvailability) IsBlocked(ctx context.Context, date time.Time) (bool, error) {
	return m.blocked, m.err
}

type mockRateGuard struct {
	err   error
	calls int
}

func (m *mockRateGuard) Allow(ctx context.Context, clientKey string) error {
	m.calls++
	return m.err
}

type mockNotifier struct {
	sent []string
	err  error
}

func (m *mockNotifier) Send(ctx context.Context, template, recipient string, variables map[string]string) error {
	m.sent = append(m.sent, template)
	return m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// --- Helpers ---

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		Name:      "Jamie Smith",
		Email:     "jamie@example.com",
		Phone:     "+27 82 000 0000",
		EventDate: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Guests:    120,
		PackageID: 3,
		ClientKey: "203.0.113.7",
	}
}

func workingOfferingRepo() *mockOfferingRepo {
	return &mockOfferingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.PackageOffering, error) {
			return &domain.PackageOffering{ID: id, Name: "Full Band Setup", Capacity: 200}, nil
		},
	}
}

func workingBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			b.ID = 101
			b.CreatedAt = testNow
			return b, nil
		},
	}
}

func newTestUseCase(bookingRepo *mockBookingRepo, offeringRepo *mockOfferingRepo, avail *mockAvailability, guard RateGuard, notifier Notifier) *UseCase {
	uc := NewUseCase(bookingRepo, offeringRepo, avail, guard, notifier, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

// --- Tests ---

func TestExecute_Success(t *testing.T) {
	var created *domain.Booking
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			b.ID = 101
			created = b
			return b, nil
		},
	}
	notifier := &mockNotifier{}

	uc := newTestUseCase(bookingRepo, workingOfferingRepo(), &mockAvailability{}, &mockRateGuard{}, notifier)
	resp, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, "Full Band Setup", resp.PackageName)

	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "Full Band Setup", created.PackageName)
	assert.Equal(t, []string{"booking.received"}, notifier.sent)
}

func TestExecute_AlwaysStartsPending(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			assert.Equal(t, domain.StatusPending, b.Status)
			b.ID = 1
			return b, nil
		},
	}

	uc := newTestUseCase(bookingRepo, workingOfferingRepo(), &mockAvailability{}, nil, nil)
	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_MissingRequiredFields(t *testing.T) {
	cases := map[string]func(*Request){
		"no name":   func(r *Request) { r.Name = "  " },
		"no email":  func(r *Request) { r.Email = "" },
		"bad email": func(r *Request) { r.Email = "not-an-email" },
		"no phone":  func(r *Request) { r.Phone = "" },
		"no date":   func(r *Request) { r.EventDate = time.Time{} },
		"no pkg":    func(r *Request) { r.PackageID = 0 },
		"long event type": func(r *Request) {
			r.EventType = ptr.Ptr(strings.Repeat("x", domain.MaxEventTypeLength+1))
		},
		"long venue": func(r *Request) {
			r.Venue = ptr.Ptr(strings.Repeat("x", domain.MaxVenueLength+1))
		},
		"negative guests": func(r *Request) { r.Guests = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)

			uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{}, nil, nil)
			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	req := validRequest()
	req.EventDate = testNow.AddDate(0, 0, -1)

	uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{}, nil, nil)
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SameDayIsAllowed(t *testing.T) {
	req := validRequest()
	req.EventDate = testNow

	uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{}, nil, nil)
	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_BlockedDate(t *testing.T) {
	uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{blocked: true}, nil, nil)
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateUnavailable)
}

func TestExecute_PackageNotFound(t *testing.T) {
	offeringRepo := &mockOfferingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.PackageOffering, error) {
			return nil, catalogRepo.ErrPackageNotFound
		},
	}

	uc := newTestUseCase(workingBookingRepo(), offeringRepo, &mockAvailability{}, nil, nil)
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_RateLimited(t *testing.T) {
	guard := &mockRateGuard{err: ratelimit.ErrLimitExceeded}

	uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{}, guard, nil)
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 1, guard.calls)
}

func TestExecute_RateGuardOutageFailsOpen(t *testing.T) {
	guard := &mockRateGuard{err: errors.Join(ratelimit.ErrStore, errors.New("dial tcp: connection refused"))}

	uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{}, guard, nil)
	resp, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_EmptyClientKeySkipsGuard(t *testing.T) {
	guard := &mockRateGuard{err: ratelimit.ErrLimitExceeded}
	req := validRequest()
	req.ClientKey = ""

	uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{}, guard, nil)
	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.Zero(t, guard.calls)
}

func TestExecute_NotifierFailureIsNonFatal(t *testing.T) {
	notifier := &mockNotifier{err: errors.New("broker unreachable")}

	uc := newTestUseCase(workingBookingRepo(), workingOfferingRepo(), &mockAvailability{}, nil, notifier)
	resp, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}
