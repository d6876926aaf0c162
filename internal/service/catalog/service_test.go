package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	catalogRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/catalog"
	"github.com/broomaam/BAAM-BookingService/internal/service/catalog/models"
)

// --- Mocks ---

type mockOfferingRepo struct {
	createFn      func(ctx context.Context, o *domain.PackageOffering) (*domain.PackageOffering, error)
	getByIDFn     func(ctx context.Context, id int64) (*domain.PackageOffering, error)
	listFn        func(ctx context.Context) ([]*domain.PackageOffering, error)
	updateFn      func(ctx context.Context, id int64, o *domain.PackageOffering) (*domain.PackageOffering, error)
	setImageURLFn func(ctx context.Context, id int64, url string) error
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockOfferingRepo) Create(ctx context.Context, o *domain.PackageOffering) (*domain.PackageOffering, error) {
	return m.createFn(ctx, o)
}

func (m *mockOfferingRepo) GetByID(ctx context.Context, id int64) (*domain.PackageOffering, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockOfferingRepo) List(ctx context.Context) ([]*domain.PackageOffering, error) {
	return m.listFn(ctx)
}

func (m *mockOfferingRepo) Update(ctx context.Context, id int64, o *domain.PackageOffering) (*domain.PackageOffering, error) {
	return m.updateFn(ctx, id, o)
}

func (m *mockOfferingRepo) SetImageURL(ctx context.Context, id int64, url string) error {
	return m.setImageURLFn(ctx, id, url)
}

func (m *mockOfferingRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockMediaStore struct {
	url string
	err error
}

func (m *mockMediaStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	return m.url, m.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validPackageRequest() *models.PackageRequest {
	return &models.PackageRequest{
		Name:              "Club Standard",
		Capacity:          200,
		Price:             4500,
		Power:             2400,
		Inclusions:        []string{"2x tops", "2x subs", "mixer"},
		RecommendedEvents: []string{"club night", "birthday"},
		DurationHours:     6,
	}
}

// --- Tests ---

func TestCreate_Success(t *testing.T) {
	repo := &mockOfferingRepo{
		createFn: func(ctx context.Context, o *domain.PackageOffering) (*domain.PackageOffering, error) {
			o.ID = 7
			return o, nil
		},
	}

	svc := NewService(repo, nil, noopLogger{})
	resp, err := svc.Create(context.Background(), validPackageRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Club Standard", resp.Name)
	assert.Equal(t, 200, resp.Capacity)
}

func TestCreate_Validation(t *testing.T) {
	cases := map[string]func(*models.PackageRequest){
		"empty name":        func(r *models.PackageRequest) { r.Name = "   " },
		"negative capacity": func(r *models.PackageRequest) { r.Capacity = -1 },
		"huge capacity":     func(r *models.PackageRequest) { r.Capacity = domain.MaxCapacity + 1 },
		"negative price":    func(r *models.PackageRequest) { r.Price = -0.01 },
		"negative power":    func(r *models.PackageRequest) { r.Power = -100 },
		"negative duration": func(r *models.PackageRequest) { r.DurationHours = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validPackageRequest()
			mutate(req)

			svc := NewService(&mockOfferingRepo{}, nil, noopLogger{})
			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_ZeroCapacityIsAllowed(t *testing.T) {
	repo := &mockOfferingRepo{
		createFn: func(ctx context.Context, o *domain.PackageOffering) (*domain.PackageOffering, error) {
			o.ID = 1
			return o, nil
		},
	}
	req := validPackageRequest()
	req.Capacity = 0

	svc := NewService(repo, nil, noopLogger{})
	resp, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Zero(t, resp.Capacity)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockOfferingRepo{
		updateFn: func(ctx context.Context, id int64, o *domain.PackageOffering) (*domain.PackageOffering, error) {
			return nil, catalogRepo.ErrPackageNotFound
		},
	}

	svc := NewService(repo, nil, noopLogger{})
	_, err := svc.Update(context.Background(), 999, validPackageRequest())

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockOfferingRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return catalogRepo.ErrPackageNotFound
		},
	}

	svc := NewService(repo, nil, noopLogger{})
	err := svc.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestUploadImage_Success(t *testing.T) {
	var linkedURL string
	repo := &mockOfferingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.PackageOffering, error) {
			return &domain.PackageOffering{ID: id, Name: "Club Standard"}, nil
		},
		setImageURLFn: func(ctx context.Context, id int64, url string) error {
			linkedURL = url
			return nil
		},
	}
	store := &mockMediaStore{url: "https://bucket.s3.eu-central-1.amazonaws.com/packages/x.jpg"}

	svc := NewService(repo, store, noopLogger{})
	resp, err := svc.UploadImage(context.Background(), 7, "x.jpg", "image/jpeg", strings.NewReader("fake-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, store.url, linkedURL)
	assert.NotNil(t, resp.ImageURL)
	assert.Equal(t, store.url, *resp.ImageURL)
}

func TestUploadImage_PackageNotFound(t *testing.T) {
	repo := &mockOfferingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.PackageOffering, error) {
			return nil, catalogRepo.ErrPackageNotFound
		},
	}

	svc := NewService(repo, &mockMediaStore{}, noopLogger{})
	_, err := svc.UploadImage(context.Background(), 999, "x.jpg", "image/jpeg", strings.NewReader("fake"))

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestUploadImage_NoStoreConfigured(t *testing.T) {
	svc := NewService(&mockOfferingRepo{}, nil, noopLogger{})

	_, err := svc.UploadImage(context.Background(), 7, "x.jpg", "image/jpeg", strings.NewReader("fake"))

	assert.ErrorIs(t, err, ErrMediaUnavailable)
}

func TestUploadImage_StoreFailure(t *testing.T) {
	repo := &mockOfferingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.PackageOffering, error) {
			return &domain.PackageOffering{ID: id}, nil
		},
	}
	store := &mockMediaStore{err: errors.New("s3 timeout")}

	svc := NewService(repo, store, noopLogger{})
	_, err := svc.UploadImage(context.Background(), 7, "x.jpg", "image/jpeg", strings.NewReader("fake"))

	assert.ErrorIs(t, err, ErrMediaUnavailable)
}
