package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	catalogRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/catalog"
	"github.com/broomaam/BAAM-BookingService/internal/service/catalog/models"
)

// Service package catalog manager
type Service struct {
	offeringRepo OfferingRepository
	mediaStore   MediaStore
	logger       Logger
}

// NewService creates the catalog service.
// mediaStore may be nil, in which case image uploads are rejected.
func NewService(offeringRepo OfferingRepository, mediaStore MediaStore, logger Logger) *Service {
	return &Service{
		offeringRepo: offeringRepo,
		mediaStore:   mediaStore,
		logger:       logger,
	}
}

// Create adds a new package offering to the catalog.
func (s *Service) Create(ctx context.Context, req *models.PackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("Create: package name=%q", req.Name)

	if err := validatePackage(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.offeringRepo.Create(ctx, req.ToDomainOffering())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: package id=%d created", created.ID)
	return models.FromDomainOffering(created), nil
}

// GetByID fetches one package offering.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PackageResponse, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			s.logger.Warn("GetByID: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetByID: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOffering(offering), nil
}

// List fetches all package offerings, newest first.
func (s *Service) List(ctx context.Context) (*models.PackageListResponse, error) {
	offerings, err := s.offeringRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d packages", len(offerings))
	return models.FromDomainOfferingList(offerings), nil
}

// Update replaces the writable fields of an offering.
func (s *Service) Update(ctx context.Context, id int64, req *models.PackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("Update: package id=%d", id)

	if err := validatePackage(req); err != nil {
		s.logger.Warn("Update: validation failed for package id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.offeringRepo.Update(ctx, id, req.ToDomainOffering())
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			s.logger.Warn("Update: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Update: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOffering(updated), nil
}

// Delete removes an offering from the catalog. Existing bookings keep
// the denormalized package name they were created with.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: package id=%d", id)

	if err := s.offeringRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			s.logger.Warn("Delete: package id=%d not found", id)
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for package id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// UploadImage stores a package image and links its public URL to the
// offering. The offering must exist before the upload is attempted.
func (s *Service) UploadImage(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*models.PackageResponse, error) {
	s.logger.Info("UploadImage: package id=%d, file=%q", id, filename)

	if s.mediaStore == nil {
		s.logger.Warn("UploadImage: media store not configured")
		return nil, ErrMediaUnavailable
	}

	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			s.logger.Warn("UploadImage: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("UploadImage: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - repository error: %v", ErrInternal, err)
	}

	url, err := s.mediaStore.Upload(ctx, filename, contentType, body)
	if err != nil {
		s.logger.Error("UploadImage: upload failed for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - upload failed: %v", ErrMediaUnavailable, err)
	}

	if err := s.offeringRepo.SetImageURL(ctx, id, url); err != nil {
		s.logger.Error("UploadImage: failed to link image for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - repository error: %v", ErrInternal, err)
	}

	offering.ImageURL = &url
	return models.FromDomainOffering(offering), nil
}

func validatePackage(req *models.PackageRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	if req.Capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity is too large", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.Power < 0 {
		return fmt.Errorf("%w: power must not be negative", ErrInvalidInput)
	}
	if req.DurationHours < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	return nil
}
