package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/colegios-api/internal/dto"
	"github.com/noah-isme/colegios-api/internal/models"
)

type schoolRepository interface {
	List(ctx context.Context) ([]models.School, error)
	FindByID(ctx context.Context, id int64) (*models.School, error)
	Create(ctx context.Context, school *models.School) error
	Update(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, id int64) error
}

// SchoolService handles school workflows.
type SchoolService struct {
	repo      schoolRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewSchoolService creates a new school service.
func NewSchoolService(repo schoolRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *SchoolService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchoolService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns every school.
func (s *SchoolService) List(ctx context.Context) ([]models.School, error) {
	items, err := cachedList(ctx, s.cache, ResourceSchools, s.repo.List)
	if err != nil {
		return nil, storageError(s.logger, "list schools", err)
	}
	return items, nil
}

// Get returns a school by id.
func (s *SchoolService) Get(ctx context.Context, id int64) (*models.School, error) {
	school, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Colegio", false)
		}
		return nil, storageError(s.logger, "get school", err)
	}
	return school, nil
}

// Create validates and stores a new school.
func (s *SchoolService) Create(ctx context.Context, req dto.SchoolRequest) (*models.School, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	school := &models.School{Name: req.Name, Code: req.Code, MunicipalityID: *req.MunicipalityID}
	if err := s.repo.Create(ctx, school); err != nil {
		return nil, storageError(s.logger, "create school", err)
	}
	invalidateList(ctx, s.cache, ResourceSchools)
	return school, nil
}

// Update replaces every field of an existing school.
func (s *SchoolService) Update(ctx context.Context, id int64, req dto.SchoolRequest) (*models.School, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	school := &models.School{ID: id, Name: req.Name, Code: req.Code, MunicipalityID: *req.MunicipalityID}
	if err := s.repo.Update(ctx, school); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Colegio", false)
		}
		return nil, storageError(s.logger, "update school", err)
	}
	invalidateList(ctx, s.cache, ResourceSchools)
	return school, nil
}

// Delete removes a school.
func (s *SchoolService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Colegio", false)
		}
		return storageError(s.logger, "delete school", err)
	}
	invalidateList(ctx, s.cache, ResourceSchools)
	return nil
}
