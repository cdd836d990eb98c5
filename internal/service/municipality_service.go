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

type municipalityRepository interface {
	List(ctx context.Context) ([]models.Municipality, error)
	FindByID(ctx context.Context, id int64) (*models.Municipality, error)
	Create(ctx context.Context, municipality *models.Municipality) error
	Update(ctx context.Context, municipality *models.Municipality) error
	Delete(ctx context.Context, id int64) error
}

// MunicipalityService handles municipality workflows. Department references are
// enforced by the database foreign key, not checked here.
type MunicipalityService struct {
	repo      municipalityRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewMunicipalityService creates a new municipality service.
func NewMunicipalityService(repo municipalityRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *MunicipalityService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MunicipalityService{repo: repo, validator: validate, cache: cache, logger: logger}
}

func (s *MunicipalityService) List(ctx context.Context) ([]models.Municipality, error) {
	items, err := cachedList(ctx, s.cache, ResourceMunicipalities, s.repo.List)
	if err != nil {
		return nil, storageError(s.logger, "list municipalities", err)
	}
	return items, nil
}

func (s *MunicipalityService) Get(ctx context.Context, id int64) (*models.Municipality, error) {
	municipality, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Municipio", false)
		}
		return nil, storageError(s.logger, "get municipality", err)
	}
	return municipality, nil
}

func (s *MunicipalityService) Create(ctx context.Context, req dto.MunicipalityRequest) (*models.Municipality, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	municipality := &models.Municipality{Name: req.Name, Code: req.Code, DepartmentID: *req.DepartmentID}
	if err := s.repo.Create(ctx, municipality); err != nil {
		return nil, storageError(s.logger, "create municipality", err)
	}
	invalidateList(ctx, s.cache, ResourceMunicipalities)
	return municipality, nil
}

func (s *MunicipalityService) Update(ctx context.Context, id int64, req dto.MunicipalityRequest) (*models.Municipality, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	municipality := &models.Municipality{ID: id, Name: req.Name, Code: req.Code, DepartmentID: *req.DepartmentID}
	if err := s.repo.Update(ctx, municipality); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Municipio", false)
		}
		return nil, storageError(s.logger, "update municipality", err)
	}
	invalidateList(ctx, s.cache, ResourceMunicipalities)
	return municipality, nil
}

func (s *MunicipalityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Municipio", false)
		}
		return storageError(s.logger, "delete municipality", err)
	}
	invalidateList(ctx, s.cache, ResourceMunicipalities)
	return nil
}
