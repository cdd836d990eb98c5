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

type siteRepository interface {
	List(ctx context.Context) ([]models.Site, error)
	FindByID(ctx context.Context, id int64) (*models.Site, error)
	Create(ctx context.Context, site *models.Site) error
	Update(ctx context.Context, site *models.Site) error
	Delete(ctx context.Context, id int64) error
}

// SiteService handles school site workflows.
type SiteService struct {
	repo      siteRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewSiteService creates a new site service.
func NewSiteService(repo siteRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *SiteService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteService{repo: repo, validator: validate, cache: cache, logger: logger}
}

func (s *SiteService) List(ctx context.Context) ([]models.Site, error) {
	items, err := cachedList(ctx, s.cache, ResourceSites, s.repo.List)
	if err != nil {
		return nil, storageError(s.logger, "list sites", err)
	}
	return items, nil
}

func (s *SiteService) Get(ctx context.Context, id int64) (*models.Site, error) {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Sede", true)
		}
		return nil, storageError(s.logger, "get site", err)
	}
	return site, nil
}

func (s *SiteService) Create(ctx context.Context, req dto.SiteRequest) (*models.Site, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	site := &models.Site{Name: req.Name, Code: req.Code, SchoolID: *req.SchoolID}
	if err := s.repo.Create(ctx, site); err != nil {
		return nil, storageError(s.logger, "create site", err)
	}
	invalidateList(ctx, s.cache, ResourceSites)
	return site, nil
}

func (s *SiteService) Update(ctx context.Context, id int64, req dto.SiteRequest) (*models.Site, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	site := &models.Site{ID: id, Name: req.Name, Code: req.Code, SchoolID: *req.SchoolID}
	if err := s.repo.Update(ctx, site); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Sede", true)
		}
		return nil, storageError(s.logger, "update site", err)
	}
	invalidateList(ctx, s.cache, ResourceSites)
	return site, nil
}

func (s *SiteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Sede", true)
		}
		return storageError(s.logger, "delete site", err)
	}
	invalidateList(ctx, s.cache, ResourceSites)
	return nil
}
