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

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	FindByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentService handles department workflows.
type DepartmentService struct {
	repo      departmentRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewDepartmentService creates a new department service. validate should come from NewValidator.
func NewDepartmentService(repo departmentRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *DepartmentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns every department.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	items, err := cachedList(ctx, s.cache, ResourceDepartments, s.repo.List)
	if err != nil {
		return nil, storageError(s.logger, "list departments", err)
	}
	return items, nil
}

// Get returns a department by id.
func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Departamento", false)
		}
		return nil, storageError(s.logger, "get department", err)
	}
	return department, nil
}

// Create validates and stores a new department.
func (s *DepartmentService) Create(ctx context.Context, req dto.DepartmentRequest) (*models.Department, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	department := &models.Department{Name: req.Name, Code: req.Code}
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, storageError(s.logger, "create department", err)
	}
	invalidateList(ctx, s.cache, ResourceDepartments)
	return department, nil
}

// Update replaces every field of an existing department.
func (s *DepartmentService) Update(ctx context.Context, id int64, req dto.DepartmentRequest) (*models.Department, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	department := &models.Department{ID: id, Name: req.Name, Code: req.Code}
	if err := s.repo.Update(ctx, department); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Departamento", false)
		}
		return nil, storageError(s.logger, "update department", err)
	}
	invalidateList(ctx, s.cache, ResourceDepartments)
	return department, nil
}

// Delete removes a department.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Departamento", false)
		}
		return storageError(s.logger, "delete department", err)
	}
	invalidateList(ctx, s.cache, ResourceDepartments)
	return nil
}
