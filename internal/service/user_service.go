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

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles user workflows.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo userRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	items, err := cachedList(ctx, s.cache, ResourceUsers, s.repo.List)
	if err != nil {
		return nil, storageError(s.logger, "list users", err)
	}
	return items, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Usuario", false)
		}
		return nil, storageError(s.logger, "get user", err)
	}
	return user, nil
}

// Create validates and stores a new user.
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*models.User, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user := &models.User{Name: req.Name, Role: models.UserRole(req.Role)}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storageError(s.logger, "create user", err)
	}
	invalidateList(ctx, s.cache, ResourceUsers)
	return user, nil
}

// Update replaces name and role of an existing user.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UserRequest) (*models.User, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user := &models.User{ID: id, Name: req.Name, Role: models.UserRole(req.Role)}
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("Usuario", false)
		}
		return nil, storageError(s.logger, "update user", err)
	}
	invalidateList(ctx, s.cache, ResourceUsers)
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("Usuario", false)
		}
		return storageError(s.logger, "delete user", err)
	}
	invalidateList(ctx, s.cache, ResourceUsers)
	return nil
}

// Roles returns the role catalog with display labels.
func (s *UserService) Roles() []models.RoleOption {
	roles := models.Roles()
	options := make([]models.RoleOption, 0, len(roles))
	for _, role := range roles {
		options = append(options, models.RoleOption{Value: role, Label: role.Label()})
	}
	return options
}
