package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type healthRepository interface {
	Now(ctx context.Context) (time.Time, error)
}

// HealthService checks connectivity with the database.
type HealthService struct {
	repo   healthRepository
	logger *zap.Logger
}

// NewHealthService constructs a HealthService.
func NewHealthService(repo healthRepository, logger *zap.Logger) *HealthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{repo: repo, logger: logger}
}

// Ping performs a database round-trip and returns the server time.
func (s *HealthService) Ping(ctx context.Context) (time.Time, error) {
	now, err := s.repo.Now(ctx)
	if err != nil {
		return time.Time{}, storageError(s.logger, "ping database", err)
	}
	return now, nil
}
