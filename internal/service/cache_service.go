package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

const listCachePrefix = "colegios:list:"

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// CacheService caches resource lists and drops them after every write.
type CacheService struct {
	repo       CacheRepository
	metrics    *MetricsService
	defaultTTL time.Duration
	logger     *zap.Logger
	enabled    bool

	mu    sync.Mutex
	stale map[string]bool
}

// NewCacheService constructs a cache service.
func NewCacheService(repo CacheRepository, metrics *MetricsService, defaultTTL time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if defaultTTL <= 0 {
		defaultTTL = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, defaultTTL: defaultTTL, logger: logger, enabled: enabled, stale: make(map[string]bool)}
}

// ListKey returns the key prefix for cached lists of resource.
func ListKey(resource string) string {
	return listCachePrefix + resource
}

// VersionedListKey returns the key holding the list of resource at version.
func VersionedListKey(resource string, version int64) string {
	return ListKey(resource) + ":" + strconv.FormatInt(version, 10)
}

func listVersionKey(resource string) string {
	return ListKey(resource) + ":v"
}

// ListVersion returns the current list version of resource. ok is false when the
// cache must be bypassed: caching is disabled, Redis failed, or an earlier version
// bump could not be recorded.
func (s *CacheService) ListVersion(ctx context.Context, resource string) (version int64, ok bool) {
	if !s.Enabled() {
		return 0, false
	}
	if s.isStale(resource) {
		if err := s.BumpListVersion(ctx, resource); err != nil {
			return 0, false
		}
	}
	if err := s.repo.Get(ctx, listVersionKey(resource), &version); err != nil {
		if errors.Is(err, appErrors.ErrCacheMiss) {
			return 0, true
		}
		s.logger.Warn("cache version read failed", zap.String("resource", resource), zap.Error(err))
		return 0, false
	}
	return version, true
}

// BumpListVersion moves resource to a new list version so lists cached under older
// versions, including ones written by reads that raced this write, are never served.
// On failure the resource bypasses the cache until a later bump succeeds.
func (s *CacheService) BumpListVersion(ctx context.Context, resource string) error {
	if !s.Enabled() {
		return nil
	}
	version, err := s.repo.Incr(ctx, listVersionKey(resource))
	if err != nil {
		s.setStale(resource, true)
		s.logger.Error("cache version bump failed; bypassing list cache", zap.String("resource", resource), zap.Error(err))
		return err
	}
	s.setStale(resource, false)
	_ = s.Invalidate(ctx, VersionedListKey(resource, version-1))
	return nil
}

func (s *CacheService) isStale(resource string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stale[resource]
}

func (s *CacheService) setStale(resource string, stale bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stale {
		s.stale[resource] = true
	} else {
		delete(s.stale, resource)
	}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Get attempts to retrieve a cached entry. It returns true when the cache was hit.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	start := time.Now()
	err := s.repo.Get(ctx, key, dest)
	duration := time.Since(start)
	if err != nil {
		s.metrics.RecordCacheOperation(false, duration)
		if errors.Is(err, appErrors.ErrCacheMiss) {
			return false, nil
		}
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return false, err
	}
	s.metrics.RecordCacheOperation(true, duration)
	return true, nil
}

// Set stores the value in cache.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	start := time.Now()
	err := s.repo.Set(ctx, key, value, ttl)
	s.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return err
}

// Invalidate removes cached values for the provided pattern.
func (s *CacheService) Invalidate(ctx context.Context, pattern string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.repo.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", pattern), zap.Error(err))
		return err
	}
	return nil
}
