package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

// Resource names double as route segments and cache keys.
const (
	ResourceDepartments    = "departamentos"
	ResourceMunicipalities = "municipios"
	ResourceSchools        = "colegios"
	ResourceSites          = "sedes"
	ResourceUsers          = "usuarios"
)

// Resources lists every catalog resource.
func Resources() []string {
	return []string{ResourceDepartments, ResourceMunicipalities, ResourceSchools, ResourceSites, ResourceUsers}
}

// storageError logs a failed query and wraps it as a 500 whose details carry the driver text.
func storageError(logger *zap.Logger, op string, err error) error {
	fields := []zap.Field{zap.String("op", op), zap.Error(err)}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		fields = append(fields,
			zap.String("sqlstate", string(pqErr.Code)),
			zap.String("sqlstate_name", pqErr.Code.Name()),
		)
		if pqErr.Constraint != "" {
			fields = append(fields, zap.String("constraint", pqErr.Constraint))
		}
	}
	logger.Error("database error", fields...)
	return appErrors.Storage(err)
}

// cachedList serves a resource list from cache when enabled, loading and storing it on a miss.
// The version is read before loading, so a list loaded before a concurrent write lands
// under a version that write has already retired.
func cachedList[T any](ctx context.Context, cache *CacheService, resource string, load func(context.Context) ([]T, error)) ([]T, error) {
	version, ok := cache.ListVersion(ctx, resource)
	if !ok {
		return load(ctx)
	}

	key := VersionedListKey(resource, version)
	var cached []T
	if hit, _ := cache.Get(ctx, key, &cached); hit && cached != nil {
		return cached, nil
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	_ = cache.Set(ctx, key, items, 0)
	return items, nil
}

// invalidateList retires the cached list of resource after a successful write.
func invalidateList(ctx context.Context, cache *CacheService, resource string) {
	_ = cache.BumpListVersion(ctx, resource)
}
