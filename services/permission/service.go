package permission

import (
	"context"
	"encoding/json"

	permissionRepo "pulsecrm/database/repository/permission"
	"pulsecrm/models"
	"pulsecrm/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const indexCacheKey = utils.PermCachePrefix + "index"

// Service loads permission records, caching the route index in Redis.
// Cache failures fall back to the repository; the gate itself stays pure.
type Service struct {
	Repo  permissionRepo.PermissionRepository
	Cache *redis.Client
}

// RouteIndex returns the permission records keyed by route.
func (s *Service) RouteIndex(ctx context.Context) (map[string]models.Permission, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, indexCacheKey).Result()
		if err == nil {
			var index map[string]models.Permission
			if jsonErr := json.Unmarshal([]byte(cached), &index); jsonErr == nil {
				return index, nil
			}
			logger.Warn("discarding undecodable permission cache entry")
		} else if err != redis.Nil {
			logger.Warn("permission cache read failed, falling back to DB", zap.Error(err))
		}
	}

	perms, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	index := BuildIndex(perms)

	if s.Cache != nil {
		if data, err := json.Marshal(index); err == nil {
			if err := s.Cache.Set(ctx, indexCacheKey, data, utils.PermCacheTTL).Err(); err != nil {
				logger.Warn("permission cache write failed", zap.Error(err))
			}
		}
	}
	return index, nil
}

// Allowed reports whether the role may access the route, using the cached index.
func (s *Service) Allowed(ctx context.Context, role Role, route string) (bool, error) {
	index, err := s.RouteIndex(ctx)
	if err != nil {
		return false, err
	}
	return Allowed(role, route, index), nil
}

// Upsert stores a permission record and invalidates the cached index.
func (s *Service) Upsert(ctx context.Context, perm *models.Permission) error {
	if err := s.Repo.Upsert(perm); err != nil {
		return err
	}
	s.Invalidate(ctx)
	return nil
}

// Invalidate drops the cached route index.
func (s *Service) Invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, indexCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("permission cache invalidation failed", zap.Error(err))
	}
}
