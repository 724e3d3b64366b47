package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/repo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleModelService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.RoleModel, error)
	List(ctx context.Context) ([]model.RoleModel, error)
}

type roleModelService struct {
	repo repo.RoleModelRepo
	rdb  *redis.Client // nil when the cache is disabled
	ttl  time.Duration
	log  *zap.Logger
}

func NewRoleModelService(r repo.RoleModelRepo, rdb *redis.Client, ttl time.Duration, log *zap.Logger) RoleModelService {
	return &roleModelService{repo: r, rdb: rdb, ttl: ttl, log: log}
}

func roleModelCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("modelday:role_model:%s", id)
}

// Get serves from Redis when possible. Role models are seeded, effectively
// immutable rows, so a plain TTL cache is enough.
func (s *roleModelService) Get(ctx context.Context, id uuid.UUID) (*model.RoleModel, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, roleModelCacheKey(id)).Bytes()
		if err == nil {
			var rm model.RoleModel
			if uerr := sonic.Unmarshal(raw, &rm); uerr == nil {
				return &rm, nil
			}
			// Corrupt entry, fall through to the database.
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn("role model cache read failed", zap.Error(err))
		}
	}

	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleModelNotFound
		}
		return nil, err
	}

	if s.rdb != nil {
		if raw, merr := sonic.Marshal(rm); merr == nil {
			if serr := s.rdb.Set(ctx, roleModelCacheKey(id), raw, s.ttl).Err(); serr != nil {
				s.log.Warn("role model cache write failed", zap.Error(serr))
			}
		}
	}
	return rm, nil
}

func (s *roleModelService) List(ctx context.Context) ([]model.RoleModel, error) {
	return s.repo.List(ctx)
}
