package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	"github.com/org-directory/internal/domain/repository"
	"github.com/org-directory/internal/usecase/dto"
)

// activityRootsCacheKey - ключ кэша леса корневых активностей
const activityRootsCacheKey = "activities:roots"

// ActivityUseCase - use case справочника активностей
type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

// NewActivityUseCase - создание нового ActivityUseCase
func NewActivityUseCase(
	activityRepo repository.ActivityRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ActivityUseCase {
	return &ActivityUseCase{
		activityRepo: activityRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// Create - создание активности с проверкой ограничения глубины
func (uc *ActivityUseCase) Create(ctx context.Context, req dto.ActivityCreateRequest) (*dto.ActivityResponse, error) {
	activity, err := uc.activityRepo.Create(ctx, req.Name, req.ParentID)
	if err != nil {
		return nil, err
	}

	uc.invalidateRoots(ctx)
	return dto.ConvertActivity(activity), nil
}

// List - корневые активности с детьми на два уровня вниз; результат кэшируется
func (uc *ActivityUseCase) List(ctx context.Context) ([]*dto.ActivityResponse, error) {
	if cached, err := uc.cacheRepo.Get(ctx, activityRootsCacheKey); err == nil && cached != nil {
		var result []*dto.ActivityResponse
		decodeErr := json.Unmarshal(cached, &result)
		if decodeErr == nil {
			return result, nil
		}
		uc.logger.Warn("Failed to decode cached activities, rebuilding", zap.Error(decodeErr))
	}

	roots, err := uc.activityRepo.ListRoots(ctx)
	if err != nil {
		return nil, err
	}
	result := dto.ConvertActivities(roots)

	if encoded, err := json.Marshal(result); err == nil {
		if err := uc.cacheRepo.Set(ctx, activityRootsCacheKey, encoded, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache activities", zap.Error(err))
		}
	}

	return result, nil
}

// Detail - активность с предками и детьми
func (uc *ActivityUseCase) Detail(ctx context.Context, id uuid.UUID) (*dto.ActivityResponse, error) {
	activity, err := uc.activityRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ConvertActivity(activity), nil
}

// Update - частичное обновление с бизнес-правилами смены родителя
func (uc *ActivityUseCase) Update(ctx context.Context, id uuid.UUID, req dto.ActivityUpdateRequest) (*dto.ActivityResponse, error) {
	update := domain.ActivityUpdate{
		Name:      req.Name,
		ParentID:  req.ParentID.Value,
		ParentSet: req.ParentID.Set,
	}

	activity, err := uc.activityRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	uc.invalidateRoots(ctx)
	return dto.ConvertActivity(activity), nil
}

// Delete - удаление активности вместе с поддеревом
func (uc *ActivityUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.activityRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateRoots(ctx)
	return nil
}

// invalidateRoots сбрасывает кэш леса после любой мутации справочника
func (uc *ActivityUseCase) invalidateRoots(ctx context.Context) {
	if err := uc.cacheRepo.Delete(ctx, activityRootsCacheKey); err != nil {
		uc.logger.Warn("Failed to invalidate activities cache", zap.Error(err))
	}
}
