package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	"github.com/org-directory/internal/usecase"
	"github.com/org-directory/internal/usecase/dto"
)

func TestActivityUseCase_List(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	rootID := uuid.New()
	childID := uuid.New()
	roots := []*domain.Activity{
		{
			ID:   rootID,
			Name: "Еда",
			Children: []*domain.Activity{
				{ID: childID, Name: "Мясная продукция", ParentID: &rootID},
			},
		},
	}

	t.Run("cache miss loads roots and stores them", func(t *testing.T) {
		activityRepo := &MockActivityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, 5*time.Minute)

		cacheRepo.On("Get", ctx, "activities:roots").Return(nil, nil)
		activityRepo.On("ListRoots", ctx).Return(roots, nil)
		cacheRepo.On("Set", ctx, "activities:roots", mock.Anything, 5*time.Minute).Return(nil)

		result, err := uc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Еда", result[0].Name)
		assert.Len(t, result[0].Children, 1)
		assert.Equal(t, childID, result[0].Children[0].ID)

		activityRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		activityRepo := &MockActivityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, 5*time.Minute)

		cached, err := json.Marshal([]*dto.ActivityResponse{{ID: rootID, Name: "Еда"}})
		assert.NoError(t, err)

		cacheRepo.On("Get", ctx, "activities:roots").Return(cached, nil)

		result, err := uc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, rootID, result[0].ID)

		activityRepo.AssertNotCalled(t, "ListRoots", mock.Anything)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("corrupted cache entry falls back to repository", func(t *testing.T) {
		activityRepo := &MockActivityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, 5*time.Minute)

		cacheRepo.On("Get", ctx, "activities:roots").Return([]byte("{broken"), nil)
		activityRepo.On("ListRoots", ctx).Return(roots, nil)
		cacheRepo.On("Set", ctx, "activities:roots", mock.Anything, 5*time.Minute).Return(nil)

		result, err := uc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		activityRepo.AssertExpectations(t)
	})
}

func TestActivityUseCase_MutationsInvalidateCache(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	id := uuid.New()

	t.Run("create drops cached roots", func(t *testing.T) {
		activityRepo := &MockActivityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, time.Minute)

		created := &domain.Activity{ID: id, Name: "Еда"}
		activityRepo.On("Create", ctx, "Еда", (*uuid.UUID)(nil)).Return(created, nil)
		cacheRepo.On("Delete", ctx, "activities:roots").Return(nil)

		result, err := uc.Create(ctx, dto.ActivityCreateRequest{Name: "Еда"})

		assert.NoError(t, err)
		assert.Equal(t, id, result.ID)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("update drops cached roots", func(t *testing.T) {
		activityRepo := &MockActivityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, time.Minute)

		name := "Продукты"
		updated := &domain.Activity{ID: id, Name: name}
		activityRepo.On("Update", ctx, id, domain.ActivityUpdate{Name: &name}).Return(updated, nil)
		cacheRepo.On("Delete", ctx, "activities:roots").Return(nil)

		result, err := uc.Update(ctx, id, dto.ActivityUpdateRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, name, result.Name)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("delete drops cached roots", func(t *testing.T) {
		activityRepo := &MockActivityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, time.Minute)

		activityRepo.On("Delete", ctx, id).Return(nil)
		cacheRepo.On("Delete", ctx, "activities:roots").Return(nil)

		err := uc.Delete(ctx, id)

		assert.NoError(t, err)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("failed delete keeps cache", func(t *testing.T) {
		activityRepo := &MockActivityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, time.Minute)

		activityRepo.On("Delete", ctx, id).Return(assert.AnError)

		err := uc.Delete(ctx, id)

		assert.Error(t, err)
		cacheRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestActivityUseCase_Update_ParentTriState(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	id := uuid.New()
	parentID := uuid.New()

	activityRepo := &MockActivityRepository{}
	cacheRepo := &MockCacheRepository{}
	uc := usecase.NewActivityUseCase(activityRepo, cacheRepo, logger, time.Minute)

	// parent_id: null в теле должен дойти до репозитория как ParentSet
	// без значения, а не как "поле не тронуто"
	var req dto.ActivityUpdateRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"parent_id": null}`), &req))

	updated := &domain.Activity{ID: id, Name: "Еда"}
	activityRepo.On("Update", ctx, id, domain.ActivityUpdate{ParentSet: true}).Return(updated, nil)
	cacheRepo.On("Delete", ctx, "activities:roots").Return(nil)

	_, err := uc.Update(ctx, id, req)
	assert.NoError(t, err)
	activityRepo.AssertExpectations(t)

	// а присутствующее значение - как ParentSet со значением
	var req2 dto.ActivityUpdateRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"parent_id": "`+parentID.String()+`"}`), &req2))
	assert.True(t, req2.ParentID.Set)
	assert.NotNil(t, req2.ParentID.Value)
	assert.Equal(t, parentID, *req2.ParentID.Value)

	// отсутствующее поле не взводит флаг
	var req3 dto.ActivityUpdateRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"name": "Еда"}`), &req3))
	assert.False(t, req3.ParentID.Set)
}
