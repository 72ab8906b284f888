package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	pkgerrors "github.com/org-directory/internal/pkg/errors"
	"github.com/org-directory/internal/usecase"
	"github.com/org-directory/internal/usecase/dto"
)

// Три московских здания вокруг центра (55.847336, 37.635552): два в
// пределах 10 км, одно примерно в 11.8 км южнее.
func moscowBuildings() (near1, near2, far *domain.Building) {
	near1 = &domain.Building{ID: uuid.New(), Address: "Московское ш., 233", Latitude: "55.843941", Longitude: "37.662335"}
	near2 = &domain.Building{ID: uuid.New(), Address: "ул. Руставели, 14", Latitude: "55.779665", Longitude: "37.633636"}
	far = &domain.Building{ID: uuid.New(), Address: "Лубянский пр., 2", Latitude: "55.741503", Longitude: "37.628861"}
	return near1, near2, far
}

func TestBuildingUseCase_List_GeoFilter(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("no geo params return plain page", func(t *testing.T) {
		buildingRepo := &MockBuildingRepository{}
		uc := usecase.NewBuildingUseCase(buildingRepo, logger)

		near1, near2, far := moscowBuildings()
		all := []*domain.Building{near1, near2, far}

		buildingRepo.On("List", ctx, []uuid.UUID(nil), false, 20, 0).Return(all, 3, nil)

		result, total, err := uc.List(ctx, dto.GeoQuery{}, 20, 0)

		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, result, 3)
		buildingRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("circle keeps buildings within radius only", func(t *testing.T) {
		buildingRepo := &MockBuildingRepository{}
		uc := usecase.NewBuildingUseCase(buildingRepo, logger)

		near1, near2, far := moscowBuildings()
		all := []*domain.Building{near1, near2, far}
		nearIDs := []uuid.UUID{near1.ID, near2.ID}

		buildingRepo.On("ListAll", ctx).Return(all, nil)
		buildingRepo.On("List", ctx, nearIDs, true, 20, 0).
			Return([]*domain.Building{near1, near2}, 2, nil)

		query := dto.GeoQuery{Latitude: "55.847336", Longitude: "37.635552", Radius: 10}
		result, total, err := uc.List(ctx, query, 20, 0)

		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, result, 2)
		buildingRepo.AssertExpectations(t)
	})

	t.Run("empty zone still applies the filter", func(t *testing.T) {
		buildingRepo := &MockBuildingRepository{}
		uc := usecase.NewBuildingUseCase(buildingRepo, logger)

		near1, near2, far := moscowBuildings()
		all := []*domain.Building{near1, near2, far}

		buildingRepo.On("ListAll", ctx).Return(all, nil)
		buildingRepo.On("List", ctx, []uuid.UUID{}, true, 20, 0).
			Return([]*domain.Building{}, 0, nil)

		query := dto.GeoQuery{Latitude: "0.0", Longitude: "0.0", Radius: 1}
		result, total, err := uc.List(ctx, query, 20, 0)

		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, result)
	})

	t.Run("partial geo params are rejected", func(t *testing.T) {
		buildingRepo := &MockBuildingRepository{}
		uc := usecase.NewBuildingUseCase(buildingRepo, logger)

		cases := []dto.GeoQuery{
			{Latitude: "55.847336"},
			{Longitude: "37.635552"},
			{Radius: 10},
			{Latitude: "55.847336", Radius: 10},
		}

		for _, query := range cases {
			_, _, err := uc.List(ctx, query, 20, 0)
			assert.ErrorIs(t, err, pkgerrors.ErrGeoParamsIncomplete)
		}
		buildingRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("malformed coordinates are rejected", func(t *testing.T) {
		buildingRepo := &MockBuildingRepository{}
		uc := usecase.NewBuildingUseCase(buildingRepo, logger)

		query := dto.GeoQuery{Latitude: "559.1", Longitude: "37.6", Radius: 10}
		_, _, err := uc.List(ctx, query, 20, 0)

		var appErr *pkgerrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.StatusCode)
	})

	t.Run("unknown shape is rejected", func(t *testing.T) {
		buildingRepo := &MockBuildingRepository{}
		uc := usecase.NewBuildingUseCase(buildingRepo, logger)

		query := dto.GeoQuery{Latitude: "55.847336", Longitude: "37.635552", Radius: 10, Shape: "triangle"}
		_, _, err := uc.List(ctx, query, 20, 0)

		assert.ErrorIs(t, err, pkgerrors.ErrInvalidShape)
	})
}

func TestFilterBuildingsInRadius(t *testing.T) {
	centerLat, centerLon := 55.847336, 37.635552
	near1, near2, far := moscowBuildings()
	all := []*domain.Building{near1, near2, far}

	t.Run("circle excludes the far building", func(t *testing.T) {
		ids := usecase.FilterBuildingsInRadius(centerLat, centerLon, 10, domain.ShapeCircle, all)
		assert.ElementsMatch(t, []uuid.UUID{near1.ID, near2.ID}, ids)
	})

	t.Run("square is looser than circle on the diagonal", func(t *testing.T) {
		// Угол рамки лежит дальше радиуса по большому кругу, но внутри
		// квадратной зоны
		corner := &domain.Building{ID: uuid.New(), Address: "угол", Latitude: "55.9350", Longitude: "37.7900"}

		circle := usecase.FilterBuildingsInRadius(centerLat, centerLon, 10, domain.ShapeCircle, []*domain.Building{corner})
		square := usecase.FilterBuildingsInRadius(centerLat, centerLon, 10, domain.ShapeSquare, []*domain.Building{corner})

		assert.Empty(t, circle)
		assert.Equal(t, []uuid.UUID{corner.ID}, square)
	})

	t.Run("buildings with unparsable coordinates are skipped", func(t *testing.T) {
		broken := &domain.Building{ID: uuid.New(), Address: "x", Latitude: "abc", Longitude: "37.6"}
		ids := usecase.FilterBuildingsInRadius(centerLat, centerLon, 10, domain.ShapeCircle, []*domain.Building{broken})
		assert.Empty(t, ids)
	})
}
