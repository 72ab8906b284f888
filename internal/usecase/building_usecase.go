package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	"github.com/org-directory/internal/domain/repository"
	"github.com/org-directory/internal/usecase/dto"
)

// BuildingUseCase - use case зданий
type BuildingUseCase struct {
	buildingRepo repository.BuildingRepository
	geo          geoFilter
	logger       *zap.Logger
}

// NewBuildingUseCase - создание нового BuildingUseCase
func NewBuildingUseCase(buildingRepo repository.BuildingRepository, logger *zap.Logger) *BuildingUseCase {
	return &BuildingUseCase{
		buildingRepo: buildingRepo,
		geo:          geoFilter{buildingRepo: buildingRepo, logger: logger},
		logger:       logger,
	}
}

// Create - создание здания
func (uc *BuildingUseCase) Create(ctx context.Context, req dto.BuildingCreateRequest) (*dto.BuildingResponse, error) {
	building, err := uc.buildingRepo.Create(ctx, req.Address, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertBuilding(building)
	return &resp, nil
}

// List - страница зданий, опционально суженная геофильтром
func (uc *BuildingUseCase) List(ctx context.Context, geo dto.GeoQuery, limit, offset int) ([]dto.BuildingResponse, int, error) {
	ids, applied, err := uc.geo.resolveBuildingIDs(ctx, geo)
	if err != nil {
		return nil, 0, err
	}

	buildings, total, err := uc.buildingRepo.List(ctx, ids, applied, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.ConvertBuildings(buildings), total, nil
}

// Detail - здание по id
func (uc *BuildingUseCase) Detail(ctx context.Context, id uuid.UUID) (*dto.BuildingResponse, error) {
	building, err := uc.buildingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertBuilding(building)
	return &resp, nil
}

// Update - частичное обновление здания
func (uc *BuildingUseCase) Update(ctx context.Context, id uuid.UUID, req dto.BuildingUpdateRequest) (*dto.BuildingResponse, error) {
	update := domain.BuildingUpdate{
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	building, err := uc.buildingRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	resp := dto.ConvertBuilding(building)
	return &resp, nil
}

// Delete - удаление здания; блокируется, пока на него ссылаются организации
func (uc *BuildingUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.buildingRepo.Delete(ctx, id)
}
