package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	"github.com/org-directory/internal/domain/repository"
	"github.com/org-directory/internal/pkg/errors"
	"github.com/org-directory/internal/usecase/dto"
)

// OrganizationUseCase - use case организаций: CRUD плюс составной фильтр
// списка (здание, активность, поиск по имени/активности, геозона)
type OrganizationUseCase struct {
	orgRepo      repository.OrganizationRepository
	activityRepo repository.ActivityRepository
	geo          geoFilter
	logger       *zap.Logger
}

// NewOrganizationUseCase - создание нового OrganizationUseCase
func NewOrganizationUseCase(
	orgRepo repository.OrganizationRepository,
	activityRepo repository.ActivityRepository,
	buildingRepo repository.BuildingRepository,
	logger *zap.Logger,
) *OrganizationUseCase {
	return &OrganizationUseCase{
		orgRepo:      orgRepo,
		activityRepo: activityRepo,
		geo:          geoFilter{buildingRepo: buildingRepo, logger: logger},
		logger:       logger,
	}
}

// Create - создание организации с телефонами и связями
func (uc *OrganizationUseCase) Create(ctx context.Context, req dto.OrganizationCreateRequest) (*dto.IDResponse, error) {
	phones := domain.NormalizePhones(req.Phones)
	if len(phones) == 0 {
		return nil, errors.ErrEmptyPhones
	}

	id, err := uc.orgRepo.Create(ctx, domain.OrganizationCreate{
		Name:        req.Name,
		BuildingID:  req.BuildingID,
		Phones:      phones,
		ActivityIDs: req.ActivityIDs,
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: id}, nil
}

// List - страница организаций по конъюнкции предикатов
func (uc *OrganizationUseCase) List(ctx context.Context, query dto.OrganizationListQuery, limit, offset int) ([]dto.OrganizationListItem, int, error) {
	filter := domain.OrganizationFilter{
		BuildingID: query.BuildingID,
		ActivityID: query.ActivityID,
		SearchName: query.SearchName,
	}

	// Поиск по имени активности раскрывается во всё множество потомков
	if query.SearchActivity != nil {
		matched, err := uc.activityRepo.FindIDsByName(ctx, *query.SearchActivity)
		if err != nil {
			return nil, 0, err
		}
		expanded, err := uc.activityRepo.ExpandDescendants(ctx, matched)
		if err != nil {
			return nil, 0, err
		}
		filter.ActivityIDs = expanded
		filter.ActivityIDsSet = true
	}

	ids, applied, err := uc.geo.resolveBuildingIDs(ctx, query.Geo)
	if err != nil {
		return nil, 0, err
	}
	filter.BuildingIDs = ids
	filter.BuildingIDsSet = applied

	orgs, total, err := uc.orgRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.ConvertOrganizationList(orgs), total, nil
}

// Detail - организация со зданием, телефонами и деревом активностей
func (uc *OrganizationUseCase) Detail(ctx context.Context, id uuid.UUID) (*dto.OrganizationDetailResponse, error) {
	org, err := uc.orgRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ConvertOrganizationDetail(org), nil
}

// Update - частичное обновление; переданные телефоны и связи замещаются
func (uc *OrganizationUseCase) Update(ctx context.Context, id uuid.UUID, req dto.OrganizationUpdateRequest) (*dto.IDResponse, error) {
	update := domain.OrganizationUpdate{
		Name:        req.Name,
		BuildingID:  req.BuildingID,
		ActivityIDs: req.ActivityIDs,
	}

	if req.Phones != nil {
		phones := domain.NormalizePhones(req.Phones)
		// Организация всегда сохраняет хотя бы один телефон
		if len(phones) == 0 {
			return nil, errors.ErrEmptyPhones
		}
		update.Phones = phones
	}

	orgID, err := uc.orgRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: orgID}, nil
}

// Delete - удаление организации вместе с телефонами и связями
func (uc *OrganizationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.orgRepo.Delete(ctx, id)
}
