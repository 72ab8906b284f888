package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/org-directory/internal/config"
	"github.com/org-directory/internal/pkg/errors"
	"github.com/org-directory/internal/pkg/utils"
	"github.com/org-directory/internal/pkg/validator"
	"github.com/org-directory/internal/usecase"
	"github.com/org-directory/internal/usecase/dto"
)

// OrganizationHandler - обработчик организаций
type OrganizationHandler struct {
	organizationUC *usecase.OrganizationUseCase
	pagination     config.PaginationConfig
	logger         *zap.Logger
}

// NewOrganizationHandler - создание нового OrganizationHandler
func NewOrganizationHandler(organizationUC *usecase.OrganizationUseCase, pagination config.PaginationConfig, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		organizationUC: organizationUC,
		pagination:     pagination,
		logger:         logger,
	}
}

// Create godoc
// @Summary Создание организации
// @Description Создаёт организацию с телефонами и списком деятельностей. Требуется хотя бы один телефон.
// @Tags Organizations
// @Accept json
// @Produce json
// @Param body body dto.OrganizationCreateRequest true "Организация"
// @Success 201 {object} utils.SuccessResponse{data=dto.IDResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var req dto.OrganizationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.organizationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// List godoc
// @Summary Список организаций
// @Description Страница организаций. building_id и activity_id фильтруют точно, search_activity раскрывает найденные деятельности вместе с потомками, search_name ищет по подстроке имени, геопараметры сужают выдачу до зданий в зоне.
// @Tags Organizations
// @Produce json
// @Param building_id query string false "Id здания"
// @Param activity_id query string false "Id деятельности (точное совпадение)"
// @Param search_activity query string false "Подстрока имени деятельности (c потомками)"
// @Param search_name query string false "Подстрока имени организации"
// @Param latitude query string false "Широта центра зоны"
// @Param longitude query string false "Долгота центра зоны"
// @Param radius query number false "Радиус зоны в километрах"
// @Param shape query string false "Форма зоны: circle или square" default(circle)
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.OrganizationListItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/organizations [get]
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	buildingID, ok := queryUUID(c, "building_id")
	if !ok {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	activityID, ok := queryUUID(c, "activity_id")
	if !ok {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	query := dto.OrganizationListQuery{
		BuildingID:     buildingID,
		ActivityID:     activityID,
		SearchActivity: queryString(c, "search_activity"),
		SearchName:     queryString(c, "search_name"),
		Geo:            parseGeoQuery(c),
	}

	page := utils.ParsePageParams(c, h.pagination.DefaultLimit, h.pagination.MaxLimit)

	result, total, err := h.organizationUC.List(c.Context(), query, page.Limit, page.Offset())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// Detail godoc
// @Summary Организация по id
// @Description Карточка организации: здание, телефоны и дерево деятельностей от корней до привязанных узлов.
// @Tags Organizations
// @Produce json
// @Param id path string true "Id организации"
// @Success 200 {object} utils.SuccessResponse{data=dto.OrganizationDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/organizations/{id} [get]
func (h *OrganizationHandler) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.organizationUC.Detail(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Обновление организации
// @Description Обновляет переданные поля. Список телефонов и список деятельностей заменяются целиком, если присутствуют в теле.
// @Tags Organizations
// @Accept json
// @Produce json
// @Param id path string true "Id организации"
// @Param body body dto.OrganizationUpdateRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.IDResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/organizations/{id} [patch]
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.OrganizationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.organizationUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удаление организации
// @Description Удаляет организацию вместе с телефонами и привязками к деятельностям.
// @Tags Organizations
// @Param id path string true "Id организации"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.organizationUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
