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

// BuildingHandler - обработчик зданий
type BuildingHandler struct {
	buildingUC *usecase.BuildingUseCase
	pagination config.PaginationConfig
	logger     *zap.Logger
}

// NewBuildingHandler - создание нового BuildingHandler
func NewBuildingHandler(buildingUC *usecase.BuildingUseCase, pagination config.PaginationConfig, logger *zap.Logger) *BuildingHandler {
	return &BuildingHandler{
		buildingUC: buildingUC,
		pagination: pagination,
		logger:     logger,
	}
}

// Create godoc
// @Summary Создание здания
// @Description Создаёт здание с уникальным адресом и уникальной парой координат.
// @Tags Buildings
// @Accept json
// @Produce json
// @Param body body dto.BuildingCreateRequest true "Здание"
// @Success 201 {object} utils.SuccessResponse{data=dto.BuildingResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/buildings [post]
func (h *BuildingHandler) Create(c *fiber.Ctx) error {
	var req dto.BuildingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.buildingUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// List godoc
// @Summary Список зданий
// @Description Страница зданий; latitude/longitude/radius/shape сужают выдачу до геозоны. Три геопараметра задаются вместе или не задаются вовсе.
// @Tags Buildings
// @Produce json
// @Param latitude query string false "Широта центра зоны"
// @Param longitude query string false "Долгота центра зоны"
// @Param radius query number false "Радиус зоны в километрах"
// @Param shape query string false "Форма зоны: circle или square" default(circle)
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BuildingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/buildings [get]
func (h *BuildingHandler) List(c *fiber.Ctx) error {
	page := utils.ParsePageParams(c, h.pagination.DefaultLimit, h.pagination.MaxLimit)

	result, total, err := h.buildingUC.List(c.Context(), parseGeoQuery(c), page.Limit, page.Offset())
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
// @Summary Здание по id
// @Tags Buildings
// @Produce json
// @Param id path string true "Id здания"
// @Success 200 {object} utils.SuccessResponse{data=dto.BuildingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/buildings/{id} [get]
func (h *BuildingHandler) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.buildingUC.Detail(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Обновление здания
// @Tags Buildings
// @Accept json
// @Produce json
// @Param id path string true "Id здания"
// @Param body body dto.BuildingUpdateRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.BuildingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/buildings/{id} [patch]
func (h *BuildingHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.BuildingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.buildingUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удаление здания
// @Description Удаляет здание; блокируется, пока на здание ссылается хотя бы одна организация.
// @Tags Buildings
// @Param id path string true "Id здания"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/buildings/{id} [delete]
func (h *BuildingHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.buildingUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
