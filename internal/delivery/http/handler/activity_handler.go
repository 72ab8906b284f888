package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/org-directory/internal/pkg/errors"
	"github.com/org-directory/internal/pkg/utils"
	"github.com/org-directory/internal/pkg/validator"
	"github.com/org-directory/internal/usecase"
	"github.com/org-directory/internal/usecase/dto"
)

// ActivityHandler - обработчик справочника активностей
type ActivityHandler struct {
	activityUC *usecase.ActivityUseCase
	logger     *zap.Logger
}

// NewActivityHandler - создание нового ActivityHandler
func NewActivityHandler(activityUC *usecase.ActivityUseCase, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityUC: activityUC,
		logger:     logger,
	}
}

// Create godoc
// @Summary Создание активности
// @Description Создаёт вид деятельности, опционально под существующим родителем. Глубина дерева ограничена тремя уровнями.
// @Tags Activities
// @Accept json
// @Produce json
// @Param body body dto.ActivityCreateRequest true "Активность"
// @Success 201 {object} utils.SuccessResponse{data=dto.ActivityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var req dto.ActivityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.activityUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// List godoc
// @Summary Список корневых активностей
// @Description Возвращает корни справочника с детьми ровно на два уровня вниз.
// @Tags Activities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ActivityResponse}
// @Security ApiKeyAuth
// @Router /api/v1/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	result, err := h.activityUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// Detail godoc
// @Summary Активность по id
// @Description Возвращает активность с предками (до двух уровней вверх) и детьми (до двух уровней вниз).
// @Tags Activities
// @Produce json
// @Param id path string true "Id активности"
// @Success 200 {object} utils.SuccessResponse{data=dto.ActivityResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/activities/{id} [get]
func (h *ActivityHandler) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.activityUC.Detail(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Обновление активности
// @Description Меняет имя и/или родителя. Родителя нельзя менять при наличии детей, назначать на саму себя или нарушать трёхуровневую глубину.
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Id активности"
// @Param body body dto.ActivityUpdateRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.ActivityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/activities/{id} [patch]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.ActivityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.activityUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удаление активности
// @Description Удаляет активность вместе с поддеревом; блокируется, пока хотя бы один узел связан с организацией.
// @Tags Activities
// @Param id path string true "Id активности"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.activityUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
