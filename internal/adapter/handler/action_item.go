package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/minutemeet/errors"
	itemdto "github.com/johnquangdev/minutemeet/internal/adapter/dto/actionitem"
	itemuse "github.com/johnquangdev/minutemeet/internal/usecase/actionitem"
)

// ActionItemHandler handles action item CRUD endpoints
type ActionItemHandler struct {
	svc    itemuse.Service
	logger *zap.Logger
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(svc itemuse.Service, logger *zap.Logger) *ActionItemHandler {
	return &ActionItemHandler{svc: svc, logger: logger}
}

// List returns all action items, newest first
// @Summary      List action items
// @Tags         ActionItems
// @Produce      json
// @Success      200  {array}   itemdto.ActionItemResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/action-items [get]
func (h *ActionItemHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, itemdto.FromEntities(items))
}

// Create adds an action item to an existing meeting
// @Summary      Create action item
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        request  body      itemdto.CreateActionItemRequest  true  "Action item fields"
// @Success      200      {object}  itemdto.ActionItemResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Router       /api/action-items [post]
func (h *ActionItemHandler) Create(c echo.Context) error {
	var req itemdto.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	item, err := h.svc.Create(c.Request().Context(), itemuse.CreateInput{
		MeetingID: req.MeetingID,
		Task:      req.Task,
		Assignee:  req.Assignee,
		DueDate:   req.DueDate,
		Priority:  req.Priority,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, itemdto.FromEntity(item))
}

// Update applies partial changes to an action item
// @Summary      Update action item
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Action item ID (UUID)"
// @Param        request  body      itemdto.UpdateActionItemRequest  true  "Fields to update"
// @Success      200      {object}  itemdto.ActionItemResponse
// @Failure      404      {object}  map[string]interface{}  "Action item not found"
// @Router       /api/action-items/{id} [put]
func (h *ActionItemHandler) Update(c echo.Context) error {
	var req itemdto.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	item, err := h.svc.Update(c.Request().Context(), c.Param("id"), itemuse.UpdateInput{
		Task:     req.Task,
		Assignee: req.Assignee,
		DueDate:  req.DueDate,
		Priority: req.Priority,
		Status:   req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, itemdto.FromEntity(item))
}

// Delete removes an action item
// @Summary      Delete action item
// @Tags         ActionItems
// @Produce      json
// @Param        id   path      string  true  "Action item ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}  "Action item not found"
// @Router       /api/action-items/{id} [delete]
func (h *ActionItemHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"deleted": true})
}
