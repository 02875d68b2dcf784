package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InventoryController struct {
	inventoryService services.InventoryServiceInterface
	logger           *zap.Logger
}

func NewInventoryController(inventoryService services.InventoryServiceInterface, logger *zap.Logger) *InventoryController {
	return &InventoryController{inventoryService: inventoryService, logger: logger}
}

// GetItems отдаёт страницу склада. Параметры: ?page=N&q=texto&categoria=X.
func (c *InventoryController) GetItems(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	search := ctx.QueryParam("q")
	categoria := ctx.QueryParam("categoria")

	items, pagination, err := c.inventoryService.GetItems(reqCtx, page, search, categoria)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, echo.Map{
		"items":      items,
		"pagination": pagination,
	}, "", http.StatusOK)
}

func (c *InventoryController) CreateItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateInventoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("CreateItem: некорректная форма", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	id, err := c.inventoryService.CreateItem(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{"id": id}, "Item agregado correctamente al inventario.", http.StatusCreated)
}

func (c *InventoryController) UpdateItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.UpdateInventoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("UpdateItem: некорректная форма", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.inventoryService.UpdateItem(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{}, "Item actualizado correctamente.", http.StatusOK)
}

func (c *InventoryController) DeleteItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.DeleteInventoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.inventoryService.DeleteItem(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{}, "Item eliminado correctamente.", http.StatusOK)
}
