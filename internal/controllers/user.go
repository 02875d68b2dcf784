package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

func (c *UserController) FindUser(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("ID de usuario no válido."))
	}

	user, err := c.userService.FindUser(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{"usuario": user}, "", http.StatusOK)
}

func (c *UserController) GetActiveUsers(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	users, err := c.userService.GetActiveUsers(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{"usuarios": users}, "", http.StatusOK)
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.UpdateUserDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("UpdateUser: некорректная форма", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.userService.UpdateUser(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{}, "Usuario actualizado correctamente.", http.StatusOK)
}

func (c *UserController) DeactivateUser(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.DeactivateUserDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.userService.DeactivateUser(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{}, "Usuario desactivado correctamente.", http.StatusOK)
}

func (c *UserController) AssignUser(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.AssignUserDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("AssignUser: некорректная форма", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.userService.AssignUser(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{}, "Usuario asignado correctamente.", http.StatusOK)
}
