package controllers

import (
	"net/http"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

func (c *SearchController) UniversalSearch(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	equipments, err := c.searchService.UniversalSearch(reqCtx, ctx.QueryParam("q"))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, echo.Map{"equipos": equipments}, "", http.StatusOK)
}
