package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetEquipmentReport выгружает весь парк техники с текущими держателями.
// format=xlsx отдаёт файл, всё остальное - JSON.
func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	search := ctx.QueryParam("q")
	format := strings.ToLower(ctx.QueryParam("format"))

	rows, err := c.reportService.GetEquipmentReport(reqCtx, search)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, echo.Map{"equipos": rows}, "", http.StatusOK)
}

var equipmentReportHeaders = []string{
	"Asset ID", "Tipo", "Fabricante", "Modelo", "Serie", "Usuario asignado", "Fecha de asignación",
}

func reportRowToSlice(row dto.ReportRowDTO) []interface{} {
	return []interface{}{
		row.AssetID, row.Tipo, row.Fabricante, row.Modelo, row.Serie, row.UsuarioNombre, row.FechaAsignacion,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []dto.ReportRowDTO) error {
	f := excelize.NewFile()
	sheet := "Equipos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &equipmentReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "G1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := reportRowToSlice(row)
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "B", "E", 20)
	f.SetColWidth(sheet, "F", "G", 28)

	fileName := fmt.Sprintf("equipos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
