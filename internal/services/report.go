package services

import (
	"context"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type ReportServiceInterface interface {
	GetEquipmentReport(ctx context.Context, search string) ([]dto.ReportRowDTO, error)
}

type reportService struct {
	reportRepository repositories.ReportRepositoryInterface
}

func NewReportService(reportRepository repositories.ReportRepositoryInterface) ReportServiceInterface {
	return &reportService{reportRepository: reportRepository}
}

func reportRowToDTO(row entities.ReportRow) dto.ReportRowDTO {
	out := dto.ReportRowDTO{
		AssetID:    row.AssetID,
		Tipo:       row.Tipo,
		Fabricante: row.Fabricante,
		Modelo:     row.Modelo,
		Serie:      row.Serie,
	}
	if row.UsuarioNombre.Valid {
		out.UsuarioNombre = row.UsuarioNombre.String
	}
	if row.FechaAsignacion.Valid {
		out.FechaAsignacion = row.FechaAsignacion.Time.Format(time.RFC3339)
	}
	return out
}

func (s *reportService) GetEquipmentReport(ctx context.Context, search string) ([]dto.ReportRowDTO, error) {
	rows, err := s.reportRepository.GetEquipmentReport(ctx, search)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.ReportRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, reportRowToDTO(row))
	}
	return dtos, nil
}
