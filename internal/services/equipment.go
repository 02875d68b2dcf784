package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, page int, search string) ([]dto.EquipmentDTO, utils.Pagination, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) error
	UpdateEquipment(ctx context.Context, payload dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, payload dto.DeleteEquipmentDTO) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func equipmentEntityToDTO(entity entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:            entity.ID,
		AssetID:       entity.AssetID,
		Tipo:          entity.Tipo,
		Fabricante:    entity.Fabricante,
		Modelo:        entity.Modelo,
		Serie:         entity.Serie,
		UsuarioNombre: entity.UsuarioNombre,
	}
}

// GetEquipments - страница списка. Пустой результат - это успех,
// не ошибка.
func (s *EquipmentService) GetEquipments(ctx context.Context, page int, search string) ([]dto.EquipmentDTO, utils.Pagination, error) {
	currentPage := utils.ClampPage(page)
	limit := constants.EquipmentPageSize

	equipments, total, err := s.equipmentRepository.GetEquipments(ctx, search, limit, utils.OffsetFor(currentPage, limit))
	if err != nil {
		return nil, utils.Pagination{}, err
	}

	dtos := make([]dto.EquipmentDTO, 0, len(equipments))
	for _, entity := range equipments {
		dtos = append(dtos, equipmentEntityToDTO(entity))
	}

	pagination := utils.Pagination{
		CurrentPage: currentPage,
		TotalPages:  utils.TotalPages(total, limit),
		SearchQuery: search,
	}
	return dtos, pagination, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) error {
	if payload.AssetID <= 0 {
		return apperrors.NewValidationError("El Asset ID es inválido.")
	}

	if err := s.equipmentRepository.CreateEquipment(ctx, payload); err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.Int64("asset_id", payload.AssetID), zap.Error(err))
		return err
	}
	s.logger.Info("Оборудование создано", zap.Int64("asset_id", payload.AssetID))
	return nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, payload dto.UpdateEquipmentDTO) error {
	if payload.ID <= 0 {
		return apperrors.NewValidationError("ID de equipo inválido.")
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, payload); err != nil {
		s.logger.Error("Ошибка при обновлении оборудования", zap.Int64("id", payload.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, payload dto.DeleteEquipmentDTO) error {
	if payload.ID <= 0 || payload.AssetID <= 0 {
		return apperrors.NewValidationError("IDs inválidos para borrar.")
	}

	if err := s.equipmentRepository.DeleteEquipment(ctx, payload.ID, payload.AssetID); err != nil {
		s.logger.Error("Ошибка при удалении оборудования", zap.Int64("id", payload.ID), zap.Error(err))
		return err
	}
	s.logger.Info("Оборудование удалено", zap.Int64("id", payload.ID), zap.Int64("asset_id", payload.AssetID))
	return nil
}
