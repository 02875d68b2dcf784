package services

import (
	"context"
	"strings"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type InventoryServiceInterface interface {
	GetItems(ctx context.Context, page int, search string, categoria string) ([]dto.InventoryItemDTO, utils.Pagination, error)
	CreateItem(ctx context.Context, payload dto.CreateInventoryItemDTO) (int64, error)
	UpdateItem(ctx context.Context, payload dto.UpdateInventoryItemDTO) error
	DeleteItem(ctx context.Context, payload dto.DeleteInventoryItemDTO) error
}

type InventoryService struct {
	inventoryRepository repositories.InventoryRepositoryInterface
}

func NewInventoryService(inventoryRepository repositories.InventoryRepositoryInterface) InventoryServiceInterface {
	return &InventoryService{inventoryRepository: inventoryRepository}
}

func inventoryEntityToDTO(entity entities.InventoryItem) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		ID:          entity.ID,
		Tipo:        entity.Tipo,
		Descripcion: entity.Descripcion,
		Cantidad:    entity.Cantidad,
		Ubicacion:   entity.Ubicacion,
		Categoria:   entity.Categoria,
		CreatedAt:   entity.CreatedAt.Format(time.RFC3339),
	}
}

func (s *InventoryService) GetItems(ctx context.Context, page int, search string, categoria string) ([]dto.InventoryItemDTO, utils.Pagination, error) {
	currentPage := utils.ClampPage(page)
	limit := constants.InventoryPageSize

	items, total, err := s.inventoryRepository.GetItems(ctx, search, categoria, limit, utils.OffsetFor(currentPage, limit))
	if err != nil {
		return nil, utils.Pagination{}, err
	}

	dtos := make([]dto.InventoryItemDTO, 0, len(items))
	for _, entity := range items {
		dtos = append(dtos, inventoryEntityToDTO(entity))
	}

	pagination := utils.Pagination{
		CurrentPage: currentPage,
		TotalPages:  utils.TotalPages(total, limit),
		SearchQuery: search,
		Categoria:   categoria,
	}
	return dtos, pagination, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, payload dto.CreateInventoryItemDTO) (int64, error) {
	if strings.TrimSpace(payload.Tipo) == "" || strings.TrimSpace(payload.Descripcion) == "" ||
		strings.TrimSpace(payload.Categoria) == "" || payload.Cantidad < 0 {
		return 0, apperrors.NewValidationError("Todos los campos son requeridos y la cantidad debe ser mayor o igual a 0.")
	}
	if payload.Ubicacion == "" {
		payload.Ubicacion = constants.DefaultInventoryLocation
	}

	return s.inventoryRepository.CreateItem(ctx, payload)
}

func (s *InventoryService) UpdateItem(ctx context.Context, payload dto.UpdateInventoryItemDTO) error {
	if payload.ID <= 0 {
		return apperrors.NewValidationError("ID de item inválido.")
	}
	if payload.Cantidad < 0 {
		return apperrors.NewValidationError("La cantidad debe ser mayor o igual a 0.")
	}
	if payload.Ubicacion == "" {
		payload.Ubicacion = constants.DefaultInventoryLocation
	}

	return s.inventoryRepository.UpdateItem(ctx, payload)
}

func (s *InventoryService) DeleteItem(ctx context.Context, payload dto.DeleteInventoryItemDTO) error {
	if payload.ID <= 0 {
		return apperrors.NewValidationError("ID inválido para borrar.")
	}
	return s.inventoryRepository.DeleteItem(ctx, payload.ID)
}
