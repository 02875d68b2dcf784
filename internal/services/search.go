package services

import (
	"context"
	"strings"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type SearchServiceInterface interface {
	UniversalSearch(ctx context.Context, query string) ([]dto.SearchEquipmentDTO, error)
}

type SearchService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
}

func NewSearchService(equipmentRepository repositories.EquipmentRepositoryInterface) SearchServiceInterface {
	return &SearchService{equipmentRepository: equipmentRepository}
}

// UniversalSearch ищет по asset_id, марке, модели, серии и имени текущего
// держателя. Ноль совпадений - это ответ success=false с сообщением,
// а не пустой успешный список.
func (s *SearchService) UniversalSearch(ctx context.Context, query string) ([]dto.SearchEquipmentDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("El término de búsqueda no puede estar vacío.")
	}

	equipments, err := s.equipmentRepository.SearchEquipments(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(equipments) == 0 {
		return nil, apperrors.NewNotFoundError("No se encontraron resultados para %q.", query)
	}

	dtos := make([]dto.SearchEquipmentDTO, 0, len(equipments))
	for _, entity := range equipments {
		dtos = append(dtos, dto.SearchEquipmentDTO{
			ID:            entity.ID,
			AssetID:       entity.AssetID,
			Tipo:          entity.Tipo,
			Fabricante:    entity.Fabricante,
			Modelo:        entity.Modelo,
			Serie:         entity.Serie,
			UsuarioID:     entity.UsuarioID,
			UsuarioNombre: entity.UsuarioNombre,
		})
	}
	return dtos, nil
}
