package services

import (
	"context"
	"testing"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInventoryRepo struct {
	items []entities.InventoryItem
	total uint64
	id    int64
	err   error

	gotCreate dto.CreateInventoryItemDTO
	gotUpdate dto.UpdateInventoryItemDTO
	calls     int
}

func (s *stubInventoryRepo) GetItems(_ context.Context, _ string, _ string, _ uint64, _ uint64) ([]entities.InventoryItem, uint64, error) {
	s.calls++
	return s.items, s.total, s.err
}

func (s *stubInventoryRepo) CreateItem(_ context.Context, payload dto.CreateInventoryItemDTO) (int64, error) {
	s.calls++
	s.gotCreate = payload
	return s.id, s.err
}

func (s *stubInventoryRepo) UpdateItem(_ context.Context, payload dto.UpdateInventoryItemDTO) error {
	s.calls++
	s.gotUpdate = payload
	return s.err
}

func (s *stubInventoryRepo) DeleteItem(_ context.Context, _ int64) error {
	s.calls++
	return s.err
}

func TestCreateItemRequiresFields(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := NewInventoryService(repo)

	// Строки из одних пробелов считаются пустыми.
	_, err := svc.CreateItem(context.Background(), dto.CreateInventoryItemDTO{
		Tipo: "  ", Descripcion: "Cable HDMI", Categoria: "Accesorios",
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Todos los campos son requeridos y la cantidad debe ser mayor o igual a 0.", validationErr.Message)
	assert.Zero(t, repo.calls)
}

func TestCreateItemNegativeQuantity(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := NewInventoryService(repo)

	_, err := svc.CreateItem(context.Background(), dto.CreateInventoryItemDTO{
		Tipo: "Cable", Descripcion: "Cable HDMI", Categoria: "Accesorios", Cantidad: -1,
	})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Zero(t, repo.calls)
}

func TestCreateItemDefaultsLocation(t *testing.T) {
	repo := &stubInventoryRepo{id: 42}
	svc := NewInventoryService(repo)

	id, err := svc.CreateItem(context.Background(), dto.CreateInventoryItemDTO{
		Tipo: "Cable", Descripcion: "Cable HDMI", Categoria: "Accesorios", Cantidad: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, constants.DefaultInventoryLocation, repo.gotCreate.Ubicacion)
}

func TestUpdateItemInvalidID(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := NewInventoryService(repo)

	err := svc.UpdateItem(context.Background(), dto.UpdateInventoryItemDTO{ID: 0, Tipo: "Cable"})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ID de item inválido.", validationErr.Message)
	assert.Zero(t, repo.calls)
}

func TestUpdateItemDefaultsLocation(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := NewInventoryService(repo)

	err := svc.UpdateItem(context.Background(), dto.UpdateInventoryItemDTO{
		ID: 42, Tipo: "Cable", Descripcion: "Cable HDMI", Categoria: "Accesorios", Cantidad: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultInventoryLocation, repo.gotUpdate.Ubicacion)
}

func TestDeleteItemInvalidID(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := NewInventoryService(repo)

	err := svc.DeleteItem(context.Background(), dto.DeleteInventoryItemDTO{ID: -1})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ID inválido para borrar.", validationErr.Message)
	assert.Zero(t, repo.calls)
}
