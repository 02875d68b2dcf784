package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"inventory-system/internal/dto"
	"inventory-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubInventoryService struct {
	items      []dto.InventoryItemDTO
	pagination utils.Pagination
	id         int64
	err        error
	gotCreate  dto.CreateInventoryItemDTO
}

func (s *stubInventoryService) GetItems(_ context.Context, _ int, _ string, _ string) ([]dto.InventoryItemDTO, utils.Pagination, error) {
	return s.items, s.pagination, s.err
}

func (s *stubInventoryService) CreateItem(_ context.Context, payload dto.CreateInventoryItemDTO) (int64, error) {
	s.gotCreate = payload
	return s.id, s.err
}

func (s *stubInventoryService) UpdateItem(_ context.Context, _ dto.UpdateInventoryItemDTO) error {
	return s.err
}

func (s *stubInventoryService) DeleteItem(_ context.Context, _ dto.DeleteInventoryItemDTO) error {
	return s.err
}

func TestGetItemsEnvelope(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubInventoryService{
		items:      []dto.InventoryItemDTO{{ID: 3, Tipo: "Cable", Descripcion: "Cable HDMI 2m", Cantidad: 15}},
		pagination: utils.Pagination{CurrentPage: 1, TotalPages: 1, Categoria: "Accesorios"},
	}
	ctrl := NewInventoryController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/?categoria=Accesorios", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.GetItems(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["items"], 1)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, "Accesorios", pagination["categoria"])
}

// Создание возвращает id новой строки в конверте.
func TestCreateItemReturnsID(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubInventoryService{id: 42}
	ctrl := NewInventoryController(svc, zap.NewNop())

	form := url.Values{}
	form.Set("tipo", "Cable")
	form.Set("descripcion", "Cable HDMI 2m")
	form.Set("cantidad", "15")
	form.Set("categoria", "Accesorios")
	rec := doForm(t, e, ctrl.CreateItem, http.MethodPost, form)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(42), body["id"])
	assert.Equal(t, "Item agregado correctamente al inventario.", body["message"])
}

func TestCreateItemBlankFieldsRejected(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewInventoryController(&stubInventoryService{}, zap.NewNop())

	form := url.Values{}
	form.Set("tipo", "   ")
	form.Set("descripcion", "Cable HDMI 2m")
	form.Set("categoria", "Accesorios")
	rec := doForm(t, e, ctrl.CreateItem, http.MethodPost, form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestUpdateItemForm(t *testing.T) {
	e := newTestEcho(t)
	svc := &stubInventoryService{}
	ctrl := NewInventoryController(svc, zap.NewNop())

	form := url.Values{}
	form.Set("id", "42")
	form.Set("tipo", "Cable")
	form.Set("descripcion", "Cable HDMI 3m")
	form.Set("cantidad", "10")
	form.Set("categoria", "Accesorios")
	rec := doForm(t, e, ctrl.UpdateItem, http.MethodPut, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Item actualizado correctamente.", body["message"])
}
