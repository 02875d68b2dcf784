package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetEquipmentReport(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := NewReportRepository(mock, zap.NewNop())

	asignado := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT e.asset_id, e.tipo").
		WillReturnRows(pgxmock.NewRows([]string{"asset_id", "tipo", "fabricante", "modelo", "serie", "usuario_nombre", "fecha_asignacion"}).
			AddRow(int64(1002), "Laptop", "Dell", "XPS 13", "SN-2", "Ana Pérez", asignado).
			AddRow(int64(1001), "Monitor", "LG", "27UL500", "SN-1", nil, nil))

	rows, err := repo.GetEquipmentReport(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana Pérez", rows[0].UsuarioNombre.String)
	assert.Equal(t, asignado, rows[0].FechaAsignacion.Time)
	assert.False(t, rows[1].UsuarioNombre.Valid)
	assert.False(t, rows[1].FechaAsignacion.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEquipmentReportWithSearch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := NewReportRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT e.asset_id, e.tipo").
		WithArgs(int64(1001), "%1001%", "%1001%", "%1001%", "%1001%").
		WillReturnRows(pgxmock.NewRows([]string{"asset_id", "tipo", "fabricante", "modelo", "serie", "usuario_nombre", "fecha_asignacion"}))

	rows, err := repo.GetEquipmentReport(context.Background(), "1001")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
