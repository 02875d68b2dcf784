package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// integrationPool подключается к тестовой БД из TEST_DATABASE_URL и
// применяет схему. Без переменной окружения интеграционные тесты
// пропускаются, остальной пакет работает на моках.
func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан, интеграционный тест пропущен")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "Не удалось подключиться к тестовой БД")
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(context.Background()))

	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	require.NoError(t, err, "Не удалось прочитать schema.sql")
	_, err = pool.Exec(context.Background(), string(schema))
	require.NoError(t, err, "Не удалось применить схему БД")

	cleanupTables(t, pool)
	return pool
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE TABLE asignaciones, equipos, activos, inventario, usuarios RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Не удалось очистить таблицы")
}

func seedEquipmentWithUsers(t *testing.T, pool *pgxpool.Pool) (u1ID int64, u2ID int64) {
	t.Helper()
	ctx := context.Background()

	err := pool.QueryRow(ctx,
		`INSERT INTO usuarios (nombre, activo) VALUES ('Primer Titular', TRUE) RETURNING id`).Scan(&u1ID)
	require.NoError(t, err)
	err = pool.QueryRow(ctx,
		`INSERT INTO usuarios (nombre, activo) VALUES ('Segundo Titular', TRUE) RETURNING id`).Scan(&u2ID)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `INSERT INTO activos (id, descripcion) VALUES (1001, 'Activo para equipo Laptop XPS 13')`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO equipos (asset_id, tipo, fabricante, modelo, serie) VALUES (1001, 'Laptop', 'Dell', 'XPS 13', 'SN-INT-1')`)
	require.NoError(t, err)

	return u1ID, u2ID
}

// Текущим держателем считается последнее назначение по fecha_asignacion,
// и только пока этот пользователь активен. Деактивация последнего
// держателя не откатывает оборудование на предыдущего.
func TestEquipmentRepository_Integration_LatestAssignment(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	u1ID, u2ID := seedEquipmentWithUsers(t, pool)

	_, err := pool.Exec(ctx,
		`INSERT INTO asignaciones (asset_id, usuario_id, fecha_asignacion) VALUES (1001, $1, '2025-01-01T10:00:00Z')`, u1ID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO asignaciones (asset_id, usuario_id, fecha_asignacion) VALUES (1001, $1, '2025-02-01T10:00:00Z')`, u2ID)
	require.NoError(t, err)

	repo := NewEquipmentRepository(pool, zap.NewNop())

	equipments, total, err := repo.GetEquipments(ctx, "", 20, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)
	require.Len(t, equipments, 1)
	assert.Equal(t, "Segundo Titular", equipments[0].UsuarioNombre.String, "держателем должно быть позднее назначение")

	_, err = pool.Exec(ctx, `UPDATE usuarios SET activo = FALSE WHERE id = $1`, u2ID)
	require.NoError(t, err)

	equipments, _, err = repo.GetEquipments(ctx, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, equipments, 1)
	assert.False(t, equipments[0].UsuarioNombre.Valid, "после деактивации держателя оборудование остаётся без назначенного")
}

func TestEquipmentRepository_Integration_SearchResolvesHolder(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	u1ID, u2ID := seedEquipmentWithUsers(t, pool)

	_, err := pool.Exec(ctx,
		`INSERT INTO asignaciones (asset_id, usuario_id, fecha_asignacion) VALUES (1001, $1, '2025-01-01T10:00:00Z')`, u1ID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO asignaciones (asset_id, usuario_id, fecha_asignacion) VALUES (1001, $1, '2025-02-01T10:00:00Z')`, u2ID)
	require.NoError(t, err)

	repo := NewEquipmentRepository(pool, zap.NewNop())

	equipments, err := repo.SearchEquipments(ctx, "SN-INT-1")
	require.NoError(t, err)
	require.Len(t, equipments, 1)
	assert.Equal(t, u2ID, equipments[0].UsuarioID.Int64)
	assert.Equal(t, "Segundo Titular", equipments[0].UsuarioNombre.String)

	_, err = pool.Exec(ctx, `UPDATE usuarios SET activo = FALSE WHERE id = $1`, u2ID)
	require.NoError(t, err)

	equipments, err = repo.SearchEquipments(ctx, "SN-INT-1")
	require.NoError(t, err)
	require.Len(t, equipments, 1)
	assert.False(t, equipments[0].UsuarioID.Valid)
	assert.False(t, equipments[0].UsuarioNombre.Valid)
}
