package repositories

import (
	"context"
	"fmt"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type InventoryRepositoryInterface interface {
	GetItems(ctx context.Context, search string, categoria string, limit uint64, offset uint64) ([]entities.InventoryItem, uint64, error)
	CreateItem(ctx context.Context, payload dto.CreateInventoryItemDTO) (int64, error)
	UpdateItem(ctx context.Context, payload dto.UpdateInventoryItemDTO) error
	DeleteItem(ctx context.Context, id int64) error
}

type InventoryRepository struct {
	storage database
	logger  *zap.Logger
}

func NewInventoryRepository(storage database, logger *zap.Logger) InventoryRepositoryInterface {
	return &InventoryRepository{storage: storage, logger: logger}
}

func inventoryWhere(builder sq.SelectBuilder, search string, categoria string) sq.SelectBuilder {
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("tipo ILIKE ?", pattern),
			sq.Expr("descripcion ILIKE ?", pattern),
			sq.Expr("ubicacion ILIKE ?", pattern),
		})
	}
	if categoria != "" {
		builder = builder.Where(sq.Eq{"categoria": categoria})
	}
	return builder
}

func (r *InventoryRepository) GetItems(ctx context.Context, search string, categoria string, limit uint64, offset uint64) ([]entities.InventoryItem, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countSQL, countArgs, err := inventoryWhere(psql.Select("COUNT(*)").From("inventario"), search, categoria).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки COUNT-запроса: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета инвентаря: %w", err)
	}
	if total == 0 {
		return []entities.InventoryItem{}, 0, nil
	}

	mainSQL, mainArgs, err := inventoryWhere(
		psql.Select("id, tipo, descripcion, cantidad, ubicacion, categoria, created_at").From("inventario"),
		search, categoria,
	).OrderBy("created_at DESC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки основного запроса: %w", err)
	}

	r.logger.Debug("Выполнение запроса списка инвентаря", zap.String("query", mainSQL), zap.Any("args", mainArgs))

	rows, err := r.storage.Query(ctx, mainSQL, mainArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения инвентаря: %w", err)
	}
	defer rows.Close()

	items := make([]entities.InventoryItem, 0)
	for rows.Next() {
		var item entities.InventoryItem
		if err := rows.Scan(&item.ID, &item.Tipo, &item.Descripcion, &item.Cantidad, &item.Ubicacion, &item.Categoria, &item.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

func (r *InventoryRepository) CreateItem(ctx context.Context, payload dto.CreateInventoryItemDTO) (int64, error) {
	var id int64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO inventario (tipo, descripcion, cantidad, ubicacion, categoria) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		payload.Tipo, payload.Descripcion, payload.Cantidad, payload.Ubicacion, payload.Categoria,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewWriteError("Error al crear el item de inventario.", err)
	}
	return id, nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, payload dto.UpdateInventoryItemDTO) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE inventario SET tipo = $1, descripcion = $2, cantidad = $3, ubicacion = $4, categoria = $5 WHERE id = $6`,
		payload.Tipo, payload.Descripcion, payload.Cantidad, payload.Ubicacion, payload.Categoria, payload.ID,
	)
	if err != nil {
		return apperrors.NewWriteError("Error al actualizar el item de inventario.", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id int64) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM inventario WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewWriteError("Error al borrar el item de inventario.", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
