package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const equipmentFieldsRepo = "e.id, e.asset_id, e.tipo, e.fabricante, e.modelo, e.serie"

// «Текущий держатель» - строка asignaciones с максимальной fecha_asignacion
// по asset_id, присоединённая только к активному пользователю. Если
// последний держатель неактивен, join не отдаёт никого - без отката к более
// старым назначениям.
const latestAssignmentJoin = `
	LEFT JOIN (
		SELECT a1.asset_id, a1.usuario_id
		FROM asignaciones a1
		INNER JOIN (
			SELECT asset_id, MAX(fecha_asignacion) AS max_fecha
			FROM asignaciones
			GROUP BY asset_id
		) a2 ON a1.asset_id = a2.asset_id AND a1.fecha_asignacion = a2.max_fecha
	) ultima_asignacion ON e.asset_id = ultima_asignacion.asset_id
	LEFT JOIN usuarios u ON ultima_asignacion.usuario_id = u.id AND u.activo = TRUE`

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, search string, limit uint64, offset uint64) ([]entities.Equipment, uint64, error)
	SearchEquipments(ctx context.Context, search string) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) error
	UpdateEquipment(ctx context.Context, payload dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, id int64, assetID int64) error
}

type EquipmentRepository struct {
	storage database
	logger  *zap.Logger
}

func NewEquipmentRepository(storage database, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

// equipmentSearchWhere повторяет контракт поиска списка: точное совпадение
// asset_id с числовой формой запроса либо подстрока без регистра по
// tipo/fabricante/modelo/serie. Нечисловой запрос даёт asset_id=0 и
// не совпадает ни с чем (activos.id строго положительные).
func equipmentSearchWhere(search string) sq.Sqlizer {
	assetID, _ := strconv.ParseInt(search, 10, 64)
	pattern := "%" + search + "%"
	return sq.Or{
		sq.Eq{"e.asset_id": assetID},
		sq.Expr("e.tipo ILIKE ?", pattern),
		sq.Expr("e.fabricante ILIKE ?", pattern),
		sq.Expr("e.modelo ILIKE ?", pattern),
		sq.Expr("e.serie ILIKE ?", pattern),
	}
}

func scanEquipment(rows pgx.Rows, withUserID bool) ([]entities.Equipment, error) {
	result := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		var err error
		if withUserID {
			err = rows.Scan(&e.ID, &e.AssetID, &e.Tipo, &e.Fabricante, &e.Modelo, &e.Serie, &e.UsuarioID, &e.UsuarioNombre)
		} else {
			err = rows.Scan(&e.ID, &e.AssetID, &e.Tipo, &e.Fabricante, &e.Modelo, &e.Serie, &e.UsuarioNombre)
		}
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, search string, limit uint64, offset uint64) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(e.id)").From("equipos e")
	if search != "" {
		countBuilder = countBuilder.Where(equipmentSearchWhere(search))
	}
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки COUNT-запроса: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета оборудования: %w", err)
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	builder := psql.Select(equipmentFieldsRepo, "u.nombre AS usuario_nombre").
		From("equipos e").
		JoinClause(latestAssignmentJoin)
	if search != "" {
		builder = builder.Where(equipmentSearchWhere(search))
	}
	builder = builder.OrderBy("e.asset_id DESC").Limit(limit).Offset(offset)

	mainSQL, mainArgs, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки основного запроса: %w", err)
	}
	r.logger.Debug("Выполнение запроса списка оборудования", zap.String("query", mainSQL), zap.Any("args", mainArgs))

	rows, err := r.storage.Query(ctx, mainSQL, mainArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения оборудования: %w", err)
	}
	defer rows.Close()

	equipments, err := scanEquipment(rows, false)
	if err != nil {
		return nil, 0, err
	}
	return equipments, total, nil
}

const searchEquipmentsSQL = `
	SELECT e.id, e.asset_id, e.tipo, e.fabricante, e.modelo, e.serie,
		u.id AS usuario_id, u.nombre AS usuario_nombre
	FROM equipos e` + latestAssignmentJoin + `
	WHERE e.asset_id = $1
		OR e.fabricante ILIKE $2
		OR e.modelo ILIKE $2
		OR e.serie ILIKE $2
		OR u.nombre ILIKE $2
	ORDER BY e.asset_id DESC`

// SearchEquipments - универсальный поиск без пагинации: оборудование
// вместе с текущим держателем, совпадение по asset_id, марке, модели,
// серии или имени пользователя.
func (r *EquipmentRepository) SearchEquipments(ctx context.Context, search string) ([]entities.Equipment, error) {
	assetID, _ := strconv.ParseInt(search, 10, 64)
	pattern := "%" + search + "%"

	rows, err := r.storage.Query(ctx, searchEquipmentsSQL, assetID, pattern)
	if err != nil {
		return nil, fmt.Errorf("ошибка универсального поиска: %w", err)
	}
	defer rows.Close()

	return scanEquipment(rows, true)
}

func translateWriteError(err error, assetID int64, message string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &apperrors.DuplicateKeyError{Value: strconv.FormatInt(assetID, 10)}
	}
	return apperrors.NewWriteError(message, err)
}

// CreateEquipment атомарно создаёт активо, оборудование и - если передан
// usuario_id - первое назначение. Любой сбой откатывает все шаги.
func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		descripcion := fmt.Sprintf("Activo para equipo %s %s", payload.Tipo, payload.Modelo)
		if _, err := tx.Exec(ctx,
			`INSERT INTO activos (id, descripcion) VALUES ($1, $2)`,
			payload.AssetID, descripcion,
		); err != nil {
			return translateWriteError(err, payload.AssetID, "Error al crear el activo.")
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO equipos (asset_id, tipo, fabricante, modelo, serie) VALUES ($1, $2, $3, $4, $5)`,
			payload.AssetID, payload.Tipo, payload.Fabricante, payload.Modelo, payload.Serie,
		); err != nil {
			return translateWriteError(err, payload.AssetID, "Error al crear el equipo.")
		}

		if payload.UsuarioID > 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO asignaciones (asset_id, usuario_id, fecha_asignacion) VALUES ($1, $2, NOW())`,
				payload.AssetID, payload.UsuarioID,
			); err != nil {
				return apperrors.NewWriteError("Error al asignar el equipo al usuario.", err)
			}
		}
		return nil
	})
}

// UpdateEquipment атомарно обновляет поля оборудования и пересоздаёт
// назначение: прежняя история по asset_id удаляется, при usuario_id>0
// вставляется свежая строка с текущим временем.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, payload dto.UpdateEquipmentDTO) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE equipos SET tipo = $1, fabricante = $2, modelo = $3, serie = $4 WHERE id = $5`,
			payload.Tipo, payload.Fabricante, payload.Modelo, payload.Serie, payload.ID,
		)
		if err != nil {
			return apperrors.NewWriteError("Error al actualizar el equipo.", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		var assetID int64
		if err := tx.QueryRow(ctx,
			`SELECT asset_id FROM equipos WHERE id = $1`, payload.ID,
		).Scan(&assetID); err != nil {
			return apperrors.NewWriteError("Error al actualizar el equipo.", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM asignaciones WHERE asset_id = $1`, assetID,
		); err != nil {
			return apperrors.NewWriteError("Error al reasignar el equipo.", err)
		}

		if payload.UsuarioID > 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO asignaciones (asset_id, usuario_id, fecha_asignacion) VALUES ($1, $2, NOW())`,
				assetID, payload.UsuarioID,
			); err != nil {
				return apperrors.NewWriteError("Error al reasignar el equipo.", err)
			}
		}
		return nil
	})
}

// DeleteEquipment удаляет назначения, оборудование и активо в этом
// порядке - иначе упрёмся во внешние ключи.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id int64, assetID int64) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM asignaciones WHERE asset_id = $1`, assetID,
		); err != nil {
			return apperrors.NewWriteError("Error al borrar las asignaciones del equipo.", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM equipos WHERE id = $1`, id)
		if err != nil {
			return apperrors.NewWriteError("Error al borrar el equipo.", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM activos WHERE id = $1`, assetID); err != nil {
			return apperrors.NewWriteError("Error al borrar el activo.", err)
		}
		return nil
	})
}
