package repositories

import (
	"context"
	"fmt"

	"inventory-system/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// Как latestAssignmentJoin, но подзапрос дополнительно отдаёт
// fecha_asignacion - в отчёт попадает дата последнего назначения.
const reportAssignmentJoin = `
	LEFT JOIN (
		SELECT a1.asset_id, a1.usuario_id, a1.fecha_asignacion
		FROM asignaciones a1
		INNER JOIN (
			SELECT asset_id, MAX(fecha_asignacion) AS max_fecha
			FROM asignaciones
			GROUP BY asset_id
		) a2 ON a1.asset_id = a2.asset_id AND a1.fecha_asignacion = a2.max_fecha
	) ultima_asignacion ON e.asset_id = ultima_asignacion.asset_id
	LEFT JOIN usuarios u ON ultima_asignacion.usuario_id = u.id AND u.activo = TRUE`

type ReportRepositoryInterface interface {
	GetEquipmentReport(ctx context.Context, search string) ([]entities.ReportRow, error)
}

type reportRepository struct {
	storage database
	logger  *zap.Logger
}

func NewReportRepository(storage database, logger *zap.Logger) ReportRepositoryInterface {
	return &reportRepository{storage: storage, logger: logger}
}

// GetEquipmentReport - плоская выгрузка всего парка без пагинации
// (экспортная семантика). Фильтр поиска тот же, что у списка.
func (r *reportRepository) GetEquipmentReport(ctx context.Context, search string) ([]entities.ReportRow, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"e.asset_id, e.tipo, e.fabricante, e.modelo, e.serie",
		"u.nombre AS usuario_nombre",
		"ultima_asignacion.fecha_asignacion",
	).From("equipos e").JoinClause(reportAssignmentJoin)
	if search != "" {
		builder = builder.Where(equipmentSearchWhere(search))
	}
	builder = builder.OrderBy("e.asset_id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса отчета: %w", err)
	}

	r.logger.Debug("Выполнение запроса отчета", zap.String("query", query), zap.Any("args", args))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выгрузки отчета: %w", err)
	}
	defer rows.Close()

	result := make([]entities.ReportRow, 0)
	for rows.Next() {
		var row entities.ReportRow
		if err := rows.Scan(&row.AssetID, &row.Tipo, &row.Fabricante, &row.Modelo, &row.Serie, &row.UsuarioNombre, &row.FechaAsignacion); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
