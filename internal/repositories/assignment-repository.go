package repositories

import (
	"context"

	apperrors "inventory-system/pkg/errors"

	"go.uber.org/zap"
)

type AssignmentRepositoryInterface interface {
	CreateAssignment(ctx context.Context, assetID int64, usuarioID int64) error
}

type AssignmentRepository struct {
	storage database
	logger  *zap.Logger
}

func NewAssignmentRepository(storage database, logger *zap.Logger) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage, logger: logger}
}

// CreateAssignment дописывает строку истории с текущим временем.
// Существование asset_id/usuario_id не проверяется, прежние назначения
// не удаляются: «текущего» держателя определяет порядок fecha_asignacion.
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assetID int64, usuarioID int64) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO asignaciones (asset_id, usuario_id, fecha_asignacion) VALUES ($1, $2, NOW())`,
		assetID, usuarioID,
	)
	if err != nil {
		return apperrors.NewWriteError("Error al registrar la asignación.", err)
	}
	r.logger.Debug("Назначение записано", zap.Int64("asset_id", assetID), zap.Int64("usuario_id", usuarioID))
	return nil
}
