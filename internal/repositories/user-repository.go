package repositories

import (
	"context"
	"errors"
	"fmt"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepositoryInterface interface {
	FindUser(ctx context.Context, id int64) (*entities.User, error)
	GetActiveUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, payload dto.UpdateUserDTO) error
	DeactivateUser(ctx context.Context, id int64) error
}

type UserRepository struct {
	storage database
	logger  *zap.Logger
}

func NewUserRepository(storage database, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func (r *UserRepository) FindUser(ctx context.Context, id int64) (*entities.User, error) {
	var user entities.User
	err := r.storage.QueryRow(ctx,
		`SELECT id, nombre, correo, area, ubicacion FROM usuarios WHERE id = $1`, id,
	).Scan(&user.ID, &user.Nombre, &user.Correo, &user.Area, &user.Ubicacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetActiveUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, nombre FROM usuarios WHERE activo = TRUE ORDER BY nombre ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Nombre); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUser(ctx context.Context, payload dto.UpdateUserDTO) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE usuarios SET nombre = $1, correo = $2, area = $3, ubicacion = $4 WHERE id = $5`,
		payload.Nombre, payload.Correo, payload.Area, payload.Ubicacion, payload.ID,
	)
	if err != nil {
		return apperrors.NewWriteError("Error al actualizar el usuario.", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateUser - мягкое удаление. Условие activo = TRUE обязательно:
// повторная деактивация (или несуществующий id) даёт ноль затронутых
// строк и отчитывается как ошибка, а не как тихий успех.
func (r *UserRepository) DeactivateUser(ctx context.Context, id int64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE usuarios SET activo = FALSE WHERE id = $1 AND activo = TRUE`, id,
	)
	if err != nil {
		return apperrors.NewWriteError("Error al desactivar el usuario.", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Debug("Деактивация не затронула ни одной строки", zap.Int64("id", id))
		return apperrors.ErrUserInactive
	}
	return nil
}
