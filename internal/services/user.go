package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	FindUser(ctx context.Context, id int64) (*dto.UserDTO, error)
	GetActiveUsers(ctx context.Context) ([]dto.ShortUserDTO, error)
	UpdateUser(ctx context.Context, payload dto.UpdateUserDTO) error
	DeactivateUser(ctx context.Context, payload dto.DeactivateUserDTO) error
	AssignUser(ctx context.Context, payload dto.AssignUserDTO) error
}

type UserService struct {
	userRepository       repositories.UserRepositoryInterface
	assignmentRepository repositories.AssignmentRepositoryInterface
	logger               *zap.Logger
}

func NewUserService(
	userRepository repositories.UserRepositoryInterface,
	assignmentRepository repositories.AssignmentRepositoryInterface,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{
		userRepository:       userRepository,
		assignmentRepository: assignmentRepository,
		logger:               logger,
	}
}

func userEntityToDTO(entity *entities.User) *dto.UserDTO {
	if entity == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:        entity.ID,
		Nombre:    entity.Nombre,
		Correo:    entity.Correo,
		Area:      entity.Area,
		Ubicacion: entity.Ubicacion,
	}
}

func (s *UserService) FindUser(ctx context.Context, id int64) (*dto.UserDTO, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("ID de usuario no válido.")
	}

	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewNotFoundError("Usuario no encontrado.")
		}
		return nil, err
	}
	return userEntityToDTO(user), nil
}

func (s *UserService) GetActiveUsers(ctx context.Context) ([]dto.ShortUserDTO, error) {
	users, err := s.userRepository.GetActiveUsers(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.ShortUserDTO, 0, len(users))
	for _, entity := range users {
		dtos = append(dtos, dto.ShortUserDTO{ID: entity.ID, Nombre: entity.Nombre})
	}
	return dtos, nil
}

func (s *UserService) UpdateUser(ctx context.Context, payload dto.UpdateUserDTO) error {
	if payload.ID <= 0 {
		return apperrors.NewValidationError("ID de usuario no válido para actualizar.")
	}
	if payload.Nombre == "" {
		return apperrors.NewValidationError("El nombre no puede estar vacío.")
	}

	if err := s.userRepository.UpdateUser(ctx, payload); err != nil {
		s.logger.Error("Ошибка при обновлении пользователя", zap.Int64("id", payload.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *UserService) DeactivateUser(ctx context.Context, payload dto.DeactivateUserDTO) error {
	if payload.ID <= 0 {
		return apperrors.NewValidationError("ID de usuario no válido para desactivar.")
	}

	if err := s.userRepository.DeactivateUser(ctx, payload.ID); err != nil {
		s.logger.Warn("Деактивация пользователя не прошла", zap.Int64("id", payload.ID), zap.Error(err))
		return err
	}
	return nil
}

// AssignUser дописывает назначение без проверки существования ids -
// это зона ответственности вызывающего (легаси-контракт).
func (s *UserService) AssignUser(ctx context.Context, payload dto.AssignUserDTO) error {
	if payload.AssetID <= 0 || payload.UsuarioID <= 0 {
		return apperrors.NewValidationError("IDs de activo o usuario no válidos.")
	}
	return s.assignmentRepository.CreateAssignment(ctx, payload.AssetID, payload.UsuarioID)
}
