package services

import (
	"context"
	"testing"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	user  *entities.User
	users []entities.User
	err   error
	calls int
}

func (s *stubUserRepo) FindUser(_ context.Context, _ int64) (*entities.User, error) {
	s.calls++
	return s.user, s.err
}

func (s *stubUserRepo) GetActiveUsers(_ context.Context) ([]entities.User, error) {
	s.calls++
	return s.users, s.err
}

func (s *stubUserRepo) UpdateUser(_ context.Context, _ dto.UpdateUserDTO) error {
	s.calls++
	return s.err
}

func (s *stubUserRepo) DeactivateUser(_ context.Context, _ int64) error {
	s.calls++
	return s.err
}

type stubAssignmentRepo struct {
	err          error
	gotAssetID   int64
	gotUsuarioID int64
	calls        int
}

func (s *stubAssignmentRepo) CreateAssignment(_ context.Context, assetID int64, usuarioID int64) error {
	s.calls++
	s.gotAssetID, s.gotUsuarioID = assetID, usuarioID
	return s.err
}

func newUserServiceWithStubs(userRepo *stubUserRepo, assignmentRepo *stubAssignmentRepo) UserServiceInterface {
	return NewUserService(userRepo, assignmentRepo, zap.NewNop())
}

func TestFindUserInvalidID(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserServiceWithStubs(repo, &stubAssignmentRepo{})

	_, err := svc.FindUser(context.Background(), 0)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ID de usuario no válido.", validationErr.Message)
	assert.Zero(t, repo.calls)
}

func TestFindUserNotFoundMessage(t *testing.T) {
	repo := &stubUserRepo{err: apperrors.ErrNotFound}
	svc := newUserServiceWithStubs(repo, &stubAssignmentRepo{})

	_, err := svc.FindUser(context.Background(), 99)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Usuario no encontrado.", err.Error())
}

func TestFindUserMapsEntity(t *testing.T) {
	repo := &stubUserRepo{user: &entities.User{
		ID: 7, Nombre: "Ana Pérez", Correo: null.StringFrom("ana@example.com"),
	}}
	svc := newUserServiceWithStubs(repo, &stubAssignmentRepo{})

	user, err := svc.FindUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "ana@example.com", user.Correo.String)
	assert.False(t, user.Area.Valid)
}

func TestGetActiveUsers(t *testing.T) {
	repo := &stubUserRepo{users: []entities.User{
		{ID: 1, Nombre: "Ana Pérez"},
		{ID: 2, Nombre: "Luis Gómez"},
	}}
	svc := newUserServiceWithStubs(repo, &stubAssignmentRepo{})

	users, err := svc.GetActiveUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Luis Gómez", users[1].Nombre)
}

func TestUpdateUserValidation(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserServiceWithStubs(repo, &stubAssignmentRepo{})

	err := svc.UpdateUser(context.Background(), dto.UpdateUserDTO{ID: 7, Nombre: ""})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "El nombre no puede estar vacío.", validationErr.Message)
	assert.Zero(t, repo.calls)
}

func TestDeactivateUserPassesThroughInactive(t *testing.T) {
	repo := &stubUserRepo{err: apperrors.ErrUserInactive}
	svc := newUserServiceWithStubs(repo, &stubAssignmentRepo{})

	err := svc.DeactivateUser(context.Background(), dto.DeactivateUserDTO{ID: 7})
	assert.ErrorIs(t, err, apperrors.ErrUserInactive)
}

func TestAssignUserValidation(t *testing.T) {
	assignmentRepo := &stubAssignmentRepo{}
	svc := newUserServiceWithStubs(&stubUserRepo{}, assignmentRepo)

	err := svc.AssignUser(context.Background(), dto.AssignUserDTO{AssetID: 1001, UsuarioID: 0})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "IDs de activo o usuario no válidos.", validationErr.Message)
	assert.Zero(t, assignmentRepo.calls)
}

func TestAssignUser(t *testing.T) {
	assignmentRepo := &stubAssignmentRepo{}
	svc := newUserServiceWithStubs(&stubUserRepo{}, assignmentRepo)

	require.NoError(t, svc.AssignUser(context.Background(), dto.AssignUserDTO{AssetID: 1001, UsuarioID: 7}))
	assert.Equal(t, int64(1001), assignmentRepo.gotAssetID)
	assert.Equal(t, int64(7), assignmentRepo.gotUsuarioID)
}
