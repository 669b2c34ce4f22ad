package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.LoginResponse)
	return r0, args.Error(1)
}

func (m *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserService) ListUsers(ctx context.Context, page int, pageSize int) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, page, pageSize)
	r0, _ := args.Get(0).(*models.PaginatedResponse)
	return r0, args.Error(1)
}

func (m *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req *models.ChangePasswordRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (*models.DeleteUserResult, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.DeleteUserResult)
	return r0, args.Error(1)
}
