package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserRepository) ListUsers(ctx context.Context, page int, pageSize int) ([]*models.User, int, error) {
	args := m.Called(ctx, page, pageSize)
	r0, _ := args.Get(0).([]*models.User)
	return r0, args.Int(1), args.Error(2)
}

func (m *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *UserRepository) DeleteUserCascade(ctx context.Context, id uuid.UUID) (*models.UserCascade, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.UserCascade)
	return r0, args.Error(1)
}

type rowScanner struct {
	mock.Mock
}

func (m *rowScanner) Scan(dest ...any) error {
	args := m.Called(dest)
	return args.Error(0)
}
