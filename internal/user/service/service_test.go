package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flexquotes/backend/internal/user/model"
	"github.com/flexquotes/backend/pkg/authtoken"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) ListByTeam(ctx context.Context, teamUID string) ([]model.User, error) {
	args := m.Called(ctx, teamUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func TestService_Sync(t *testing.T) {
	ctx := context.Background()
	verified := true
	identity := &authtoken.Identity{
		ID:            "u1",
		Name:          "Alice",
		Email:         "alice@example.com",
		Image:         "https://img.example.com/alice",
		EmailVerified: &verified,
	}

	t.Run("claims only", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		expected := &model.User{
			ID:            "u1",
			Name:          "Alice",
			Email:         "alice@example.com",
			Image:         "https://img.example.com/alice",
			EmailVerified: &verified,
		}
		mockRepo.On("Upsert", mock.Anything, expected).Return(expected, nil)

		user, err := svc.Sync(ctx, identity, nil)
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("request fields override claims", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		name := "Alicia"
		expected := &model.User{
			ID:            "u1",
			Name:          "Alicia",
			Email:         "alice@example.com",
			Image:         "https://img.example.com/alice",
			EmailVerified: &verified,
		}
		mockRepo.On("Upsert", mock.Anything, expected).Return(expected, nil)

		user, err := svc.Sync(ctx, identity, &model.SyncProfileRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		user, err := svc.Sync(ctx, identity, nil)
		assert.Nil(t, user)
		assert.Error(t, err)
	})
}

func TestService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetByID", mock.Anything, "u1").Return(&model.User{ID: "u1", Name: "Alice"}, nil)

		user, err := svc.Me(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("not found before first sync", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetByID", mock.Anything, "u1").Return(nil, model.ErrUserNotFound)

		user, err := svc.Me(ctx, "u1")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}
