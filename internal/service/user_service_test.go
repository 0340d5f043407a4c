package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cathub/internal/cache"
	apperrors "cathub/internal/errors"
	"cathub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.PostUser) (uint, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, patch model.PutUser, id uint) error {
	args := m.Called(ctx, patch, id)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestUserService_UpdateUser_Authorization(t *testing.T) {
	name := "Renamed"
	patch := model.PutUser{UserName: &name}

	tests := []struct {
		name          string
		targetID      uint
		actor         model.Principal
		setupMock     func(*MockUserRepository)
		wantForbidden bool
	}{
		{
			name:     "self update allowed",
			targetID: 3,
			actor:    model.Principal{UserID: 3, Role: model.RoleUser},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, patch, uint(3)).Return(nil)
			},
		},
		{
			name:     "admin may update any profile",
			targetID: 9,
			actor:    model.Principal{UserID: 1, Role: model.RoleAdmin},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, patch, uint(9)).Return(nil)
			},
		},
		{
			name:          "non-admin updating another profile is forbidden",
			targetID:      9,
			actor:         model.Principal{UserID: 3, Role: model.RoleUser},
			setupMock:     func(m *MockUserRepository) {},
			wantForbidden: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo, (*cache.Client)(nil))
			err := service.UpdateUser(context.Background(), patch, tt.targetID, tt.actor)

			if tt.wantForbidden {
				assert.True(t, apperrors.IsForbidden(err))
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser_Authorization(t *testing.T) {
	tests := []struct {
		name          string
		targetID      uint
		actor         model.Principal
		setupMock     func(*MockUserRepository)
		wantForbidden bool
	}{
		{
			name:     "self delete allowed",
			targetID: 3,
			actor:    model.Principal{UserID: 3, Role: model.RoleUser},
			setupMock: func(m *MockUserRepository) {
				m.On("Delete", mock.Anything, uint(3)).Return(nil)
			},
		},
		{
			name:     "admin may delete any profile",
			targetID: 9,
			actor:    model.Principal{UserID: 1, Role: model.RoleAdmin},
			setupMock: func(m *MockUserRepository) {
				m.On("Delete", mock.Anything, uint(9)).Return(nil)
			},
		},
		{
			name:          "non-admin deleting another profile is forbidden",
			targetID:      9,
			actor:         model.Principal{UserID: 3, Role: model.RoleUser},
			setupMock:     func(m *MockUserRepository) {},
			wantForbidden: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo, (*cache.Client)(nil))
			err := service.DeleteUser(context.Background(), tt.targetID, tt.actor)

			if tt.wantForbidden {
				assert.True(t, apperrors.IsForbidden(err))
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser_RepoErrorPassesThrough(t *testing.T) {
	name := "Renamed"
	patch := model.PutUser{UserName: &name}

	mockRepo := new(MockUserRepository)
	mockRepo.On("Update", mock.Anything, patch, uint(5)).
		Return(apperrors.BadRequest("no users updated"))

	service := NewUserService(mockRepo, (*cache.Client)(nil))
	err := service.UpdateUser(context.Background(), patch, 5, model.Principal{UserID: 1, Role: model.RoleAdmin})

	assert.True(t, apperrors.IsBadRequest(err))
	mockRepo.AssertExpectations(t)
}
