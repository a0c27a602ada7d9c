package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	service := New(userRepo)
	defer ctrl.Finish()
	return service, userRepo
}

func TestEnsureExists(t *testing.T) {
	service, userRepo := NewMock(t)
	tests := []struct {
		name          string
		userID        string
		username      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Creates missing user",
			userID:   "user-1",
			username: "Marek",
			prepareMock: func() {
				userRepo.EXPECT().EnsureExists(gomock.Any(), "user-1", "Marek").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Second call is idempotent",
			userID:   "user-1",
			username: "Marek",
			prepareMock: func() {
				userRepo.EXPECT().EnsureExists(gomock.Any(), "user-1", "Marek").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Empty user id rejected without repo call",
			userID:        "",
			username:      "Marek",
			prepareMock:   func() {},
			expectedError: ErrEmptyUserID,
		},
		{
			name:     "Repo error propagated",
			userID:   "user-1",
			username: "Marek",
			prepareMock: func() {
				userRepo.EXPECT().EnsureExists(gomock.Any(), "user-1", "Marek").Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.EnsureExists(context.Background(), tt.userID, tt.username)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	service, userRepo := NewMock(t)
	tests := []struct {
		name          string
		userID        string
		username      string
		phone         string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Registers phone",
			userID:   "user-1",
			username: "Marek",
			phone:    "+48 600 100 200",
			prepareMock: func() {
				userRepo.EXPECT().Register(gomock.Any(), "user-1", "Marek", "+48 600 100 200").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Second registration overwrites",
			userID:   "user-1",
			username: "Marek",
			phone:    "+48 700 000 000",
			prepareMock: func() {
				userRepo.EXPECT().Register(gomock.Any(), "user-1", "Marek", "+48 700 000 000").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Empty phone rejected",
			userID:        "user-1",
			username:      "Marek",
			phone:         "",
			prepareMock:   func() {},
			expectedError: ErrEmptyPhone,
		},
		{
			name:          "Empty user id rejected",
			userID:        "",
			username:      "Marek",
			phone:         "+48 600 100 200",
			prepareMock:   func() {},
			expectedError: ErrEmptyUserID,
		},
		{
			name:     "Repo error propagated",
			userID:   "user-1",
			username: "Marek",
			phone:    "+48 600 100 200",
			prepareMock: func() {
				userRepo.EXPECT().Register(gomock.Any(), "user-1", "Marek", "+48 600 100 200").Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Register(context.Background(), tt.userID, tt.username, tt.phone)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
