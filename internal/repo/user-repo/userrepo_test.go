package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/pwierzbicki/dolgi/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_EnsureExists(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username`)

	tests := []struct {
		name      string
		userID    string
		username  string
		mockSetup func()
		expectErr bool
	}{
		{
			name:     "Inserts a new user",
			userID:   "10",
			username: "anna",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("10", "anna").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:     "Refreshes the display name of an existing user",
			userID:   "10",
			username: "ania",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("10", "ania").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:     "Database error",
			userID:   "10",
			username: "anna",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("10", "anna").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.EnsureExists(context.Background(), tt.userID, tt.username)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Register(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username, phone = EXCLUDED.phone`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Registers the phone",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("10", "anna", "+48123456789").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("10", "anna", "+48123456789").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Register(context.Background(), "10", "anna", "+48123456789")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	phone := "+48123456789"
	query := regexp.QuoteMeta(`SELECT user_id, username, phone FROM users WHERE user_id = $1`)

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "Valid userID returns user",
			userID: "10",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "username", "phone"}).
					AddRow("10", "anna", &phone)
				mock.ExpectQuery(query).
					WithArgs("10").
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.User{UserID: "10", Username: "anna", Phone: &phone},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: "99",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("99").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: "10",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("10").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
