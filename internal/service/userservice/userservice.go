package userservice

import (
	"context"
	"errors"

	"github.com/pwierzbicki/dolgi/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	EnsureExists(ctx context.Context, userID, username string) error
	Register(ctx context.Context, userID, username, phone string) error
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type Service struct {
	userRepo Repo
}

func New(userRepo Repo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

var (
	ErrEmptyUserID = errors.New("empty user id")
	ErrEmptyPhone  = errors.New("empty phone")
)

// EnsureExists upserts the user record. Safe to call every time a user is
// referenced; a registered phone is never overwritten here.
func (s *Service) EnsureExists(ctx context.Context, userID, username string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if err := s.userRepo.EnsureExists(ctx, userID, username); err != nil {
		zap.L().Error("failed to ensure user exists", zap.Error(err))
		return err
	}
	return nil
}

// Register stores the user's payment contact, overwriting any previous value.
func (s *Service) Register(ctx context.Context, userID, username, phone string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if phone == "" {
		return ErrEmptyPhone
	}
	if err := s.userRepo.Register(ctx, userID, username, phone); err != nil {
		zap.L().Error("failed to register user", zap.Error(err))
		return err
	}
	return nil
}
