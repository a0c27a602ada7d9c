package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// EnsureExists upserts the user without touching a registered phone. Display
// names are last-write-wins.
func (repo *Repository) EnsureExists(ctx context.Context, userID, username string) error {
	query := `
		INSERT INTO users (user_id, username, phone)
		VALUES ($1, $2, NULL)
		ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username
	`
	_, err := repo.db.Exec(ctx, query, userID, username)
	if err != nil {
		zap.L().Error("can't upsert user", zap.Error(err))
		return err
	}
	return nil
}

// Register upserts the user and overwrites the phone unconditionally.
func (repo *Repository) Register(ctx context.Context, userID, username, phone string) error {
	query := `
		INSERT INTO users (user_id, username, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username, phone = EXCLUDED.phone
	`
	_, err := repo.db.Exec(ctx, query, userID, username, phone)
	if err != nil {
		zap.L().Error("can't register user", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Get(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT user_id, username, phone FROM users WHERE user_id = $1", userID).
		Scan(&user.UserID, &user.Username, &user.Phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
