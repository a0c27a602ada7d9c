package repo

import (
	"github.com/pwierzbicki/dolgi/internal/pg"
	debtrepo "github.com/pwierzbicki/dolgi/internal/repo/debt-repo"
	userrepo "github.com/pwierzbicki/dolgi/internal/repo/user-repo"
	"github.com/pwierzbicki/dolgi/internal/service/userservice"
)

type Repositories struct {
	UserRepo userservice.Repo
	DebtRepo *debtrepo.Repository
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	debtRepo := debtrepo.New(conn)

	return &Repositories{
		UserRepo: userRepo,
		DebtRepo: debtRepo,
	}
}
