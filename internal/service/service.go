package service

import (
	"github.com/pwierzbicki/dolgi/internal/handlers/debts"
	"github.com/pwierzbicki/dolgi/internal/handlers/payments"
	"github.com/pwierzbicki/dolgi/internal/handlers/users"

	"github.com/pwierzbicki/dolgi/internal/pg"
	"github.com/pwierzbicki/dolgi/internal/repo"
	debtservice "github.com/pwierzbicki/dolgi/internal/service/debtservice"
	settlementservice "github.com/pwierzbicki/dolgi/internal/service/settlementservice"
	summaryservice "github.com/pwierzbicki/dolgi/internal/service/summaryservice"
	userservice "github.com/pwierzbicki/dolgi/internal/service/userservice"
)

type Services struct {
	UserService       users.Service
	DebtService       debts.DebtService
	SummaryService    debts.SummaryService
	SettlementService payments.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	userService := userservice.New(repo.UserRepo)
	debtService := debtservice.New(repo.DebtRepo, repo.UserRepo)
	summaryService := summaryservice.New(repo.DebtRepo)
	settlementService := settlementservice.New(repo.DebtRepo, repo.UserRepo, txManager)

	return &Services{
		UserService:       userService,
		DebtService:       debtService,
		SummaryService:    summaryService,
		SettlementService: settlementService,
	}
}
