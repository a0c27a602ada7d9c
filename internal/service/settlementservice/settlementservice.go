package settlementservice

import (
	"context"

	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/internal/pg"
	"github.com/pwierzbicki/dolgi/pkg/money"
	"go.uber.org/zap"
)

type DebtRepo interface {
	ListOutstandingBetween(ctx context.Context, debtorID, creditorID string) ([]domain.Debt, error)
	MarkSettled(ctx context.Context, debtID int64) error
	ApplyPartialPayment(ctx context.Context, debtID int64, paidAmount float64) error
}

type UserRepo interface {
	EnsureExists(ctx context.Context, userID, username string) error
}

type Service struct {
	debtRepo  DebtRepo
	userRepo  UserRepo
	txManager pg.TXManager
}

func New(debtRepo DebtRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		debtRepo:  debtRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// Pay allocates a payment from debtor to creditor across the pair's open
// debts, oldest first. A debt whose remainder fits within the payment is
// settled in full (the exact-boundary case settles too); the first debt the
// payment cannot cover gets a partial payment and everything after it stays
// untouched. The fetch and all mutations run in one transaction, so a later
// read sees either the whole allocation or none of it. Overpayment is
// reported but never persisted. Both parties are upserted first, so paying
// towards a creditor the registry has never seen still records their name.
func (s *Service) Pay(ctx context.Context, debtorID, debtorName, creditorID, creditorName string, amount float64) (*domain.SettlementResult, error) {
	if err := s.userRepo.EnsureExists(ctx, debtorID, debtorName); err != nil {
		zap.L().Error("failed to ensure debtor exists", zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.EnsureExists(ctx, creditorID, creditorName); err != nil {
		zap.L().Error("failed to ensure creditor exists", zap.Error(err))
		return nil, err
	}

	var result domain.SettlementResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		debts, err := s.debtRepo.ListOutstandingBetween(ctx, debtorID, creditorID)
		if err != nil {
			return err
		}
		if len(debts) == 0 {
			result.Outcome = domain.OutcomeNothingOwed
			return nil
		}

		remaining := money.Round(amount)
		shortfall := 0.0

		for _, debt := range debts {
			owed := money.Sub(debt.Amount, debt.PaidAmount)

			switch {
			case remaining <= 0:
				shortfall = money.Add(shortfall, owed)
			case remaining >= owed:
				if err := s.debtRepo.MarkSettled(ctx, debt.ID); err != nil {
					return err
				}
				remaining = money.Sub(remaining, owed)
			default:
				applied := remaining
				if err := s.debtRepo.ApplyPartialPayment(ctx, debt.ID, money.Add(debt.PaidAmount, applied)); err != nil {
					return err
				}
				shortfall = money.Add(shortfall, money.Sub(owed, applied))
				remaining = 0
			}
		}

		switch {
		case shortfall > 0:
			result = domain.SettlementResult{Outcome: domain.OutcomePartial, Shortfall: shortfall}
		case remaining > 0:
			result = domain.SettlementResult{Outcome: domain.OutcomeOverpaid, Overpaid: remaining}
		default:
			result = domain.SettlementResult{Outcome: domain.OutcomeSettled}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("settlement failed", zap.Error(err))
		return nil, err
	}

	return &result, nil
}
