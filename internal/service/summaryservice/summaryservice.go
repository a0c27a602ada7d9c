package summaryservice

import (
	"context"

	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/pkg/money"
	"go.uber.org/zap"
)

type DebtRepo interface {
	ListOutstandingForDebtor(ctx context.Context, userID string) ([]domain.OutstandingDebt, error)
	ListOutstandingForCreditor(ctx context.Context, userID string) ([]domain.OutstandingDebt, error)
}

type Service struct {
	debtRepo DebtRepo
}

func New(debtRepo DebtRepo) *Service {
	return &Service{
		debtRepo: debtRepo,
	}
}

// SummarizeDebts groups the user's open debts by creditor display name, with
// per-group totals and the creditor's registered phone when there is one.
// Two creditors sharing a display name merge into one group; that is a known
// display quirk, the ledger rows stay separate.
func (s *Service) SummarizeDebts(ctx context.Context, userID string) ([]domain.CounterpartyGroup, error) {
	debts, err := s.debtRepo.ListOutstandingForDebtor(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch debts", zap.Error(err))
		return nil, err
	}
	return groupByCounterparty(debts, true), nil
}

// SummarizeCredits groups the user's open credits by debtor display name.
// No phone lookup: a creditor does not need their own contact shown.
func (s *Service) SummarizeCredits(ctx context.Context, userID string) ([]domain.CounterpartyGroup, error) {
	credits, err := s.debtRepo.ListOutstandingForCreditor(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch credits", zap.Error(err))
		return nil, err
	}
	return groupByCounterparty(credits, false), nil
}

func groupByCounterparty(debts []domain.OutstandingDebt, withPhone bool) []domain.CounterpartyGroup {
	var groups []domain.CounterpartyGroup
	index := make(map[string]int)

	for _, d := range debts {
		i, ok := index[d.CounterpartyName]
		if !ok {
			i = len(groups)
			index[d.CounterpartyName] = i
			groups = append(groups, domain.CounterpartyGroup{Name: d.CounterpartyName})
		}

		owed := money.Sub(d.Amount, d.PaidAmount)
		groups[i].Entries = append(groups[i].Entries, domain.SummaryEntry{
			Amount:      owed,
			Description: d.Description,
		})
		groups[i].Total = money.Add(groups[i].Total, owed)
		if withPhone {
			groups[i].Phone = d.Phone
		}
	}

	return groups
}
