package debtservice

import (
	"context"
	"errors"
	"strings"

	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/pkg/money"
	"go.uber.org/zap"
)

type DebtRepo interface {
	Create(ctx context.Context, debt *domain.Debt) error
}

type UserRepo interface {
	EnsureExists(ctx context.Context, userID, username string) error
}

type Service struct {
	debtRepo DebtRepo
	userRepo UserRepo
}

func New(debtRepo DebtRepo, userRepo UserRepo) *Service {
	return &Service{
		debtRepo: debtRepo,
		userRepo: userRepo,
	}
}

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrEmptyDebtorID     = errors.New("empty debtor id")
	ErrNoParticipants    = errors.New("no identifiable recipients")
)

// placeholder stored when a debt is created without a description
const descriptionPlaceholder = "<brak opisu>"

type Participant struct {
	ID   string
	Name string
}

func normalizeDescription(description string) string {
	if strings.TrimSpace(description) == "" {
		return descriptionPlaceholder
	}
	return description
}

// AddDebt records a single directional debt: debtor owes creditor. Both users
// are upserted first so the ledger rows always have someone to reference.
func (s *Service) AddDebt(ctx context.Context, debtorID, debtorName, creditorID, creditorName string, amount float64, description string) (*domain.Debt, error) {
	if debtorID == "" {
		return nil, ErrEmptyDebtorID
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	if err := s.userRepo.EnsureExists(ctx, debtorID, debtorName); err != nil {
		zap.L().Error("failed to ensure debtor exists", zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.EnsureExists(ctx, creditorID, creditorName); err != nil {
		zap.L().Error("failed to ensure creditor exists", zap.Error(err))
		return nil, err
	}

	debt := &domain.Debt{
		DebtorID:    debtorID,
		CreditorID:  creditorID,
		Amount:      money.Round(amount),
		Description: normalizeDescription(description),
	}
	if err := s.debtRepo.Create(ctx, debt); err != nil {
		zap.L().Error("failed to create debt", zap.Error(err))
		return nil, err
	}
	return debt, nil
}

// Split divides total into equal shares, one debt per participant owed to the
// creditor. The share is round(total/count, 2); rounding drift is accepted and
// not redistributed.
func (s *Service) Split(ctx context.Context, creditorID, creditorName string, participants []Participant, total float64, description string) (float64, error) {
	if total <= 0 {
		return 0, ErrNonPositiveAmount
	}
	if len(participants) == 0 {
		return 0, ErrNoParticipants
	}

	perPerson := money.Split(total, len(participants))
	description = normalizeDescription(description)

	if err := s.userRepo.EnsureExists(ctx, creditorID, creditorName); err != nil {
		zap.L().Error("failed to ensure creditor exists", zap.Error(err))
		return 0, err
	}

	for _, p := range participants {
		if err := s.userRepo.EnsureExists(ctx, p.ID, p.Name); err != nil {
			zap.L().Error("failed to ensure participant exists", zap.Error(err))
			return 0, err
		}
		debt := &domain.Debt{
			DebtorID:    p.ID,
			CreditorID:  creditorID,
			Amount:      perPerson,
			Description: description,
		}
		if err := s.debtRepo.Create(ctx, debt); err != nil {
			zap.L().Error("failed to create split debt", zap.Error(err))
			return 0, err
		}
	}

	return perPerson, nil
}
