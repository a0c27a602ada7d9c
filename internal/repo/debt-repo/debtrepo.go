package debtrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, debt *domain.Debt) error {
	query := `
		INSERT INTO debts (debtor_id, creditor_id, amount, description)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, debt.DebtorID, debt.CreditorID, debt.Amount, debt.Description)
	if err != nil {
		zap.L().Error("can't save debt", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListOutstandingForDebtor(ctx context.Context, userID string) ([]domain.OutstandingDebt, error) {
	query := `
        SELECT d.debt_id, u.username, u.phone, d.amount, d.paid_amount, d.description
        FROM debts d
        JOIN users u ON d.creditor_id = u.user_id
        WHERE d.debtor_id = $1 AND NOT d.is_settled
        ORDER BY u.username, d.debt_id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch debts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.OutstandingDebt
	for rows.Next() {
		var d domain.OutstandingDebt
		err := rows.Scan(&d.ID, &d.CounterpartyName, &d.Phone, &d.Amount, &d.PaidAmount, &d.Description)
		if err != nil {
			zap.L().Error("failed to scan debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, d)
	}

	return debts, nil
}

func (r *Repository) ListOutstandingForCreditor(ctx context.Context, userID string) ([]domain.OutstandingDebt, error) {
	query := `
        SELECT d.debt_id, u.username, d.amount, d.paid_amount, d.description
        FROM debts d
        JOIN users u ON d.debtor_id = u.user_id
        WHERE d.creditor_id = $1 AND NOT d.is_settled
        ORDER BY u.username, d.debt_id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.OutstandingDebt
	for rows.Next() {
		var d domain.OutstandingDebt
		err := rows.Scan(&d.ID, &d.CounterpartyName, &d.Amount, &d.PaidAmount, &d.Description)
		if err != nil {
			zap.L().Error("failed to scan credit row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, d)
	}

	return debts, nil
}

// ListOutstandingBetween returns the pair's open debts oldest first. The
// settlement allocation depends on this ordering.
func (r *Repository) ListOutstandingBetween(ctx context.Context, debtorID, creditorID string) ([]domain.Debt, error) {
	query := `
        SELECT debt_id, debtor_id, creditor_id, amount, paid_amount, description, is_settled, created_at
        FROM debts
        WHERE debtor_id = $1 AND creditor_id = $2 AND NOT is_settled
        ORDER BY created_at, debt_id
    `
	rows, err := r.db.Query(ctx, query, debtorID, creditorID)
	if err != nil {
		zap.L().Error("failed to fetch pair debts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		var d domain.Debt
		err := rows.Scan(&d.ID, &d.DebtorID, &d.CreditorID, &d.Amount, &d.PaidAmount, &d.Description, &d.IsSettled, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan pair debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, d)
	}

	return debts, nil
}

// ListAllOutstanding returns every open debt enriched with the creditor's
// display data, for the reminder pass. Read-only.
func (r *Repository) ListAllOutstanding(ctx context.Context) ([]domain.DebtorOutstanding, error) {
	query := `
        SELECT d.debtor_id, u.username, u.phone, d.amount, d.paid_amount, d.description
        FROM debts d
        JOIN users u ON d.creditor_id = u.user_id
        WHERE NOT d.is_settled
        ORDER BY d.debtor_id, u.username, d.debt_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch outstanding ledger", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.DebtorOutstanding
	for rows.Next() {
		var d domain.DebtorOutstanding
		err := rows.Scan(&d.DebtorID, &d.CreditorName, &d.Phone, &d.Amount, &d.PaidAmount, &d.Description)
		if err != nil {
			zap.L().Error("failed to scan outstanding row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, d)
	}

	return debts, nil
}

// MarkSettled closes the debt. Calling it twice is a no-op.
func (r *Repository) MarkSettled(ctx context.Context, debtID int64) error {
	query := `
		UPDATE debts
		SET paid_amount = amount, is_settled = TRUE
		WHERE debt_id = $1
	`
	_, err := r.db.Exec(ctx, query, debtID)
	if err != nil {
		zap.L().Error("can't mark debt settled", zap.Error(err))
		return err
	}
	return nil
}

// ApplyPartialPayment overwrites paid_amount. The caller guarantees
// 0 <= paidAmount < amount, rounded to 2 decimals.
func (r *Repository) ApplyPartialPayment(ctx context.Context, debtID int64, paidAmount float64) error {
	query := `
		UPDATE debts
		SET paid_amount = $1
		WHERE debt_id = $2
	`
	_, err := r.db.Exec(ctx, query, paidAmount, debtID)
	if err != nil {
		zap.L().Error("can't apply partial payment", zap.Error(err))
		return err
	}
	return nil
}
