package domain

import "time"

type User struct {
	UserID   string  `db:"user_id"`
	Username string  `db:"username"`
	Phone    *string `db:"phone"`
}

type Debt struct {
	ID          int64     `db:"debt_id"`
	DebtorID    string    `db:"debtor_id"`
	CreditorID  string    `db:"creditor_id"`
	Amount      float64   `db:"amount"`
	PaidAmount  float64   `db:"paid_amount"`
	Description string    `db:"description"`
	IsSettled   bool      `db:"is_settled"`
	CreatedAt   time.Time `db:"created_at"`
}

// OutstandingDebt is one unsettled ledger row enriched with the counterparty's
// current display data. Phone is populated only on the debtor-side listing.
type OutstandingDebt struct {
	ID               int64
	CounterpartyName string
	Phone            *string
	Amount           float64
	PaidAmount       float64
	Description      string
}

// DebtorOutstanding is one unsettled row of the full ledger keyed by debtor,
// used by the reminder pass.
type DebtorOutstanding struct {
	DebtorID     string
	CreditorName string
	Phone        *string
	Amount       float64
	PaidAmount   float64
	Description  string
}

type SummaryEntry struct {
	Amount      float64
	Description string
}

// CounterpartyGroup is one counterparty's block of a summary: the open
// entries against them and the rounded running total.
type CounterpartyGroup struct {
	Name    string
	Phone   *string
	Entries []SummaryEntry
	Total   float64
}

type SettlementOutcome string

const (
	OutcomeNothingOwed SettlementOutcome = "nothing_owed"
	OutcomePartial     SettlementOutcome = "partial"
	OutcomeOverpaid    SettlementOutcome = "overpaid"
	OutcomeSettled     SettlementOutcome = "settled"
)

// SettlementResult reports how a payment was allocated. Shortfall is what is
// still owed after the payment ran out; Overpaid is the excess beyond all open
// debts and is informational only, never persisted.
type SettlementResult struct {
	Outcome   SettlementOutcome
	Shortfall float64
	Overpaid  float64
}
