package payments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/internal/dto"
	"github.com/pwierzbicki/dolgi/pkg/identity"
	"github.com/pwierzbicki/dolgi/pkg/utils"
)

type Service interface {
	Pay(ctx context.Context, debtorID, debtorName, creditorID, creditorName string, amount float64) (*domain.SettlementResult, error)
}

type PaymentHandler struct {
	settlementService Service
}

func New(settlementService Service) *PaymentHandler {
	return &PaymentHandler{
		settlementService: settlementService,
	}
}

// Pay godoc
//
//	@Summary		Settle debts towards a creditor
//	@Description	Allocate a payment across the caller's open debts to the given creditor, oldest first.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayRequestDTO	true	"Payment payload"
//	@Success		200		{object}	dto.PayResponseDTO	"Settlement outcome"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		401		{object}	utils.Response		"User not identified"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	debtorID := r.Context().Value(identity.UserIDKey).(string)
	debtorName, _ := r.Context().Value(identity.UserNameKey).(string)

	var req dto.PayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CreditorID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "empty creditor id")
		return
	}
	// the engine assumes a non-negative amount, reject before it runs
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	result, err := h.settlementService.Pay(r.Context(), debtorID, debtorName, req.CreditorID, req.CreditorName, req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PayResponseDTO{
		Outcome:   string(result.Outcome),
		Shortfall: result.Shortfall,
		Overpaid:  result.Overpaid,
	})
}
