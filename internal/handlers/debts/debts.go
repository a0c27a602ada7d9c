package debts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/internal/dto"
	debtservice "github.com/pwierzbicki/dolgi/internal/service/debtservice"
	"github.com/pwierzbicki/dolgi/pkg/identity"
	"github.com/pwierzbicki/dolgi/pkg/money"
	"github.com/pwierzbicki/dolgi/pkg/utils"
)

type DebtService interface {
	AddDebt(ctx context.Context, debtorID, debtorName, creditorID, creditorName string, amount float64, description string) (*domain.Debt, error)
	Split(ctx context.Context, creditorID, creditorName string, participants []debtservice.Participant, total float64, description string) (float64, error)
}

type SummaryService interface {
	SummarizeDebts(ctx context.Context, userID string) ([]domain.CounterpartyGroup, error)
	SummarizeCredits(ctx context.Context, userID string) ([]domain.CounterpartyGroup, error)
}

type DebtHandler struct {
	debtService    DebtService
	summaryService SummaryService
}

func New(debtService DebtService, summaryService SummaryService) *DebtHandler {
	return &DebtHandler{
		debtService:    debtService,
		summaryService: summaryService,
	}
}

// AddDebt godoc
//
//	@Summary		Record a debt
//	@Description	Record that the given debtor owes the caller the given amount.
//	@Tags			Debts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddDebtRequestDTO	true	"Debt payload"
//	@Success		200		{object}	dto.AddDebtResponseDTO	"Recorded debt"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not identified"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/debts [post]
func (h *DebtHandler) AddDebt(w http.ResponseWriter, r *http.Request) {
	creditorID := r.Context().Value(identity.UserIDKey).(string)
	creditorName, _ := r.Context().Value(identity.UserNameKey).(string)

	var req dto.AddDebtRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	debt, err := h.debtService.AddDebt(r.Context(), req.DebtorID, req.DebtorName, creditorID, creditorName, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, debtservice.ErrNonPositiveAmount),
			errors.Is(err, debtservice.ErrEmptyDebtorID):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AddDebtResponseDTO{
		DebtorID:    debt.DebtorID,
		Amount:      debt.Amount,
		Description: debt.Description,
	})
}

// Split godoc
//
//	@Summary		Split an amount between users
//	@Description	Divide a total into equal debts owed to the caller, one per participant.
//	@Tags			Debts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SplitRequestDTO		true	"Split payload"
//	@Success		200		{object}	dto.SplitResponseDTO	"Per-person share"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not identified"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/debts/split [post]
func (h *DebtHandler) Split(w http.ResponseWriter, r *http.Request) {
	creditorID := r.Context().Value(identity.UserIDKey).(string)
	creditorName, _ := r.Context().Value(identity.UserNameKey).(string)

	var req dto.SplitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	participants := make([]debtservice.Participant, len(req.Participants))
	debtors := make([]string, len(req.Participants))
	for i, p := range req.Participants {
		participants[i] = debtservice.Participant{ID: p.ID, Name: p.Name}
		debtors[i] = p.ID
	}

	perPerson, err := h.debtService.Split(r.Context(), creditorID, creditorName, participants, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, debtservice.ErrNonPositiveAmount),
			errors.Is(err, debtservice.ErrNoParticipants):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SplitResponseDTO{
		PerPerson: perPerson,
		Debtors:   debtors,
	})
}

// GetDebts godoc
//
//	@Summary		List outstanding debts
//	@Description	Group the caller's open debts by creditor, with totals and the creditor's payment contact.
//	@Tags			Debts
//	@Produce		json
//	@Success		200	{object}	dto.GetDebtsResponseDTO	"Outstanding debts"
//	@Success		204	{object}	utils.Response			"No outstanding debts"
//	@Failure		401	{object}	utils.Response			"User not identified"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/debts [get]
func (h *DebtHandler) GetDebts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(identity.UserIDKey).(string)

	groups, err := h.summaryService.SummarizeDebts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch debts")
		return
	}

	if len(groups) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No outstanding debts")
		return
	}

	resp := dto.GetDebtsResponseDTO{Groups: make([]dto.DebtGroupDTO, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = dto.DebtGroupDTO{
			Creditor:     g.Name,
			Entries:      toEntryDTOs(g.Entries),
			Total:        g.Total,
			Phone:        g.Phone,
			PhoneMissing: g.Phone == nil,
		}
		resp.Total = money.Add(resp.Total, g.Total)
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetCredits godoc
//
//	@Summary		List outstanding credits
//	@Description	Group the open debts owed to the caller by debtor, with totals.
//	@Tags			Debts
//	@Produce		json
//	@Success		200	{object}	dto.GetCreditsResponseDTO	"Outstanding credits"
//	@Success		204	{object}	utils.Response				"Nobody owes the caller"
//	@Failure		401	{object}	utils.Response				"User not identified"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/credits [get]
func (h *DebtHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(identity.UserIDKey).(string)

	groups, err := h.summaryService.SummarizeCredits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch credits")
		return
	}

	if len(groups) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Nobody owes you")
		return
	}

	resp := dto.GetCreditsResponseDTO{Groups: make([]dto.CreditGroupDTO, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = dto.CreditGroupDTO{
			Debtor:  g.Name,
			Entries: toEntryDTOs(g.Entries),
			Total:   g.Total,
		}
		resp.Total = money.Add(resp.Total, g.Total)
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toEntryDTOs(entries []domain.SummaryEntry) []dto.SummaryEntryDTO {
	out := make([]dto.SummaryEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = dto.SummaryEntryDTO{
			Amount:      e.Amount,
			Description: e.Description,
		}
	}
	return out
}
