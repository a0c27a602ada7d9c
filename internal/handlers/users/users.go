package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pwierzbicki/dolgi/internal/dto"
	userservice "github.com/pwierzbicki/dolgi/internal/service/userservice"
	"github.com/pwierzbicki/dolgi/pkg/identity"
	"github.com/pwierzbicki/dolgi/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, userID, username, phone string) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register godoc
//
//	@Summary		Register a payment contact
//	@Description	Store the caller's phone number for payments, overwriting any previous value.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		200		{string}	string					"Registration successful"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not identified"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(identity.UserIDKey).(string)
	username, _ := r.Context().Value(identity.UserNameKey).(string)

	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.userService.Register(r.Context(), userID, username, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrEmptyPhone):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "registration successful")
}
