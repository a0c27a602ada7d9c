package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	debtshandlers "github.com/pwierzbicki/dolgi/internal/handlers/debts"
	paymentshandlers "github.com/pwierzbicki/dolgi/internal/handlers/payments"
	usershandlers "github.com/pwierzbicki/dolgi/internal/handlers/users"
	"github.com/pwierzbicki/dolgi/internal/service"
	"github.com/pwierzbicki/dolgi/pkg/identity"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
}

type DebtHandler interface {
	AddDebt(w http.ResponseWriter, r *http.Request)
	Split(w http.ResponseWriter, r *http.Request)
	GetDebts(w http.ResponseWriter, r *http.Request)
	GetCredits(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler    UserHandler
	DebtHandler    DebtHandler
	PaymentHandler PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		UserHandler:    usershandlers.New(s.UserService),
		DebtHandler:    debtshandlers.New(s.DebtService, s.SummaryService),
		PaymentHandler: paymentshandlers.New(s.SettlementService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api", func(r chi.Router) {
		r.Use(identity.Middleware)

		r.Post("/user/register", h.UserHandler.Register)
		r.Route("/debts", func(r chi.Router) {
			r.Post("/", h.DebtHandler.AddDebt)
			r.Get("/", h.DebtHandler.GetDebts)
			r.Post("/split", h.DebtHandler.Split)
		})
		r.Get("/credits", h.DebtHandler.GetCredits)
		r.Post("/payments", h.PaymentHandler.Pay)
	})

	return r
}
