package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pwierzbicki/dolgi/internal/config"
	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/pkg/clients"
	"github.com/pwierzbicki/dolgi/pkg/money"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var notifyingDebtors sync.Map

type Repo interface {
	ListAllOutstanding(ctx context.Context) ([]domain.DebtorOutstanding, error)
}

type NotificationDebt struct {
	Creditor    string  `json:"creditor"`
	Phone       *string `json:"phone,omitempty"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type Notification struct {
	UserID string             `json:"user_id"`
	Total  float64            `json:"total"`
	Debts  []NotificationDebt `json:"debts"`
}

// Service periodically reminds every debtor about their open debts by
// POSTing a digest to the configured webhook. It never mutates the ledger.
type Service struct {
	url        string
	debtRepo   Repo
	client     clients.HTTPClientI
	workerPool WorkerPoolI
	interval   time.Duration
}

func New(cfg *config.Config, debtRepo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.NotifyAddress,
		debtRepo:   debtRepo,
		client:     client,
		workerPool: NewWorkerPool(10),
		interval:   cfg.RemindInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reminder service started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reminder service")
			return
		case <-ticker.C:
			s.notifyDebtors(ctx)
		}
	}
}

func (s *Service) notifyDebtors(ctx context.Context) {
	rows, err := s.debtRepo.ListAllOutstanding(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch outstanding debts for reminders", zap.Error(err))
		return
	}

	notifications := buildNotifications(rows)

	var g errgroup.Group
	for _, n := range notifications {
		n := n

		if _, loaded := notifyingDebtors.LoadOrStore(n.UserID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer notifyingDebtors.Delete(n.UserID)
				return s.sendNotification(ctx, n)
			})
			if err != nil {
				notifyingDebtors.Delete(n.UserID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sending reminders", zap.Error(err))
	}
}

// buildNotifications groups the flat ledger rows into one digest per debtor,
// preserving the row order within each digest.
func buildNotifications(rows []domain.DebtorOutstanding) []Notification {
	index := make(map[string]int)
	notifications := make([]Notification, 0)

	for _, row := range rows {
		i, ok := index[row.DebtorID]
		if !ok {
			i = len(notifications)
			index[row.DebtorID] = i
			notifications = append(notifications, Notification{UserID: row.DebtorID})
		}

		remaining := money.Sub(row.Amount, row.PaidAmount)
		notifications[i].Debts = append(notifications[i].Debts, NotificationDebt{
			Creditor:    row.CreditorName,
			Phone:       row.Phone,
			Amount:      remaining,
			Description: row.Description,
		})
		notifications[i].Total = money.Add(notifications[i].Total, remaining)
	}
	return notifications
}

func (s *Service) sendNotification(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification for user %s: %w", n.UserID, err)
	}

	headers := http.Header{"Content-Type": []string{"application/json"}}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, err := s.client.Post(s.url, headers, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to notify user %s after %d retries: %w", n.UserID, maxRetries, err)
			}

			if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
				zap.L().Warn("Unexpected status from reminder webhook", zap.Int("status", statusCode), zap.String("userID", n.UserID))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("reminder webhook returned status %d for user %s", statusCode, n.UserID)
			}

			zap.L().Info("Reminder sent", zap.String("userID", n.UserID), zap.Float64("total", n.Total))
			return nil
		}
	}
	return nil
}
