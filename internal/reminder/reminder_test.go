package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pwierzbicki/dolgi/internal/config"
	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{NotifyAddress: "http://localhost:8081/notify", RemindInterval: time.Hour}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	debtRepo := NewMockRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, debtRepo, client)
	return service, debtRepo, client
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestBuildNotifications(t *testing.T) {
	phone := "+48123456789"
	rows := []domain.DebtorOutstanding{
		{DebtorID: "10", CreditorName: "anna", Phone: &phone, Amount: 30.00, PaidAmount: 0, Description: "obiad"},
		{DebtorID: "10", CreditorName: "bartek", Phone: nil, Amount: 50.00, PaidAmount: 20.00, Description: "kino"},
		{DebtorID: "20", CreditorName: "anna", Phone: &phone, Amount: 12.34, PaidAmount: 0, Description: "kawa"},
	}

	notifications := buildNotifications(rows)

	require.Len(t, notifications, 2)

	assert.Equal(t, "10", notifications[0].UserID)
	require.Len(t, notifications[0].Debts, 2)
	assert.Equal(t, "anna", notifications[0].Debts[0].Creditor)
	assert.Equal(t, 30.00, notifications[0].Debts[0].Amount)
	assert.Equal(t, "bartek", notifications[0].Debts[1].Creditor)
	assert.Equal(t, 30.00, notifications[0].Debts[1].Amount)
	assert.Nil(t, notifications[0].Debts[1].Phone)
	assert.Equal(t, 60.00, notifications[0].Total)

	assert.Equal(t, "20", notifications[1].UserID)
	assert.Equal(t, 12.34, notifications[1].Total)
}

func TestService_notifyDebtors(t *testing.T) {
	tests := []struct {
		name         string
		mockListRows func(ctx context.Context) ([]domain.DebtorOutstanding, error)
		mockAddTask  func(ctx context.Context, task Task) error
		debtorCount  int
	}{
		{
			name: "successfully schedules reminders",
			mockListRows: func(ctx context.Context) ([]domain.DebtorOutstanding, error) {
				return []domain.DebtorOutstanding{
					{DebtorID: "10", CreditorName: "anna", Amount: 30.00},
					{DebtorID: "20", CreditorName: "anna", Amount: 15.00},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			debtorCount: 2,
		},
		{
			name: "fails fetching outstanding debts",
			mockListRows: func(ctx context.Context) ([]domain.DebtorOutstanding, error) {
				return nil, fmt.Errorf("failed to fetch outstanding debts")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			debtorCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockListRows: func(ctx context.Context) ([]domain.DebtorOutstanding, error) {
				return []domain.DebtorOutstanding{
					{DebtorID: "10", CreditorName: "anna", Amount: 30.00},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			debtorCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			debtRepo := NewMockRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			debtRepo.EXPECT().
				ListAllOutstanding(gomock.Any()).
				DoAndReturn(tt.mockListRows).
				Times(1)
			for i := 0; i < tt.debtorCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				url:        "http://localhost:8081/notify",
				debtRepo:   debtRepo,
				workerPool: workerPool,
			}

			service.notifyDebtors(context.Background())
		})
	}
}

func TestService_sendNotification(t *testing.T) {
	notification := Notification{
		UserID: "10",
		Total:  30.00,
		Debts: []NotificationDebt{
			{Creditor: "anna", Amount: 30.00, Description: "obiad"},
		},
	}

	t.Run("delivers the digest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clients.NewMockHTTPClientI(ctrl)
		client.EXPECT().
			Post("http://localhost:8081/notify", gomock.Any(), gomock.Any()).
			DoAndReturn(func(url string, headers http.Header, body []byte) (int, []byte, error) {
				assert.Equal(t, "application/json", headers.Get("Content-Type"))

				var got Notification
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, notification, got)
				return http.StatusOK, nil, nil
			}).
			Times(1)

		service := &Service{url: "http://localhost:8081/notify", client: client}

		err := service.sendNotification(context.Background(), notification)
		assert.NoError(t, err)
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clients.NewMockHTTPClientI(ctrl)

		service := &Service{url: "http://localhost:8081/notify", client: client}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := service.sendNotification(ctx, notification)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("gives up after retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clients.NewMockHTTPClientI(ctrl)
		client.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, nil, fmt.Errorf("connection refused")).
			Times(maxRetries)

		service := &Service{url: "http://localhost:8081/notify", client: client}

		err := service.sendNotification(context.Background(), notification)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "after 3 retries")
	})
}
