package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pwierzbicki/dolgi/internal/domain"
	"github.com/pwierzbicki/dolgi/internal/dto"
	"github.com/pwierzbicki/dolgi/pkg/identity"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func identityCtx() context.Context {
	ctx := context.WithValue(context.Background(), identity.UserIDKey, "debtor-1")
	return context.WithValue(ctx, identity.UserNameKey, "Janek")
}

func TestPayHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.PayResponseDTO
	}{
		{
			name: "Partial settlement reports the shortfall",
			body: `{"creditor_id":"creditor-1","creditor_name":"Marek","amount":40}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(gomock.Any(), "debtor-1", "Janek", "creditor-1", "Marek", 40.0).
					Return(&domain.SettlementResult{Outcome: domain.OutcomePartial, Shortfall: 60}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PayResponseDTO{Outcome: "partial", Shortfall: 60},
		},
		{
			name: "Exact settlement",
			body: `{"creditor_id":"creditor-1","amount":50}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(gomock.Any(), "debtor-1", "Janek", "creditor-1", "", 50.0).
					Return(&domain.SettlementResult{Outcome: domain.OutcomeSettled}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PayResponseDTO{Outcome: "settled"},
		},
		{
			name: "Overpayment reported",
			body: `{"creditor_id":"creditor-1","amount":65}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(gomock.Any(), "debtor-1", "Janek", "creditor-1", "", 65.0).
					Return(&domain.SettlementResult{Outcome: domain.OutcomeOverpaid, Overpaid: 15}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PayResponseDTO{Outcome: "overpaid", Overpaid: 15},
		},
		{
			name: "Nothing owed is a valid outcome",
			body: `{"creditor_id":"creditor-1","amount":40}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(gomock.Any(), "debtor-1", "Janek", "creditor-1", "", 40.0).
					Return(&domain.SettlementResult{Outcome: domain.OutcomeNothingOwed}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PayResponseDTO{Outcome: "nothing_owed"},
		},
		{
			name:         "Zero amount rejected before the engine runs",
			body:         `{"creditor_id":"creditor-1","amount":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative amount rejected",
			body:         `{"creditor_id":"creditor-1","amount":-10}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing creditor rejected",
			body:         `{"amount":10}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"creditor_id":"creditor-1","amount":40}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(gomock.Any(), "debtor-1", "Janek", "creditor-1", "", 40.0).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(tt.body))
			r = r.WithContext(identityCtx())
			w := httptest.NewRecorder()
			handler.Pay(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.PayResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
