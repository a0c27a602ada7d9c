package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		headers      map[string]string
		expectedCode int
		expectedID   string
		expectedName string
	}{
		{
			name:         "Identity headers land in context",
			headers:      map[string]string{HeaderUserID: "user-1", HeaderUserName: "Marek"},
			expectedCode: http.StatusOK,
			expectedID:   "user-1",
			expectedName: "Marek",
		},
		{
			name:         "Missing display name is allowed",
			headers:      map[string]string{HeaderUserID: "user-1"},
			expectedCode: http.StatusOK,
			expectedID:   "user-1",
			expectedName: "",
		},
		{
			name:         "Missing user id rejected",
			headers:      map[string]string{HeaderUserName: "Marek"},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID, gotName string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, _ = r.Context().Value(UserIDKey).(string)
				gotName, _ = r.Context().Value(UserNameKey).(string)
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			Middleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedID, gotID)
				assert.Equal(t, tt.expectedName, gotName)
			}
		})
	}
}
