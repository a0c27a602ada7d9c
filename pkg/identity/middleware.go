// Package identity extracts the externally-supplied user identity from
// request headers. The service trusts the transport in front of it; there is
// no authentication here, only a stable id and a display name.
package identity

import (
	"context"
	"net/http"

	"github.com/pwierzbicki/dolgi/pkg/utils"
)

type contextKey string

const (
	UserIDKey   contextKey = "userID"
	UserNameKey contextKey = "userName"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "missing user identity")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UserNameKey, r.Header.Get(HeaderUserName))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
