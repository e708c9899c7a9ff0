package httpmw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pairpad/collab-service/internal/errs"
)

type ctxKey string

const ctxKeyUserID ctxKey = "user_id"

// TokenVerifier resolves a bearer token to a subject identifier.
type TokenVerifier interface {
	UserIDFromAccessToken(token string) (string, error)
}

// AuthMiddleware requires a valid Bearer token and puts the subject id
// into the request context.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || len(auth) <= 7 {
				unauthorized(w, "missing bearer token")
				return
			}

			userID, err := verifier.UserIDFromAccessToken(strings.TrimSpace(auth[7:]))
			if err != nil {
				if errors.Is(err, errs.ErrTokenExpired) {
					unauthorized(w, "token expired")
					return
				}
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}

func UserIDFromCtx(ctx context.Context) string {
	if v := ctx.Value(ctxKeyUserID); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
