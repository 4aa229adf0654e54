package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/service"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/httperr"
)

// SessionVerifier проверяет access-токен и возвращает клеймы устройства.
type SessionVerifier interface {
	VerifySession(ctx context.Context, accessToken string) (*models.DeviceClaims, error)
}

// AuthBearer извлекает Bearer-токен из Authorization, проверяет его через
// verifier и кладёт клеймы в контекст по ключу CtxDeviceClaims.
// Запрос без валидного токена отклоняется с 401.
func AuthBearer(verifier SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			claims, err := verifier.VerifySession(r.Context(), token)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), CtxDeviceClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom достаёт клеймы устройства из контекста.
// nil — запрос не прошёл через AuthBearer.
func ClaimsFrom(ctx context.Context) *models.DeviceClaims {
	claims, _ := ctx.Value(CtxDeviceClaims).(*models.DeviceClaims)
	return claims
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
