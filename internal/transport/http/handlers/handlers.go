// handlers содержит REST-хендлеры speak90-backend.
// Каждый хендлер: декодирует вход, зовёт сервисный слой и пишет JSON-ответ;
// ошибки выводятся через httperr.WriteError в унифицированном формате.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/speak90-backend/internal/service"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/httperr"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга входа -> 400.
func errInvalidArgument() error {
	return fmt.Errorf("decode: %w", service.ErrInvalidArgument)
}

// subjectFrom достаёт subject id из клеймов, положенных AuthBearer.
// Пустая строка — маршрут по ошибке не обёрнут в auth-мидлвар.
func subjectFrom(r *http.Request) string {
	claims := middleware.ClaimsFrom(r.Context())
	if claims == nil {
		return ""
	}

	return claims.SubjectID
}

// requireSubject — общий guard хендлеров закрытых маршрутов.
func requireSubject(w http.ResponseWriter, r *http.Request) (string, bool) {
	subject := subjectFrom(r)
	if subject == "" {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return "", false
	}

	return subject, true
}
