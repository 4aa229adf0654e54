// http собирает REST-роутер speak90-backend: chi + middleware
// (recover, request id, логирование, Bearer-аутентификация, таймаут)
// и регистрация всех маршрутов /v1.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/speak90-backend/internal/service"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/handlers"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	root.Route("/v1", func(r chi.Router) {
		// Открытые маршруты: выпуск и ротация сессий.
		r.Post("/auth/device-sessions", h.IssueSession)
		r.Post("/auth/device-sessions/refresh", h.RefreshSession)

		// Призовые кампании: чтение открыто (контент общий, не per-device).
		r.Get("/prize-campaigns", h.ListCampaigns)
		r.Get("/prize-campaigns/{id}", h.GetCampaign)

		// Закрытые маршруты: нужен валидный device access-токен.
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthBearer(svc))

			// Мутации кампаний доступны только с токеном.
			r.Post("/prize-campaigns", h.CreateCampaign)
			r.Put("/prize-campaigns/{id}", h.ReplaceCampaign)
			r.Patch("/prize-campaigns/{id}", h.UpdateCampaign)
			r.Delete("/prize-campaigns/{id}", h.DeleteCampaign)

			// audio
			r.Post("/audio/uploads", h.UploadRecording)
			r.Get("/audio/uploads", h.ListRecordings)
			r.Delete("/audio/uploads/{uploadId}", h.DeleteRecording)
			r.Post("/audio/uploads/purge", h.PurgeRecordings)

			// sync
			r.Get("/progress", h.GetProgress)
			r.Put("/progress", h.PutProgress)
			r.Get("/srs/cards", h.GetSrsCards)
			r.Put("/srs/cards", h.PutSrsCards)
			r.Post("/srs/reviews", h.AppendSrsReview)
			r.Post("/sessions/completions", h.RecordCompletion)

			// consent + settings
			r.Get("/consents/audio-cloud", h.GetConsent)
			r.Post("/consents/audio-cloud", h.RecordConsent)
			r.Get("/user/settings/backup", h.GetBackupSettings)
			r.Put("/user/settings/backup", h.PutBackupSettings)
		})
	})

	return root
}
