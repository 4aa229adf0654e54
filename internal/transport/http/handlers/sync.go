package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/httperr"
)

type progressPayload struct {
	CurrentDay        int32     `json:"currentDay"`
	Streak            int32     `json:"streak"`
	TotalMinutes      int64     `json:"totalMinutes"`
	SessionsCompleted []int32   `json:"sessionsCompleted"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func progressFromModel(p *models.Progress) progressPayload {
	return progressPayload{
		CurrentDay:        p.CurrentDay,
		Streak:            p.Streak,
		TotalMinutes:      p.TotalMinutes,
		SessionsCompleted: p.SessionsCompleted,
		UpdatedAt:         p.UpdatedAt,
	}
}

type srsCardPayload struct {
	CardID      string    `json:"cardId"`
	Box         int32     `json:"box"`
	DueAt       time.Time `json:"dueAt"`
	ReviewCount int32     `json:"reviewCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type srsCardsRequest struct {
	Cards []srsCardPayload `json:"cards"`
}

type srsCardsResponse struct {
	Cards []srsCardPayload `json:"cards"`
}

type srsReviewRequest struct {
	CardID     string    `json:"cardId"`
	Result     string    `json:"result"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

type srsReviewResponse struct {
	ID         string    `json:"id"`
	CardID     string    `json:"cardId"`
	Result     string    `json:"result"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

type completionRequest struct {
	DayNumber      int32     `json:"dayNumber"`
	ElapsedSeconds int64     `json:"elapsedSeconds"`
	CompletedAt    time.Time `json:"completedAt"`
}

type completionResponse struct {
	ID             string    `json:"id"`
	DayNumber      int32     `json:"dayNumber"`
	ElapsedSeconds int64     `json:"elapsedSeconds"`
	CompletedAt    time.Time `json:"completedAt"`
}

// GetProgress — GET /v1/progress.
func (h *Handlers) GetProgress(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	progress, err := h.Service.Progress(r.Context(), subject)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, progressFromModel(progress))
}

// PutProgress — PUT /v1/progress. Ответ — победивший снимок: при проигрыше
// LWW клиент получает более свежую серверную версию.
func (h *Handlers) PutProgress(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	var in progressPayload
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	stored, err := h.Service.SaveProgress(r.Context(), subject, models.Progress{
		CurrentDay:        in.CurrentDay,
		Streak:            in.Streak,
		TotalMinutes:      in.TotalMinutes,
		SessionsCompleted: in.SessionsCompleted,
		UpdatedAt:         in.UpdatedAt,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, progressFromModel(stored))
}

// GetSrsCards — GET /v1/srs/cards.
func (h *Handlers) GetSrsCards(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	cards, err := h.Service.SrsCards(r.Context(), subject)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := srsCardsResponse{Cards: make([]srsCardPayload, 0, len(cards))}
	for _, card := range cards {
		out.Cards = append(out.Cards, srsCardPayload{
			CardID:      card.CardID,
			Box:         card.Box,
			DueAt:       card.DueAt,
			ReviewCount: card.ReviewCount,
			UpdatedAt:   card.UpdatedAt,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// PutSrsCards — PUT /v1/srs/cards. Каждая карточка мержится независимо по LWW.
func (h *Handlers) PutSrsCards(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	var in srsCardsRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	cards := make([]models.SrsCard, 0, len(in.Cards))
	for _, card := range in.Cards {
		cards = append(cards, models.SrsCard{
			CardID:      card.CardID,
			Box:         card.Box,
			DueAt:       card.DueAt,
			ReviewCount: card.ReviewCount,
			UpdatedAt:   card.UpdatedAt,
		})
	}

	if err := h.Service.SaveSrsCards(r.Context(), subject, cards); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AppendSrsReview — POST /v1/srs/reviews. Идемпотентен: повтор возвращает
// уже сохранённое событие.
func (h *Handlers) AppendSrsReview(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	var in srsReviewRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	review, err := h.Service.AppendSrsReview(r.Context(), subject, in.CardID, in.Result, in.ReviewedAt)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, srsReviewResponse{
		ID:         review.ID.String(),
		CardID:     review.CardID,
		Result:     review.Result,
		ReviewedAt: review.ReviewedAt,
	})
}

// RecordCompletion — POST /v1/sessions/completions. Идемпотентен по
// (dayNumber, completedAt).
func (h *Handlers) RecordCompletion(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	var in completionRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	completion, err := h.Service.RecordSessionCompletion(r.Context(), subject, in.DayNumber, in.ElapsedSeconds, in.CompletedAt)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, completionResponse{
		ID:             completion.ID.String(),
		DayNumber:      completion.DayNumber,
		ElapsedSeconds: completion.ElapsedSeconds,
		CompletedAt:    completion.CompletedAt,
	})
}
