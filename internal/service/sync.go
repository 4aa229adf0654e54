package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/speak90-backend/internal/models"
)

// SaveProgress применяет клиентский снимок прогресса по правилу
// last-write-wins и возвращает победивший хранимый снимок: если в БД уже
// лежит более свежая версия (другое устройство успело раньше), клиент
// получает её, а его снимок отбрасывается целиком.
func (s *Service) SaveProgress(ctx context.Context, subjectID string, progress models.Progress) (*models.Progress, error) {
	const op = "service.sync.SaveProgress"

	if subjectID == "" || progress.CurrentDay < 1 || progress.UpdatedAt.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	progress.SubjectID = subjectID
	progress.UpdatedAt = progress.UpdatedAt.UTC()
	if progress.SessionsCompleted == nil {
		progress.SessionsCompleted = []int32{}
	}

	stored, err := s.storage.UpsertProgress(ctx, &progress)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

// Progress возвращает снимок прогресса subject (дефолт, если записи нет).
func (s *Service) Progress(ctx context.Context, subjectID string) (*models.Progress, error) {
	const op = "service.sync.Progress"

	if subjectID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	progress, err := s.storage.ProgressBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return progress, nil
}

// SaveSrsCards применяет батч SRS-карточек: каждая карточка мержится
// независимо по LWW. Дубликаты card_id внутри батча схлопываются до
// версии с наибольшей клиентской меткой — порядок внутри батча не важен.
func (s *Service) SaveSrsCards(ctx context.Context, subjectID string, cards []models.SrsCard) error {
	const op = "service.sync.SaveSrsCards"

	if subjectID == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	deduped := make(map[string]models.SrsCard, len(cards))
	for _, card := range cards {
		if card.CardID == "" || card.UpdatedAt.IsZero() {
			return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		card.SubjectID = subjectID
		card.UpdatedAt = card.UpdatedAt.UTC()

		if prev, ok := deduped[card.CardID]; ok && prev.UpdatedAt.After(card.UpdatedAt) {
			continue
		}
		deduped[card.CardID] = card
	}

	if len(deduped) == 0 {
		return nil
	}

	batch := make([]models.SrsCard, 0, len(deduped))
	for _, card := range deduped {
		batch = append(batch, card)
	}

	if err := s.storage.UpsertSrsCards(ctx, subjectID, batch); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SrsCards возвращает все SRS-карточки subject.
func (s *Service) SrsCards(ctx context.Context, subjectID string) ([]models.SrsCard, error) {
	const op = "service.sync.SrsCards"

	if subjectID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	cards, err := s.storage.ListSrsCards(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cards, nil
}

// AppendSrsReview добавляет событие повторения карточки. Идемпотентно по
// естественному ключу (subject, card, reviewedAt): повтор at-least-once
// доставки возвращает уже сохранённую строку, дубликат не создаётся.
func (s *Service) AppendSrsReview(ctx context.Context, subjectID, cardID, result string, reviewedAt time.Time) (*models.SrsReview, error) {
	const op = "service.sync.AppendSrsReview"

	if subjectID == "" || cardID == "" || reviewedAt.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	switch result {
	case models.SrsReviewAgain, models.SrsReviewGood, models.SrsReviewEasy:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	review := &models.SrsReview{
		ID:         uuid.New(),
		SubjectID:  subjectID,
		CardID:     cardID,
		Result:     result,
		ReviewedAt: reviewedAt.UTC(),
		CreatedAt:  time.Now().UTC(),
	}

	stored, err := s.storage.UpsertSrsReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

// RecordSessionCompletion фиксирует завершение дневной сессии. Идемпотентно
// по естественному ключу (subject, dayNumber, completedAt).
func (s *Service) RecordSessionCompletion(ctx context.Context, subjectID string, dayNumber int32, elapsedSeconds int64, completedAt time.Time) (*models.SessionCompletion, error) {
	const op = "service.sync.RecordSessionCompletion"

	if subjectID == "" || dayNumber < 1 || completedAt.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	completion := &models.SessionCompletion{
		ID:             uuid.New(),
		SubjectID:      subjectID,
		DayNumber:      dayNumber,
		ElapsedSeconds: elapsedSeconds,
		CompletedAt:    completedAt.UTC(),
		CreatedAt:      time.Now().UTC(),
	}

	stored, err := s.storage.UpsertSessionCompletion(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}
