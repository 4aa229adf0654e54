package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/speak90-backend/internal/models"
)

// UpsertProgress применяет снимок прогресса по правилу last-write-wins.
// Гварда WHERE updated_at <= EXCLUDED.updated_at в ON CONFLICT делает запись
// условной: более старый снимок молча проигрывает, и тогда возвращается
// текущее хранимое состояние (повторное чтение). Равенство меток применяет
// входящий снимок — идемпотентный повтор одной и той же записи.
func (s *Storage) UpsertProgress(ctx context.Context, progress *models.Progress) (*models.Progress, error) {
	const op = "storage.postgres.UpsertProgress"

	query := `
        INSERT INTO user_progress (
            subject_id, current_day, streak, total_minutes,
            sessions_completed, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (subject_id) DO UPDATE
        SET current_day = EXCLUDED.current_day,
            streak = EXCLUDED.streak,
            total_minutes = EXCLUDED.total_minutes,
            sessions_completed = EXCLUDED.sessions_completed,
            updated_at = EXCLUDED.updated_at
        WHERE user_progress.updated_at <= EXCLUDED.updated_at
        RETURNING current_day, streak, total_minutes, sessions_completed, updated_at
    `

	won := models.Progress{SubjectID: progress.SubjectID}
	err := s.db.QueryRow(ctx, query,
		progress.SubjectID,
		progress.CurrentDay,
		progress.Streak,
		progress.TotalMinutes,
		progress.SessionsCompleted,
		progress.UpdatedAt,
	).Scan(
		&won.CurrentDay,
		&won.Streak,
		&won.TotalMinutes,
		&won.SessionsCompleted,
		&won.UpdatedAt,
	)
	if err == nil {
		return &won, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Запись проиграла LWW — отдаём победившее хранимое состояние.
	stored, err := s.ProgressBySubject(ctx, progress.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

// ProgressBySubject возвращает снимок прогресса или дефолт
// (день 1, нулевые счётчики, epoch updated_at), если записи нет.
func (s *Storage) ProgressBySubject(ctx context.Context, subjectID string) (*models.Progress, error) {
	const op = "storage.postgres.ProgressBySubject"

	query := `
        SELECT current_day, streak, total_minutes, sessions_completed, updated_at
        FROM user_progress
        WHERE subject_id = $1
    `

	progress := models.Progress{SubjectID: subjectID}
	err := s.db.QueryRow(ctx, query, subjectID).Scan(
		&progress.CurrentDay,
		&progress.Streak,
		&progress.TotalMinutes,
		&progress.SessionsCompleted,
		&progress.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.Progress{
				SubjectID:         subjectID,
				CurrentDay:        1,
				SessionsCompleted: []int32{},
				UpdatedAt:         time.Unix(0, 0).UTC(),
			}, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &progress, nil
}

// UpsertSrsCards применяет карточки по-строчно по правилу LWW.
// Батч обязан быть дедуплицирован по card_id до вызова (service/sync.go):
// внутри одного INSERT Postgres не позволяет затронуть строку дважды.
func (s *Storage) UpsertSrsCards(ctx context.Context, subjectID string, cards []models.SrsCard) error {
	const op = "storage.postgres.UpsertSrsCards"

	if len(cards) == 0 {
		return nil
	}

	query := `
        INSERT INTO srs_cards (
            subject_id, card_id, box, due_at, review_count, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (subject_id, card_id) DO UPDATE
        SET box = EXCLUDED.box,
            due_at = EXCLUDED.due_at,
            review_count = EXCLUDED.review_count,
            updated_at = EXCLUDED.updated_at
        WHERE srs_cards.updated_at <= EXCLUDED.updated_at
    `

	batch := &pgx.Batch{}
	for _, card := range cards {
		batch.Queue(query,
			subjectID,
			card.CardID,
			card.Box,
			card.DueAt,
			card.ReviewCount,
			card.UpdatedAt,
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range cards {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// ListSrsCards возвращает все карточки subject: ближайшие к повторению сверху.
func (s *Storage) ListSrsCards(ctx context.Context, subjectID string) ([]models.SrsCard, error) {
	const op = "storage.postgres.ListSrsCards"

	query := `
        SELECT card_id, box, due_at, review_count, updated_at
        FROM srs_cards
        WHERE subject_id = $1
        ORDER BY due_at, updated_at DESC
    `

	rows, err := s.db.Query(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cards []models.SrsCard
	for rows.Next() {
		card := models.SrsCard{SubjectID: subjectID}
		if err := rows.Scan(&card.CardID, &card.Box, &card.DueAt, &card.ReviewCount, &card.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cards, nil
}

// UpsertSrsReview — гонко-безопасный идемпотентный апсерт события повторения
// по естественному ключу (subject, card, reviewed_at). DO UPDATE вместо
// DO NOTHING, чтобы RETURNING всегда отдавал строку: конкурентные повторы
// одного события сходятся к одному и тому же id.
func (s *Storage) UpsertSrsReview(ctx context.Context, review *models.SrsReview) (*models.SrsReview, error) {
	const op = "storage.postgres.UpsertSrsReview"

	query := `
        INSERT INTO srs_reviews (id, subject_id, card_id, result, reviewed_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (subject_id, card_id, reviewed_at) DO UPDATE
        SET result = EXCLUDED.result
        RETURNING id, result, reviewed_at, created_at
    `

	stored := models.SrsReview{
		SubjectID: review.SubjectID,
		CardID:    review.CardID,
	}
	err := s.db.QueryRow(ctx, query,
		review.ID,
		review.SubjectID,
		review.CardID,
		review.Result,
		review.ReviewedAt,
		review.CreatedAt,
	).Scan(&stored.ID, &stored.Result, &stored.ReviewedAt, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stored, nil
}

// UpsertSessionCompletion — идемпотентный апсерт факта завершения сессии
// по ключу (subject, day_number, completed_at); та же схема, что и у
// UpsertSrsReview.
func (s *Storage) UpsertSessionCompletion(ctx context.Context, completion *models.SessionCompletion) (*models.SessionCompletion, error) {
	const op = "storage.postgres.UpsertSessionCompletion"

	query := `
        INSERT INTO session_completions (id, subject_id, day_number, elapsed_seconds, completed_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (subject_id, day_number, completed_at) DO UPDATE
        SET elapsed_seconds = session_completions.elapsed_seconds
        RETURNING id, elapsed_seconds, completed_at, created_at
    `

	stored := models.SessionCompletion{
		SubjectID: completion.SubjectID,
		DayNumber: completion.DayNumber,
	}
	err := s.db.QueryRow(ctx, query,
		completion.ID,
		completion.SubjectID,
		completion.DayNumber,
		completion.ElapsedSeconds,
		completion.CompletedAt,
		completion.CreatedAt,
	).Scan(&stored.ID, &stored.ElapsedSeconds, &stored.CompletedAt, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stored, nil
}
