package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// RecordConsent добавляет новое решение пользователя о хранении аудио
// в облаке. Решения не перезаписываются: история append-only, действует
// последнее по времени.
func (s *Service) RecordConsent(ctx context.Context, subjectID, decision, policyVersion string) (*models.AudioCloudConsent, error) {
	const op = "service.consent.RecordConsent"

	if subjectID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	switch decision {
	case models.ConsentGranted, models.ConsentDenied:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	now := time.Now().UTC()
	consent := &models.AudioCloudConsent{
		ID:            uuid.New(),
		SubjectID:     subjectID,
		Decision:      decision,
		DecidedAt:     now,
		PolicyVersion: policyVersion,
		CreatedAt:     now,
	}

	if err := s.storage.SaveConsent(ctx, consent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return consent, nil
}

// LatestConsent возвращает последнее решение subject.
// Если решений не было — ErrNotFound.
func (s *Service) LatestConsent(ctx context.Context, subjectID string) (*models.AudioCloudConsent, error) {
	const op = "service.consent.LatestConsent"

	if subjectID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	consent, err := s.storage.LatestConsent(ctx, subjectID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return consent, nil
}

// SaveBackupSettings сохраняет настройки резервного копирования.
// Retention приводится к допустимому диапазону.
func (s *Service) SaveBackupSettings(ctx context.Context, subjectID string, enabled bool, retentionDays int32) (*models.BackupSettings, error) {
	const op = "service.consent.SaveBackupSettings"

	if subjectID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	settings := &models.BackupSettings{
		SubjectID:     subjectID,
		Enabled:       enabled,
		RetentionDays: retentionDays,
	}
	settings.RetentionDays = int32(s.retentionDays(settings))

	stored, err := s.storage.UpsertBackupSettings(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stored, nil
}

// BackupSettings возвращает настройки subject (дефолт, если записи нет).
func (s *Service) BackupSettings(ctx context.Context, subjectID string) (*models.BackupSettings, error) {
	const op = "service.consent.BackupSettings"

	if subjectID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	settings, err := s.storage.BackupSettingsBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}
