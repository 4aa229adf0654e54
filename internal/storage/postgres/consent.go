package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// SaveConsent добавляет новое решение о хранении аудио в облаке.
// Решения не мутируются: история сохраняется целиком, действует последнее.
func (s *Storage) SaveConsent(ctx context.Context, consent *models.AudioCloudConsent) error {
	const op = "storage.postgres.SaveConsent"

	query := `
        INSERT INTO audio_cloud_consents (
            id, subject_id, decision, decided_at, policy_version, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := s.db.Exec(ctx, query,
		consent.ID,
		consent.SubjectID,
		consent.Decision,
		consent.DecidedAt,
		consent.PolicyVersion,
		consent.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LatestConsent возвращает последнее по decided_at решение subject.
func (s *Storage) LatestConsent(ctx context.Context, subjectID string) (*models.AudioCloudConsent, error) {
	const op = "storage.postgres.LatestConsent"

	query := `
        SELECT id, decision, decided_at, policy_version, created_at
        FROM audio_cloud_consents
        WHERE subject_id = $1
        ORDER BY decided_at DESC
        LIMIT 1
    `

	consent := models.AudioCloudConsent{SubjectID: subjectID}
	err := s.db.QueryRow(ctx, query, subjectID).Scan(
		&consent.ID,
		&consent.Decision,
		&consent.DecidedAt,
		&consent.PolicyVersion,
		&consent.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &consent, nil
}

// UpsertBackupSettings сохраняет настройки резервного копирования subject.
func (s *Storage) UpsertBackupSettings(ctx context.Context, settings *models.BackupSettings) (*models.BackupSettings, error) {
	const op = "storage.postgres.UpsertBackupSettings"

	query := `
        INSERT INTO user_settings (subject_id, backup_enabled, retention_days, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (subject_id) DO UPDATE
        SET backup_enabled = EXCLUDED.backup_enabled,
            retention_days = EXCLUDED.retention_days,
            updated_at = EXCLUDED.updated_at
        RETURNING backup_enabled, retention_days, updated_at
    `

	stored := models.BackupSettings{SubjectID: settings.SubjectID}
	err := s.db.QueryRow(ctx, query,
		settings.SubjectID,
		settings.Enabled,
		settings.RetentionDays,
		settings.UpdatedAt,
	).Scan(&stored.Enabled, &stored.RetentionDays, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stored, nil
}

// BackupSettingsBySubject возвращает настройки или дефолт
// (выключено, retention 90 дней), если записи нет.
func (s *Storage) BackupSettingsBySubject(ctx context.Context, subjectID string) (*models.BackupSettings, error) {
	const op = "storage.postgres.BackupSettingsBySubject"

	query := `
        SELECT backup_enabled, retention_days, updated_at
        FROM user_settings
        WHERE subject_id = $1
    `

	settings := models.BackupSettings{SubjectID: subjectID}
	err := s.db.QueryRow(ctx, query, subjectID).Scan(
		&settings.Enabled,
		&settings.RetentionDays,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.BackupSettings{
				SubjectID:     subjectID,
				Enabled:       false,
				RetentionDays: 90,
			}, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &settings, nil
}
