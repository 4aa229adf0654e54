package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

const uploadColumns = `
        id, subject_id, storage_key, file_uri,
        day_number, section_id, duration_ms,
        created_at_client, uploaded_at, expires_at,
        status, deleting_started_at
`

// SaveUpload создаёт запись аудиозаписи в статусе uploaded.
func (s *Storage) SaveUpload(ctx context.Context, upload *models.RecordingUpload) error {
	const op = "storage.postgres.SaveUpload"

	query := `
        INSERT INTO recording_uploads (
            id, subject_id, storage_key, file_uri,
            day_number, section_id, duration_ms,
            created_at_client, uploaded_at, expires_at, status
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'uploaded')
    `

	_, err := s.db.Exec(ctx, query,
		upload.ID,
		upload.SubjectID,
		upload.StorageKey,
		upload.FileURI,
		upload.DayNumber,
		upload.SectionID,
		upload.DurationMs,
		upload.CreatedAtClient,
		upload.UploadedAt,
		upload.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UploadByID возвращает запись по (subject, id).
func (s *Storage) UploadByID(ctx context.Context, subjectID string, id uuid.UUID) (*models.RecordingUpload, error) {
	const op = "storage.postgres.UploadByID"

	query := `
        SELECT ` + uploadColumns + `
        FROM recording_uploads
        WHERE subject_id = $1 AND id = $2
    `

	upload, err := scanUpload(s.db.QueryRow(ctx, query, subjectID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return upload, nil
}

// ListUploads возвращает uploaded-записи subject, свежие сверху.
func (s *Storage) ListUploads(ctx context.Context, subjectID string) ([]models.RecordingUpload, error) {
	const op = "storage.postgres.ListUploads"

	query := `
        SELECT ` + uploadColumns + `
        FROM recording_uploads
        WHERE subject_id = $1 AND status = 'uploaded'
        ORDER BY uploaded_at DESC
    `

	rows, err := s.db.Query(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	uploads, err := collectUploads(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return uploads, nil
}

// ClaimForDeletion — guarded-переход uploaded→deleting.
// Гварда по status гарантирует, что из двух конкурентных удалений той же
// записи ровно одно получит право на вызов объектного хранилища.
func (s *Storage) ClaimForDeletion(ctx context.Context, subjectID string, id uuid.UUID, now time.Time) (bool, error) {
	const op = "storage.postgres.ClaimForDeletion"

	query := `
        UPDATE recording_uploads
        SET status = 'deleting', deleting_started_at = $3
        WHERE subject_id = $1 AND id = $2 AND status = 'uploaded'
    `

	cmdTag, err := s.db.Exec(ctx, query, subjectID, id, now)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// MarkDeleted — финальный переход deleting→deleted после подтверждённого
// удаления блоба.
func (s *Storage) MarkDeleted(ctx context.Context, ids []uuid.UUID) error {
	const op = "storage.postgres.MarkDeleted"

	if len(ids) == 0 {
		return nil
	}

	query := `
        UPDATE recording_uploads
        SET status = 'deleted', deleting_started_at = NULL
        WHERE id = ANY($1) AND status = 'deleting'
    `

	if _, err := s.db.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RestoreUploaded — компенсация deleting→uploaded после неудачного
// удаления блоба.
func (s *Storage) RestoreUploaded(ctx context.Context, ids []uuid.UUID) error {
	const op = "storage.postgres.RestoreUploaded"

	if len(ids) == 0 {
		return nil
	}

	query := `
        UPDATE recording_uploads
        SET status = 'uploaded', deleting_started_at = NULL
        WHERE id = ANY($1) AND status = 'deleting'
    `

	if _, err := s.db.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListPurgeCandidates возвращает uploaded-записи subject с истёкшим
// expires_at либо старше olderThan. expires_at — авторитетный per-row
// дедлайн, порог по возрасту — дополнительный пол.
func (s *Storage) ListPurgeCandidates(ctx context.Context, subjectID string, now time.Time, olderThan time.Time) ([]models.RecordingUpload, error) {
	const op = "storage.postgres.ListPurgeCandidates"

	query := `
        SELECT ` + uploadColumns + `
        FROM recording_uploads
        WHERE subject_id = $1
          AND status = 'uploaded'
          AND (expires_at <= $2 OR uploaded_at <= $3)
        ORDER BY uploaded_at
    `

	rows, err := s.db.Query(ctx, query, subjectID, now, olderThan)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	uploads, err := collectUploads(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return uploads, nil
}

// ReconcileStuckDeleting возвращает в uploaded записи, находящиеся в
// deleting дольше порога. Гварда по status и deleting_started_at: свежие
// deleting-строки (чужое удаление в полёте) не трогаются.
func (s *Storage) ReconcileStuckDeleting(ctx context.Context, subjectID string, stuckBefore time.Time) (int64, error) {
	const op = "storage.postgres.ReconcileStuckDeleting"

	query := `
        UPDATE recording_uploads
        SET status = 'uploaded', deleting_started_at = NULL
        WHERE status = 'deleting'
          AND deleting_started_at <= $1
          AND ($2 = '' OR subject_id = $2)
    `

	cmdTag, err := s.db.Exec(ctx, query, stuckBefore, subjectID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected(), nil
}

// SaveRetentionJob добавляет append-only запись аудита purge/reconcile-прохода.
func (s *Storage) SaveRetentionJob(ctx context.Context, run *models.RetentionJobRun) error {
	const op = "storage.postgres.SaveRetentionJob"

	query := `
        INSERT INTO retention_jobs (
            id, job_type, started_at, finished_at,
            deleted_count, status, error_message
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := s.db.Exec(ctx, query,
		run.ID,
		run.JobType,
		run.StartedAt,
		run.FinishedAt,
		run.DeletedCount,
		run.Status,
		run.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanUpload(row pgx.Row) (*models.RecordingUpload, error) {
	var (
		upload          models.RecordingUpload
		deletingStarted *time.Time
	)
	err := row.Scan(
		&upload.ID,
		&upload.SubjectID,
		&upload.StorageKey,
		&upload.FileURI,
		&upload.DayNumber,
		&upload.SectionID,
		&upload.DurationMs,
		&upload.CreatedAtClient,
		&upload.UploadedAt,
		&upload.ExpiresAt,
		&upload.Status,
		&deletingStarted,
	)
	if err != nil {
		return nil, err
	}

	if deletingStarted != nil {
		upload.DeletingStartedAt = *deletingStarted
	}

	return &upload, nil
}

func collectUploads(rows pgx.Rows) ([]models.RecordingUpload, error) {
	var uploads []models.RecordingUpload
	for rows.Next() {
		upload, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return uploads, nil
}
