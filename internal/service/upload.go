package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/pkg/log"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// UploadRecordingInput — параметры загрузки аудиозаписи.
type UploadRecordingInput struct {
	Filename        string
	ContentType     string
	Size            int64
	Body            io.Reader
	DayNumber       int32
	SectionID       string
	DurationMs      int64
	CreatedAtClient time.Time
}

// UploadRecording загружает аудиозапись: проверяет согласие и настройки
// резервного копирования, кладёт блоб в объектное хранилище и создаёт
// метаданные в статусе uploaded.
//
// Порядок «сначала блоб, затем строка» выбран намеренно: при падении между
// шагами остаётся осиротевший блоб без метаданных (его подберёт внешняя
// сверка бакета), но никогда — строка uploaded без блоба. При ошибке вставки
// строки блоб удаляется компенсацией.
func (s *Service) UploadRecording(ctx context.Context, subjectID string, in UploadRecordingInput) (*models.RecordingUpload, error) {
	const op = "service.upload.UploadRecording"

	lg := log.From(ctx)

	if subjectID == "" || in.DayNumber < 1 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	consent, err := s.storage.LatestConsent(ctx, subjectID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrConsentRequired)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if consent.Decision != models.ConsentGranted {
		return nil, fmt.Errorf("%s: %w", op, ErrConsentRequired)
	}

	settings, err := s.storage.BackupSettingsBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !settings.Enabled {
		return nil, fmt.Errorf("%s: %w", op, ErrBackupDisabled)
	}

	obj, err := s.audio.PutAudio(ctx, subjectID, in.Filename, in.ContentType, in.Size, in.Body)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	createdAtClient := in.CreatedAtClient
	if createdAtClient.IsZero() {
		createdAtClient = now
	}

	upload := &models.RecordingUpload{
		ID:              uuid.New(),
		SubjectID:       subjectID,
		StorageKey:      obj.Key,
		FileURI:         obj.URL,
		DayNumber:       in.DayNumber,
		SectionID:       in.SectionID,
		DurationMs:      in.DurationMs,
		CreatedAtClient: createdAtClient,
		UploadedAt:      now,
		ExpiresAt:       now.AddDate(0, 0, s.retentionDays(settings)),
		Status:          models.UploadStatusUploaded,
	}

	if err := s.storage.SaveUpload(ctx, upload); err != nil {
		// Компенсация: строка не создана — блоб не должен остаться.
		if delErr := s.audio.DeleteAudio(ctx, obj.Key); delErr != nil {
			lg.Error("upload_compensation_failed",
				slog.String("op", op),
				slog.String("storage_key", obj.Key),
				slog.String("err", delErr.Error()),
			)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return upload, nil
}

// ListRecordings возвращает аудиозаписи subject в статусе uploaded.
// Перед чтением выполняет опортунистическую сверку: записи, зависшие
// в deleting дольше порога, возвращаются в uploaded. Ошибка сверки
// не фатальна для чтения.
func (s *Service) ListRecordings(ctx context.Context, subjectID string) ([]models.RecordingUpload, error) {
	const op = "service.upload.ListRecordings"

	lg := log.From(ctx)

	if subjectID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	stuckBefore := time.Now().UTC().Add(-s.cfg.Retention.ReconcileAfter)
	if restored, err := s.storage.ReconcileStuckDeleting(ctx, subjectID, stuckBefore); err != nil {
		lg.Warn("reconcile_on_list_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	} else if restored > 0 {
		lg.Info("reconcile_restored_uploads",
			slog.String("op", op),
			slog.Int64("restored", restored),
		)
	}

	uploads, err := s.storage.ListUploads(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return uploads, nil
}

// DeleteRecording удаляет аудиозапись: uploaded→deleting (CAS), удаление
// блоба, deleting→deleted. При ошибке удаления блоба запись возвращается
// в uploaded, и клиент может повторить запрос.
//
// Из N конкурентных удалений одной записи ровно одно выигрывает переход
// uploaded→deleting; остальные получают ErrNotFound, как и запросы к уже
// удалённой записи.
func (s *Service) DeleteRecording(ctx context.Context, subjectID string, id uuid.UUID) error {
	const op = "service.upload.DeleteRecording"

	lg := log.From(ctx)

	if subjectID == "" || id == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	upload, err := s.storage.UploadByID(ctx, subjectID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	claimed, err := s.storage.ClaimForDeletion(ctx, subjectID, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !claimed {
		// Запись уже не в uploaded: конкурентное удаление или purge.
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if err := s.audio.DeleteAudio(ctx, upload.StorageKey); err != nil {
		// Компенсация: блоб не удалён — возвращаем запись в uploaded.
		if restoreErr := s.storage.RestoreUploaded(ctx, []uuid.UUID{id}); restoreErr != nil {
			lg.Error("delete_compensation_failed",
				slog.String("op", op),
				slog.String("upload_id", id.String()),
				slog.String("err", restoreErr.Error()),
			)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.MarkDeleted(ctx, []uuid.UUID{id}); err != nil {
		// Блоб уже удалён; запись осталась в deleting и будет дозакрыта
		// повторным запросом либо purge-проходом (удаление блоба идемпотентно).
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PurgeRecordings удаляет просроченные аудиозаписи subject: кандидаты
// по retention-политике переводятся в deleting, их блобы удаляются,
// успешные — deleted, неудачные — обратно в uploaded (попадут в следующий
// проход). Каждый проход фиксируется append-only записью аудита, в том
// числе неудачный.
//
// Сбои отдельных записей не валят весь проход: вызов завершается успешно
// с числом фактически удалённых, а частичные ошибки видны только в аудите
// (статус failed). Ошибкой заканчивается лишь сам отбор кандидатов.
//
// retentionDays > 0 — разовое переопределение retention на этот проход;
// 0 — используется retention из настроек пользователя. Значение в любом
// случае приводится к допустимому диапазону.
// Возвращает число удалённых записей и применённый retention.
func (s *Service) PurgeRecordings(ctx context.Context, subjectID string, retentionDays int32) (int64, int, error) {
	const op = "service.upload.PurgeRecordings"

	lg := log.From(ctx)

	if subjectID == "" || retentionDays < 0 {
		return 0, 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	started := time.Now().UTC()

	days := 0
	if retentionDays > 0 {
		days = s.retentionDays(&models.BackupSettings{RetentionDays: retentionDays})
	} else {
		settings, err := s.storage.BackupSettingsBySubject(ctx, subjectID)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w", op, err)
		}
		days = s.retentionDays(settings)
	}

	olderThan := started.AddDate(0, 0, -days)

	candidates, err := s.storage.ListPurgeCandidates(ctx, subjectID, started, olderThan)
	if err != nil {
		// Проход не состоялся, но след в аудите обязан остаться.
		run := &models.RetentionJobRun{
			ID:           uuid.New(),
			JobType:      models.RetentionJobTypePurge,
			StartedAt:    started,
			FinishedAt:   time.Now().UTC(),
			Status:       models.RetentionJobFailed,
			ErrorMessage: err.Error(),
		}
		if auditErr := s.storage.SaveRetentionJob(ctx, run); auditErr != nil {
			lg.Error("retention_job_audit_failed",
				slog.String("op", op),
				slog.String("err", auditErr.Error()),
			)
		}

		return 0, days, fmt.Errorf("%s: %w", op, err)
	}

	var (
		deletedIDs []uuid.UUID
		failedIDs  []uuid.UUID
		lastErr    error
	)

	for _, cand := range candidates {
		claimed, err := s.storage.ClaimForDeletion(ctx, subjectID, cand.ID, time.Now().UTC())
		if err != nil {
			lastErr = err
			continue
		}

		if !claimed {
			// Запись уже обрабатывается конкурентным удалением.
			continue
		}

		if err := s.audio.DeleteAudio(ctx, cand.StorageKey); err != nil {
			lg.Warn("purge_blob_delete_failed",
				slog.String("op", op),
				slog.String("upload_id", cand.ID.String()),
				slog.String("err", err.Error()),
			)
			failedIDs = append(failedIDs, cand.ID)
			lastErr = err
			continue
		}

		deletedIDs = append(deletedIDs, cand.ID)
	}

	if len(deletedIDs) > 0 {
		if err := s.storage.MarkDeleted(ctx, deletedIDs); err != nil {
			lastErr = err
		}
	}

	if len(failedIDs) > 0 {
		if err := s.storage.RestoreUploaded(ctx, failedIDs); err != nil {
			lg.Error("purge_restore_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			lastErr = err
		}
	}

	run := &models.RetentionJobRun{
		ID:           uuid.New(),
		JobType:      models.RetentionJobTypePurge,
		StartedAt:    started,
		FinishedAt:   time.Now().UTC(),
		DeletedCount: int64(len(deletedIDs)),
		Status:       models.RetentionJobSucceeded,
	}
	if lastErr != nil {
		run.Status = models.RetentionJobFailed
		run.ErrorMessage = lastErr.Error()
	}

	if err := s.storage.SaveRetentionJob(ctx, run); err != nil {
		lg.Error("retention_job_audit_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	if lastErr != nil {
		lg.Warn("purge_partial_failure",
			slog.String("op", op),
			slog.Int("failed", len(failedIDs)),
			slog.String("err", lastErr.Error()),
		)
	}

	return int64(len(deletedIDs)), days, nil
}

// ReconcileStuckDeletes возвращает в uploaded записи всех subject,
// зависшие в deleting дольше настроенного порога (следствие падения
// процесса между удалением блоба и фиксацией перехода). Фоновая задача.
func (s *Service) ReconcileStuckDeletes(ctx context.Context) (int64, error) {
	const op = "service.upload.ReconcileStuckDeletes"

	lg := log.From(ctx)

	started := time.Now().UTC()
	stuckBefore := started.Add(-s.cfg.Retention.ReconcileAfter)

	restored, err := s.storage.ReconcileStuckDeleting(ctx, "", stuckBefore)

	run := &models.RetentionJobRun{
		ID:           uuid.New(),
		JobType:      models.RetentionJobTypeReconcile,
		StartedAt:    started,
		FinishedAt:   time.Now().UTC(),
		DeletedCount: restored,
		Status:       models.RetentionJobSucceeded,
	}
	if err != nil {
		run.Status = models.RetentionJobFailed
		run.ErrorMessage = err.Error()
	}

	if auditErr := s.storage.SaveRetentionJob(ctx, run); auditErr != nil {
		lg.Error("retention_job_audit_failed",
			slog.String("op", op),
			slog.String("err", auditErr.Error()),
		)
	}

	if err != nil {
		return restored, fmt.Errorf("%s: %w", op, err)
	}

	return restored, nil
}

// retentionDays приводит retention из настроек к допустимому диапазону.
func (s *Service) retentionDays(settings *models.BackupSettings) int {
	days := int(settings.RetentionDays)
	if days == 0 {
		days = s.cfg.Retention.DefaultDays
	}

	if days < s.cfg.Retention.MinDays {
		days = s.cfg.Retention.MinDays
	}

	if days > s.cfg.Retention.MaxDays {
		days = s.cfg.Retention.MaxDays
	}

	return days
}
