// storage содержит контракты слоя хранилищ speak90-backend.
//
// storage.go — контракты PostgreSQL-репозиториев (сессии устройств,
// аудиозаписи, sync-данные) и общие sentinel-ошибки.
// audio.go — контракт объектного хранилища аудиоблобов (S3/MinIO).
// campaigns.go — контракт документного хранилища призовых кампаний (MongoDB).
//
// Все условные переходы состояний (ротация токенов, uploaded→deleting и
// обратно, LWW-апсерты) реализуются именно здесь — guarded conditional
// update в БД является единственным примитивом синхронизации между
// конкурентными запросами и экземплярами процесса.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/speak90-backend/internal/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности.
	ErrAlreadyExists = errors.New("already exists")
)

// SessionStorage выполняет операции над сессиями устройств.
type SessionStorage interface {
	// SaveSession создаёт новую строку сессии.
	SaveSession(ctx context.Context, session *models.DeviceSession) error
	// ActiveSessionByRefreshHash находит непросроченную сессию по хэшу
	// refresh-токена. ErrNotFound покрывает «не существует», «просрочена»
	// и «уже использована» (после ротации хэш перезаписан).
	ActiveSessionByRefreshHash(ctx context.Context, hash string, now time.Time) (*models.DeviceSession, error)
	// ActiveSessionByAccessHash находит непросроченную сессию устройства
	// по хэшу access-токена.
	ActiveSessionByAccessHash(ctx context.Context, deviceID, hash string, now time.Time) (*models.DeviceSession, error)
	// RotateSessionTokens атомарно заменяет пару хэшей строки сессии.
	// Compare-and-swap: обновление применяется, только если текущий
	// refresh_token_hash строки равен expectedRefreshHash. Возвращает
	// false при проигранной гонке (конкурентная ротация тем же токеном).
	RotateSessionTokens(ctx context.Context, sessionID uuid.UUID, expectedRefreshHash, accessHash, refreshHash string, expiresAt time.Time) (bool, error)
	// DeleteExpiredSessions удаляет просроченные сессии (фоновая задача).
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

// UploadStorage выполняет операции над метаданными аудиозаписей.
//
// Методы-переходы (Claim/MarkDeleted/Restore/Reconcile) выполняют guarded
// conditional update: переход применяется только из ожидаемого состояния,
// результат сообщает, выиграл ли вызывающий гонку за строку.
type UploadStorage interface {
	// SaveUpload создаёт запись в статусе uploaded.
	SaveUpload(ctx context.Context, upload *models.RecordingUpload) error
	// UploadByID возвращает запись по (subject, id).
	UploadByID(ctx context.Context, subjectID string, id uuid.UUID) (*models.RecordingUpload, error)
	// ListUploads возвращает записи subject в статусе uploaded,
	// свежие сверху.
	ListUploads(ctx context.Context, subjectID string) ([]models.RecordingUpload, error)
	// ClaimForDeletion переводит uploaded→deleting. false — гонка проиграна
	// (запись уже не в uploaded).
	ClaimForDeletion(ctx context.Context, subjectID string, id uuid.UUID, now time.Time) (bool, error)
	// MarkDeleted переводит deleting→deleted для перечисленных записей.
	MarkDeleted(ctx context.Context, ids []uuid.UUID) error
	// RestoreUploaded — компенсация: переводит deleting→uploaded.
	RestoreUploaded(ctx context.Context, ids []uuid.UUID) error
	// ListPurgeCandidates возвращает uploaded-записи subject, у которых
	// истёк expires_at либо возраст превысил retention.
	ListPurgeCandidates(ctx context.Context, subjectID string, now time.Time, olderThan time.Time) ([]models.RecordingUpload, error)
	// ReconcileStuckDeleting возвращает в uploaded записи, зависшие в
	// deleting дольше порога (следствие падения процесса между
	// переходами). subjectID == "" — по всем subject.
	ReconcileStuckDeleting(ctx context.Context, subjectID string, stuckBefore time.Time) (int64, error)
	// SaveRetentionJob добавляет append-only запись аудита прохода.
	SaveRetentionJob(ctx context.Context, run *models.RetentionJobRun) error
}

// SyncStorage выполняет LWW-слияние прогресса и SRS-карточек
// и идемпотентные append-операции.
type SyncStorage interface {
	// UpsertProgress применяет снимок по правилу LWW (запись побеждает,
	// если её updated_at не старше хранимой) и возвращает победивший
	// хранимый снимок.
	UpsertProgress(ctx context.Context, progress *models.Progress) (*models.Progress, error)
	// ProgressBySubject возвращает снимок или дефолт (день 1, нулевые
	// счётчики, epoch updated_at), если записи нет.
	ProgressBySubject(ctx context.Context, subjectID string) (*models.Progress, error)
	// UpsertSrsCards применяет карточки по-строчно по правилу LWW.
	// Батч обязан быть уже дедуплицирован по card_id.
	UpsertSrsCards(ctx context.Context, subjectID string, cards []models.SrsCard) error
	// ListSrsCards возвращает все карточки subject.
	ListSrsCards(ctx context.Context, subjectID string) ([]models.SrsCard, error)
	// UpsertSrsReview — гонко-безопасный идемпотентный апсерт по
	// естественному ключу (subject, card, reviewed_at); конкурентные
	// повторы сходятся к одной строке.
	UpsertSrsReview(ctx context.Context, review *models.SrsReview) (*models.SrsReview, error)
	// UpsertSessionCompletion — то же для (subject, day, completed_at).
	UpsertSessionCompletion(ctx context.Context, completion *models.SessionCompletion) (*models.SessionCompletion, error)
}

// ConsentStorage — append-only решения о хранении аудио в облаке
// и настройки резервного копирования.
type ConsentStorage interface {
	// SaveConsent добавляет новое решение.
	SaveConsent(ctx context.Context, consent *models.AudioCloudConsent) error
	// LatestConsent возвращает последнее по decided_at решение subject.
	LatestConsent(ctx context.Context, subjectID string) (*models.AudioCloudConsent, error)
	// UpsertBackupSettings сохраняет настройки subject.
	UpsertBackupSettings(ctx context.Context, settings *models.BackupSettings) (*models.BackupSettings, error)
	// BackupSettingsBySubject возвращает настройки или дефолт
	// (выключено, retention 90 дней), если записи нет.
	BackupSettingsBySubject(ctx context.Context, subjectID string) (*models.BackupSettings, error)
}

// Storage задаёт контракт работы с реляционной БД.
type Storage interface {
	SessionStorage
	UploadStorage
	SyncStorage
	ConsentStorage
	Close()
}
