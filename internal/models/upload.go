package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadStatus — состояние жизненного цикла аудиозаписи.
//
// Переходы: uploaded → deleting → {deleted | uploaded}.
// Блоб в объектном хранилище существует тогда и только тогда, когда
// запись находится в uploaded или deleting; после deleted блоба быть не должно.
type UploadStatus string

const (
	UploadStatusUploaded UploadStatus = "uploaded"
	UploadStatusDeleting UploadStatus = "deleting"
	UploadStatusDeleted  UploadStatus = "deleted"
)

// RecordingUpload — метаданные загруженной аудиозаписи.
type RecordingUpload struct {
	ID         uuid.UUID
	SubjectID  string
	StorageKey string
	FileURI    string
	DayNumber  int32
	SectionID  string
	DurationMs int64
	// CreatedAtClient — клиентская метка времени записи (может отставать
	// от серверной UploadedAt при офлайн-записи).
	CreatedAtClient time.Time
	UploadedAt      time.Time
	ExpiresAt       time.Time
	Status          UploadStatus
	// DeletingStartedAt — момент перехода uploaded→deleting; используется
	// reconcile-проходом для поиска зависших удалений. Нулевое время,
	// если запись не в deleting.
	DeletingStartedAt time.Time
}

// RetentionJobRun — append-only запись аудита purge/reconcile-прохода.
// Никогда не мутируется после вставки.
type RetentionJobRun struct {
	ID           uuid.UUID
	JobType      string
	StartedAt    time.Time
	FinishedAt   time.Time
	DeletedCount int64
	Status       string
	ErrorMessage string
}

// Статусы RetentionJobRun.
const (
	RetentionJobSucceeded = "succeeded"
	RetentionJobFailed    = "failed"
)

// Типы RetentionJobRun.
const (
	RetentionJobTypePurge     = "audio_uploads_purge"
	RetentionJobTypeReconcile = "audio_uploads_reconcile"
)
