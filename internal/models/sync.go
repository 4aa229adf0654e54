package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress — снимок прогресса пользователя. Одна строка на subject;
// перезаписывается целиком по правилу last-write-wins: побеждает снимок
// с наибольшей клиентской меткой UpdatedAt.
type Progress struct {
	SubjectID    string
	CurrentDay   int32
	Streak       int32
	TotalMinutes int64
	// SessionsCompleted — номера завершённых дней.
	SessionsCompleted []int32
	UpdatedAt         time.Time
}

// SrsCard — карточка интервального повторения. Одна строка на
// (subject, card); каждая строка мержится независимо по LWW.
type SrsCard struct {
	SubjectID   string
	CardID      string
	Box         int32
	DueAt       time.Time
	ReviewCount int32
	UpdatedAt   time.Time
}

// SrsReview — append-only событие повторения карточки.
// Естественный ключ идемпотентности: (subject, card, reviewedAt) —
// повтор at-least-once доставки возвращает ту же строку.
type SrsReview struct {
	ID         uuid.UUID
	SubjectID  string
	CardID     string
	Result     string
	ReviewedAt time.Time
	CreatedAt  time.Time
}

// Допустимые результаты повторения.
const (
	SrsReviewAgain = "again"
	SrsReviewGood  = "good"
	SrsReviewEasy  = "easy"
)

// SessionCompletion — append-only факт завершения дневной сессии.
// Естественный ключ идемпотентности: (subject, dayNumber, completedAt).
type SessionCompletion struct {
	ID             uuid.UUID
	SubjectID      string
	DayNumber      int32
	ElapsedSeconds int64
	CompletedAt    time.Time
	CreatedAt      time.Time
}

// AudioCloudConsent — append-only решение пользователя о хранении
// аудио в облаке; действует последнее по времени решение.
type AudioCloudConsent struct {
	ID            uuid.UUID
	SubjectID     string
	Decision      string
	DecidedAt     time.Time
	PolicyVersion string
	CreatedAt     time.Time
}

// Решения consent.
const (
	ConsentGranted = "granted"
	ConsentDenied  = "denied"
)

// BackupSettings — настройки резервного копирования аудио per subject.
type BackupSettings struct {
	SubjectID     string
	Enabled       bool
	RetentionDays int32
	UpdatedAt     time.Time
}
