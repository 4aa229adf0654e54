package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceSession — строка сессии устройства в БД.
//
// Инварианты:
//   - на строку приходится не более одной активной (непросроченной) пары токенов;
//   - RefreshTokenHash одноразовый: после ротации прежний хэш не совпадает
//     ни с одной строкой, повторное предъявление старого refresh-токена невозможно;
//   - сами токены никогда не сохраняются — только их SHA-256-хэши.
type DeviceSession struct {
	ID               uuid.UUID
	DeviceID         string
	Platform         string
	AppVersion       string
	AccessTokenHash  string
	RefreshTokenHash string
	// ExpiresAt — срок жизни сессии (равен сроку жизни refresh-токена).
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokenPair — пара токенов, выдаваемая устройству при создании/ротации сессии.
//   - AccessToken — короткоживущий JWT для доступа к API;
//   - RefreshToken — случайный секрет, предъявляемый для выпуска новой пары;
//     на сервере хранится только его хэш;
//   - AccessExpiresAt — момент истечения access-токена (UTC);
//   - SubjectID — детерминированный псевдонимный идентификатор устройства.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
	SubjectID       string
}

// DeviceClaims — проверенные утверждения access-токена, передаются
// транспортом в сервисный слой после VerifySession.
type DeviceClaims struct {
	SubjectID  string
	DeviceID   string
	Platform   string
	AppVersion string
}
