package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/pkg/log"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// deviceTokenType — значение клейма token_type в device-токенах.
const deviceTokenType = "device"

type deviceClaims struct {
	DeviceID   string `json:"deviceId"`
	Platform   string `json:"platform,omitempty"`
	AppVersion string `json:"appVersion,omitempty"`
	TokenType  string `json:"tokenType"`
	jwt.RegisteredClaims
}

// IssueSession выпускает новую device-сессию: создаёт строку сессии
// и возвращает пару токенов. Повторный вызов для того же устройства
// создаёт новую независимую сессию; subject id при этом детерминирован
// и совпадает для всех сессий одного устройства.
func (s *Service) IssueSession(ctx context.Context, deviceID, platform, appVersion string) (*models.TokenPair, error) {
	const (
		op          = "service.session.IssueSession"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	now := time.Now().UTC()
	subjectID := s.deriveSubjectID(deviceID)

	accessToken, err := s.generateAccessToken(subjectID, deviceID, platform, appVersion, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		refreshToken, err := newRefreshToken()
		if err != nil {
			lg.Error("refresh_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		session := &models.DeviceSession{
			ID:               uuid.New(),
			DeviceID:         deviceID,
			Platform:         platform,
			AppVersion:       appVersion,
			AccessTokenHash:  hashToken(accessToken),
			RefreshTokenHash: hashToken(refreshToken),
			ExpiresAt:        now.Add(s.cfg.Auth.RefreshTokenTTL),
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		if err := s.storage.SaveSession(ctx, session); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия хэша refresh-токена — пробуем заново.
				continue
			}

			lg.Error("save_session_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return &models.TokenPair{
			AccessToken:     accessToken,
			RefreshToken:    refreshToken,
			AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
			SubjectID:       subjectID,
		}, nil
	}

	lg.Error("refresh_collision_exceeded",
		slog.String("op", op),
	)

	return nil, fmt.Errorf("%s: %w", op, ErrRefreshTokenCollision)
}

// RefreshSession ротирует пару токенов по refresh-токену.
//
// Анти-replay: строка сессии перезаписывается атомарным CAS по прежнему
// хэшу refresh-токена. Из N конкурентных запросов с одним и тем же токеном
// ровно один выигрывает CAS и получает новую пару; остальные получают
// ErrInvalidRefreshToken. Прежняя пара недействительна сразу после ротации.
func (s *Service) RefreshSession(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.session.RefreshSession"

	lg := log.From(ctx)

	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
	}

	now := time.Now().UTC()
	oldHash := hashToken(refreshToken)

	session, err := s.storage.ActiveSessionByRefreshHash(ctx, oldHash, now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_lookup_not_found",
				slog.String("op", op),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subjectID := s.deriveSubjectID(session.DeviceID)

	accessToken, err := s.generateAccessToken(subjectID, session.DeviceID, session.Platform, session.AppVersion, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	newRefresh, err := newRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rotated, err := s.storage.RotateSessionTokens(ctx, session.ID, oldHash,
		hashToken(accessToken), hashToken(newRefresh), now.Add(s.cfg.Auth.RefreshTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !rotated {
		// Гонка проиграна: кто-то успел ротировать тем же токеном раньше.
		lg.Warn("refresh_rotation_lost",
			slog.String("op", op),
			slog.String("session_id", session.ID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    newRefresh,
		AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
		SubjectID:       subjectID,
	}, nil
}

// VerifySession проверяет access-токен: подпись и срок действия JWT,
// затем привязку к активной сессии устройства (после ротации прежний
// access-токен перестаёт приниматься, даже если его срок не истёк).
func (s *Service) VerifySession(ctx context.Context, accessToken string) (*models.DeviceClaims, error) {
	const op = "service.session.VerifySession"

	claims, err := s.parseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Клейм sub обязан совпадать с повторным выводом из deviceId:
	// подписанный токен с рассогласованными клеймами не принимается.
	if claims.Subject != s.deriveSubjectID(claims.DeviceID) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	now := time.Now().UTC()

	session, err := s.storage.ActiveSessionByAccessHash(ctx, claims.DeviceID, hashToken(accessToken), now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.DeviceClaims{
		SubjectID:  s.deriveSubjectID(session.DeviceID),
		DeviceID:   session.DeviceID,
		Platform:   session.Platform,
		AppVersion: session.AppVersion,
	}, nil
}

// DeleteExpiredSessions удаляет просроченные сессии (фоновая задача).
func (s *Service) DeleteExpiredSessions(ctx context.Context) error {
	const op = "service.session.DeleteExpiredSessions"

	if err := s.storage.DeleteExpiredSessions(ctx, time.Now().UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// generateAccessToken генерирует access-токен устройства.
func (s *Service) generateAccessToken(subjectID, deviceID, platform, appVersion string, now time.Time) (string, error) {
	const op = "service.session.generateAccessToken"

	claims := deviceClaims{
		DeviceID:   deviceID,
		Platform:   platform,
		AppVersion: appVersion,
		TokenType:  deviceTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Auth.Issuer,
			Subject:   subjectID,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// parseAccessToken валидирует подпись/срок/issuer access-токена.
func (s *Service) parseAccessToken(tokenStr string) (*deviceClaims, error) {
	const op = "service.session.parseAccessToken"

	token, err := jwt.ParseWithClaims(tokenStr, &deviceClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Auth.Issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*deviceClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.TokenType != deviceTokenType || claims.DeviceID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims, nil
}

// deriveSubjectID детерминированно выводит псевдонимный subject id из
// device id. HMAC с серверным ключом: сырой device id не восстановим из
// subject id и не хранится в пользовательских таблицах.
func (s *Service) deriveSubjectID(deviceID string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.Auth.JWTSecret))
	mac.Write([]byte("device:" + deviceID))

	return "dev_" + hex.EncodeToString(mac.Sum(nil))[:40]
}

// newRefreshToken генерирует случайный refresh-токен (32 байта, hex).
func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// hashToken возвращает SHA-256-хэш токена в hex. В БД хранятся только хэши.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
