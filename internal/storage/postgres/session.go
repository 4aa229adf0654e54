package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// SaveSession создаёт новую строку сессии устройства.
func (s *Storage) SaveSession(ctx context.Context, session *models.DeviceSession) error {
	const op = "storage.postgres.SaveSession"

	query := `
        INSERT INTO device_sessions (
            id, device_id, platform, app_version,
            access_token_hash, refresh_token_hash,
            expires_at, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := s.db.Exec(ctx, query,
		session.ID,
		session.DeviceID,
		session.Platform,
		session.AppVersion,
		session.AccessTokenHash,
		session.RefreshTokenHash,
		session.ExpiresAt,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ActiveSessionByRefreshHash находит непросроченную сессию по хэшу refresh-токена.
// После ротации хэш строки перезаписан, поэтому ErrNotFound покрывает и
// повторное предъявление уже использованного токена.
func (s *Storage) ActiveSessionByRefreshHash(ctx context.Context, hash string, now time.Time) (*models.DeviceSession, error) {
	const op = "storage.postgres.ActiveSessionByRefreshHash"

	query := `
        SELECT id, device_id, platform, app_version,
               access_token_hash, refresh_token_hash,
               expires_at, created_at, updated_at
        FROM device_sessions
        WHERE refresh_token_hash = $1 AND expires_at > $2
    `

	session, err := scanSession(s.db.QueryRow(ctx, query, hash, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return session, nil
}

// ActiveSessionByAccessHash находит непросроченную сессию устройства по хэшу access-токена.
func (s *Storage) ActiveSessionByAccessHash(ctx context.Context, deviceID, hash string, now time.Time) (*models.DeviceSession, error) {
	const op = "storage.postgres.ActiveSessionByAccessHash"

	query := `
        SELECT id, device_id, platform, app_version,
               access_token_hash, refresh_token_hash,
               expires_at, created_at, updated_at
        FROM device_sessions
        WHERE device_id = $1 AND access_token_hash = $2 AND expires_at > $3
    `

	session, err := scanSession(s.db.QueryRow(ctx, query, deviceID, hash, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return session, nil
}

// RotateSessionTokens атомарно заменяет пару хэшей строки сессии.
// Compare-and-swap по refresh_token_hash: из двух конкурентных ротаций одним
// и тем же токеном выигрывает ровно одна, вторая получает false.
func (s *Storage) RotateSessionTokens(ctx context.Context, sessionID uuid.UUID, expectedRefreshHash, accessHash, refreshHash string, expiresAt time.Time) (bool, error) {
	const op = "storage.postgres.RotateSessionTokens"

	query := `
        UPDATE device_sessions
        SET access_token_hash = $3,
            refresh_token_hash = $4,
            expires_at = $5,
            updated_at = now()
        WHERE id = $1 AND refresh_token_hash = $2
    `

	cmdTag, err := s.db.Exec(ctx, query, sessionID, expectedRefreshHash, accessHash, refreshHash, expiresAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// DeleteExpiredSessions удаляет все просроченные сессии.
func (s *Storage) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredSessions"

	query := `
        DELETE FROM device_sessions
        WHERE expires_at <= $1
    `

	_, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanSession(row pgx.Row) (*models.DeviceSession, error) {
	var session models.DeviceSession
	err := row.Scan(
		&session.ID,
		&session.DeviceID,
		&session.Platform,
		&session.AppVersion,
		&session.AccessTokenHash,
		&session.RefreshTokenHash,
		&session.ExpiresAt,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &session, nil
}
