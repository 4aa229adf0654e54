package minio

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// PutAudio загружает аудиоблоб под ключом "audio/<subjectID>/<timestamp><ext>".
// Валидирует contentType и размер согласно конфигу до обращения к хранилищу.
func (s *AudioStorage) PutAudio(ctx context.Context, subjectID, filename, contentType string, size int64, body io.Reader) (*storage.StoredObject, error) {
	const op = "storage/minio/audio/PutAudio"

	if size <= 0 || size > s.cfg.Audio.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Audio.AllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	ext := path.Ext(filename)
	key := path.Join("audio", subjectID, fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext))

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, body, size, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.StoredObject{
		Key: key,
		URL: s.objectURL(key),
	}, nil
}

// DeleteAudio удаляет блоб по ключу. Отсутствие ключа не считается ошибкой:
// повторное удаление (at-least-once retry) должно быть идемпотентным.
func (s *AudioStorage) DeleteAudio(ctx context.Context, key string) error {
	const op = "storage/minio/audio/DeleteAudio"

	err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, key, mclient.RemoveObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// StatAudio проверяет наличие объекта и возвращает его размер.
func (s *AudioStorage) StatAudio(ctx context.Context, key string) (int64, error) {
	const op = "storage/minio/audio/StatAudio"

	objInfo, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return 0, storage.ErrObjectNotFound
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return objInfo.Size, nil
}

// objectURL строит внешний адрес объекта: public base URL, если задан,
// иначе прямой адрес бакета.
func (s *AudioStorage) objectURL(key string) string {
	if s.cfg.S3.PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.S3.PublicBaseURL, "/") + "/" + key
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.S3.Bucket, s.cfg.S3.Region, key)
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
