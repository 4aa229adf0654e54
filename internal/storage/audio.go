package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrObjectNotFound — объект (ключ) отсутствует в бакете.
	ErrObjectNotFound = errors.New("object not found")
	// ErrInvalidArgument — нарушены ограничения загрузки (тип/размер).
	ErrInvalidArgument = errors.New("invalid argument")
)

// StoredObject — результат загрузки блоба в объектное хранилище.
type StoredObject struct {
	// Key — ключ объекта в бакете.
	Key string
	// URL — адрес объекта (public base URL + key, если сконфигурирован).
	URL string
}

// AudioStorage — контракт объектного хранилища аудиозаписей.
//
// Хранилище не даёт транзакционных гарантий относительно БД: вызывающая
// сторона обязана вызывать Delete только после выигранного guarded-перехода
// в БД и компенсировать проигранные внешние вызовы (см. service/upload.go).
// Обе операции безопасны для at-least-once повтора со стороны вызывающего.
type AudioStorage interface {
	// PutAudio загружает аудиоблоб и возвращает ключ/URL.
	// Ключ имеет вид "audio/<subjectID>/<timestamp><ext>".
	PutAudio(ctx context.Context, subjectID, filename, contentType string, size int64, body io.Reader) (*StoredObject, error)
	// DeleteAudio удаляет блоб по ключу. Удаление отсутствующего ключа
	// не является ошибкой.
	DeleteAudio(ctx context.Context, key string) error
	// StatAudio проверяет наличие объекта и возвращает его размер.
	StatAudio(ctx context.Context, key string) (int64, error)
}
