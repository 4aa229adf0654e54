// service содержит бизнес-логику speak90-backend:
// выпуск/ротацию/проверку device-сессий, жизненный цикл аудиозаписей
// (загрузка, удаление с компенсацией, retention), LWW-слияние sync-данных
// и работу с хранилищами через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны.
//   - Service не использует внутрипроцессные блокировки вокруг I/O: все гонки
//     между конкурентными запросами и экземплярами процесса разрешает БД
//     через guarded conditional update (CAS по ожидаемому состоянию строки).
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/speak90-backend/internal/config"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

var (
	// ErrInvalidArgument — входные данные не проходят валидацию.
	// Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidToken — access-токен некорректен по формату/подписи либо
	// не привязан к активной сессии. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия access-токена истёк.
	// Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidRefreshToken — refresh-токен не найден, просрочен или уже
	// использован (после ротации прежний хэш перезаписан, повторное
	// предъявление проигрывает CAS). Транспорт: HTTP 401.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrNotFound — запрошенный объект не существует либо не принадлежит
	// вызывающему subject. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — нарушение уникальности (дубликат кампании).
	// Транспорт: HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConsentRequired — пользователь не давал (или отозвал) согласие
	// на хранение аудио в облаке. Транспорт: HTTP 403.
	ErrConsentRequired = errors.New("audio cloud consent required")

	// ErrBackupDisabled — резервное копирование аудио выключено
	// в настройках пользователя. Транспорт: HTTP 403.
	ErrBackupDisabled = errors.New("audio backup disabled")

	// ErrRefreshTokenCollision — исчерпаны попытки сгенерировать уникальный
	// refresh-токен (редкие коллизии хэша при сохранении сессии).
	// Транспорт: HTTP 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")
)

// Service описывает бизнес-логику speak90-backend.
type Service struct {
	storage   storage.Storage
	audio     storage.AudioStorage
	campaigns storage.CampaignStorage
	cfg       *config.Config
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, audio storage.AudioStorage, campaigns storage.CampaignStorage, cfg *config.Config) *Service {
	return &Service{
		storage:   st,
		audio:     audio,
		campaigns: campaigns,
		cfg:       cfg,
	}
}
