package storage

import (
	"context"

	"github.com/pribylovaa/speak90-backend/internal/models"
)

// CampaignUpdate — частичный апдейт кампании.
// Обновляются только непустые указатели.
type CampaignUpdate struct {
	Name   *string
	Status *string
	Prizes *[]models.PrizeEntry
}

// CampaignStorage — контракт документного хранилища призовых кампаний.
// Обычный CRUD без конкурентной логики; пара (year, type) уникальна.
type CampaignStorage interface {
	// CreateCampaign создаёт кампанию; ErrAlreadyExists при дубликате (year, type).
	CreateCampaign(ctx context.Context, campaign *models.PrizeCampaign) (*models.PrizeCampaign, error)
	// CampaignByID возвращает кампанию по id.
	CampaignByID(ctx context.Context, id string) (*models.PrizeCampaign, error)
	// CampaignByYearAndType возвращает кампанию по паре (year, type).
	CampaignByYearAndType(ctx context.Context, year, campaignType string) (*models.PrizeCampaign, error)
	// ListCampaigns возвращает все кампании.
	ListCampaigns(ctx context.Context) ([]models.PrizeCampaign, error)
	// UpdateCampaignByID выполняет частичное обновление.
	UpdateCampaignByID(ctx context.Context, id string, update CampaignUpdate) (*models.PrizeCampaign, error)
	// DeleteCampaignByID удаляет кампанию.
	DeleteCampaignByID(ctx context.Context, id string) error
	// Close разрывает соединение с хранилищем.
	Close(ctx context.Context) error
}
