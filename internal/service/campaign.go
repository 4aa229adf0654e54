package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// CreateCampaign создаёт призовую кампанию. Пара (year, type) уникальна.
func (s *Service) CreateCampaign(ctx context.Context, campaign models.PrizeCampaign) (*models.PrizeCampaign, error) {
	const op = "service.campaign.CreateCampaign"

	campaign.Year = strings.TrimSpace(campaign.Year)
	if campaign.Year == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	switch campaign.Type {
	case models.CampaignTypeEaster, models.CampaignTypeAdvent:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	created, err := s.campaigns.CreateCampaign(ctx, &campaign)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// CampaignByID возвращает кампанию по идентификатору.
func (s *Service) CampaignByID(ctx context.Context, id string) (*models.PrizeCampaign, error) {
	const op = "service.campaign.CampaignByID"

	campaign, err := s.campaigns.CampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return campaign, nil
}

// CampaignByYearAndType возвращает кампанию по паре (year, type).
func (s *Service) CampaignByYearAndType(ctx context.Context, year, campaignType string) (*models.PrizeCampaign, error) {
	const op = "service.campaign.CampaignByYearAndType"

	campaign, err := s.campaigns.CampaignByYearAndType(ctx, year, campaignType)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return campaign, nil
}

// ListCampaigns возвращает все кампании.
func (s *Service) ListCampaigns(ctx context.Context) ([]models.PrizeCampaign, error) {
	const op = "service.campaign.ListCampaigns"

	campaigns, err := s.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return campaigns, nil
}

// UpdateCampaign выполняет частичное обновление кампании.
func (s *Service) UpdateCampaign(ctx context.Context, id string, update storage.CampaignUpdate) (*models.PrizeCampaign, error) {
	const op = "service.campaign.UpdateCampaign"

	campaign, err := s.campaigns.UpdateCampaignByID(ctx, id, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return campaign, nil
}

// DeleteCampaign удаляет кампанию.
func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	const op = "service.campaign.DeleteCampaign"

	if err := s.campaigns.DeleteCampaignByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
