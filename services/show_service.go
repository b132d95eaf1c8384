package services

import (
	"context"

	"exhibitor-portal/config"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
)

type ShowService struct {
	showRepo *repositories.ShowRepository
}

func NewShowService(client repositories.SpreadsheetClient) *ShowService {
	return &ShowService{
		showRepo: repositories.NewShowRepository(client),
	}
}

func (s *ShowService) ListShows(ctx context.Context) []string {
	var cached []string
	if models.CacheGet(ctx, "catalog:shows", &cached) {
		return cached
	}

	shows := s.showRepo.ListShows(ctx, config.AppConfig.SheetID)
	models.CacheSet(ctx, "catalog:shows", shows, config.AppConfig.CatalogCacheTTL)
	return shows
}

func (s *ShowService) ListInventoryItems(ctx context.Context) []string {
	var cached []string
	if models.CacheGet(ctx, "catalog:inventory", &cached) {
		return cached
	}

	items := s.showRepo.ListInventoryItems(ctx, config.AppConfig.SheetID)
	models.CacheSet(ctx, "catalog:inventory", items, config.AppConfig.CatalogCacheTTL)
	return items
}

func (s *ShowService) ListWorksheets(ctx context.Context) ([]string, error) {
	return s.showRepo.ListWorksheets(ctx, config.AppConfig.SheetID)
}
