package services

import (
	"context"
	"encoding/json"

	"rental-backend/internal/cache"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
)

type PlotService struct {
	Repo *repositories.PlotRepository
}

func NewPlotService(repo *repositories.PlotRepository) *PlotService {
	return &PlotService{Repo: repo}
}

func (s *PlotService) Create(ctx context.Context, plot *models.Plot) error {
	if err := s.Repo.Create(ctx, plot); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

func (s *PlotService) Get(ctx context.Context, id int) (*models.Plot, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PlotService) List(ctx context.Context) ([]*models.Plot, error) {
	return s.Repo.List(ctx)
}

// Dashboard returns per-plot occupancy and payment aggregates, served from
// cache when fresh.
func (s *PlotService) Dashboard(ctx context.Context) ([]*models.PlotSummary, error) {
	if data, ok := cache.GetCachedDashboard(ctx); ok {
		var summaries []*models.PlotSummary
		if err := json.Unmarshal(data, &summaries); err == nil {
			return summaries, nil
		}
	}

	summaries, err := s.Repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summaries); err == nil {
		cache.CacheDashboard(ctx, data)
	}
	return summaries, nil
}

func (s *PlotService) Update(ctx context.Context, plot *models.Plot) error {
	if err := s.Repo.Update(ctx, plot); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

func (s *PlotService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}
