package services

import (
	"context"

	"rental-backend/internal/cache"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
)

type HouseService struct {
	Repo *repositories.HouseRepository
}

func NewHouseService(repo *repositories.HouseRepository) *HouseService {
	return &HouseService{Repo: repo}
}

func (s *HouseService) Create(ctx context.Context, req *models.CreateHouseRequest) (*models.House, error) {
	house := &models.House{
		PlotID:      req.PlotID,
		HouseNumber: req.HouseNumber,
		HouseType:   req.HouseType,
		Rent:        req.Rent,
	}
	if err := s.Repo.Create(ctx, house); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return house, nil
}

func (s *HouseService) Get(ctx context.Context, id int) (*models.House, error) {
	return s.Repo.Get(ctx, id)
}

func (s *HouseService) ListByPlot(ctx context.Context, plotID int) ([]*models.House, error) {
	return s.Repo.ListByPlot(ctx, plotID)
}

func (s *HouseService) Update(ctx context.Context, id int, req *models.UpdateHouseRequest) (*models.House, error) {
	house, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	house.HouseNumber = req.HouseNumber
	house.HouseType = req.HouseType
	house.Rent = req.Rent

	if err := s.Repo.Update(ctx, house); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return house, nil
}

func (s *HouseService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}
