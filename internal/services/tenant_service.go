package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"rental-backend/internal/cache"
	"rental-backend/internal/ledger"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"
)

var ErrHouseOccupied = errors.New("house is already occupied")

type TenantService struct {
	Repo      *repositories.TenantRepository
	HouseRepo *repositories.HouseRepository
}

func NewTenantService(repo *repositories.TenantRepository, houseRepo *repositories.HouseRepository) *TenantService {
	return &TenantService{Repo: repo, HouseRepo: houseRepo}
}

// MoveIn registers a tenant into a house and seeds their balances: the full
// deposit plus one month of rent for every calendar month already elapsed
// since the move-in date, current month included.
func (s *TenantService) MoveIn(ctx context.Context, req *models.CreateTenantRequest) (*models.Tenant, error) {
	house, err := s.HouseRepo.Get(ctx, req.HouseID)
	if err != nil {
		return nil, fmt.Errorf("house %d: %w", req.HouseID, err)
	}
	if house.IsOccupied {
		return nil, ErrHouseOccupied
	}

	moveIn, err := ledger.ParseDate(req.MoveInDate)
	if err != nil {
		return nil, err
	}

	months := int64(len(ledger.MonthsBetween(moveIn, timeutil.Now())))

	tenant := &models.Tenant{
		HouseID:     req.HouseID,
		TenantName:  req.TenantName,
		ContactInfo: req.ContactInfo,
		MoveInDate:  moveIn,
		Occupation:  req.Occupation,
		DepositOwed: house.Rent,
		RentOwed:    months * house.Rent,
	}
	if err := s.Repo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	if err := s.HouseRepo.SetTenant(ctx, house.ID, &tenant.ID); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)

	log.Printf("[Tenant] %s moved into house %s, owes %d rent and %d deposit",
		tenant.TenantName, house.HouseNumber, tenant.RentOwed, tenant.DepositOwed)
	return tenant, nil
}

func (s *TenantService) Get(ctx context.Context, id int) (*models.Tenant, error) {
	return s.Repo.Get(ctx, id)
}

// List returns active tenants with display fields, including the elapsed
// time since move-in.
func (s *TenantService) List(ctx context.Context) ([]*models.TenantView, error) {
	views, err := s.Repo.ListViews(ctx)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	for _, v := range views {
		v.Duration = ledger.Elapsed(v.MoveInDate, now)
	}
	return views, nil
}

func (s *TenantService) Update(ctx context.Context, id int, req *models.UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant.TenantName = req.TenantName
	tenant.ContactInfo = req.ContactInfo
	tenant.Occupation = req.Occupation

	if err := s.Repo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// MoveOut deactivates the tenant and frees their house.
func (s *TenantService) MoveOut(ctx context.Context, id int) error {
	tenant, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Deactivate(ctx, id); err != nil {
		return err
	}
	if err := s.HouseRepo.SetTenant(ctx, tenant.HouseID, nil); err != nil {
		return err
	}

	cache.InvalidateDashboard(ctx)
	cache.InvalidateSchedule(ctx, id)
	return nil
}
