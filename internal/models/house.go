package models

import "time"

type House struct {
	ID          int       `json:"id"`
	PlotID      int       `json:"plot_id"`
	HouseNumber string    `json:"house_number"`
	TenantID    *int      `json:"tenant_id"`
	IsOccupied  bool      `json:"is_occupied"`
	HouseType   string    `json:"house_type"`
	Rent        int64     `json:"rent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateHouseRequest represents the request body for creating a house
type CreateHouseRequest struct {
	PlotID      int    `json:"plot_id"`
	HouseNumber string `json:"house_number"`
	HouseType   string `json:"house_type"`
	Rent        int64  `json:"rent"`
}

// UpdateHouseRequest represents the request body for updating a house
type UpdateHouseRequest struct {
	HouseNumber string `json:"house_number"`
	HouseType   string `json:"house_type"`
	Rent        int64  `json:"rent"`
}
