package models

import "time"

type Plot struct {
	ID             int       `json:"id"`
	PlotName       string    `json:"plot_name"`
	NumberOfHouses int       `json:"number_of_houses"`
	HouseType      string    `json:"house_type"`
	RentPrice      int64     `json:"rent_price"`
	Details        string    `json:"details"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlotSummary carries the per-plot aggregates shown on the dashboard.
type PlotSummary struct {
	Plot
	OccupiedHouses int   `json:"occupied_houses"`
	PaidHouses     int   `json:"paid_houses"`
	AmountPaid     int64 `json:"amount_paid"`
}

// CreatePlotRequest represents the request body for creating a plot
type CreatePlotRequest struct {
	PlotName       string `json:"plot_name"`
	NumberOfHouses int    `json:"number_of_houses"`
	HouseType      string `json:"house_type"`
	RentPrice      int64  `json:"rent_price"`
	Details        string `json:"details"`
}

// UpdatePlotRequest represents the request body for updating a plot
type UpdatePlotRequest struct {
	PlotName       string `json:"plot_name"`
	NumberOfHouses int    `json:"number_of_houses"`
	HouseType      string `json:"house_type"`
	RentPrice      int64  `json:"rent_price"`
	Details        string `json:"details"`
}
