package models

import "time"

type Tenant struct {
	ID          int       `json:"id"`
	HouseID     int       `json:"house_id"`
	TenantName  string    `json:"tenant_name"`
	ContactInfo string    `json:"contact_info"`
	MoveInDate  time.Time `json:"move_in_date"`
	Occupation  string    `json:"occupation"`
	RentOwed    int64     `json:"rent_owed"`
	DepositOwed int64     `json:"deposit_owed"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTenantRequest represents the request body for moving a tenant in.
// Starting balances are derived server-side from the house rent and the
// move-in date, not supplied by the client.
type CreateTenantRequest struct {
	HouseID     int    `json:"house_id"`
	TenantName  string `json:"tenant_name"`
	ContactInfo string `json:"contact_info"`
	MoveInDate  string `json:"move_in_date"`
	Occupation  string `json:"occupation"`
}

// UpdateTenantRequest represents the request body for updating a tenant
type UpdateTenantRequest struct {
	TenantName  string `json:"tenant_name"`
	ContactInfo string `json:"contact_info"`
	Occupation  string `json:"occupation"`
}

// TenantView is a tenant joined with display fields for list screens.
type TenantView struct {
	Tenant
	HouseNumber string `json:"house_number"`
	PlotName    string `json:"plot_name"`
	Duration    string `json:"duration"` // elapsed time since move-in
}
