package repositories

import (
	"context"
	"fmt"

	"rental-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository struct {
	DB *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{DB: db}
}

const tenantColumns = `id, house_id, tenant_name, contact_info, move_in_date, occupation, rent_owed, deposit_owed, is_active, created_at, updated_at`

func scanTenant(row interface{ Scan(...any) error }) (*models.Tenant, error) {
	var t models.Tenant
	err := row.Scan(&t.ID, &t.HouseID, &t.TenantName, &t.ContactInfo, &t.MoveInDate, &t.Occupation,
		&t.RentOwed, &t.DepositOwed, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) Create(ctx context.Context, t *models.Tenant) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO tenants(house_id, tenant_name, contact_info, move_in_date, occupation, rent_owed, deposit_owed, is_active)
         VALUES($1, $2, $3, $4, $5, $6, $7, TRUE)
         RETURNING id, created_at, updated_at`,
		t.HouseID, t.TenantName, t.ContactInfo, t.MoveInDate, t.Occupation, t.RentOwed, t.DepositOwed,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TenantRepository) Get(ctx context.Context, id int) (*models.Tenant, error) {
	return scanTenant(r.DB.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id=$1`, id))
}

// GetForUpdate loads a tenant inside tx with a row lock, serializing
// concurrent balance updates for the same tenant.
func (r *TenantRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, id int) (*models.Tenant, error) {
	return scanTenant(tx.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id=$1 FOR UPDATE`, id))
}

// UpdateBalances writes a tenant's balances inside tx. Negative values are
// rejected before they reach the database constraint.
func (r *TenantRepository) UpdateBalances(ctx context.Context, tx pgx.Tx, id int, depositOwed, rentOwed int64) error {
	if depositOwed < 0 || rentOwed < 0 {
		return fmt.Errorf("negative balance for tenant %d: deposit=%d rent=%d", id, depositOwed, rentOwed)
	}
	_, err := tx.Exec(ctx,
		`UPDATE tenants SET deposit_owed=$1, rent_owed=$2, updated_at=NOW() WHERE id=$3`,
		depositOwed, rentOwed, id)
	return err
}

// ListViews returns active tenants joined with house and plot display fields.
func (r *TenantRepository) ListViews(ctx context.Context) ([]*models.TenantView, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT t.id, t.house_id, t.tenant_name, t.contact_info, t.move_in_date, t.occupation,
		       t.rent_owed, t.deposit_owed, t.is_active, t.created_at, t.updated_at,
		       h.house_number, p.plot_name
		FROM tenants t
		JOIN houses h ON h.id = t.house_id
		JOIN plots p ON p.id = h.plot_id
		WHERE t.is_active
		ORDER BY p.plot_name, h.house_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*models.TenantView
	for rows.Next() {
		var v models.TenantView
		if err := rows.Scan(&v.ID, &v.HouseID, &v.TenantName, &v.ContactInfo, &v.MoveInDate, &v.Occupation,
			&v.RentOwed, &v.DepositOwed, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
			&v.HouseNumber, &v.PlotName); err != nil {
			return nil, err
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}

// ListActiveWithRent returns active tenant ids paired with their house rent,
// used by the monthly accrual.
func (r *TenantRepository) ListActiveWithRent(ctx context.Context) (map[int]int64, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT t.id, h.rent
		FROM tenants t
		JOIN houses h ON h.id = t.house_id
		WHERE t.is_active AND h.is_occupied
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rents := make(map[int]int64)
	for rows.Next() {
		var id int
		var rent int64
		if err := rows.Scan(&id, &rent); err != nil {
			return nil, err
		}
		rents[id] = rent
	}
	return rents, rows.Err()
}

func (r *TenantRepository) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE tenants SET tenant_name=$1, contact_info=$2, occupation=$3, updated_at=NOW()
         WHERE id=$4`,
		t.TenantName, t.ContactInfo, t.Occupation, t.ID)
	return err
}

// Deactivate zeroes a tenant's balances and marks them moved out.
func (r *TenantRepository) Deactivate(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE tenants SET is_active=FALSE, rent_owed=0, deposit_owed=0, updated_at=NOW() WHERE id=$1`, id)
	return err
}

// AccrueRent adds amount to a tenant's rent owed (monthly replenishment).
func (r *TenantRepository) AccrueRent(ctx context.Context, id int, amount int64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE tenants SET rent_owed = rent_owed + $1, updated_at=NOW() WHERE id=$2`, amount, id)
	return err
}
