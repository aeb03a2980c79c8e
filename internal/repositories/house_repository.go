package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HouseRepository struct {
	DB *pgxpool.Pool
}

func NewHouseRepository(db *pgxpool.Pool) *HouseRepository {
	return &HouseRepository{DB: db}
}

const houseColumns = `id, plot_id, house_number, tenant_id, is_occupied, house_type, rent, created_at, updated_at`

func scanHouse(row interface{ Scan(...any) error }) (*models.House, error) {
	var h models.House
	err := row.Scan(&h.ID, &h.PlotID, &h.HouseNumber, &h.TenantID, &h.IsOccupied, &h.HouseType, &h.Rent, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HouseRepository) Create(ctx context.Context, h *models.House) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO houses(plot_id, house_number, house_type, rent)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		h.PlotID, h.HouseNumber, h.HouseType, h.Rent,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *HouseRepository) Get(ctx context.Context, id int) (*models.House, error) {
	return scanHouse(r.DB.QueryRow(ctx,
		`SELECT `+houseColumns+` FROM houses WHERE id=$1`, id))
}

func (r *HouseRepository) ListByPlot(ctx context.Context, plotID int) ([]*models.House, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+houseColumns+` FROM houses WHERE plot_id=$1 ORDER BY house_number`, plotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var houses []*models.House
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, err
		}
		houses = append(houses, h)
	}
	return houses, rows.Err()
}

func (r *HouseRepository) Update(ctx context.Context, h *models.House) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE houses SET house_number=$1, house_type=$2, rent=$3, updated_at=NOW()
         WHERE id=$4`,
		h.HouseNumber, h.HouseType, h.Rent, h.ID)
	return err
}

// SetTenant marks a house occupied by the given tenant, or vacant when
// tenantID is nil.
func (r *HouseRepository) SetTenant(ctx context.Context, houseID int, tenantID *int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE houses SET tenant_id=$1, is_occupied=$2, updated_at=NOW() WHERE id=$3`,
		tenantID, tenantID != nil, houseID)
	return err
}

func (r *HouseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM houses WHERE id=$1`, id)
	return err
}
