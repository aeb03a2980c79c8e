package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PlotRepository struct {
	DB *pgxpool.Pool
}

func NewPlotRepository(db *pgxpool.Pool) *PlotRepository {
	return &PlotRepository{DB: db}
}

func (r *PlotRepository) Create(ctx context.Context, p *models.Plot) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO plots(plot_name, number_of_houses, house_type, rent_price, details)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		p.PlotName, p.NumberOfHouses, p.HouseType, p.RentPrice, p.Details,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PlotRepository) Get(ctx context.Context, id int) (*models.Plot, error) {
	var p models.Plot
	err := r.DB.QueryRow(ctx,
		`SELECT id, plot_name, number_of_houses, house_type, rent_price, details, created_at, updated_at
         FROM plots WHERE id=$1`, id,
	).Scan(&p.ID, &p.PlotName, &p.NumberOfHouses, &p.HouseType, &p.RentPrice, &p.Details, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlotRepository) List(ctx context.Context) ([]*models.Plot, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, plot_name, number_of_houses, house_type, rent_price, details, created_at, updated_at
         FROM plots ORDER BY plot_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plots []*models.Plot
	for rows.Next() {
		var p models.Plot
		if err := rows.Scan(&p.ID, &p.PlotName, &p.NumberOfHouses, &p.HouseType, &p.RentPrice, &p.Details, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		plots = append(plots, &p)
	}
	return plots, rows.Err()
}

// ListSummaries returns plots joined with their occupancy and payment
// aggregates for the dashboard. Paid houses are occupied houses whose
// tenant currently owes nothing.
func (r *PlotRepository) ListSummaries(ctx context.Context) ([]*models.PlotSummary, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT p.id, p.plot_name, p.number_of_houses, p.house_type, p.rent_price, p.details,
		       p.created_at, p.updated_at,
		       COUNT(h.id) FILTER (WHERE h.is_occupied) AS occupied_houses,
		       COUNT(h.id) FILTER (WHERE h.is_occupied AND t.rent_owed = 0 AND t.deposit_owed = 0) AS paid_houses,
		       COALESCE(SUM(pay.amount), 0) AS amount_paid
		FROM plots p
		LEFT JOIN houses h ON h.plot_id = p.id
		LEFT JOIN tenants t ON t.id = h.tenant_id AND t.is_active
		LEFT JOIN payments pay ON pay.tenant_id = t.id
		GROUP BY p.id
		ORDER BY p.plot_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.PlotSummary
	for rows.Next() {
		var s models.PlotSummary
		if err := rows.Scan(&s.ID, &s.PlotName, &s.NumberOfHouses, &s.HouseType, &s.RentPrice, &s.Details,
			&s.CreatedAt, &s.UpdatedAt, &s.OccupiedHouses, &s.PaidHouses, &s.AmountPaid); err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}
	return summaries, rows.Err()
}

func (r *PlotRepository) Update(ctx context.Context, p *models.Plot) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE plots SET plot_name=$1, number_of_houses=$2, house_type=$3, rent_price=$4, details=$5, updated_at=NOW()
         WHERE id=$6`,
		p.PlotName, p.NumberOfHouses, p.HouseType, p.RentPrice, p.Details, p.ID)
	return err
}

func (r *PlotRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM plots WHERE id=$1`, id)
	return err
}
