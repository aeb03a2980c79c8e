package repositories

import (
	"context"
	"time"

	"rental-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `id, tenant_id, month, year, amount, is_carryover, transaction_date, created_at`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so reads can run
// inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.TenantID, &p.Month, &p.Year, &p.Amount, &p.IsCarryover, &p.TransactionDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPayments(rows pgx.Rows) ([]*models.Payment, error) {
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreateTx records a payment inside the same transaction that updated the
// tenant's balances.
func (r *PaymentRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *models.Payment) error {
	return tx.QueryRow(ctx,
		`INSERT INTO payments(tenant_id, month, year, amount, is_carryover, transaction_date)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		p.TenantID, p.Month, p.Year, p.Amount, p.IsCarryover, p.TransactionDate,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(tenant_id, month, year, amount, is_carryover, transaction_date)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		p.TenantID, p.Month, p.Year, p.Amount, p.IsCarryover, p.TransactionDate,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	return scanPayment(r.DB.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id=$1`, id))
}

// ListByTenant returns a tenant's payments oldest first. When
// includeCarryover is false the materialized carryover rows are skipped;
// the schedule is always recomputed from real transactions so the credits
// are not counted twice.
func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID int, includeCarryover bool) ([]*models.Payment, error) {
	return listByTenant(ctx, r.DB, tenantID, includeCarryover)
}

// ListByTenantTx is ListByTenant inside the scheduling transaction, so the
// rows read are the ones the tenant lock protects.
func (r *PaymentRepository) ListByTenantTx(ctx context.Context, tx pgx.Tx, tenantID int, includeCarryover bool) ([]*models.Payment, error) {
	return listByTenant(ctx, tx, tenantID, includeCarryover)
}

func listByTenant(ctx context.Context, q querier, tenantID int, includeCarryover bool) ([]*models.Payment, error) {
	rows, err := q.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
         WHERE tenant_id=$1 AND (is_carryover = FALSE OR $2)
         ORDER BY transaction_date, id`, tenantID, includeCarryover)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

// ListCarryoversTx returns the tenant's materialized carryover rows.
func (r *PaymentRepository) ListCarryoversTx(ctx context.Context, tx pgx.Tx, tenantID int) ([]*models.Payment, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
         WHERE tenant_id=$1 AND is_carryover
         ORDER BY transaction_date, id`, tenantID)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

// UpdateCarryoverTx replaces a carryover row's amount when a later payment
// into the same month grows the credit.
func (r *PaymentRepository) UpdateCarryoverTx(ctx context.Context, tx pgx.Tx, id int, amount int64, date time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE payments SET amount=$2, transaction_date=$3 WHERE id=$1 AND is_carryover`,
		id, amount, date)
	return err
}

// DeleteCarryoverTx removes a carryover row that no longer matches the
// computed schedule.
func (r *PaymentRepository) DeleteCarryoverTx(ctx context.Context, tx pgx.Tx, id int) error {
	_, err := tx.Exec(ctx, `DELETE FROM payments WHERE id=$1 AND is_carryover`, id)
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	return err
}
