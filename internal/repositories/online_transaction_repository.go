package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

func (r *OnlineTransactionRepository) Create(ctx context.Context, t *models.OnlineTransaction) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO online_transactions(tenant_id, order_id, amount, status)
         VALUES($1, $2, $3, 'created')
         RETURNING id, created_at`,
		t.TenantID, t.OrderID, t.Amount,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *OnlineTransactionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error) {
	var t models.OnlineTransaction
	err := r.DB.QueryRow(ctx,
		`SELECT id, tenant_id, order_id, payment_id, amount, fee, status, created_at, completed_at
         FROM online_transactions WHERE order_id=$1`, orderID,
	).Scan(&t.ID, &t.TenantID, &t.OrderID, &t.PaymentID, &t.Amount, &t.Fee, &t.Status, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkPaid records the gateway payment id and fee once the webhook confirms
// capture. Returns without error if the row was already marked.
func (r *OnlineTransactionRepository) MarkPaid(ctx context.Context, orderID, paymentID string, fee int64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions
         SET payment_id=$1, fee=$2, status='paid', completed_at=NOW()
         WHERE order_id=$3 AND status <> 'paid'`,
		paymentID, fee, orderID)
	return err
}

func (r *OnlineTransactionRepository) MarkFailed(ctx context.Context, orderID string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions SET status='failed', completed_at=NOW() WHERE order_id=$1`, orderID)
	return err
}
