package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TOTPRepository struct {
	DB *pgxpool.Pool
}

func NewTOTPRepository(db *pgxpool.Pool) *TOTPRepository {
	return &TOTPRepository{DB: db}
}

// SaveSecret stores or replaces a user's TOTP secret. The secret stays
// unconfirmed until the user verifies a code.
func (r *TOTPRepository) SaveSecret(ctx context.Context, userID int, secret string) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO user_totp(user_id, secret, confirmed)
         VALUES($1, $2, FALSE)
         ON CONFLICT (user_id) DO UPDATE SET secret=EXCLUDED.secret, confirmed=FALSE`,
		userID, secret)
	return err
}

func (r *TOTPRepository) GetSecret(ctx context.Context, userID int) (secret string, confirmed bool, err error) {
	err = r.DB.QueryRow(ctx,
		`SELECT secret, confirmed FROM user_totp WHERE user_id=$1`, userID,
	).Scan(&secret, &confirmed)
	return secret, confirmed, err
}

func (r *TOTPRepository) Confirm(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE user_totp SET confirmed=TRUE WHERE user_id=$1`, userID)
	return err
}

func (r *TOTPRepository) Delete(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM user_totp WHERE user_id=$1`, userID)
	return err
}
