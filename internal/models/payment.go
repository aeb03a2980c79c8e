package models

import "time"

// DepositMonthLabel is recorded on payments that went toward the deposit
// while it was still being amortized.
const DepositMonthLabel = "Deposit"

type Payment struct {
	ID              int       `json:"id"`
	TenantID        int       `json:"tenant_id"`
	Month           string    `json:"month"`
	Year            int       `json:"year"`
	Amount          int64     `json:"amount"`
	IsCarryover     bool      `json:"is_carryover"`
	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	TenantID int    `json:"tenant_id"`
	Month    string `json:"month"`
	Year     int    `json:"year"`
	Amount   int64  `json:"amount"`
}

// PaymentResult is returned after a payment is applied: the persisted
// transaction plus how the amount was split across the tenant's balances.
type PaymentResult struct {
	Payment        *Payment `json:"payment"`
	DepositPortion int64    `json:"deposit_portion"`
	RentPortion    int64    `json:"rent_portion"`
	Excess         int64    `json:"excess"`
	DepositOwed    int64    `json:"deposit_owed"`
	RentOwed       int64    `json:"rent_owed"`
}

// OnlineTransaction tracks a payment made through the online gateway.
type OnlineTransaction struct {
	ID          int       `json:"id"`
	TenantID    int       `json:"tenant_id"`
	OrderID     string    `json:"order_id"`
	PaymentID   string    `json:"payment_id"`
	Amount      int64     `json:"amount"`
	Fee         int64     `json:"fee"`
	Status      string    `json:"status"` // created, paid, failed
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
