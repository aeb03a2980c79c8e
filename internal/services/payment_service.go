package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rental-backend/internal/cache"
	"rental-backend/internal/ledger"
	"rental-backend/internal/metrics"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/sms"
	"rental-backend/internal/timeutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentService struct {
	DB         *pgxpool.Pool
	Repo       *repositories.PaymentRepository
	TenantRepo *repositories.TenantRepository
	HouseRepo  *repositories.HouseRepository
	Notifier   sms.Provider
}

func NewPaymentService(
	db *pgxpool.Pool,
	repo *repositories.PaymentRepository,
	tenantRepo *repositories.TenantRepository,
	houseRepo *repositories.HouseRepository,
) *PaymentService {
	return &PaymentService{
		DB:         db,
		Repo:       repo,
		TenantRepo: tenantRepo,
		HouseRepo:  houseRepo,
	}
}

// SetNotifier sets the SMS provider used for payment confirmations.
func (s *PaymentService) SetNotifier(notifier sms.Provider) {
	s.Notifier = notifier
}

// RecordPayment applies a payment to a tenant's balances, deposit first,
// then rent, and stores the transaction. The tenant row is locked for the
// duration so concurrent payments for the same tenant serialize.
//
// While any deposit remains after the payment it is recorded under the
// deposit label instead of a calendar month. The payment that clears the
// deposit lands in its calendar month, so its rent portion feeds the
// monthly schedule.
func (s *PaymentService) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResult, error) {
	if req.Amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tenant, err := s.TenantRepo.GetForUpdate(ctx, tx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant %d: %w", req.TenantID, err)
	}

	balance := ledger.Balance{DepositOwed: tenant.DepositOwed, RentOwed: tenant.RentOwed}
	newBalance, alloc, err := ledger.Apply(balance, req.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.TenantRepo.UpdateBalances(ctx, tx, tenant.ID, newBalance.DepositOwed, newBalance.RentOwed); err != nil {
		return nil, err
	}

	now := timeutil.Now()
	month, year := paymentMonth(req.Month, req.Year, newBalance.DepositOwed, now)

	payment := &models.Payment{
		TenantID:        tenant.ID,
		Month:           month,
		Year:            year,
		Amount:          req.Amount,
		TransactionDate: now,
	}
	if err := s.Repo.CreateTx(ctx, tx, payment); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	metrics.PaymentAmount.WithLabelValues("deposit").Add(float64(alloc.Deposit))
	metrics.PaymentAmount.WithLabelValues("rent").Add(float64(alloc.Rent))
	metrics.PaymentAmount.WithLabelValues("excess").Add(float64(alloc.Excess))

	cache.InvalidateSchedule(ctx, tenant.ID)
	cache.InvalidateDashboard(ctx)

	if alloc.Excess > 0 {
		log.Printf("[Payment] tenant %d paid %d with %d excess beyond all balances", tenant.ID, req.Amount, alloc.Excess)
	}

	// Confirmation text is best effort, never fails the payment
	if s.Notifier != nil && tenant.ContactInfo != "" {
		msg := fmt.Sprintf("Payment of KSh %d received for %s %d. Rent balance: KSh %d, deposit balance: KSh %d. Thank you.",
			req.Amount, month, year, newBalance.RentOwed, newBalance.DepositOwed)
		go func(phone, msg string) {
			if err := s.Notifier.SendSMS(phone, msg); err != nil {
				log.Printf("[SMS] Failed to notify %s: %v", phone, err)
			}
		}(tenant.ContactInfo, msg)
	}

	return &models.PaymentResult{
		Payment:        payment,
		DepositPortion: alloc.Deposit,
		RentPortion:    alloc.Rent,
		Excess:         alloc.Excess,
		DepositOwed:    newBalance.DepositOwed,
		RentOwed:       newBalance.RentOwed,
	}, nil
}

// Schedule computes the tenant's month-by-month payment schedule from their
// real transactions. Overflow months produce carryover rows which are
// materialized into the transaction log so the history screen shows where
// the credit went, and the tenant's rent owed grows by the same amount so
// the posted credit has a matching obligation. Both happen in one
// transaction under the tenant lock. The computation itself never reads the
// materialized rows back, which keeps repeated calls stable.
func (s *PaymentService) Schedule(ctx context.Context, tenantID int) ([]ledger.Entry, error) {
	if data, ok := cache.GetCachedSchedule(ctx, tenantID); ok {
		var entries []ledger.Entry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
	}

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tenant, err := s.TenantRepo.GetForUpdate(ctx, tx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant %d: %w", tenantID, err)
	}
	house, err := s.HouseRepo.Get(ctx, tenant.HouseID)
	if err != nil {
		return nil, fmt.Errorf("house %d: %w", tenant.HouseID, err)
	}

	payments, err := s.Repo.ListByTenantTx(ctx, tx, tenantID, false)
	if err != nil {
		return nil, err
	}

	history := make([]ledger.Payment, 0, len(payments))
	for _, p := range payments {
		history = append(history, ledger.Payment{
			Month:  p.Month,
			Year:   p.Year,
			Amount: p.Amount,
			Date:   p.TransactionDate,
		})
	}

	entries, carryovers := ledger.Schedule(tenant.MoveInDate, house.Rent, history, timeutil.Now())

	existing, err := s.Repo.ListCarryoversTx(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}

	inserts, updates, deletes, delta := reconcileCarryovers(existing, carryovers)
	for _, c := range inserts {
		if err := s.Repo.CreateTx(ctx, tx, &models.Payment{
			TenantID:        tenantID,
			Month:           c.Month,
			Year:            c.Year,
			Amount:          c.Amount,
			IsCarryover:     true,
			TransactionDate: c.Date,
		}); err != nil {
			return nil, err
		}
		metrics.CarryoversPosted.Inc()
		log.Printf("[Schedule] tenant %d: carried %d into %s %d", tenantID, c.Amount, c.Month, c.Year)
	}
	for _, u := range updates {
		if err := s.Repo.UpdateCarryoverTx(ctx, tx, u.ID, u.Amount, u.Date); err != nil {
			return nil, err
		}
		log.Printf("[Schedule] tenant %d: carryover into %s %d is now %d", tenantID, u.Month, u.Year, u.Amount)
	}
	for _, id := range deletes {
		if err := s.Repo.DeleteCarryoverTx(ctx, tx, id); err != nil {
			return nil, err
		}
	}
	if delta != 0 {
		if err := s.TenantRepo.UpdateBalances(ctx, tx, tenantID, tenant.DepositOwed, tenant.RentOwed+delta); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if delta != 0 {
		cache.InvalidateDashboard(ctx)
	}

	if data, err := json.Marshal(entries); err == nil {
		cache.CacheSchedule(ctx, tenantID, data)
	}
	return entries, nil
}

type carryoverUpdate struct {
	ID     int
	Month  string
	Year   int
	Amount int64
	Date   time.Time
}

// paymentMonth resolves the month a payment is recorded under. Deposits in
// progress get the deposit label; everything else lands in the requested
// calendar month, defaulting to the current one.
func paymentMonth(month string, year int, depositOwedAfter int64, now time.Time) (string, int) {
	if month == "" {
		month = now.Month().String()
	}
	if year == 0 {
		year = now.Year()
	}
	if depositOwedAfter > 0 {
		month = models.DepositMonthLabel
	}
	return month, year
}

// reconcileCarryovers compares the materialized carryover rows with the
// freshly computed ones. Unseen months are inserted, months whose credit
// grew are updated in place, months no longer produced are removed. Delta
// is the net change in posted credit, which the caller books against the
// tenant's rent owed so the schedule's synthetic payments stay balanced by
// an equal obligation. A recompute over unchanged history yields no work.
func reconcileCarryovers(existing []*models.Payment, computed []ledger.Payment) (inserts []ledger.Payment, updates []carryoverUpdate, deletes []int, delta int64) {
	type monthYear struct {
		Month string
		Year  int
	}

	byMonth := make(map[monthYear]*models.Payment, len(existing))
	var existingTotal int64
	for _, e := range existing {
		byMonth[monthYear{e.Month, e.Year}] = e
		existingTotal += e.Amount
	}

	matched := make(map[monthYear]bool, len(computed))
	for _, c := range computed {
		key := monthYear{c.Month, c.Year}
		matched[key] = true
		e, ok := byMonth[key]
		switch {
		case !ok:
			inserts = append(inserts, c)
		case e.Amount != c.Amount:
			updates = append(updates, carryoverUpdate{ID: e.ID, Month: c.Month, Year: c.Year, Amount: c.Amount, Date: c.Date})
		}
	}
	for _, e := range existing {
		if !matched[monthYear{e.Month, e.Year}] {
			deletes = append(deletes, e.ID)
		}
	}

	delta = ledger.CarryoverTotal(computed) - existingTotal
	return inserts, updates, deletes, delta
}

// History returns all of a tenant's recorded transactions, materialized
// carryover rows included.
func (s *PaymentService) History(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	return s.Repo.ListByTenant(ctx, tenantID, true)
}

// AccrueMonthlyRent adds one month of rent to every active tenant. Run at
// the start of each month by the operator or a scheduler.
func (s *PaymentService) AccrueMonthlyRent(ctx context.Context) (int, error) {
	rents, err := s.TenantRepo.ListActiveWithRent(ctx)
	if err != nil {
		return 0, err
	}

	accrued := 0
	for tenantID, rent := range rents {
		if err := s.TenantRepo.AccrueRent(ctx, tenantID, rent); err != nil {
			log.Printf("[Accrual] tenant %d: %v", tenantID, err)
			continue
		}
		cache.InvalidateSchedule(ctx, tenantID)
		accrued++
	}

	cache.InvalidateDashboard(ctx)
	log.Printf("[Accrual] charged monthly rent to %d tenants", accrued)
	return accrued, nil
}
