package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	appconfig "rental-backend/internal/config"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService lets tenants pay rent through the online gateway. A
// captured payment is credited to the tenant's balances exactly like a cash
// payment, through the same allocation path.
type RazorpayService struct {
	cfg             *appconfig.Config
	transactionRepo *repositories.OnlineTransactionRepository
	paymentService  *PaymentService
}

func NewRazorpayService(
	cfg *appconfig.Config,
	transactionRepo *repositories.OnlineTransactionRepository,
	paymentService *PaymentService,
) *RazorpayService {
	return &RazorpayService{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		paymentService:  paymentService,
	}
}

func (s *RazorpayService) client() *razorpay.Client {
	if s.cfg.Razorpay.KeyID == "" || s.cfg.Razorpay.KeySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.cfg.Razorpay.KeyID, s.cfg.Razorpay.KeySecret)
}

// IsEnabled reports whether gateway credentials are configured.
func (s *RazorpayService) IsEnabled() bool {
	return s.cfg.Razorpay.KeyID != "" && s.cfg.Razorpay.KeySecret != ""
}

// KeyID exposes the public key for checkout clients.
func (s *RazorpayService) KeyID() string {
	return s.cfg.Razorpay.KeyID
}

// CreateOrder creates a gateway order for a tenant and stores the pending
// transaction. Amounts are whole shillings; the gateway wants cents.
func (s *RazorpayService) CreateOrder(ctx context.Context, tenantID int, amount int64) (*models.OnlineTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("order amount must be greater than zero")
	}

	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("online payments are not configured")
	}

	orderData := map[string]interface{}{
		"amount":   amount * 100,
		"currency": "KES",
		"receipt":  fmt.Sprintf("tenant_%d", tenantID),
		"notes": map[string]interface{}{
			"tenant_id": tenantID,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	orderID, _ := order["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("gateway returned no order id")
	}

	tx := &models.OnlineTransaction{
		TenantID: tenantID,
		OrderID:  orderID,
		Amount:   amount,
		Status:   "created",
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("store transaction: %w", err)
	}
	return tx, nil
}

// VerifyCheckoutSignature verifies the signature returned to the checkout
// page after payment.
func (s *RazorpayService) VerifyCheckoutSignature(orderID, paymentID, signature string) bool {
	return verifyHMAC(s.cfg.Razorpay.KeySecret, orderID+"|"+paymentID, signature)
}

// VerifyWebhookSignature verifies the signature header on webhook bodies.
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.cfg.Razorpay.WebhookSecret == "" {
		return false
	}
	return verifyHMAC(s.cfg.Razorpay.WebhookSecret, string(body), signature)
}

func verifyHMAC(secret, data, signature string) bool {
	if secret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook handles gateway events. Captured payments are credited to
// the tenant through the regular payment path.
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, entity map[string]interface{}) error {
	switch event {
	case "payment.captured":
		return s.handleCaptured(ctx, entity)
	case "payment.failed":
		return s.handleFailed(ctx, entity)
	default:
		log.Printf("[Razorpay] Ignoring webhook event %s", event)
		return nil
	}
}

func (s *RazorpayService) handleCaptured(ctx context.Context, entity map[string]interface{}) error {
	orderID, _ := entity["order_id"].(string)
	paymentID, _ := entity["id"].(string)
	if orderID == "" {
		return fmt.Errorf("webhook missing order_id")
	}

	tx, err := s.transactionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("transaction for order %s: %w", orderID, err)
	}
	if tx.Status == "paid" {
		log.Printf("[Razorpay] Order %s already processed", orderID)
		return nil
	}

	var fee int64
	if f, ok := entity["fee"].(float64); ok {
		fee = int64(f) / 100
	}

	if err := s.transactionRepo.MarkPaid(ctx, orderID, paymentID, fee); err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}

	_, err = s.paymentService.RecordPayment(ctx, &models.CreatePaymentRequest{
		TenantID: tx.TenantID,
		Amount:   tx.Amount,
	})
	if err != nil {
		return fmt.Errorf("credit tenant %d: %w", tx.TenantID, err)
	}

	log.Printf("[Razorpay] Credited %d to tenant %d from order %s", tx.Amount, tx.TenantID, orderID)
	return nil
}

func (s *RazorpayService) handleFailed(ctx context.Context, entity map[string]interface{}) error {
	orderID, _ := entity["order_id"].(string)
	if orderID == "" {
		return nil
	}
	return s.transactionRepo.MarkFailed(ctx, orderID)
}
