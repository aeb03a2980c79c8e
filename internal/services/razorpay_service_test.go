package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	appconfig "rental-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func signatureFor(secret, data string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func newTestRazorpayService(keyID, keySecret, webhookSecret string) *RazorpayService {
	cfg := &appconfig.Config{}
	cfg.Razorpay.KeyID = keyID
	cfg.Razorpay.KeySecret = keySecret
	cfg.Razorpay.WebhookSecret = webhookSecret
	return NewRazorpayService(cfg, nil, nil)
}

func TestVerifyCheckoutSignature(t *testing.T) {
	svc := newTestRazorpayService("rzp_test_key", "checkout-secret", "")

	sig := signatureFor("checkout-secret", "order_123|pay_456")
	assert.True(t, svc.VerifyCheckoutSignature("order_123", "pay_456", sig))

	assert.False(t, svc.VerifyCheckoutSignature("order_123", "pay_456", "deadbeef"))
	assert.False(t, svc.VerifyCheckoutSignature("order_999", "pay_456", sig))
}

func TestVerifyWebhookSignature(t *testing.T) {
	svc := newTestRazorpayService("rzp_test_key", "checkout-secret", "hook-secret")

	body := []byte(`{"event":"payment.captured"}`)
	sig := signatureFor("hook-secret", string(body))

	assert.True(t, svc.VerifyWebhookSignature(body, sig))
	assert.False(t, svc.VerifyWebhookSignature([]byte(`{"event":"tampered"}`), sig))
}

func TestVerifyWebhookSignatureRejectedWhenUnconfigured(t *testing.T) {
	svc := newTestRazorpayService("rzp_test_key", "checkout-secret", "")

	body := []byte(`{"event":"payment.captured"}`)
	sig := signatureFor("", string(body))
	assert.False(t, svc.VerifyWebhookSignature(body, sig))
}

func TestIsEnabledRequiresBothKeys(t *testing.T) {
	assert.True(t, newTestRazorpayService("id", "secret", "").IsEnabled())
	assert.False(t, newTestRazorpayService("id", "", "").IsEnabled())
	assert.False(t, newTestRazorpayService("", "secret", "").IsEnabled())
}
