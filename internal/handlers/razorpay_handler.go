package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"
)

type RazorpayHandler struct {
	Service *services.RazorpayService
}

func NewRazorpayHandler(s *services.RazorpayService) *RazorpayHandler {
	return &RazorpayHandler{Service: s}
}

// Status tells checkout clients whether online payments are available.
func (h *RazorpayHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"enabled": h.Service.IsEnabled(),
		"key_id":  h.Service.KeyID(),
	})
}

// CreateOrder opens a gateway order for a tenant.
func (h *RazorpayHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TenantID int   `json:"tenant_id"`
		Amount   int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.Service.CreateOrder(r.Context(), req.TenantID, req.Amount)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, tx)
}

// VerifyCheckout validates the signature the checkout page receives after a
// successful payment. Crediting happens through the webhook; this only tells
// the client whether the callback is genuine.
func (h *RazorpayHandler) VerifyCheckout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.Service.VerifyCheckoutSignature(req.OrderID, req.PaymentID, req.Signature) {
		utils.Error(w, http.StatusUnauthorized, "Invalid payment signature")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

// Webhook receives gateway events. The signature header is verified before
// anything is processed.
func (h *RazorpayHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !h.Service.VerifyWebhookSignature(body, signature) {
		utils.Error(w, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var payload struct {
		Event   string `json:"event"`
		Payload struct {
			Payment struct {
				Entity map[string]interface{} `json:"entity"`
			} `json:"payment"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid webhook body")
		return
	}

	if err := h.Service.ProcessWebhook(r.Context(), payload.Event, payload.Payload.Payment.Entity); err != nil {
		log.Printf("[Razorpay] Webhook %s failed: %v", payload.Event, err)
		utils.Error(w, http.StatusInternalServerError, "Webhook processing failed")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
