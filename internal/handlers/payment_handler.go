package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rental-backend/internal/ledger"
	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// Create records a payment and returns how it was allocated.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Service.RecordPayment(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

// Schedule returns a tenant's month-by-month payment schedule.
func (h *PaymentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	entries, err := h.Service.Schedule(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []ledger.Entry{}
	}
	utils.JSON(w, http.StatusOK, entries)
}

// History returns every transaction recorded for a tenant.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	payments, err := h.Service.History(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load payments")
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	utils.JSON(w, http.StatusOK, payments)
}

// Accrue charges one month of rent to every active tenant. Admin only,
// run at the start of each month.
func (h *PaymentHandler) Accrue(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.AccrueMonthlyRent(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to accrue rent")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]int{"tenants_charged": count})
}
