package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReceiptHandler struct {
	Service *services.ReceiptService
}

func NewReceiptHandler(s *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{Service: s}
}

// Get streams the PDF receipt for a payment.
func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	pdf, err := h.Service.GenerateReceipt(r.Context(), paymentID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=receipt_%d.pdf", paymentID))
	w.Write(pdf)
}
