package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type TenantHandler struct {
	Service *services.TenantService
}

func NewTenantHandler(s *services.TenantService) *TenantHandler {
	return &TenantHandler{Service: s}
}

// MoveIn registers a tenant into a house.
func (h *TenantHandler) MoveIn(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TenantName == "" || req.MoveInDate == "" {
		utils.Error(w, http.StatusBadRequest, "Tenant name and move-in date are required")
		return
	}

	tenant, err := h.Service.MoveIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrHouseOccupied) {
			utils.Error(w, http.StatusConflict, err.Error())
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, tenant)
}

func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list tenants")
		return
	}
	utils.JSON(w, http.StatusOK, tenants)
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	tenant, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Tenant not found")
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	var req models.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tenant, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

// MoveOut deactivates a tenant and frees the house.
func (h *TenantHandler) MoveOut(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant id")
		return
	}

	if err := h.Service.MoveOut(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to move tenant out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
