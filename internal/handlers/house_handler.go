package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type HouseHandler struct {
	Service *services.HouseService
}

func NewHouseHandler(s *services.HouseService) *HouseHandler {
	return &HouseHandler{Service: s}
}

func (h *HouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Rent <= 0 {
		utils.Error(w, http.StatusBadRequest, "Rent must be greater than zero")
		return
	}

	house, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create house")
		return
	}
	utils.JSON(w, http.StatusCreated, house)
}

// ListByPlot returns all houses on a plot.
func (h *HouseHandler) ListByPlot(w http.ResponseWriter, r *http.Request) {
	plotID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid plot id")
		return
	}

	houses, err := h.Service.ListByPlot(r.Context(), plotID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list houses")
		return
	}
	utils.JSON(w, http.StatusOK, houses)
}

func (h *HouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid house id")
		return
	}

	house, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "House not found")
		return
	}
	utils.JSON(w, http.StatusOK, house)
}

func (h *HouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid house id")
		return
	}

	var req models.UpdateHouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	house, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update house")
		return
	}
	utils.JSON(w, http.StatusOK, house)
}

func (h *HouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid house id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete house")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
