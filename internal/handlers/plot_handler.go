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

type PlotHandler struct {
	Service *services.PlotService
}

func NewPlotHandler(s *services.PlotService) *PlotHandler {
	return &PlotHandler{Service: s}
}

func (h *PlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var plot models.Plot
	if err := json.NewDecoder(r.Body).Decode(&plot); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if plot.PlotName == "" {
		utils.Error(w, http.StatusBadRequest, "Plot name is required")
		return
	}

	if err := h.Service.Create(r.Context(), &plot); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create plot")
		return
	}
	utils.JSON(w, http.StatusCreated, &plot)
}

func (h *PlotHandler) List(w http.ResponseWriter, r *http.Request) {
	plots, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list plots")
		return
	}
	utils.JSON(w, http.StatusOK, plots)
}

// Dashboard returns per-plot occupancy and collection aggregates.
func (h *PlotHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.Dashboard(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	utils.JSON(w, http.StatusOK, summaries)
}

func (h *PlotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid plot id")
		return
	}

	plot, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Plot not found")
		return
	}
	utils.JSON(w, http.StatusOK, plot)
}

func (h *PlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid plot id")
		return
	}

	var plot models.Plot
	if err := json.NewDecoder(r.Body).Decode(&plot); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	plot.ID = id

	if err := h.Service.Update(r.Context(), &plot); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update plot")
		return
	}
	utils.JSON(w, http.StatusOK, &plot)
}

func (h *PlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid plot id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete plot")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
