package handlers

import (
	"net/http"

	"dashboard-backend/internal/services"
	"dashboard-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) Cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Service.FetchCardData(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, cards)
}

func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.Service.FetchRevenue(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, revenue)
}

func (h *DashboardHandler) LatestInvoices(w http.ResponseWriter, r *http.Request) {
	latest, err := h.Service.FetchLatestInvoices(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, latest)
}
