package handlers

import (
	"net/http"

	"dashboard-backend/internal/services"
	"dashboard-backend/pkg/utils"
)

type CustomerHandler struct {
	Service *services.CustomerService
}

func NewCustomerHandler(s *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: s}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.FetchCustomers(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Filtered(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	customers, err := h.Service.FetchFilteredCustomers(r.Context(), query)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, customers)
}
