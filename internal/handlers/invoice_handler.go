package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dashboard-backend/internal/services"
	"dashboard-backend/pkg/utils"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

func NewInvoiceHandler(s *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: s}
}

// List serves one page of the invoices table plus the total page count for
// the same query, so the client can render pagination controls.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			page = n
		}
	}

	invoices, err := h.Service.FetchFilteredInvoices(r.Context(), query, page)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	pages, err := h.Service.FetchInvoicesPages(r.Context(), query)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"invoices":    invoices,
		"total_pages": pages,
	})
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	invoice, err := h.Service.FetchInvoiceByID(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if invoice == nil {
		utils.Error(w, http.StatusNotFound, "invoice not found")
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}
