package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dashboard-backend/internal/handlers"
	"dashboard-backend/internal/middleware"
)

func NewRouter(
	dashboardHandler *handlers.DashboardHandler,
	invoiceHandler *handlers.InvoiceHandler,
	customerHandler *handlers.CustomerHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.Metrics)

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Dashboard views
	api.HandleFunc("/dashboard/cards", dashboardHandler.Cards).Methods("GET")
	api.HandleFunc("/dashboard/revenue", dashboardHandler.Revenue).Methods("GET")
	api.HandleFunc("/dashboard/latest-invoices", dashboardHandler.LatestInvoices).Methods("GET")

	// Invoices
	api.HandleFunc("/invoices", invoiceHandler.List).Methods("GET")
	api.HandleFunc("/invoices/{id}", invoiceHandler.Get).Methods("GET")

	// Customers
	api.HandleFunc("/customers", customerHandler.List).Methods("GET")
	api.HandleFunc("/customers/filtered", customerHandler.Filtered).Methods("GET")

	return r
}
