package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter returns a router with every API route registered under /api/v1.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware, LoggingMiddleware)
	RegisterRoutes(router, h)
	return router
}

// RegisterRoutes registers the rental API endpoints
func RegisterRoutes(router *mux.Router, h *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/vehicles", h.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", h.AddVehicle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", h.GetVehicle).Methods(http.MethodGet)

	api.HandleFunc("/customers", h.ListCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers", h.AddCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", h.GetCustomer).Methods(http.MethodGet)

	api.HandleFunc("/rentals", h.ListRentals).Methods(http.MethodGet)
	api.HandleFunc("/rentals", h.RentVehicle).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", h.GetRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", h.ReturnVehicle).Methods(http.MethodPost)

	api.HandleFunc("/maintenance/cleanup", h.CleanupRentals).Methods(http.MethodPost)
	api.HandleFunc("/settings/retention", h.GetRetention).Methods(http.MethodGet)
	api.HandleFunc("/settings/retention", h.SetRetention).Methods(http.MethodPut)

	api.HandleFunc("/summary", h.GetSummary).Methods(http.MethodGet)
	api.HandleFunc("/utilization", h.GetUtilization).Methods(http.MethodGet)
	api.HandleFunc("/report", h.GetReport).Methods(http.MethodGet)
}
