package http

import (
	"fmt"
	"net/http"
	"time"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/report"
	"car-rental-system/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type rentRequest struct {
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	Days       int    `json:"days"`
}

type returnResponse struct {
	Returned bool           `json:"returned"`
	Rental   *domain.Rental `json:"rental"`
}

type cleanupResponse struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}

type retentionBody struct {
	RetentionDays int `json:"retention_days"`
}

type utilizationResponse struct {
	Utilization *decimal.Decimal `json:"utilization"` // null when the fleet is empty
	Display     string           `json:"display"`
}

func wrapID(err error, id string) error {
	return fmt.Errorf("%w: %s", err, id)
}

// copyRental detaches a rental from the manager so it can be encoded after
// the lock is released.
func copyRental(r *domain.Rental) *domain.Rental {
	c := *r
	v, cu := *r.Vehicle, *r.Customer
	c.Vehicle, c.Customer = &v, &cu
	return &c
}

func copyRentals(rentals []*domain.Rental) []*domain.Rental {
	out := make([]*domain.Rental, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, copyRental(r))
	}
	return out
}

// ListRentals handles GET /rentals; ?active=true limits to un-returned rentals.
func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"
	var rentals []*domain.Rental
	_ = h.fleet.Do(func(m *service.Manager) error {
		if onlyActive {
			rentals = copyRentals(m.ActiveRentals())
		} else {
			rentals = copyRentals(m.Rentals())
		}
		return nil
	})
	writeJSON(w, http.StatusOK, rentals)
}

func (h *Handler) GetRental(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var rental *domain.Rental
	_ = h.fleet.Do(func(m *service.Manager) error {
		if found, ok := m.FindRental(id); ok {
			rental = copyRental(found)
		}
		return nil
	})
	if rental == nil {
		h.writeError(w, r, wrapID(domain.ErrRentalNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// RentVehicle handles POST /rentals.
func (h *Handler) RentVehicle(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	var rental *domain.Rental
	err := h.fleet.Do(func(m *service.Manager) error {
		created, err := m.RentVehicle(req.CustomerID, req.VehicleID, req.Days)
		if err != nil {
			return err
		}
		rental = copyRental(created)
		return nil
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.log.Info("Rental created",
		"rental_id", rental.ID,
		"customer_id", req.CustomerID,
		"vehicle_id", req.VehicleID,
		"days", rental.Days,
		"total_cost", rental.TotalCost.StringFixed(2))
	writeJSON(w, http.StatusCreated, rental)
}

// ReturnVehicle handles POST /rentals/{id}/return.
func (h *Handler) ReturnVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var rental *domain.Rental
	err := h.fleet.Do(func(m *service.Manager) error {
		found, ok := m.FindRental(id)
		if err := m.ReturnVehicle(id); err != nil {
			return err
		}
		// the rental may already be pruned from the book, but found still points at it
		if ok {
			rental = copyRental(found)
		}
		return nil
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.log.Info("Vehicle returned", "rental_id", id)
	writeJSON(w, http.StatusOK, returnResponse{Returned: true, Rental: rental})
}

// CleanupRentals handles POST /maintenance/cleanup.
func (h *Handler) CleanupRentals(w http.ResponseWriter, r *http.Request) {
	var resp cleanupResponse
	_ = h.fleet.Do(func(m *service.Manager) error {
		resp.Removed = m.CleanupOldRentals()
		resp.Remaining = len(m.Rentals())
		return nil
	})
	if resp.Removed > 0 {
		h.log.Info("Cleaned up old completed rentals", "removed", resp.Removed)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetRetention(w http.ResponseWriter, r *http.Request) {
	var body retentionBody
	_ = h.fleet.Do(func(m *service.Manager) error {
		body.RetentionDays = m.RetentionDays()
		return nil
	})
	writeJSON(w, http.StatusOK, body)
}

// SetRetention handles PUT /settings/retention.
func (h *Handler) SetRetention(w http.ResponseWriter, r *http.Request) {
	var body retentionBody
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.fleet.Do(func(m *service.Manager) error { return m.SetRetentionDays(body.RetentionDays) }); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.log.Info("Retention window changed", "retention_days", body.RetentionDays)
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var summary domain.Summary
	_ = h.fleet.Do(func(m *service.Manager) error {
		summary = m.Summary()
		return nil
	})
	writeJSON(w, http.StatusOK, summary)
}

// GetUtilization handles GET /utilization. An empty fleet answers 200 with a
// null utilization rather than an error.
func (h *Handler) GetUtilization(w http.ResponseWriter, r *http.Request) {
	var rep *report.Report
	err := h.fleet.Do(func(m *service.Manager) error {
		var err error
		rep, err = report.Build(m, time.Now())
		return err
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, utilizationResponse{Utilization: rep.Utilization, Display: rep.UtilizationText()})
}

// GetReport handles GET /report; ?format=text returns the plain text report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	var rep *report.Report
	err := h.fleet.Do(func(m *service.Manager) error {
		built, err := report.Build(m, time.Now())
		if err != nil {
			return err
		}
		built.AvailableVehicles = copyVehicles(built.AvailableVehicles)
		built.ActiveRentals = copyRentals(built.ActiveRentals)
		rep = built
		return nil
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := report.WriteText(w, rep); err != nil {
			h.log.Error("Failed to write report", "error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func copyVehicles(vehicles []*domain.Vehicle) []*domain.Vehicle {
	out := make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		c := *v
		out = append(out, &c)
	}
	return out
}
