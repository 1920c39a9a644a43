package http

import (
	"net/http"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/service"
	"car-rental-system/internal/utils"

	"github.com/gorilla/mux"
)

// ListVehicles handles GET /vehicles; ?available=true limits to rentable vehicles.
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"
	var vehicles []*domain.Vehicle
	_ = h.fleet.Do(func(m *service.Manager) error {
		if onlyAvailable {
			vehicles = copyVehicles(m.AvailableVehicles())
		} else {
			vehicles = copyVehicles(m.Vehicles())
		}
		return nil
	})
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var (
		vehicle domain.Vehicle
		found   bool
	)
	_ = h.fleet.Do(func(m *service.Manager) error {
		if v, ok := m.FindVehicle(id); ok {
			vehicle, found = *v, true
		}
		return nil
	})
	if !found {
		h.writeError(w, r, wrapID(domain.ErrVehicleNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// AddVehicle handles POST /vehicles with a vehicle record body.
func (h *Handler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	vehicle, err := utils.VehicleFromRecord(rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	// new vehicles enter the fleet available regardless of the record
	vehicle.Available = true

	var added domain.Vehicle
	err = h.fleet.Do(func(m *service.Manager) error {
		if err := m.AddVehicle(vehicle); err != nil {
			return err
		}
		added = *vehicle
		return nil
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.log.Info("Vehicle added", "vehicle_id", added.ID)
	writeJSON(w, http.StatusCreated, added)
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	var customers []*domain.Customer
	_ = h.fleet.Do(func(m *service.Manager) error {
		customers = m.Customers()
		return nil
	})
	if customers == nil {
		customers = []*domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var customer *domain.Customer
	_ = h.fleet.Do(func(m *service.Manager) error {
		customer, _ = m.FindCustomer(id)
		return nil
	})
	if customer == nil {
		h.writeError(w, r, wrapID(domain.ErrCustomerNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// AddCustomer handles POST /customers with a customer record body.
func (h *Handler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	customer, err := utils.CustomerFromRecord(rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.fleet.Do(func(m *service.Manager) error { return m.AddCustomer(customer) }); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.log.Info("Customer added", "customer_id", customer.ID)
	writeJSON(w, http.StatusCreated, customer)
}
