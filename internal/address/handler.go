package address

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edulink/api-agency/internal/utils"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// GET /countries
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	utils.WriteEnvelope(w, http.StatusOK, h.Store.Countries(), "Success")
}

// GET /countries/{id}/states
func (h *Handler) States(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid country id", http.StatusBadRequest)
		return
	}
	states, found := h.Store.States(id)
	if !found {
		http.Error(w, "country not found", http.StatusNotFound)
		return
	}
	if len(states) == 0 {
		utils.WriteEnvelope(w, http.StatusNotFound, []State{}, "No states found for this country")
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, states, "Success")
}

// GET /states/{id}/cities
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid state id", http.StatusBadRequest)
		return
	}
	cities, found := h.Store.Cities(id)
	if !found {
		http.Error(w, "state not found", http.StatusNotFound)
		return
	}
	if len(cities) == 0 {
		utils.WriteEnvelope(w, http.StatusNotFound, []City{}, "No cities found for this state")
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, cities, "Success")
}
