package agent

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/utils"
)

var validate = validator.New()

// SaveRequest creates an agent when ID is zero, updates otherwise.
type SaveRequest struct {
	ID                    uint    `json:"id"`
	Name                  string  `json:"name" validate:"required"`
	Email                 string  `json:"email" validate:"omitempty,email"`
	CompanyName           string  `json:"company_name"`
	AgencyType            int     `json:"agency_type"`
	City                  int     `json:"city"`
	State                 int     `json:"state"`
	OwnerName             string  `json:"owner_name"`
	OwnerContact          string  `json:"owner_contact"`
	Telephone             string  `json:"tel_phone"`
	Address               string  `json:"address"`
	ContactPersonName     string  `json:"con_per_name"`
	ContactPersonPhone    string  `json:"con_per_phone"`
	ContactPersonPosition int     `json:"con_per_pos"`
	CommissionRate        float64 `json:"commissionRate" validate:"gte=0,lte=100"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /agents?name=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	agents, err := h.Repository.List(h.DB, name)
	if err != nil {
		http.Error(w, "could not list agents", http.StatusInternalServerError)
		return
	}
	if name != "" && len(agents) == 0 {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, agents, "Success")
}

// GET /agents/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, a, "Success")
}

// POST /agents — create or update.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&req); err != nil {
		http.Error(w, "invalid agent fields", http.StatusBadRequest)
		return
	}

	a := Agent{
		Name:                  req.Name,
		Email:                 req.Email,
		CompanyName:           req.CompanyName,
		AgencyType:            req.AgencyType,
		City:                  req.City,
		State:                 req.State,
		OwnerName:             req.OwnerName,
		OwnerContact:          req.OwnerContact,
		Telephone:             req.Telephone,
		Address:               req.Address,
		ContactPersonName:     req.ContactPersonName,
		ContactPersonPhone:    req.ContactPersonPhone,
		ContactPersonPosition: req.ContactPersonPosition,
		CommissionRate:        req.CommissionRate,
	}

	message := "New Agent Created"
	if req.ID > 0 {
		existing, err := h.Repository.FindByID(h.DB, req.ID)
		if err != nil {
			http.Error(w, "agent not found", http.StatusNotFound)
			return
		}
		a.Model = existing.Model
		message = "Agent Details Updated"
	}

	if err := h.Repository.Save(h.DB, &a); err != nil {
		http.Error(w, "could not save agent", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, a, message)
}

// DELETE /agents/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.FindByID(h.DB, uint(id)); err != nil {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete agent", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, nil, "Agent Deleted")
}
