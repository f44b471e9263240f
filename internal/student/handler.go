package student

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/utils"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /students?name=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	students, err := h.Repository.List(h.DB, name)
	if err != nil {
		http.Error(w, "could not list students", http.StatusInternalServerError)
		return
	}
	if name != "" && len(students) == 0 {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, students, "Success")
}

// POST /students — create when id is absent, update otherwise.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if msg := req.Validate(); msg != "" {
		utils.WriteEnvelope(w, http.StatusBadRequest, nil, msg)
		return
	}

	s := Student{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Gender:         req.Gender,
		Passport:       req.Passport,
		PassportExpiry: req.PassportExpiry,
		ReferringAgent: req.ReferringAgent,
		MaritalStatus:  req.MaritalStatus,
	}

	if req.ID > 0 {
		existing, err := h.Repository.FindByID(h.DB, req.ID)
		if err != nil {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		s.Model = existing.Model
	}

	if err := h.Repository.Save(h.DB, &s); err != nil {
		http.Error(w, "could not save student", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, s, "Success")
}

// GET /students/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, s, "Success")
}

// DELETE /students/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.FindByID(h.DB, uint(id)); err != nil {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete student", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, nil, "Student Deleted")
}
