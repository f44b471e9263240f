package university

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

// POST /universities
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var u University
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Create(h.DB, &u); err != nil {
		http.Error(w, "could not create university", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusCreated, u, "University Created")
}

// GET /universities?country=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.List(h.DB, r.URL.Query().Get("country"))
	if err != nil {
		http.Error(w, "could not list universities", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, list, "Success")
}

// GET /universities/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	u, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "university not found", http.StatusNotFound)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, u, "Success")
}

// PUT /universities/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	existing, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "university not found", http.StatusNotFound)
		return
	}

	var u University
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	existing.Name = u.Name
	existing.Country = u.Country
	existing.City = u.City
	existing.Website = u.Website

	if err := h.Repository.Update(h.DB, existing); err != nil {
		http.Error(w, "could not update university", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, existing, "University Updated")
}

// DELETE /universities/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete university", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, nil, "University Deleted")
}

// POST /universities/{id}/courses
func (h *Handler) AddCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.FindByID(h.DB, uint(id)); err != nil {
		http.Error(w, "university not found", http.StatusNotFound)
		return
	}

	var c Course
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	c.UniversityID = uint(id)

	if err := h.Repository.AddCourse(h.DB, &c); err != nil {
		http.Error(w, "could not add course", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusCreated, c, "Course Added")
}

// DELETE /courses/{id}
func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repository.DeleteCourse(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete course", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, nil, "Course Deleted")
}
