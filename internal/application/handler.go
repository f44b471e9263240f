package application

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/rates"
	"github.com/edulink/api-agency/internal/utils"
)

// SaveRequest creates an application when ID is zero, updates otherwise.
type SaveRequest struct {
	ID                 uint   `json:"id"`
	StudentID          uint   `json:"student_id"`
	UniversityName     string `json:"university_name"`
	Program            string `json:"program"`
	Intake             string `json:"intake"`
	Country            string `json:"country"`
	YearlyFee          string `json:"yearlyFee"`
	ScholarshipPercent string `json:"scholarshipPercent"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Rates      *rates.Service
}

func NewHandler(db *gorm.DB, rateService *rates.Service) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Rates: rateService}
}

// GET /applications
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if sid := r.URL.Query().Get("student_id"); sid != "" {
		id, err := strconv.Atoi(sid)
		if err != nil {
			http.Error(w, "invalid student id", http.StatusBadRequest)
			return
		}
		apps, err := h.Repository.ListByStudent(h.DB, uint(id))
		if err != nil {
			http.Error(w, "could not list applications", http.StatusInternalServerError)
			return
		}
		utils.WriteEnvelope(w, http.StatusOK, apps, "Success")
		return
	}

	apps, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "could not list applications", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, apps, "Success")
}

// GET /applications/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "application not found", http.StatusNotFound)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, a, "Success")
}

// POST /applications — create or update field edits. Status changes go
// through /application_status_update, never through here.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.StudentID == 0 {
		http.Error(w, "student_id is required", http.StatusBadRequest)
		return
	}
	if req.ScholarshipPercent == "" {
		req.ScholarshipPercent = "0"
	}

	a := Application{
		StudentID:          req.StudentID,
		UniversityName:     req.UniversityName,
		Program:            req.Program,
		Intake:             req.Intake,
		Country:            req.Country,
		YearlyFee:          req.YearlyFee,
		ScholarshipPercent: req.ScholarshipPercent,
		Currency:           h.Rates.CurrencyForCountry(req.Country),
	}

	message := "Application Created"
	if req.ID > 0 {
		existing, err := h.Repository.FindByID(h.DB, req.ID)
		if err != nil {
			http.Error(w, "application not found", http.StatusNotFound)
			return
		}
		a.Model = existing.Model
		a.Status = existing.Status
		message = "Application Updated"
	}

	if err := h.Repository.Save(h.DB, &a); err != nil {
		http.Error(w, "could not save application", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, a, message)
}

// GET /application_statuses — the ordered status catalog.
func (h *Handler) Statuses(w http.ResponseWriter, r *http.Request) {
	utils.WriteEnvelope(w, http.StatusOK, StatusCatalog, "Success")
}

// DELETE /applications/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.FindByID(h.DB, uint(id)); err != nil {
		http.Error(w, "application not found", http.StatusNotFound)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete application", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, nil, "Application Deleted")
}
