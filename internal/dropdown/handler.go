package dropdown

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/utils"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// POST /docs
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var opt DocOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if opt.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := h.DB.Create(&opt).Error; err != nil {
		http.Error(w, "could not create option", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusCreated, opt, "Success")
}

// GET /docs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var options []DocOption
	if err := h.DB.Find(&options).Error; err != nil {
		http.Error(w, "could not list options", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, options, "Success")
}
