package rates

import (
	"net/http"

	"github.com/edulink/api-agency/internal/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// GET /currency_rates
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	utils.WriteEnvelope(w, http.StatusOK, h.Service.AllRates(r.Context()), "Success")
}
