package commission

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/agent"
	"github.com/edulink/api-agency/internal/application"
	"github.com/edulink/api-agency/internal/utils"
)

type statusUpdateRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type selectCommissionRequest struct {
	Data   []Edit `json:"data"`
	Action bool   `json:"action"`
}

type feeStatusRequest struct {
	ID       uint   `json:"id"`
	Password string `json:"password"`
}

type commissionGetRequest struct {
	AgentIDs   []uint `json:"agent_ids"`
	PaidStatus *int   `json:"paid_status"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Trigger    *Trigger
	Calculator *Calculator
}

func NewHandler(db *gorm.DB, trigger *Trigger, calculator *Calculator) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Trigger: trigger, Calculator: calculator}
}

// POST /application_status_update
func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	// Labels are accepted as free text; anything off-catalog is worth a
	// trace in the logs since only exact labels drive the trigger.
	if !application.IsKnownStatus(req.Name) {
		log.Printf("application %d: status label %q is not in the catalog", req.ID, req.Name)
	}

	if err := h.Trigger.OnStatusChange(req.ID, req.Name); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "application not found", http.StatusNotFound)
		case errors.Is(err, agent.ErrNotFound):
			http.Error(w, "referring agent not found", http.StatusNotFound)
		case errors.Is(err, agent.ErrAmbiguous):
			http.Error(w, "referring agent name is ambiguous", http.StatusConflict)
		default:
			http.Error(w, "could not update application status", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, nil, "Application Status Updated")
}

// POST /select_commission
func (h *Handler) SelectCommission(w http.ResponseWriter, r *http.Request) {
	var req selectCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	totals, rows, err := h.Calculator.Settle(req.Data, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "negative values are not allowed", http.StatusForbidden)
		case errors.Is(err, ErrVersionConflict):
			http.Error(w, "commission was modified concurrently, retry", http.StatusConflict)
		default:
			http.Error(w, "could not settle commissions", http.StatusInternalServerError)
		}
		return
	}

	if totals == nil {
		utils.WriteEnvelope(w, http.StatusOK, rows, "Success")
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, totals, "Success")
}

// POST /change_fee_status
func (h *Handler) ChangeFeeStatus(w http.ResponseWriter, r *http.Request) {
	var req feeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := h.Calculator.MarkPaid(req.ID, req.Password); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "commission not found", http.StatusNotFound)
		case errors.Is(err, ErrAlreadyPaid):
			http.Error(w, "commission already paid", http.StatusConflict)
		case errors.Is(err, ErrWrongSecret):
			http.Error(w, "wrong password", http.StatusUnauthorized)
		case errors.Is(err, ErrVersionConflict):
			http.Error(w, "commission was modified concurrently, retry", http.StatusConflict)
		default:
			http.Error(w, "could not update fee status", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, nil, "Fee Status Updated")
}

// POST /commission_get — read-only filter by agents and/or paid flag.
func (h *Handler) CommissionGet(w http.ResponseWriter, r *http.Request) {
	var req commissionGetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	rows, err := h.Repository.Filter(h.DB, req.AgentIDs, req.PaidStatus)
	if err != nil {
		http.Error(w, "could not fetch commissions", http.StatusInternalServerError)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, rows, "Success")
}
