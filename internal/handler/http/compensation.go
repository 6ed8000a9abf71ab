package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/handler/http/response"
	compensationService "github.com/sghrms/payroll-backend-go/internal/service/compensation"
)

type CompensationHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type CompensationHandlerImpl struct {
	compensationService *compensationService.Service
}

func NewCompensationHandler(svc *compensationService.Service) CompensationHandler {
	return &CompensationHandlerImpl{compensationService: svc}
}

func (h *CompensationHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req compensation.UpsertCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert compensation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.compensationService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation configuration saved", saved)
}

func (h *CompensationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	cfg, err := h.compensationService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}
