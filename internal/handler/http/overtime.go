package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/handler/http/response"
	overtimeService "github.com/sghrms/payroll-backend-go/internal/service/overtime"
)

type OvertimeHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	DeactivateType(w http.ResponseWriter, r *http.Request)

	CreateClaim(w http.ResponseWriter, r *http.Request)
	GetClaim(w http.ResponseWriter, r *http.Request)
	ListClaims(w http.ResponseWriter, r *http.Request)

	DecideApproval(w http.ResponseWriter, r *http.Request)
	ListPendingApprovals(w http.ResponseWriter, r *http.Request)

	GetDailySummary(w http.ResponseWriter, r *http.Request)
	ListDailySummaries(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	typeService     *overtimeService.TypeService
	claimService    *overtimeService.ClaimService
	approvalService *overtimeService.ApprovalService
	summaryService  *overtimeService.SummaryService
}

func NewOvertimeHandler(
	typeService *overtimeService.TypeService,
	claimService *overtimeService.ClaimService,
	approvalService *overtimeService.ApprovalService,
	summaryService *overtimeService.SummaryService,
) OvertimeHandler {
	return &OvertimeHandlerImpl{
		typeService:     typeService,
		claimService:    claimService,
		approvalService: approvalService,
		summaryService:  summaryService,
	}
}

// ===== OT TYPES =====

func (h *OvertimeHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOTTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.typeService.CreateType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime type created successfully", created)
}

func (h *OvertimeHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req overtime.UpdateOTTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.typeService.UpdateType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime type updated successfully", updated)
}

func (h *OvertimeHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	types, err := h.typeService.ListTypes(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

func (h *OvertimeHandlerImpl) DeactivateType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime type ID is required", nil)
		return
	}

	if err := h.typeService.DeactivateType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime type deactivated successfully", nil)
}

// ===== CLAIMS =====

func (h *OvertimeHandlerImpl) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateClaim decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.claimService.CreateClaim(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime claim submitted successfully", created)
}

func (h *OvertimeHandlerImpl) GetClaim(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Claim ID is required", nil)
		return
	}

	claim, approvals, err := h.claimService.GetClaim(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"claim":     claim,
		"approvals": approvals,
	})
}

func (h *OvertimeHandlerImpl) ListClaims(w http.ResponseWriter, r *http.Request) {
	filter := overtime.ClaimFilter{
		Page:  parsePageParam(r, "page", 1),
		Limit: parsePageParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := overtime.ClaimStatus(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		filter.DateTo = &v
	}

	list, err := h.claimService.ListClaims(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Data, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
	})
}

// ===== APPROVALS =====

func (h *OvertimeHandlerImpl) DecideApproval(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Approval ID is required", nil)
		return
	}

	var req overtime.DecideApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideApproval decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.approvalService.Decide(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approval decided successfully", decided)
}

func (h *OvertimeHandlerImpl) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.approvalService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, approvals)
}

// ===== DAILY SUMMARIES =====

func (h *OvertimeHandlerImpl) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
		return
	}

	summary, err := h.summaryService.GetSummary(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func (h *OvertimeHandlerImpl) ListDailySummaries(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "start must be YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "end must be YYYY-MM-DD", nil)
		return
	}

	summaries, err := h.summaryService.ListSummaries(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

func parsePageParam(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
