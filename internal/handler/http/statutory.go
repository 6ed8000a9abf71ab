package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/handler/http/response"
	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

type StatutoryHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	Reload(w http.ResponseWriter, r *http.Request)
}

type StatutoryHandlerImpl struct {
	store *statutory.Store
}

func NewStatutoryHandler(store *statutory.Store) StatutoryHandler {
	return &StatutoryHandlerImpl{store: store}
}

type bandRatePayload struct {
	MaxAge   int             `json:"max_age"`
	Employee decimal.Decimal `json:"employee"`
	Employer decimal.Decimal `json:"employer"`
}

type statutoryConfigPayload struct {
	Bands    map[string][]bandRatePayload `json:"bands"`
	Ceilings struct {
		OrdinaryMonthly  decimal.Decimal `json:"ordinary_monthly"`
		AdditionalAnnual decimal.Decimal `json:"additional_annual"`
		MinWageThreshold decimal.Decimal `json:"min_wage_threshold"`
	} `json:"ceilings"`
}

func (h *StatutoryHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	table, ceilings := h.store.Snapshot()

	payload := statutoryConfigPayload{Bands: make(map[string][]bandRatePayload, len(table.Bands))}
	for class, bands := range table.Bands {
		out := make([]bandRatePayload, 0, len(bands))
		for _, b := range bands {
			out = append(out, bandRatePayload{MaxAge: b.MaxAge, Employee: b.Employee, Employer: b.Employer})
		}
		payload.Bands[string(class)] = out
	}
	payload.Ceilings.OrdinaryMonthly = ceilings.OrdinaryMonthly
	payload.Ceilings.AdditionalAnnual = ceilings.AdditionalAnnual
	payload.Ceilings.MinWageThreshold = ceilings.MinWageThreshold

	response.Success(w, payload)
}

// Reload swaps the process-wide rate table and ceilings. In-flight payroll
// calculations keep the snapshot they started with.
func (h *StatutoryHandlerImpl) Reload(w http.ResponseWriter, r *http.Request) {
	var req statutoryConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reload statutory decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	table := statutory.RateTable{Bands: make(map[statutory.ResidencyClass][]statutory.BandRate, len(req.Bands))}
	for class, bands := range req.Bands {
		residency := statutory.ResidencyClass(class)
		if !residency.IsValid() {
			response.BadRequest(w, "Unknown residency class: "+class, nil)
			return
		}
		out := make([]statutory.BandRate, 0, len(bands))
		for _, b := range bands {
			out = append(out, statutory.BandRate{MaxAge: b.MaxAge, Employee: b.Employee, Employer: b.Employer})
		}
		table.Bands[residency] = out
	}

	ceilings := statutory.Ceilings{
		OrdinaryMonthly:  req.Ceilings.OrdinaryMonthly,
		AdditionalAnnual: req.Ceilings.AdditionalAnnual,
		MinWageThreshold: req.Ceilings.MinWageThreshold,
	}

	if err := h.store.Reload(table, ceilings); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Statutory configuration reloaded", nil)
}
