package overtime

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
	"github.com/sghrms/payroll-backend-go/internal/repository/postgresql"
)

// SummaryService maintains the per (employee, date) aggregation of payable
// claims. Every rebuild is a full recompute from the payable claims, never an
// incremental adjustment, so a replayed rebuild converges on the same row.
type SummaryService struct {
	db          *database.DB
	summaryRepo overtime.OTSummaryRepository
	claimRepo   overtime.OTClaimRepository
}

func NewSummaryService(db *database.DB, summaryRepo overtime.OTSummaryRepository, claimRepo overtime.OTClaimRepository) *SummaryService {
	return &SummaryService{
		db:          db,
		summaryRepo: summaryRepo,
		claimRepo:   claimRepo,
	}
}

// Rebuild recomputes one employee-day summary in its own transaction.
func (s *SummaryService) Rebuild(ctx context.Context, companyID, employeeID string, date time.Time) (overtime.OTDailySummary, error) {
	var summary overtime.OTDailySummary
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)
		var err error
		summary, err = s.rebuild(txCtx, companyID, employeeID, date)
		return err
	})
	if err != nil {
		return overtime.OTDailySummary{}, err
	}
	return summary, nil
}

// rebuild runs inside the caller's transaction. The employee-day advisory
// lock is taken first so concurrent rebuilds serialize even when no summary
// row exists yet.
func (s *SummaryService) rebuild(txCtx context.Context, companyID, employeeID string, date time.Time) (overtime.OTDailySummary, error) {
	if err := s.summaryRepo.LockEmployeeDay(txCtx, employeeID, date); err != nil {
		return overtime.OTDailySummary{}, err
	}

	existing, err := s.summaryRepo.GetByEmployeeDateForUpdate(txCtx, employeeID, date)
	if err != nil && !errors.Is(err, overtime.ErrSummaryNotFound) {
		return overtime.OTDailySummary{}, err
	}
	if err == nil && existing.Status == overtime.SummaryStatusFinalized {
		return overtime.OTDailySummary{}, overtime.ErrSummaryFinalized
	}

	claims, err := s.claimRepo.ListPayableByEmployeeDate(txCtx, employeeID, date)
	if err != nil {
		return overtime.OTDailySummary{}, err
	}

	totalHours := decimal.Zero
	totalAmount := decimal.Zero
	for _, c := range claims {
		totalHours = totalHours.Add(c.Hours)
		totalAmount = totalAmount.Add(c.Amount)
	}

	return s.summaryRepo.Upsert(txCtx, overtime.OTDailySummary{
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		Date:        date,
		TotalHours:  totalHours,
		TotalAmount: totalAmount,
		ClaimCount:  len(claims),
		Status:      overtime.SummaryStatusApproved,
	})
}

func (s *SummaryService) GetSummary(ctx context.Context, employeeID string, date time.Time) (overtime.SummaryResponse, error) {
	if _, _, _, err := getClaimsFromContext(ctx); err != nil {
		return overtime.SummaryResponse{}, err
	}

	summary, err := s.summaryRepo.GetByEmployeeDate(ctx, employeeID, date)
	if err != nil {
		return overtime.SummaryResponse{}, err
	}
	return mapSummaryToResponse(summary), nil
}

func (s *SummaryService) ListSummaries(ctx context.Context, employeeID string, start, end time.Time) ([]overtime.SummaryResponse, error) {
	if _, _, _, err := getClaimsFromContext(ctx); err != nil {
		return nil, err
	}

	summaries, err := s.summaryRepo.ListByEmployeePeriod(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]overtime.SummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, mapSummaryToResponse(sum))
	}
	return result, nil
}

func mapSummaryToResponse(s overtime.OTDailySummary) overtime.SummaryResponse {
	return overtime.SummaryResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		Date:        s.Date.Format("2006-01-02"),
		TotalHours:  s.TotalHours,
		TotalAmount: s.TotalAmount,
		ClaimCount:  s.ClaimCount,
		Status:      string(s.Status),
	}
}
