package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/attendance"
	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/domain/employee"
	"github.com/sghrms/payroll-backend-go/internal/domain/leave"
	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/domain/payroll"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
	"github.com/sghrms/payroll-backend-go/internal/repository/postgresql"
	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

// Service generates and settles payroll. Generation is a full recompute for
// one (employee, period): it partitions attendance, folds in approved leave
// and the period's overtime summaries, runs the statutory calculation, and
// upserts a draft row. Finalizing locks the row and the summaries it consumed.
type Service struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	compRepo       compensation.CompensationRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	summaryRepo    overtime.OTSummaryRepository
	statutoryStore *statutory.Store
}

func NewService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	compRepo compensation.CompensationRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	summaryRepo overtime.OTSummaryRepository,
	statutoryStore *statutory.Store,
) *Service {
	return &Service{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		compRepo:       compRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		summaryRepo:    summaryRepo,
		statutoryStore: statutoryStore,
	}
}

// Generate produces the draft payroll for one employee and period. An
// existing draft for the same period is overwritten; a finalized row refuses
// regeneration with ErrPayrollFinalized.
func (s *Service) Generate(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.PayrollResponse, error) {
	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if role != user.RoleAdmin {
		return payroll.PayrollResponse{}, user.ErrAdminAccessRequired
	}

	record, err := s.generate(ctx, companyID, employeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return mapPayrollToResponse(record), nil
}

func (s *Service) generate(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (payroll.Payroll, error) {
	if periodEnd.Before(periodStart) {
		return payroll.Payroll{}, payroll.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.Payroll{}, err
	}
	age, ok := emp.AgeAt(periodEnd)
	if !ok {
		return payroll.Payroll{}, employee.ErrMissingDateOfBirth
	}

	cfg, err := s.compRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.Payroll{}, err
	}

	days, err := s.attendanceRepo.ListByEmployeePeriod(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.Payroll{}, err
	}
	leaves, err := s.leaveRepo.ListApprovedByEmployeePeriod(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.Payroll{}, err
	}
	leaveDays := decimal.Zero
	for _, l := range leaves {
		leaveDays = leaveDays.Add(decimal.NewFromFloat(l.WorkingDays))
	}

	counts := partitionDays(periodStart, periodEnd, days, leaveDays)
	if !counts.WorkingDays.IsPositive() {
		return payroll.Payroll{}, payroll.ErrEmptyWorkingPeriod
	}

	summaries, err := s.summaryRepo.ListByEmployeePeriod(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.Payroll{}, err
	}
	otPay := decimal.Zero
	for _, sum := range summaries {
		otPay = otPay.Add(sum.TotalAmount)
	}

	basicPay := prorateBasic(cfg.BasicSalary, counts)
	allowanceTotal := cfg.AllowanceTotal()
	grossPay := basicPay.Add(allowanceTotal).Add(otPay)

	contrib, err := s.statutoryStore.Compute(statutory.Input{
		OrdinaryWage:   basicPay,
		AdditionalWage: otPay,
		Age:            age,
		Residency:      emp.Residency,
	})
	if err != nil {
		return payroll.Payroll{}, err
	}

	lop := lopDeduction(cfg.BasicSalary, counts)
	netPay := grossPay.Sub(contrib.Employee).Sub(lop).Sub(cfg.ElectiveDeduction).Round(2)

	allowancesDetail := make(map[string]decimal.Decimal, len(cfg.Allowances))
	for _, item := range cfg.Allowances {
		allowancesDetail[item.Name] = allowancesDetail[item.Name].Add(item.Amount)
	}

	record := payroll.Payroll{
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,

		WorkingDays: counts.WorkingDays,
		PaidDays:    counts.paidDays(),
		PresentDays: counts.PresentDays,
		HalfDays:    counts.HalfDays,
		LeaveDays:   counts.LeaveDays,
		HolidayDays: counts.HolidayDays,
		AbsentDays:  counts.AbsentDays,
		LOPDays:     counts.LOPDays,

		BasicPay:          basicPay,
		AllowanceTotal:    allowanceTotal,
		AllowancesDetail:  allowancesDetail,
		OTPay:             otPay,
		GrossPay:          grossPay,
		EmployeeStatutory: contrib.Employee,
		EmployerStatutory: contrib.Employer,
		LOPDeduction:      lop,
		ElectiveDeduction: cfg.ElectiveDeduction,
		NetPay:            netPay,
		NeedsReview:       netPay.IsNegative(),

		Status: payroll.PayrollStatusDraft,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		existing, err := s.payrollRepo.GetByEmployeePeriodForUpdate(txCtx, employeeID, periodStart, periodEnd)
		if err != nil && !errors.Is(err, payroll.ErrPayrollNotFound) {
			return err
		}
		if err == nil && existing.Status == payroll.PayrollStatusFinalized {
			return payroll.ErrPayrollFinalized
		}

		record, err = s.payrollRepo.Upsert(txCtx, record)
		return err
	})
	if err != nil {
		return payroll.Payroll{}, err
	}

	return record, nil
}

// GenerateForCompany runs generation for every active employee, or for the
// requested subset. A failing employee is reported and skipped; the batch
// continues.
func (s *Service) GenerateForCompany(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.BatchGenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchGenerateResponse{}, err
	}

	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchGenerateResponse{}, err
	}
	if role != user.RoleAdmin {
		return payroll.BatchGenerateResponse{}, user.ErrAdminAccessRequired
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	employeeIDs := req.EmployeeIDs
	if len(employeeIDs) == 0 {
		active, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
		if err != nil {
			return payroll.BatchGenerateResponse{}, err
		}
		for _, emp := range active {
			employeeIDs = append(employeeIDs, emp.ID)
		}
	}

	resp := payroll.BatchGenerateResponse{}
	for _, employeeID := range employeeIDs {
		record, err := s.generate(ctx, companyID, employeeID, periodStart, periodEnd)
		if err != nil {
			resp.Failures = append(resp.Failures, payroll.GenerateFailure{
				EmployeeID: employeeID,
				Error:      err.Error(),
			})
			continue
		}
		resp.Generated = append(resp.Generated, mapPayrollToResponse(record))
	}

	return resp, nil
}

// Approve moves a draft row to approved.
func (s *Service) Approve(ctx context.Context, id string) error {
	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if role != user.RoleAdmin {
		return user.ErrAdminAccessRequired
	}

	return s.payrollRepo.Approve(ctx, id, companyID)
}

// Finalize permanently locks a payroll row. The overtime summaries it
// consumed are marked finalized in the same transaction so late approvals
// cannot change a settled day. A draft whose overtime pay no longer matches
// the period's summaries is refused; no summary may be locked in without
// being paid out.
func (s *Service) Finalize(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	companyID, actorEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if role != user.RoleAdmin {
		return payroll.PayrollResponse{}, user.ErrAdminAccessRequired
	}

	var record payroll.Payroll
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		record, err = s.payrollRepo.GetByID(txCtx, id, companyID)
		if err != nil {
			return err
		}
		if record.Status == payroll.PayrollStatusFinalized {
			return payroll.ErrPayrollFinalized
		}

		now := time.Now().UTC()
		if err := s.payrollRepo.Finalize(txCtx, id, companyID, actorEmployeeID, now); err != nil {
			return err
		}
		record.Status = payroll.PayrollStatusFinalized
		record.FinalizedAt = &now
		record.FinalizedBy = &actorEmployeeID

		consumedOTPay, err := s.summaryRepo.MarkFinalized(txCtx, record.EmployeeID, record.PeriodStart, record.PeriodEnd)
		if err != nil {
			return err
		}
		// A claim approved after the draft was generated re-totals its
		// summary. The stale draft must be regenerated, not settled.
		if !consumedOTPay.Equal(record.OTPay) {
			return payroll.ErrPayrollOutOfDate
		}

		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return mapPayrollToResponse(record), nil
}

func (s *Service) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return mapPayrollToResponse(record), nil
}

func (s *Service) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	records, totalCount, err := s.payrollRepo.List(ctx, companyID, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	result := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		result = append(result, mapPayrollToResponse(record))
	}

	return payroll.ListPayrollResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func mapPayrollToResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		PeriodStart: p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),

		WorkingDays: p.WorkingDays,
		PaidDays:    p.PaidDays,
		LOPDays:     p.LOPDays,

		BasicPay:          p.BasicPay,
		AllowanceTotal:    p.AllowanceTotal,
		AllowancesDetail:  p.AllowancesDetail,
		OTPay:             p.OTPay,
		GrossPay:          p.GrossPay,
		EmployeeStatutory: p.EmployeeStatutory,
		EmployerStatutory: p.EmployerStatutory,
		LOPDeduction:      p.LOPDeduction,
		ElectiveDeduction: p.ElectiveDeduction,
		NetPay:            p.NetPay,
		NeedsReview:       p.NeedsReview,

		Status: string(p.Status),
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	if p.FinalizedAt != nil {
		str := p.FinalizedAt.Format(time.RFC3339)
		resp.FinalizedAt = &str
	}
	return resp
}
