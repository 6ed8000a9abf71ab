package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/domain/employee"
	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
	"github.com/sghrms/payroll-backend-go/internal/repository/postgresql"
)

// ClaimService creates and lists overtime claims. Creating a claim also
// opens its first approval row addressed to the employee's line manager.
type ClaimService struct {
	db           *database.DB
	claimRepo    overtime.OTClaimRepository
	approvalRepo overtime.OTApprovalRepository
	typeRepo     overtime.OTTypeRepository
	employeeRepo employee.EmployeeRepository
	compRepo     compensation.CompensationRepository
	workingHours decimal.Decimal
}

func NewClaimService(
	db *database.DB,
	claimRepo overtime.OTClaimRepository,
	approvalRepo overtime.OTApprovalRepository,
	typeRepo overtime.OTTypeRepository,
	employeeRepo employee.EmployeeRepository,
	compRepo compensation.CompensationRepository,
	workingHoursPerMonth decimal.Decimal,
) *ClaimService {
	return &ClaimService{
		db:           db,
		claimRepo:    claimRepo,
		approvalRepo: approvalRepo,
		typeRepo:     typeRepo,
		employeeRepo: employeeRepo,
		compRepo:     compRepo,
		workingHours: workingHoursPerMonth,
	}
}

func (s *ClaimService) CreateClaim(ctx context.Context, req overtime.CreateClaimRequest) (overtime.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.ClaimResponse{}, err
	}

	companyID, actorEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return overtime.ClaimResponse{}, err
	}
	// An employee files claims only for themselves. Managers and admins
	// may file on behalf of others.
	if role == user.RoleEmployee && actorEmployeeID != req.EmployeeID {
		return overtime.ClaimResponse{}, employee.ErrUnauthorized
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return overtime.ClaimResponse{}, err
	}
	if emp.EmploymentStatus != employee.EmploymentStatusActive {
		return overtime.ClaimResponse{}, employee.ErrEmployeeInactive
	}
	if emp.ManagerID == nil {
		return overtime.ClaimResponse{}, employee.ErrNoManagerAssigned
	}

	otType, err := s.typeRepo.GetByID(ctx, req.OTTypeID, companyID)
	if err != nil {
		return overtime.ClaimResponse{}, err
	}
	if !otType.IsActive {
		return overtime.ClaimResponse{}, overtime.ErrOTTypeInactive
	}

	var cfg compensation.CompensationConfig
	if otType.RateBasis == compensation.RateBasisMultiplier {
		cfg, err = s.compRepo.GetByEmployeeID(ctx, emp.ID, companyID)
		if err != nil {
			return overtime.ClaimResponse{}, err
		}
	}

	rate, err := ResolveRate(otType, cfg, s.workingHours)
	if err != nil {
		return overtime.ClaimResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	claim := overtime.OTClaim{
		CompanyID:  companyID,
		EmployeeID: emp.ID,
		OTTypeID:   otType.ID,
		Date:       date,
		Hours:      req.Hours,
		HourlyRate: rate,
		Amount:     ClaimAmount(req.Hours, rate),
		Remarks:    req.Remarks,
	}

	// The claim and its level-1 approval row are created atomically: a
	// claim must never exist without an addressed approval.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		created, err := s.claimRepo.Create(txCtx, claim)
		if err != nil {
			return err
		}
		claim = created

		_, err = s.approvalRepo.Create(txCtx, overtime.OTApproval{
			ClaimID:    created.ID,
			Level:      overtime.LevelLineManager,
			ApproverID: emp.ManagerID,
			Status:     overtime.ApprovalStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to open level-1 approval: %w", err)
		}

		return nil
	})
	if err != nil {
		return overtime.ClaimResponse{}, err
	}

	resp := mapClaimToResponse(claim, overtime.ClaimStatusPendingLevel1)
	resp.TypeName = otType.Name
	resp.EmployeeName = emp.FullName
	return resp, nil
}

func (s *ClaimService) GetClaim(ctx context.Context, id string) (overtime.ClaimResponse, []overtime.ApprovalResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return overtime.ClaimResponse{}, nil, err
	}

	claim, err := s.claimRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return overtime.ClaimResponse{}, nil, err
	}

	approvals, err := s.approvalRepo.ListByClaimID(ctx, claim.ID)
	if err != nil {
		return overtime.ClaimResponse{}, nil, err
	}

	resp := mapClaimToResponse(claim, overtime.DeriveClaimStatus(approvals))
	return resp, mapApprovalsToResponses(approvals), nil
}

func (s *ClaimService) ListClaims(ctx context.Context, filter overtime.ClaimFilter) (overtime.ListClaimResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return overtime.ListClaimResponse{}, err
	}

	claims, totalCount, err := s.claimRepo.ListByCompany(ctx, companyID, filter)
	if err != nil {
		return overtime.ListClaimResponse{}, err
	}

	// The status filter is part of the SQL predicate, so pagination and
	// the total count already honor it; each row's status is still derived
	// here for the response.
	result := make([]overtime.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		approvals, err := s.approvalRepo.ListByClaimID(ctx, c.ID)
		if err != nil {
			return overtime.ListClaimResponse{}, err
		}
		result = append(result, mapClaimToResponse(c, overtime.DeriveClaimStatus(approvals)))
	}

	return overtime.ListClaimResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func mapClaimToResponse(c overtime.OTClaim, status overtime.ClaimStatus) overtime.ClaimResponse {
	resp := overtime.ClaimResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		OTTypeID:   c.OTTypeID,
		Date:       c.Date.Format("2006-01-02"),
		Hours:      c.Hours,
		HourlyRate: c.HourlyRate,
		Amount:     c.Amount,
		Remarks:    c.Remarks,
		Status:     status,
	}
	if c.TypeName != nil {
		resp.TypeName = *c.TypeName
	}
	if c.EmployeeName != nil {
		resp.EmployeeName = *c.EmployeeName
	}
	return resp
}

func mapApprovalsToResponses(approvals []overtime.OTApproval) []overtime.ApprovalResponse {
	result := make([]overtime.ApprovalResponse, 0, len(approvals))
	for _, a := range approvals {
		result = append(result, mapApprovalToResponse(a))
	}
	return result
}

func mapApprovalToResponse(a overtime.OTApproval) overtime.ApprovalResponse {
	var decidedAtStr *string
	if a.DecidedAt != nil {
		str := a.DecidedAt.Format(time.RFC3339)
		decidedAtStr = &str
	}

	return overtime.ApprovalResponse{
		ID:         a.ID,
		ClaimID:    a.ClaimID,
		Level:      a.Level,
		ApproverID: a.ApproverID,
		Status:     string(a.Status),
		Comment:    a.Comment,
		DecidedAt:  decidedAtStr,
	}
}
