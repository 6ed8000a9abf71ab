package overtime

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
	"github.com/sghrms/payroll-backend-go/internal/repository/postgresql"
)

// ApprovalService drives the two-level decision flow. Each decision runs in
// one transaction: the approval row is locked, the terminal status is written
// with a pending-only guard, and the follow-on effect (opening the level-2
// row, or rebuilding the day's summary) commits together with it.
type ApprovalService struct {
	db           *database.DB
	approvalRepo overtime.OTApprovalRepository
	claimRepo    overtime.OTClaimRepository
	summarySvc   *SummaryService
}

func NewApprovalService(
	db *database.DB,
	approvalRepo overtime.OTApprovalRepository,
	claimRepo overtime.OTClaimRepository,
	summarySvc *SummaryService,
) *ApprovalService {
	return &ApprovalService{
		db:           db,
		approvalRepo: approvalRepo,
		claimRepo:    claimRepo,
		summarySvc:   summarySvc,
	}
}

func (s *ApprovalService) Decide(ctx context.Context, approvalID string, req overtime.DecideApprovalRequest) (overtime.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.ApprovalResponse{}, err
	}

	companyID, actorEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return overtime.ApprovalResponse{}, err
	}

	decision := overtime.ApprovalStatus(req.Decision)
	var decided overtime.OTApproval

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		approval, err := s.approvalRepo.GetByIDForUpdate(txCtx, approvalID)
		if err != nil {
			return err
		}

		// Company scoping: the claim lookup fails with not-found for a
		// claim outside the caller's company.
		claim, err := s.claimRepo.GetByID(txCtx, approval.ClaimID, companyID)
		if err != nil {
			return err
		}

		if approval.Status.IsTerminal() {
			return overtime.ErrAlreadyDecided
		}
		if !role.CanApproveLevel(approval.Level) {
			return overtime.ErrWrongLevel
		}
		if approval.Level == overtime.LevelLineManager && role != user.RoleAdmin {
			if approval.ApproverID == nil || *approval.ApproverID != actorEmployeeID {
				return overtime.ErrWrongApprover
			}
		}

		now := time.Now().UTC()
		ok, err := s.approvalRepo.Decide(txCtx, approval.ID, decision, actorEmployeeID, req.Comment, now)
		if err != nil {
			return err
		}
		if !ok {
			return overtime.ErrAlreadyDecided
		}

		decided = approval
		decided.Status = decision
		decided.ApproverID = &actorEmployeeID
		decided.Comment = req.Comment
		decided.DecidedAt = &now

		if decision != overtime.ApprovalStatusAccepted {
			return nil
		}

		switch approval.Level {
		case overtime.LevelLineManager:
			// Acceptance at level 1 opens the HR approval. Its approver
			// is unaddressed; any admin may decide it.
			_, err = s.approvalRepo.Create(txCtx, overtime.OTApproval{
				ClaimID: claim.ID,
				Level:   overtime.LevelHR,
				Status:  overtime.ApprovalStatusPending,
			})
			return err
		case overtime.LevelHR:
			// The claim is payable now; the day's summary must reflect
			// it before this transaction commits.
			_, err = s.summarySvc.rebuild(txCtx, claim.CompanyID, claim.EmployeeID, claim.Date)
			return err
		}
		return nil
	})
	if err != nil {
		return overtime.ApprovalResponse{}, err
	}

	return mapApprovalToResponse(decided), nil
}

// ListPending returns the approvals awaiting the caller: a manager sees the
// level-1 rows addressed to them, an admin sees every pending level-2 row in
// the company.
func (s *ApprovalService) ListPending(ctx context.Context) ([]overtime.ApprovalResponse, error) {
	companyID, actorEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var approvals []overtime.OTApproval
	switch role {
	case user.RoleAdmin:
		approvals, err = s.approvalRepo.ListPendingByLevel(ctx, companyID, overtime.LevelHR)
	case user.RoleManager:
		approvals, err = s.approvalRepo.ListPendingByApprover(ctx, actorEmployeeID, overtime.LevelLineManager)
	default:
		return nil, user.ErrManagerAccessRequired
	}
	if err != nil {
		return nil, err
	}

	return mapApprovalsToResponses(approvals), nil
}
