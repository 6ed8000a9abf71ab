package overtime

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghrms/payroll-backend-go/internal/domain/employee"
	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
)

func TestClaimService_EmployeeCannotFileForOthers(t *testing.T) {
	ctx := context.Background()
	env := newOvertimeTestEnv(t, ctx)

	coworkerID := createOvertimeTestEmployee(t, ctx, env.companyID, &env.managerID)
	employeeCtx := authedContext(t, ctx, env.companyID, env.employeeID, user.RoleEmployee)

	_, err := env.claimSvc.CreateClaim(employeeCtx, overtime.CreateClaimRequest{
		EmployeeID: coworkerID,
		OTTypeID:   env.otType.ID,
		Date:       "2026-08-19",
		Hours:      decimal.RequireFromString("2"),
	})
	assert.ErrorIs(t, err, employee.ErrUnauthorized)

	// A manager may file on the employee's behalf.
	managerCtx := authedContext(t, ctx, env.companyID, env.managerID, user.RoleManager)
	claim, err := env.claimSvc.CreateClaim(managerCtx, overtime.CreateClaimRequest{
		EmployeeID: coworkerID,
		OTTypeID:   env.otType.ID,
		Date:       "2026-08-19",
		Hours:      decimal.RequireFromString("2"),
	})
	require.NoError(t, err)
	assert.Equal(t, coworkerID, claim.EmployeeID)
}

func TestClaimService_ListClaims_StatusFilterCountsAndPaginates(t *testing.T) {
	ctx := context.Background()
	env := newOvertimeTestEnv(t, ctx)

	managerCtx := authedContext(t, ctx, env.companyID, env.managerID, user.RoleManager)
	adminCtx := authedContext(t, ctx, env.companyID, env.adminID, user.RoleAdmin)

	accept := func(claimID string, level int) {
		approverCtx := managerCtx
		if level == overtime.LevelHR {
			approverCtx = adminCtx
		}
		a := env.pendingApproval(t, ctx, claimID, level)
		_, err := env.approvalSvc.Decide(approverCtx, a.ID, overtime.DecideApprovalRequest{Decision: "accepted"})
		require.NoError(t, err)
	}

	// One claim per derived state.
	pendingL1 := env.createClaim(t, ctx, "2026-08-03", "1")

	rejectedL1 := env.createClaim(t, ctx, "2026-08-04", "1")
	l1 := env.pendingApproval(t, ctx, rejectedL1.ID, overtime.LevelLineManager)
	_, err := env.approvalSvc.Decide(managerCtx, l1.ID, overtime.DecideApprovalRequest{Decision: "rejected"})
	require.NoError(t, err)

	pendingL2 := env.createClaim(t, ctx, "2026-08-05", "1")
	accept(pendingL2.ID, overtime.LevelLineManager)

	payable := env.createClaim(t, ctx, "2026-08-06", "1")
	accept(payable.ID, overtime.LevelLineManager)
	accept(payable.ID, overtime.LevelHR)

	cases := []struct {
		status overtime.ClaimStatus
		wantID string
	}{
		{overtime.ClaimStatusPendingLevel1, pendingL1.ID},
		{overtime.ClaimStatusRejectedLevel1, rejectedL1.ID},
		{overtime.ClaimStatusPendingLevel2, pendingL2.ID},
		{overtime.ClaimStatusPayable, payable.ID},
	}
	for _, tc := range cases {
		status := tc.status
		// Limit 1: a filtered page must not shrink, and the count must
		// reflect the filter, not the whole company.
		resp, err := env.claimSvc.ListClaims(adminCtx, overtime.ClaimFilter{Status: &status, Page: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1, "status %s", status)
		assert.Equal(t, tc.wantID, resp.Data[0].ID, "status %s", status)
		assert.Equal(t, status, resp.Data[0].Status)
		assert.Equal(t, int64(1), resp.TotalCount, "status %s", status)
	}

	unknown := overtime.ClaimStatus("settled")
	resp, err := env.claimSvc.ListClaims(adminCtx, overtime.ClaimFilter{Status: &unknown})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(0), resp.TotalCount)
}
