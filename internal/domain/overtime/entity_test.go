package overtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveClaimStatus(t *testing.T) {
	t.Parallel()

	pending1 := OTApproval{Level: LevelLineManager, Status: ApprovalStatusPending}
	accepted1 := OTApproval{Level: LevelLineManager, Status: ApprovalStatusAccepted}
	rejected1 := OTApproval{Level: LevelLineManager, Status: ApprovalStatusRejected}
	pending2 := OTApproval{Level: LevelHR, Status: ApprovalStatusPending}
	accepted2 := OTApproval{Level: LevelHR, Status: ApprovalStatusAccepted}
	rejected2 := OTApproval{Level: LevelHR, Status: ApprovalStatusRejected}

	tests := []struct {
		name      string
		approvals []OTApproval
		expected  ClaimStatus
	}{
		{"no approvals yet", nil, ClaimStatusPendingLevel1},
		{"level 1 pending", []OTApproval{pending1}, ClaimStatusPendingLevel1},
		{"level 1 rejected", []OTApproval{rejected1}, ClaimStatusRejectedLevel1},
		{"level 1 accepted, level 2 pending", []OTApproval{accepted1, pending2}, ClaimStatusPendingLevel2},
		{"level 1 accepted, level 2 missing", []OTApproval{accepted1}, ClaimStatusPendingLevel2},
		{"level 2 rejected", []OTApproval{accepted1, rejected2}, ClaimStatusRejectedLevel2},
		{"both accepted", []OTApproval{accepted1, accepted2}, ClaimStatusPayable},
		{"order does not matter", []OTApproval{accepted2, accepted1}, ClaimStatusPayable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveClaimStatus(tt.approvals))
		})
	}
}

func TestApprovalStatusIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, ApprovalStatusPending.IsTerminal())
	assert.True(t, ApprovalStatusAccepted.IsTerminal())
	assert.True(t, ApprovalStatusRejected.IsTerminal())
}
