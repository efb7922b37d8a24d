package leave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/application/leave"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/infrastructure/memstore"
)

func newUseCase() *leave.LeaveUseCase {
	return leave.NewLeaveUseCase(memstore.NewLeaveRepository(memstore.New()))
}

func submit(t *testing.T, uc *leave.LeaveUseCase, userID, leaveType, start, end, reason string) *dto.LeaveResponse {
	t.Helper()
	out, err := uc.Submit(userID, "Test User", dto.SubmitLeaveRequest{
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
	})
	require.NoError(t, err)
	return out
}

// Full lifecycle: submit a three-day paid leave, approve it with a comment,
// verify it left the pending queue.
func TestLeaveLifecycle_SubmitThenApprove(t *testing.T) {
	uc := newUseCase()

	created := submit(t, uc, "u1", entity.LeavePaid, "2026-01-10", "2026-01-12", "trip")
	assert.Equal(t, entity.LeavePending, created.Status)
	assert.Equal(t, 3, created.DurationDays)
	assert.Equal(t, "Test User", created.UserName)

	pending, err := uc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	decided, err := uc.Decide(created.ID, dto.DecisionRequest{Decision: leave.DecisionApprove, Comment: "Enjoy"})
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveApproved, decided.Status)
	assert.Equal(t, "Enjoy", decided.AdminComment)

	pending, err = uc.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending, "an approved request leaves the queue")

	history, err := uc.ListDecided()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, created.ID, history[0].ID)
}

func TestSubmit_InvertedRange(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Submit("u1", "Test User", dto.SubmitLeaveRequest{
		LeaveType: entity.LeavePaid,
		StartDate: "2026-01-12",
		EndDate:   "2026-01-10",
		Reason:    "trip",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestSubmit_BlankReason(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Submit("u1", "Test User", dto.SubmitLeaveRequest{
		LeaveType: entity.LeaveSick,
		StartDate: "2026-01-10",
		EndDate:   "2026-01-10",
		Reason:    "   ",
	})
	assert.ErrorIs(t, err, domain.ErrMissingReason)
}

func TestSubmit_UnknownTypeAndBadDates(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Submit("u1", "Test User", dto.SubmitLeaveRequest{
		LeaveType: "sabbatical", StartDate: "2026-01-10", EndDate: "2026-01-10", Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Submit("u1", "Test User", dto.SubmitLeaveRequest{
		LeaveType: entity.LeavePaid, StartDate: "10/01/2026", EndDate: "2026-01-10", Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// A decided request is immutable: the second decision fails and the first one
// stands, comment included.
func TestDecide_SecondDecisionRejected(t *testing.T) {
	uc := newUseCase()
	created := submit(t, uc, "u1", entity.LeavePaid, "2026-01-10", "2026-01-12", "trip")

	_, err := uc.Decide(created.ID, dto.DecisionRequest{Decision: leave.DecisionReject, Comment: "short staffed"})
	require.NoError(t, err)

	_, err = uc.Decide(created.ID, dto.DecisionRequest{Decision: leave.DecisionApprove, Comment: "changed my mind"})
	assert.ErrorIs(t, err, domain.ErrNotPending)

	own, err := uc.ListForUser("u1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, entity.LeaveRejected, own[0].Status)
	assert.Equal(t, "short staffed", own[0].AdminComment, "the failed decision must not touch the record")
}

func TestDecide_UnknownIDAndBadDecision(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Decide("nope", dto.DecisionRequest{Decision: leave.DecisionApprove})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created := submit(t, uc, "u1", entity.LeavePaid, "2026-01-10", "2026-01-10", "x")
	_, err = uc.Decide(created.ID, dto.DecisionRequest{Decision: "maybe"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ListForUser sees only the caller's requests and keeps submission order for
// same-day submissions; ListPending is newest-first across users.
func TestListings_ScopeAndOrder(t *testing.T) {
	uc := newUseCase()
	a := submit(t, uc, "u1", entity.LeavePaid, "2026-01-05", "2026-01-06", "first")
	submit(t, uc, "u2", entity.LeaveSick, "2026-01-07", "2026-01-07", "other user")
	b := submit(t, uc, "u1", entity.LeaveUnpaid, "2026-02-01", "2026-02-02", "second")

	own, err := uc.ListForUser("u1")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, a.ID, own[0].ID)
	assert.Equal(t, b.ID, own[1].ID)

	pending, err := uc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, b.ID, pending[0].ID, "newest submission first")
}

func TestBalance_StaticLedger(t *testing.T) {
	uc := newUseCase()
	before := uc.Balance()

	created := submit(t, uc, "u1", entity.LeavePaid, "2026-01-10", "2026-01-14", "trip")
	_, err := uc.Decide(created.ID, dto.DecisionRequest{Decision: leave.DecisionApprove})
	require.NoError(t, err)

	after := uc.Balance()
	assert.Equal(t, before, after, "approvals do not decrement balances")
	assert.Equal(t, leave.DefaultPaidBalance, after.Paid)
	assert.Equal(t, leave.DefaultSickBalance, after.Sick)
	assert.Equal(t, leave.UnlimitedBalance, after.Unpaid)
}
