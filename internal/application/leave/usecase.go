package leave

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Static leave balances. These are a display ledger, not an enforced
// invariant: approvals do not decrement them.
const (
	DefaultPaidBalance = 12
	DefaultSickBalance = 8
	UnlimitedBalance   = -1
)

// Decision values accepted by Decide.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// LeaveUseCase manages the leave request collection and its status
// transitions. The state machine per request is pending → approved |
// rejected; both terminal states are immutable.
type LeaveUseCase struct {
	leaves repository.LeaveRepository
}

// NewLeaveUseCase builds the leave use case.
func NewLeaveUseCase(leaves repository.LeaveRepository) *LeaveUseCase {
	return &LeaveUseCase{leaves: leaves}
}

// Submit creates a new pending request for the given user. The date range is
// inclusive and must not be inverted (ErrInvalidRange); the reason must be
// non-empty (ErrMissingReason).
func (uc *LeaveUseCase) Submit(userID, userName string, in dto.SubmitLeaveRequest) (*dto.LeaveResponse, error) {
	if in.LeaveType != entity.LeavePaid && in.LeaveType != entity.LeaveSick && in.LeaveType != entity.LeaveUnpaid {
		return nil, domain.ErrValidation
	}
	start, err := time.ParseInLocation(dateLayout, in.StartDate, time.UTC)
	if err != nil {
		return nil, domain.ErrValidation
	}
	end, err := time.ParseInLocation(dateLayout, in.EndDate, time.UTC)
	if err != nil {
		return nil, domain.ErrValidation
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidRange
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrMissingReason
	}

	now := time.Now()
	req := &entity.LeaveRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserName:  userName,
		LeaveType: in.LeaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    in.Reason,
		Status:    entity.LeavePending,
		CreatedAt: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := uc.leaves.Create(req); err != nil {
		return nil, err
	}
	return toLeaveResponse(req), nil
}

// Decide transitions a pending request to approved or rejected and attaches
// the admin's comment if provided. Deciding a request that is no longer
// pending fails with ErrNotPending and leaves the record untouched.
func (uc *LeaveUseCase) Decide(requestID string, in dto.DecisionRequest) (*dto.LeaveResponse, error) {
	if in.Decision != DecisionApprove && in.Decision != DecisionReject {
		return nil, domain.ErrValidation
	}
	req, err := uc.leaves.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.Terminal() {
		return nil, domain.ErrNotPending
	}

	if in.Decision == DecisionApprove {
		req.Status = entity.LeaveApproved
	} else {
		req.Status = entity.LeaveRejected
	}
	req.AdminComment = in.Comment

	if err := uc.leaves.Update(req); err != nil {
		return nil, err
	}
	return toLeaveResponse(req), nil
}

// ListPending returns every pending request, newer first, stable across
// calls.
func (uc *LeaveUseCase) ListPending() ([]dto.LeaveResponse, error) {
	reqs, err := uc.leaves.ListPending()
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(reqs), nil
}

// ListDecided returns every approved or rejected request, newer first.
func (uc *LeaveUseCase) ListDecided() ([]dto.LeaveResponse, error) {
	reqs, err := uc.leaves.ListDecided()
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(reqs), nil
}

// ListForUser returns the user's own requests, oldest CreatedAt first with
// ties broken by insertion order.
func (uc *LeaveUseCase) ListForUser(userID string) ([]dto.LeaveResponse, error) {
	reqs, err := uc.leaves.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(reqs), nil
}

// Balance returns the static per-type ledger.
func (uc *LeaveUseCase) Balance() dto.LeaveBalanceResponse {
	return dto.LeaveBalanceResponse{
		Paid:   DefaultPaidBalance,
		Sick:   DefaultSickBalance,
		Unpaid: UnlimitedBalance,
	}
}

func toLeaveResponse(r *entity.LeaveRequest) *dto.LeaveResponse {
	return &dto.LeaveResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		UserName:     r.UserName,
		LeaveType:    r.LeaveType,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		DurationDays: r.DurationDays(),
		Reason:       r.Reason,
		Status:       r.Status,
		AdminComment: r.AdminComment,
		CreatedAt:    r.CreatedAt.Format(dateLayout),
	}
}

func toLeaveResponses(reqs []*entity.LeaveRequest) []dto.LeaveResponse {
	out := make([]dto.LeaveResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, *toLeaveResponse(r))
	}
	return out
}
