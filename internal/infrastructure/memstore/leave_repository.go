package memstore

import (
	"sort"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

// LeaveRepository implements repository.LeaveRepository over the store.
//
// The canonical slice keeps insertion order. Pending/decided listings walk
// it backwards so newer requests surface first; per-user listings sort by
// CreatedAt ascending with a stable sort, so same-day requests keep their
// insertion order.
type LeaveRepository struct {
	store *Store
}

// NewLeaveRepository builds the repository.
func NewLeaveRepository(store *Store) *LeaveRepository {
	return &LeaveRepository{store: store}
}

// Create appends the request.
func (r *LeaveRepository) Create(req *entity.LeaveRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *req
	r.store.leaves = append(r.store.leaves, &cp)
	return nil
}

// GetByID returns a copy of the request, or nil when absent.
func (r *LeaveRepository) GetByID(id string) (*entity.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, lr := range r.store.leaves {
		if lr.ID == id {
			cp := *lr
			return &cp, nil
		}
	}
	return nil, nil
}

// Update overwrites the stored request with the same ID.
func (r *LeaveRepository) Update(req *entity.LeaveRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, lr := range r.store.leaves {
		if lr.ID == req.ID {
			cp := *req
			r.store.leaves[i] = &cp
			return nil
		}
	}
	return nil
}

// ListPending returns pending requests, newest insertion first.
func (r *LeaveRepository) ListPending() ([]*entity.LeaveRequest, error) {
	return r.listReversed(func(lr *entity.LeaveRequest) bool {
		return lr.Status == entity.LeavePending
	}), nil
}

// ListDecided returns approved and rejected requests, newest insertion first.
func (r *LeaveRepository) ListDecided() ([]*entity.LeaveRequest, error) {
	return r.listReversed(func(lr *entity.LeaveRequest) bool {
		return lr.Status != entity.LeavePending
	}), nil
}

// ListByUser returns the user's requests oldest CreatedAt first; the stable
// sort preserves insertion order for equal dates.
func (r *LeaveRepository) ListByUser(userID string) ([]*entity.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.LeaveRequest
	for _, lr := range r.store.leaves {
		if lr.UserID == userID {
			cp := *lr
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *LeaveRepository) listReversed(keep func(*entity.LeaveRequest) bool) []*entity.LeaveRequest {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.LeaveRequest
	for i := len(r.store.leaves) - 1; i >= 0; i-- {
		if keep(r.store.leaves[i]) {
			cp := *r.store.leaves[i]
			out = append(out, &cp)
		}
	}
	return out
}
